// Package httpserver wraps http.Server with functional options and TLS from
// PEM files, a PKCS#12 bundle or a generated self-signed certificate.
package httpserver

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"errors"
	"fmt"
	"math/big"
	"net"
	"net/http"
	"os"
	"time"

	"software.sslmate.com/src/go-pkcs12"

	"github.com/rackhd/redfish-gateway/pkg/logger"
)

const (
	_defaultReadTimeout     = 15 * time.Second
	_defaultWriteTimeout    = 15 * time.Second
	_defaultAddr            = ":80"
	_defaultShutdownTimeout = 3 * time.Second

	_rsaKeyBits   = 2048
	_selfSignedCN = "redfish-gateway"
)

// Errors.
var (
	ErrTLSCertKeyMismatch = errors.New("tls cert/key mismatch: both certFile and keyFile must be set when TLS is enabled")
	ErrPFXNoCertificate   = errors.New("pfx bundle holds no certificate")
)

// Server -.
type Server struct {
	server          *http.Server
	notify          chan error
	shutdownTimeout time.Duration
	listener        net.Listener
	log             logger.Interface

	useTLS      bool
	certFile    string
	keyFile     string
	pfxFile     string
	pfxPassword string
}

// New starts serving handler in the background. Serve errors arrive on Notify.
func New(handler http.Handler, opts ...Option) *Server {
	s := &Server{
		server: &http.Server{
			Handler:      handler,
			ReadTimeout:  _defaultReadTimeout,
			WriteTimeout: _defaultWriteTimeout,
			Addr:         _defaultAddr,
		},
		notify:          make(chan error, 1),
		shutdownTimeout: _defaultShutdownTimeout,
		log:             logger.New("info"),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.start()

	return s
}

func (s *Server) start() {
	go func() {
		s.notify <- s.serve()

		close(s.notify)
	}()
}

func (s *Server) serve() error {
	if !s.useTLS {
		if s.listener != nil {
			return s.server.Serve(s.listener)
		}

		return s.server.ListenAndServe()
	}

	if s.certFile != "" || s.keyFile != "" {
		if s.certFile == "" || s.keyFile == "" {
			return ErrTLSCertKeyMismatch
		}

		return s.serveTLS(s.certFile, s.keyFile)
	}

	cert, err := s.certificate()
	if err != nil {
		return err
	}

	s.server.TLSConfig = &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
	}

	return s.serveTLS("", "")
}

func (s *Server) serveTLS(certFile, keyFile string) error {
	if s.listener != nil {
		return s.server.ServeTLS(s.listener, certFile, keyFile)
	}

	return s.server.ListenAndServeTLS(certFile, keyFile)
}

// certificate loads the configured PFX bundle, or generates a self-signed pair.
func (s *Server) certificate() (tls.Certificate, error) {
	if s.pfxFile != "" {
		cert, err := LoadPFX(s.pfxFile, s.pfxPassword)
		if err != nil {
			return tls.Certificate{}, err
		}

		s.log.Info("TLS: using pfx certificate", "file", s.pfxFile, "subject", cert.Leaf.Subject.CommonName)

		return cert, nil
	}

	cert, err := selfSigned()
	if err != nil {
		return tls.Certificate{}, err
	}

	s.log.Warn("TLS: serving a generated self-signed certificate")

	return cert, nil
}

// LoadPFX decodes a PKCS#12 bundle into a certificate chain and key.
func LoadPFX(file, password string) (tls.Certificate, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("httpserver - read pfx: %w", err)
	}

	key, leaf, chain, err := pkcs12.DecodeChain(data, password)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("httpserver - decode pfx: %w", err)
	}

	if leaf == nil {
		return tls.Certificate{}, ErrPFXNoCertificate
	}

	cert := tls.Certificate{
		Certificate: [][]byte{leaf.Raw},
		PrivateKey:  key,
		Leaf:        leaf,
	}

	for _, ca := range chain {
		cert.Certificate = append(cert.Certificate, ca.Raw)
	}

	return cert, nil
}

// Notify -.
func (s *Server) Notify() <-chan error {
	return s.notify
}

// Shutdown -.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	return s.server.Shutdown(ctx)
}

func selfSigned() (tls.Certificate, error) {
	priv, err := rsa.GenerateKey(rand.Reader, _rsaKeyBits)
	if err != nil {
		return tls.Certificate{}, err
	}

	tmpl := x509.Certificate{
		SerialNumber:          big.NewInt(time.Now().UnixNano()),
		Subject:               pkix.Name{CommonName: _selfSignedCN},
		NotBefore:             time.Now().Add(-time.Minute),
		NotAfter:              time.Now().Add(365 * 24 * time.Hour),
		BasicConstraintsValid: true,
		KeyUsage:              x509.KeyUsageKeyEncipherment | x509.KeyUsageDigitalSignature,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		DNSNames:              []string{"localhost"},
		IPAddresses:           []net.IP{net.IPv4(127, 0, 0, 1)},
	}

	der, err := x509.CreateCertificate(rand.Reader, &tmpl, &tmpl, &priv.PublicKey, priv)
	if err != nil {
		return tls.Certificate{}, err
	}

	leaf, err := x509.ParseCertificate(der)
	if err != nil {
		return tls.Certificate{}, err
	}

	return tls.Certificate{Certificate: [][]byte{der}, PrivateKey: priv, Leaf: leaf}, nil
}
