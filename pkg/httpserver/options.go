package httpserver

import (
	"net"
	"time"

	"github.com/rackhd/redfish-gateway/pkg/logger"
)

// Option -.
type Option func(*Server)

// Port -.
func Port(host, port string) Option {
	return func(s *Server) {
		s.server.Addr = net.JoinHostPort(host, port)
	}
}

// TLS enables TLS. Empty paths fall back to PFX, then to a self-signed certificate.
func TLS(enable bool, certFile, keyFile string) Option {
	return func(s *Server) {
		s.useTLS = enable
		s.certFile = certFile
		s.keyFile = keyFile
	}
}

// PFX serves the certificate held in a PKCS#12 bundle. It only applies with TLS enabled.
func PFX(file, password string) Option {
	return func(s *Server) {
		s.pfxFile = file
		s.pfxPassword = password
	}
}

// Listener injects a pre-bound listener.
func Listener(l net.Listener) Option {
	return func(s *Server) {
		s.listener = l
	}
}

// ReadTimeout -.
func ReadTimeout(timeout time.Duration) Option {
	return func(s *Server) {
		s.server.ReadTimeout = timeout
	}
}

// WriteTimeout -.
func WriteTimeout(timeout time.Duration) Option {
	return func(s *Server) {
		s.server.WriteTimeout = timeout
	}
}

// ShutdownTimeout -.
func ShutdownTimeout(timeout time.Duration) Option {
	return func(s *Server) {
		s.shutdownTimeout = timeout
	}
}

// Logger -.
func Logger(l logger.Interface) Option {
	return func(s *Server) {
		s.log = l
	}
}
