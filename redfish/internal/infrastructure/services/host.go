package services

import (
	"fmt"
	"net"
	"os"
	"strings"

	"github.com/rackhd/redfish-gateway/redfish/internal/usecase"
)

// Host reads the identity and interfaces of the machine the gateway runs on.
type Host struct {
	hostname   func() (string, error)
	interfaces func() ([]net.Interface, error)
	lookupIP   func(host string) ([]net.IP, error)
	lookupAddr func(addr string) ([]string, error)
}

// NewHost -.
func NewHost() *Host {
	return &Host{
		hostname:   os.Hostname,
		interfaces: net.Interfaces,
		lookupIP:   net.LookupIP,
		lookupAddr: net.LookupAddr,
	}
}

// Hostname -.
func (h *Host) Hostname() (string, error) {
	return h.hostname()
}

// FQDN resolves the hostname forward and then back to a canonical name.
func (h *Host) FQDN() (string, error) {
	name, err := h.hostname()
	if err != nil {
		return "", err
	}

	ips, err := h.lookupIP(name)
	if err != nil {
		return "", fmt.Errorf("host - lookup %s: %w", name, err)
	}

	for _, ip := range ips {
		names, err := h.lookupAddr(ip.String())
		if err != nil || len(names) == 0 {
			continue
		}

		return strings.TrimSuffix(names[0], "."), nil
	}

	return "", fmt.Errorf("host - no reverse record for %s", name)
}

// Interfaces lists every non-loopback interface with its IPv4 addresses.
func (h *Host) Interfaces() ([]usecase.HostInterface, error) {
	ifaces, err := h.interfaces()
	if err != nil {
		return nil, fmt.Errorf("host - interfaces: %w", err)
	}

	out := make([]usecase.HostInterface, 0, len(ifaces))

	for i := range ifaces {
		iface := &ifaces[i]
		if iface.Flags&net.FlagLoopback != 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			return nil, fmt.Errorf("host - addresses of %s: %w", iface.Name, err)
		}

		hi := usecase.HostInterface{Name: iface.Name, MAC: iface.HardwareAddr.String()}

		for _, a := range addrs {
			ipnet, ok := a.(*net.IPNet)
			if !ok || ipnet.IP.To4() == nil {
				continue
			}

			hi.IPv4 = append(hi.IPv4, usecase.HostAddress{
				Address: ipnet.IP.String(),
				Netmask: net.IP(ipnet.Mask).String(),
			})
		}

		out = append(out, hi)
	}

	return out, nil
}
