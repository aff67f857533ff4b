// Package services provides host-level services the usecases depend on.
package services

import (
	"sync"

	"github.com/rackhd/redfish-gateway/pkg/logger"
)

// SSDPState holds whether the gateway advertises itself over SSDP.
type SSDPState struct {
	mu      sync.RWMutex
	enabled bool
	logger  logger.Interface
}

// NewSSDPState creates the advertiser state with its configured initial value.
func NewSSDPState(enabled bool, log logger.Interface) *SSDPState {
	return &SSDPState{enabled: enabled, logger: log}
}

// Enabled -.
func (s *SSDPState) Enabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.enabled
}

// SetEnabled -.
func (s *SSDPState) SetEnabled(enabled bool) {
	s.mu.Lock()
	prev := s.enabled
	s.enabled = enabled
	s.mu.Unlock()

	if prev != enabled {
		s.logger.Debug("ssdp state changed", "from", prev, "to", enabled)
	}
}
