package v1

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	jsoniter "github.com/json-iterator/go"
)

var (
	// ErrRegistryNotFound is returned when a registry is not found.
	ErrRegistryNotFound = errors.New("registry not found")
	// ErrMessageNotFound is returned when a message is not found in a registry.
	ErrMessageNotFound = errors.New("message not found in registry")
)

//go:embed registries/Base.1.22.0.json
var baseRegistryJSON []byte

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// MessageRegistry is a DMTF message registry document.
type MessageRegistry struct {
	ID              string                    `json:"Id"`
	RegistryPrefix  string                    `json:"RegistryPrefix"`
	RegistryVersion string                    `json:"RegistryVersion"`
	Messages        map[string]MessageDetails `json:"Messages"`
}

// MessageDetails -.
type MessageDetails struct {
	Message         string `json:"Message"`
	MessageSeverity string `json:"MessageSeverity"`
	NumberOfArgs    int    `json:"NumberOfArgs"`
	Resolution      string `json:"Resolution"`
}

// RegistryManager holds the loaded registries, keyed by prefix.
type RegistryManager struct {
	registries map[string]*MessageRegistry
	mu         sync.RWMutex
}

var (
	registryManager *RegistryManager
	registryErr     error
	once            sync.Once
)

// GetRegistryManager returns the process-wide registry manager.
func GetRegistryManager() (*RegistryManager, error) {
	once.Do(func() {
		registryManager = &RegistryManager{registries: make(map[string]*MessageRegistry)}
		registryErr = registryManager.Load(baseRegistryJSON)
	})

	return registryManager, registryErr
}

// Load parses a registry document and registers it under its prefix.
func (rm *RegistryManager) Load(data []byte) error {
	var registry MessageRegistry
	if err := json.Unmarshal(data, &registry); err != nil {
		return fmt.Errorf("failed to unmarshal registry: %w", err)
	}

	rm.mu.Lock()
	defer rm.mu.Unlock()

	rm.registries[registry.RegistryPrefix] = &registry

	return nil
}

// LookupMessage -.
func (rm *RegistryManager) LookupMessage(prefix, key string) (*RegistryMessage, error) {
	rm.mu.RLock()
	defer rm.mu.RUnlock()

	registry, ok := rm.registries[prefix]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRegistryNotFound, prefix)
	}

	message, ok := registry.Messages[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s in %s", ErrMessageNotFound, key, prefix)
	}

	return &RegistryMessage{
		MessageID:    fmt.Sprintf("%s.%s.%s", registry.RegistryPrefix, registry.RegistryVersion, key),
		Message:      message.Message,
		Severity:     message.MessageSeverity,
		Resolution:   message.Resolution,
		NumberOfArgs: message.NumberOfArgs,
		CodePrefix:   registry.RegistryPrefix + "." + registry.RegistryVersion,
	}, nil
}

// RegistryMessage is a resolved registry entry.
type RegistryMessage struct {
	MessageID    string
	Message      string
	Severity     string
	Resolution   string
	NumberOfArgs int
	CodePrefix   string
}

// FormatMessage substitutes the DMTF %1..%n placeholders. Missing args leave the placeholder.
func (m *RegistryMessage) FormatMessage(args ...string) string {
	message := m.Message

	for i := m.NumberOfArgs; i >= 1; i-- {
		if i > len(args) {
			continue
		}

		message = strings.ReplaceAll(message, fmt.Sprintf("%%%d", i), args[i-1])
	}

	return message
}
