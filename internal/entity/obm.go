package entity

import (
	"errors"
	"fmt"
)

// OBM service names.
const (
	ObmServiceIPMI      = "ipmi-obm-service"
	ObmServiceDellWsman = "dell-wsman-obm-service"
	ObmServiceUCS       = "ucs-obm-service"
)

// Redacted replaces sensitive OBM values on the way out.
const Redacted = "REDACTED"

var (
	ErrObmServiceRequired = errors.New("obm: service is required")
	ErrObmConfigRequired  = errors.New("obm: config is required")
)

// sensitiveObmKeys lists the config keys that never leave the process in clear text.
var sensitiveObmKeys = map[string]struct{}{
	"password":  {},
	"community": {},
}

// Encryptor protects OBM secrets before they are persisted.
type Encryptor interface {
	Encrypt(plainText string) (string, error)
}

// Obm holds out-of-band management settings for a node.
//
// Serialize redacts secrets for API exposure and Deserialize encrypts them
// for persistence. The two transforms do not invert each other.
type Obm struct {
	ID      string                 `json:"id,omitempty"`
	NodeID  string                 `json:"node,omitempty"`
	Service string                 `json:"service"`
	Config  map[string]interface{} `json:"config"`
}

// NewObm builds an Obm from persisted defaults. The config map is copied.
func NewObm(defaults Obm) (*Obm, error) {
	o := &Obm{
		ID:      defaults.ID,
		NodeID:  defaults.NodeID,
		Service: defaults.Service,
		Config:  copyConfig(defaults.Config),
	}

	if err := o.Validate(); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate checks the required service and config members.
func (o *Obm) Validate() error {
	if o.Service == "" {
		return ErrObmServiceRequired
	}

	if o.Config == nil {
		return ErrObmConfigRequired
	}

	return nil
}

// Serialize fills unset members from target and replaces sensitive config
// values with Redacted.
func (o *Obm) Serialize(target *Obm) *Obm {
	o.applyDefaults(target)

	for key := range o.Config {
		if _, ok := sensitiveObmKeys[key]; ok {
			o.Config[key] = Redacted
		}
	}

	return o
}

// Masked returns a serialized copy, leaving o untouched.
func (o *Obm) Masked() *Obm {
	c := &Obm{ID: o.ID, NodeID: o.NodeID, Service: o.Service, Config: copyConfig(o.Config)}

	return c.Serialize(nil)
}

// Deserialize fills unset members from target and encrypts sensitive config values.
func (o *Obm) Deserialize(target *Obm, enc Encryptor) (*Obm, error) {
	o.applyDefaults(target)

	for key, value := range o.Config {
		if _, ok := sensitiveObmKeys[key]; !ok {
			continue
		}

		encrypted, err := enc.Encrypt(fmt.Sprint(value))
		if err != nil {
			return nil, fmt.Errorf("obm: encrypt %s: %w", key, err)
		}

		o.Config[key] = encrypted
	}

	return o, nil
}

// Host returns config.host, or "" when unset.
func (o *Obm) Host() string { return o.configString("host") }

// User returns config.user, or "" when unset.
func (o *Obm) User() string { return o.configString("user") }

// Password returns the stored (encrypted) config.password.
func (o *Obm) Password() string { return o.configString("password") }

func (o *Obm) configString(key string) string {
	if o.Config == nil {
		return ""
	}

	s, _ := o.Config[key].(string)

	return s
}

func (o *Obm) applyDefaults(target *Obm) {
	if target == nil {
		return
	}

	if o.ID == "" {
		o.ID = target.ID
	}

	if o.NodeID == "" {
		o.NodeID = target.NodeID
	}

	if o.Service == "" {
		o.Service = target.Service
	}

	if o.Config == nil {
		o.Config = copyConfig(target.Config)

		return
	}

	for k, v := range target.Config {
		if _, ok := o.Config[k]; !ok {
			o.Config[k] = v
		}
	}
}

func copyConfig(in map[string]interface{}) map[string]interface{} {
	if in == nil {
		return nil
	}

	out := make(map[string]interface{}, len(in))
	for k, v := range in {
		out[k] = v
	}

	return out
}
