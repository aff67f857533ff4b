// Package secrets stores the gateway's key material in HashiCorp Vault.
package secrets

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/device-management-toolkit/go-wsman-messages/v2/pkg/security"
	"github.com/hashicorp/vault/api"

	"github.com/rackhd/redfish-gateway/config"
)

const (
	defaultMount  = "secret"
	defaultSecret = "rackhd"

	requestTimeout = 10 * time.Second
)

var _ security.Storager = (*Vault)(nil)

// Vault keeps named string values as fields of a single KV v2 secret.
type Vault struct {
	kv     *api.KVv2
	secret string
}

// NewVault connects to cfg.Address. cfg.Path has the form <mount>/data/<secret>.
func NewVault(cfg config.Secrets) (*Vault, error) {
	vaultConfig := api.DefaultConfig()
	vaultConfig.Address = cfg.Address

	client, err := api.NewClient(vaultConfig)
	if err != nil {
		return nil, fmt.Errorf("secrets - NewVault: %w", err)
	}

	client.SetToken(cfg.Token)

	return NewVaultWithClient(client, cfg.Path), nil
}

// NewVaultWithClient -.
func NewVaultWithClient(client *api.Client, path string) *Vault {
	mount, secret := splitPath(path)

	return &Vault{kv: client.KVv2(mount), secret: secret}
}

func splitPath(path string) (mount, secret string) {
	path = strings.Trim(path, "/")
	if path == "" {
		return defaultMount, defaultSecret
	}

	if m, s, ok := strings.Cut(path, "/data/"); ok {
		return m, s
	}

	if m, s, ok := strings.Cut(path, "/"); ok {
		return m, s
	}

	return path, defaultSecret
}

func (v *Vault) read(ctx context.Context) (map[string]interface{}, error) {
	s, err := v.kv.Get(ctx, v.secret)
	if errors.Is(err, api.ErrSecretNotFound) {
		return map[string]interface{}{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("secrets - read %s: %w", v.secret, err)
	}

	if s.Data == nil {
		return map[string]interface{}{}, nil
	}

	return s.Data, nil
}

// GetKeyValue returns security.ErrKeyNotFound when the field is absent.
func (v *Vault) GetKeyValue(key string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	data, err := v.read(ctx)
	if err != nil {
		return "", err
	}

	value, ok := data[key].(string)
	if !ok {
		return "", security.ErrKeyNotFound
	}

	return value, nil
}

// SetKeyValue writes key, keeping the other fields of the secret.
func (v *Vault) SetKeyValue(key, value string) error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	data, err := v.read(ctx)
	if err != nil {
		return err
	}

	data[key] = value

	if _, err := v.kv.Put(ctx, v.secret, data); err != nil {
		return fmt.Errorf("secrets - write %s: %w", v.secret, err)
	}

	return nil
}

// DeleteKeyValue -.
func (v *Vault) DeleteKeyValue(key string) error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	data, err := v.read(ctx)
	if err != nil {
		return err
	}

	if _, ok := data[key]; !ok {
		return security.ErrKeyNotFound
	}

	delete(data, key)

	if _, err := v.kv.Put(ctx, v.secret, data); err != nil {
		return fmt.Errorf("secrets - write %s: %w", v.secret, err)
	}

	return nil
}
