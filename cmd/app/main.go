package main

import (
	"errors"
	"log"

	"github.com/device-management-toolkit/go-wsman-messages/v2/pkg/security"

	"github.com/rackhd/redfish-gateway/config"
	"github.com/rackhd/redfish-gateway/internal/app"
	"github.com/rackhd/redfish-gateway/pkg/secrets"
)

const (
	encryptionKeyName = "default-security-key"
	keyringService    = "rackhd-redfish-gateway"
)

// Sentinel errors for configuration.
var (
	ErrSecretStoreAddressNotConfigured = errors.New("secret store address not configured")
	ErrSecretStoreTokenNotConfigured   = errors.New("secret store token not configured")
)

// Function pointers for testability.
var (
	initializeConfigFunc = config.NewConfig
	runAppFunc           = app.Run
	newRemoteStoreFunc   = newRemoteStore
	newLocalStoreFunc    = func() security.Storager { return security.NewKeyRingStorage(keyringService) }
	generateKeyFunc      = func() string { return security.Crypto{}.GenerateKey() }
)

func main() {
	cfg, err := initializeConfigFunc()
	if err != nil {
		log.Fatalf("Config error: %s", err)
	}

	if err := resolveEncryptionKey(cfg); err != nil {
		log.Fatalf("Encryption key error: %s", err)
	}

	runAppFunc(cfg)
}

func newRemoteStore(cfg *config.Config) (security.Storager, error) {
	if cfg.Secrets.Address == "" {
		return nil, ErrSecretStoreAddressNotConfigured
	}

	if cfg.Secrets.Token == "" {
		return nil, ErrSecretStoreTokenNotConfigured
	}

	vault, err := secrets.NewVault(cfg.Secrets)
	if err != nil {
		return nil, err
	}

	return vault, nil
}

// resolveEncryptionKey fills cfg.EncryptionKey, the key OBM secrets are encrypted
// with. It prefers config, then Vault, then the OS keyring, and generates a key
// as a last resort. The resolved key is written back to the stores that lack it.
func resolveEncryptionKey(cfg *config.Config) error {
	remote, err := newRemoteStoreFunc(cfg)
	if err != nil {
		log.Printf("Secret store unavailable: %v", err)

		remote = nil
	}

	local := newLocalStoreFunc()

	if cfg.EncryptionKey != "" {
		log.Println("Encryption key loaded from configuration")

		return nil
	}

	if remote != nil {
		if key, err := remote.GetKeyValue(encryptionKeyName); err == nil {
			cfg.EncryptionKey = key

			log.Println("Encryption key loaded from secret store")

			return nil
		}
	}

	key, err := local.GetKeyValue(encryptionKeyName)

	switch {
	case err == nil:
		cfg.EncryptionKey = key

		log.Println("Encryption key loaded from local keyring")
		syncKey(key, remote)

		return nil
	case !errors.Is(err, security.ErrKeyNotFound):
		return err
	}

	log.Println("Warning: no encryption key found, generating a new one. Previously stored OBM secrets cannot be decrypted with it.")

	cfg.EncryptionKey = generateKeyFunc()

	if remote != nil {
		return remote.SetKeyValue(encryptionKeyName, cfg.EncryptionKey)
	}

	return local.SetKeyValue(encryptionKeyName, cfg.EncryptionKey)
}

func syncKey(key string, remote security.Storager) {
	if remote == nil {
		return
	}

	if err := remote.SetKeyValue(encryptionKeyName, key); err != nil {
		log.Printf("Warning: failed to sync key to secret store: %v", err)

		return
	}

	log.Println("Encryption key synced to secret store")
}
