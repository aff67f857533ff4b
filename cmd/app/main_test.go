package main

import (
	"errors"
	"testing"

	"github.com/device-management-toolkit/go-wsman-messages/v2/pkg/security"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rackhd/redfish-gateway/config"
)

var errStore = errors.New("store offline")

type memStore struct {
	values map[string]string
	getErr error
}

func newMemStore(values map[string]string) *memStore {
	if values == nil {
		values = map[string]string{}
	}

	return &memStore{values: values}
}

func (m *memStore) GetKeyValue(key string) (string, error) {
	if m.getErr != nil {
		return "", m.getErr
	}

	v, ok := m.values[key]
	if !ok {
		return "", security.ErrKeyNotFound
	}

	return v, nil
}

func (m *memStore) SetKeyValue(key, value string) error {
	m.values[key] = value

	return nil
}

func (m *memStore) DeleteKeyValue(key string) error {
	delete(m.values, key)

	return nil
}

func TestResolveEncryptionKey(t *testing.T) { //nolint:paralleltest // swaps package-level constructors
	tests := []struct {
		name       string
		configured string
		remote     *memStore
		local      *memStore
		wantKey    string
		wantErr    bool
		wantRemote string
		wantLocal  string
	}{
		{
			name:       "configured key wins",
			configured: "from-config",
			remote:     newMemStore(map[string]string{encryptionKeyName: "from-vault"}),
			local:      newMemStore(nil),
			wantKey:    "from-config",
			wantRemote: "from-vault",
		},
		{
			name:       "vault before keyring",
			remote:     newMemStore(map[string]string{encryptionKeyName: "from-vault"}),
			local:      newMemStore(map[string]string{encryptionKeyName: "from-keyring"}),
			wantKey:    "from-vault",
			wantRemote: "from-vault",
			wantLocal:  "from-keyring",
		},
		{
			name:       "keyring synced to vault",
			remote:     newMemStore(nil),
			local:      newMemStore(map[string]string{encryptionKeyName: "from-keyring"}),
			wantKey:    "from-keyring",
			wantRemote: "from-keyring",
			wantLocal:  "from-keyring",
		},
		{
			name:      "generated into keyring without vault",
			local:     newMemStore(nil),
			wantKey:   "generated",
			wantLocal: "generated",
		},
		{
			name:       "generated into vault",
			remote:     newMemStore(nil),
			local:      newMemStore(nil),
			wantKey:    "generated",
			wantRemote: "generated",
		},
		{
			name:    "keyring failure",
			local:   &memStore{values: map[string]string{}, getErr: errStore},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			newRemoteStoreFunc = func(*config.Config) (security.Storager, error) {
				if tc.remote == nil {
					return nil, ErrSecretStoreAddressNotConfigured
				}

				return tc.remote, nil
			}
			newLocalStoreFunc = func() security.Storager { return tc.local }
			generateKeyFunc = func() string { return "generated" }

			cfg := &config.Config{App: config.App{EncryptionKey: tc.configured}}

			err := resolveEncryptionKey(cfg)
			if tc.wantErr {
				require.ErrorIs(t, err, errStore)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantKey, cfg.EncryptionKey)

			if tc.remote != nil {
				assert.Equal(t, tc.wantRemote, tc.remote.values[encryptionKeyName])
			}

			assert.Equal(t, tc.wantLocal, tc.local.values[encryptionKeyName])
		})
	}
}

func TestNewRemoteStore_RequiresAddressAndToken(t *testing.T) {
	t.Parallel()

	_, err := newRemoteStore(&config.Config{})
	require.ErrorIs(t, err, ErrSecretStoreAddressNotConfigured)

	_, err = newRemoteStore(&config.Config{Secrets: config.Secrets{Address: "http://vault:8200"}})
	require.ErrorIs(t, err, ErrSecretStoreTokenNotConfigured)
}
