package secrets

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/device-management-toolkit/go-wsman-messages/v2/pkg/security"
	"github.com/hashicorp/vault/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeKV serves the subset of the KV v2 HTTP API the client uses.
type fakeKV struct {
	mu      sync.Mutex
	data    map[string]interface{}
	version int
	path    string
}

func (f *fakeKV) metadata() map[string]interface{} {
	return map[string]interface{}{
		"version":       f.version,
		"created_time":  time.Now().UTC().Format(time.RFC3339Nano),
		"deletion_time": "",
		"destroyed":     false,
	}
}

func (f *fakeKV) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if r.URL.Path != f.path {
		http.NotFound(w, r)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	switch r.Method {
	case http.MethodGet:
		if f.data == nil {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"errors":[]}`))

			return
		}

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{"data": f.data, "metadata": f.metadata()},
		})
	case http.MethodPut, http.MethodPost:
		var body struct {
			Data map[string]interface{} `json:"data"`
		}

		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)

			return
		}

		f.data = body.Data
		f.version++

		_ = json.NewEncoder(w).Encode(map[string]interface{}{"data": f.metadata()})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func newTestVault(t *testing.T, fake *fakeKV) *Vault {
	t.Helper()

	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	client, err := api.NewClient(&api.Config{Address: srv.URL})
	require.NoError(t, err)

	client.SetToken("test-token")

	return NewVaultWithClient(client, "kv/data/gateway")
}

func TestVault_RoundTrip(t *testing.T) {
	t.Parallel()

	fake := &fakeKV{path: "/v1/kv/data/gateway"}
	v := newTestVault(t, fake)

	_, err := v.GetKeyValue("default-security-key")
	require.ErrorIs(t, err, security.ErrKeyNotFound)

	require.NoError(t, v.SetKeyValue("default-security-key", "k1"))
	require.NoError(t, v.SetKeyValue("other", "o1"))

	got, err := v.GetKeyValue("default-security-key")
	require.NoError(t, err)
	assert.Equal(t, "k1", got)

	require.NoError(t, v.DeleteKeyValue("default-security-key"))

	_, err = v.GetKeyValue("default-security-key")
	require.ErrorIs(t, err, security.ErrKeyNotFound)

	got, err = v.GetKeyValue("other")
	require.NoError(t, err)
	assert.Equal(t, "o1", got)

	require.ErrorIs(t, v.DeleteKeyValue("missing"), security.ErrKeyNotFound)
}

func TestSplitPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path       string
		wantMount  string
		wantSecret string
	}{
		{path: "secret/data/rackhd", wantMount: "secret", wantSecret: "rackhd"},
		{path: "/kv/data/team/gateway/", wantMount: "kv", wantSecret: "team/gateway"},
		{path: "kv/gateway", wantMount: "kv", wantSecret: "gateway"},
		{path: "kv", wantMount: "kv", wantSecret: defaultSecret},
		{path: "", wantMount: defaultMount, wantSecret: defaultSecret},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			t.Parallel()

			mount, secret := splitPath(tc.path)
			assert.Equal(t, tc.wantMount, mount)
			assert.Equal(t, tc.wantSecret, secret)
		})
	}
}
