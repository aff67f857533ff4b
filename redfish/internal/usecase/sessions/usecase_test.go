package sessions_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rackhd/redfish-gateway/pkg/logger"
	store "github.com/rackhd/redfish-gateway/redfish/internal/infrastructure/sessions"
	"github.com/rackhd/redfish-gateway/redfish/internal/usecase/sessions"
)

func newUseCase() *sessions.UseCase {
	return sessions.New(store.NewMemory(time.Minute), logger.New("error"), sessions.Options{
		AdminUsername: "admin",
		AdminPassword: "secret",
		JWTKey:        "test-key",
	})
}

func TestCreate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		user     string
		password string
		wantErr  error
	}{
		{name: "valid", user: "admin", password: "secret"},
		{name: "wrong password", user: "admin", password: "nope", wantErr: sessions.ErrInvalidCredentials},
		{name: "wrong user", user: "root", password: "secret", wantErr: sessions.ErrInvalidCredentials},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			uc := newUseCase()

			s, err := uc.Create(tc.user, tc.password, "10.0.0.1", "curl")
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, s.ID)
			assert.NotEmpty(t, s.Token)
			assert.Equal(t, sessions.DefaultTimeout, uc.Timeout())
		})
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	uc := newUseCase()

	s, err := uc.Create("admin", "secret", "", "")
	require.NoError(t, err)

	got, err := uc.Validate(s.Token)
	require.NoError(t, err)
	assert.Equal(t, s.ID, got.ID)

	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{ID: s.ID}).SignedString([]byte("other-key"))
	require.NoError(t, err)

	_, err = uc.Validate(forged)
	assert.ErrorIs(t, err, sessions.ErrInvalidToken)

	_, err = uc.Validate("not-a-token")
	assert.ErrorIs(t, err, sessions.ErrInvalidToken)

	require.NoError(t, uc.Delete(s.ID))

	_, err = uc.Validate(s.Token)
	assert.ErrorIs(t, err, sessions.ErrInvalidToken)
}

func TestList(t *testing.T) {
	t.Parallel()

	uc := newUseCase()

	first, err := uc.Create("admin", "secret", "", "")
	require.NoError(t, err)

	second, err := uc.Create("admin", "secret", "", "")
	require.NoError(t, err)

	list := uc.List()
	require.Len(t, list, 2)
	assert.ElementsMatch(t, []string{first.ID, second.ID}, []string{list[0].ID, list[1].ID})

	_, err = uc.Get("missing")
	assert.ErrorIs(t, err, sessions.ErrSessionNotFound)
	assert.ErrorIs(t, uc.Delete("missing"), sessions.ErrSessionNotFound)
}
