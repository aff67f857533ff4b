package sessions

import (
	"crypto/subtle"
	"fmt"
	"sort"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/rackhd/redfish-gateway/pkg/logger"
	"github.com/rackhd/redfish-gateway/redfish/internal/entity"
)

// DefaultTimeout is the idle timeout applied when none is configured.
const DefaultTimeout = 30 * time.Minute

// Options -.
type Options struct {
	AdminUsername string
	AdminPassword string
	JWTKey        string
	Timeout       time.Duration
}

// UseCase -.
type UseCase struct {
	store Store
	log   logger.Interface
	opts  Options
	now   func() time.Time
}

// New -.
func New(store Store, log logger.Interface, opts Options) *UseCase {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	return &UseCase{store: store, log: log, opts: opts, now: time.Now}
}

// Timeout -.
func (uc *UseCase) Timeout() time.Duration {
	return uc.opts.Timeout
}

// Create logs in with the admin credentials and returns a session carrying its token.
func (uc *UseCase) Create(username, password, clientIP, userAgent string) (*entity.Session, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(uc.opts.AdminUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(uc.opts.AdminPassword)) == 1

	if !userOK || !passOK {
		uc.log.Warn("session login rejected", "user", username, "client", clientIP)

		return nil, ErrInvalidCredentials
	}

	now := uc.now()
	id := uuid.New().String()

	claims := jwt.RegisteredClaims{
		ID:        id,
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(uc.opts.JWTKey))
	if err != nil {
		return nil, fmt.Errorf("sessions - sign token: %w", err)
	}

	s := &entity.Session{
		ID:        id,
		Username:  username,
		Token:     token,
		ClientIP:  clientIP,
		UserAgent: userAgent,
		Created:   now,
		LastUsed:  now,
	}

	uc.store.Put(s, uc.opts.Timeout)
	uc.log.Info("session created", "session", id, "user", username)

	return s, nil
}

// Validate checks the token signature and that its session is still live,
// extending the session's idle timeout.
func (uc *UseCase) Validate(token string) (*entity.Session, error) {
	claims := &jwt.RegisteredClaims{}

	parsed, err := jwt.ParseWithClaims(token, claims, func(_ *jwt.Token) (interface{}, error) {
		return []byte(uc.opts.JWTKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid || claims.ID == "" {
		return nil, ErrInvalidToken
	}

	s, err := uc.store.Get(claims.ID)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if subtle.ConstantTimeCompare([]byte(s.Token), []byte(token)) != 1 {
		return nil, ErrInvalidToken
	}

	s.LastUsed = uc.now()
	uc.store.Put(s, uc.opts.Timeout)

	return s, nil
}

// Get -.
func (uc *UseCase) Get(id string) (*entity.Session, error) {
	return uc.store.Get(id)
}

// Delete logs a session out.
func (uc *UseCase) Delete(id string) error {
	if err := uc.store.Delete(id); err != nil {
		return err
	}

	uc.log.Info("session deleted", "session", id)

	return nil
}

// List returns live sessions, oldest first.
func (uc *UseCase) List() []*entity.Session {
	list := uc.store.List()

	sort.Slice(list, func(i, j int) bool {
		return list[i].Created.Before(list[j].Created)
	})

	return list
}
