// Package sessions issues and validates the tokens of the Redfish SessionService.
package sessions

import (
	"errors"
	"time"

	"github.com/rackhd/redfish-gateway/redfish/internal/entity"
)

var (
	// ErrSessionNotFound is returned for an unknown or expired session.
	ErrSessionNotFound = errors.New("session not found")

	// ErrInvalidCredentials is returned when a login does not match the admin account.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned for a token that is malformed, forged, expired or revoked.
	ErrInvalidToken = errors.New("invalid token")
)

// Store keeps live sessions. Entries expire after ttl of inactivity.
type Store interface {
	Put(session *entity.Session, ttl time.Duration)
	Get(id string) (*entity.Session, error)
	Delete(id string) error
	List() []*entity.Session
}
