// Package entity holds the gateway's own state, as opposed to the RackHD inventory.
package entity

import "time"

// Session is an authenticated Redfish login. Token is the signed JWT
// returned to the client as X-Auth-Token.
type Session struct {
	ID        string
	Username  string
	Token     string
	ClientIP  string
	UserAgent string
	Created   time.Time
	LastUsed  time.Time
}
