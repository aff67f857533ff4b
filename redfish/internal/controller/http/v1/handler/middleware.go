package v1

import (
	"crypto/subtle"
	"encoding/base64"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/rackhd/redfish-gateway/redfish/internal/usecase/sessions"
)

const (
	expectedCredentialParts = 2

	headerAuthToken = "X-Auth-Token"
	userKey         = "user"
)

// AuthOptions configures Authenticate.
type AuthOptions struct {
	Username string
	Password string
	JWTKey   string
	// Verifier checks bearer tokens against an OIDC issuer. Nil selects HS256
	// with JWTKey, and bearer auth is refused when both are unset.
	Verifier *oidc.IDTokenVerifier
	Sessions *sessions.UseCase
}

// Authenticate accepts a SessionService token, HTTP Basic admin credentials
// or a bearer JWT, and rejects anything else with 401.
func Authenticate(opts AuthOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := opts.identify(c)
		if !ok {
			UnauthorizedError(c)

			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

func (o *AuthOptions) identify(c *gin.Context) (string, bool) {
	if token := c.GetHeader(headerAuthToken); token != "" && o.Sessions != nil {
		s, err := o.Sessions.Validate(token)
		if err != nil {
			return "", false
		}

		return s.Username, true
	}

	header := c.GetHeader("Authorization")

	switch {
	case strings.HasPrefix(header, "Basic "):
		return o.basic(strings.TrimPrefix(header, "Basic "))
	case strings.HasPrefix(header, "Bearer "):
		return o.bearer(c, strings.TrimPrefix(header, "Bearer "))
	default:
		return "", false
	}
}

func (o *AuthOptions) basic(credentials string) (string, bool) {
	decoded, err := base64.StdEncoding.DecodeString(credentials)
	if err != nil {
		return "", false
	}

	parts := strings.SplitN(string(decoded), ":", expectedCredentialParts)
	if len(parts) != expectedCredentialParts {
		return "", false
	}

	username, password := parts[0], parts[1]

	usernameMatch := subtle.ConstantTimeCompare([]byte(username), []byte(o.Username)) == 1
	passwordMatch := subtle.ConstantTimeCompare([]byte(password), []byte(o.Password)) == 1

	return username, usernameMatch && passwordMatch
}

func (o *AuthOptions) bearer(c *gin.Context, token string) (string, bool) {
	if token == "" {
		return "", false
	}

	if o.Verifier != nil {
		idToken, err := o.Verifier.Verify(c.Request.Context(), token)
		if err != nil {
			return "", false
		}

		return idToken.Subject, true
	}

	if o.JWTKey == "" {
		return "", false
	}

	claims := &jwt.RegisteredClaims{}

	parsed, err := jwt.ParseWithClaims(token, claims, func(_ *jwt.Token) (interface{}, error) {
		return []byte(o.JWTKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return "", false
	}

	return claims.Subject, true
}
