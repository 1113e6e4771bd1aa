// Package token inspects the opaque bearer token for display purposes only.
// The backend stays the authority on validity: a 401 response, not a local
// expiry check, is what tears a session down.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrNotAJWT = errors.New("token is not a parseable JWT")

// Claims is the informational slice of a session token.
type Claims struct {
	Username  string
	Role      string
	ExpiresAt time.Time // zero when the token carries no exp claim
}

// Expired reports whether the token's exp claim lies in the past. Always
// false for tokens without one.
func (c *Claims) Expired() bool {
	return !c.ExpiresAt.IsZero() && c.ExpiresAt.Before(time.Now())
}

// Peek decodes the token without verifying its signature — the client does
// not hold the signing secret and never needs to.
func Peek(raw string) (*Claims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return nil, ErrNotAJWT
	}

	c := &Claims{}
	if username, ok := claims["username"].(string); ok {
		c.Username = username
	}
	if role, ok := claims["role"].(string); ok {
		c.Role = role
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		c.ExpiresAt = exp.Time
	}
	return c, nil
}
