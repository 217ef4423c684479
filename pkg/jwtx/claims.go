package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultAccessTokenTTL is the lifetime of an access token. Tokens are not
// revocable server-side, so the window is kept to an hour; a client holds
// the token for the session and simply discards it on logout.
const DefaultAccessTokenTTL = time.Hour

// Claims are the access-token claims. The subject is the user id; email is
// carried as a convenience for clients but the gate always re-resolves the
// live user record, never trusts this snapshot.
type Claims struct {
	jwt.RegisteredClaims

	// Email the user logged in with, lower-cased.
	Email string `json:"email,omitempty"`
}

// NewAccessClaims builds minimally-correct claims for a login session.
// Expiry is pinned at exactly now+ttl.
func NewAccessClaims(subject, email, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email: email,
	}
}

// ValidateIssuer checks if the issuer matches expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil // nothing to enforce
	}

	if c.Issuer != expected {
		return ErrIssuer
	}

	return nil
}

// ValidateExpiry ensures the token hasn't expired (exp). A token issued at T
// is good on [T, T+ttl) and rejected at or after T+ttl.
func (c *Claims) ValidateExpiry(now time.Time) error {
	if c.ExpiresAt == nil {
		return ErrInvalidClaim
	}

	if !now.Before(c.ExpiresAt.Time) {
		return ErrExpired
	}

	return nil
}
