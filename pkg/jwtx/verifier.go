package jwtx

import "errors"

// Verifier validates a JWT and gives you back the claims if it's legit.
// Expiry is validated separately via Claims.ValidateExpiry so callers can
// tell a forged token from a stale one when they need to.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// Signer is our interface for anything that can sign access tokens.
type Signer interface {
	Alg() string
	Sign(Claims) (string, error)
}

var (
	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrAlgMismatch = errors.New("jwtx: algorithm mismatch")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")

	ErrIssuer       = errors.New("jwtx: issuer mismatch")
	ErrExpired      = errors.New("jwtx: token expired")
	ErrInvalidClaim = errors.New("jwtx: invalid claims")
)
