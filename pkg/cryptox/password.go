package cryptox

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt cost factor used when no explicit cost is
// configured. Cost 10 keeps login latency tolerable while staying slow
// enough to resist offline brute force.
const DefaultCost = 10

var ErrMismatch = errors.New("cryptox: password does not match")

// NormalizeCost clamps a configured cost into bcrypt's supported range,
// falling back to DefaultCost for zero/negative values. The cost is encoded
// inside every hash bcrypt produces, so tuning it later never invalidates
// hashes already stored.
func NormalizeCost(cost int) int {
	if cost <= 0 {
		return DefaultCost
	}
	if cost < bcrypt.MinCost {
		return bcrypt.MinCost
	}
	if cost > bcrypt.MaxCost {
		return bcrypt.MaxCost
	}
	return cost
}

// HashPassword derives a salted bcrypt hash of the plaintext. The returned
// string is self-describing (algorithm version, cost and salt are embedded).
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), NormalizeCost(cost))
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword compares a plaintext password against a stored bcrypt hash.
// Returns ErrMismatch when the password is wrong; any other error means the
// stored hash itself is unusable.
func VerifyPassword(password, encodedHash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	return err
}
