package domain

import "time"

// User is a registered account. PasswordHash is a bcrypt-encoded string and
// must never cross the HTTP boundary; response shapes in internal/http pick
// the public fields explicitly.
type User struct {
	ID           string
	Email        string // lower-cased, trimmed; unique login handle
	PasswordHash string
	Name         string
	Bio          string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
