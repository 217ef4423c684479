package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/taskvault/taskvault/internal/domain"
	"github.com/taskvault/taskvault/internal/store"
	"github.com/taskvault/taskvault/pkg/cryptox"
	"github.com/taskvault/taskvault/pkg/idx"
	"github.com/taskvault/taskvault/pkg/jwtx"
)

// MinPasswordLength is the weakest secret registration accepts.
const MinPasswordLength = 6

var (
	ErrMissingCredentials = errors.New("auth: email and password are required")
	ErrWeakPassword       = errors.New("auth: password must be at least 6 characters")
	ErrDuplicateUser      = errors.New("auth: user already exists")

	// ErrInvalidCredentials covers both unknown email and wrong password.
	// The two cases are never distinguished, so a caller cannot probe which
	// emails are registered.
	ErrInvalidCredentials = errors.New("auth: invalid email or password")
)

// AuthService owns registration, credential verification and token
// issuance. The store and signer are injected so tests can substitute them.
type AuthService struct {
	Store      store.Store
	Signer     jwtx.Signer
	Issuer     string
	AccessTTL  time.Duration
	BcryptCost int
}

// NormalizeEmail trims and lower-cases a login handle. Uniqueness is
// enforced against the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new user with an empty profile. The plaintext password
// only lives long enough to be hashed.
func (s *AuthService) Register(ctx context.Context, email, password string) (domain.User, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return domain.User{}, ErrMissingCredentials
	}
	if len(password) < MinPasswordLength {
		return domain.User{}, ErrWeakPassword
	}

	_, err := s.Store.Users().GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		return domain.User{}, ErrDuplicateUser
	case !errors.Is(err, store.ErrNotFound):
		return domain.User{}, fmt.Errorf("auth: lookup existing user: %w", err)
	}

	hash, err := cryptox.HashPassword(password, s.BcryptCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("auth: hash password: %w", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		// Unique index closes the race between the lookup above and the insert.
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrDuplicateUser
		}
		return domain.User{}, fmt.Errorf("auth: create user: %w", err)
	}

	return user, nil
}

// Verify checks a claimed identity against the credential store. Read-only.
func (s *AuthService) Verify(ctx context.Context, email, password string) (domain.User, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return domain.User{}, ErrMissingCredentials
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, fmt.Errorf("auth: lookup user: %w", err)
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrMismatch) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, fmt.Errorf("auth: verify password: %w", err)
	}

	return user, nil
}

// Login verifies credentials and mints a session token with an absolute
// expiry exactly AccessTTL after issuance.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.Session, error) {
	user, err := s.Verify(ctx, email, password)
	if err != nil {
		return domain.Session{}, err
	}

	now := time.Now().UTC()
	claims := jwtx.NewAccessClaims(user.ID, user.Email, s.Issuer, s.AccessTTL, now)

	token, err := s.Signer.Sign(claims)
	if err != nil {
		return domain.Session{}, fmt.Errorf("auth: sign token: %w", err)
	}

	return domain.Session{
		Token:     token,
		ExpiresAt: now.Add(s.AccessTTL),
		User:      user,
	}, nil
}
