package http

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/taskvault/taskvault/internal/domain"
	"github.com/taskvault/taskvault/internal/store"
	"github.com/taskvault/taskvault/pkg/httpx"
	"github.com/taskvault/taskvault/pkg/jwtx"
	"github.com/taskvault/taskvault/pkg/slogx"
)

type authCtxKey struct{}

// UserFromContext returns the live user record attached by AuthnMiddleware.
func UserFromContext(ctx context.Context) (domain.User, bool) {
	u, ok := ctx.Value(authCtxKey{}).(domain.User)
	return u, ok
}

// AuthnMiddleware is the access gate in front of every protected route.
// Status mapping is part of the API contract: missing bearer token is 401,
// a token that fails signature or expiry checks is 403, and a genuine token
// whose user has since been deleted is 404.
//
// On success the middleware re-resolves the user from the store rather than
// trusting the token's snapshot, so profile edits show up on the next
// request and a deleted account is locked out before its token expires.
func AuthnMiddleware(v jwtx.Verifier, users store.Users) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				httpx.WriteMessage(w, http.StatusUnauthorized, "No token provided")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("token verification failed", "err", err)
				httpx.WriteMessage(w, http.StatusForbidden, "Invalid or expired token")
				return
			}

			if err := claims.ValidateExpiry(time.Now().UTC()); err != nil {
				httpx.WriteMessage(w, http.StatusForbidden, "Invalid or expired token")
				return
			}

			user, err := users.GetUserByID(ctx, claims.Subject)
			if err != nil {
				if errors.Is(err, store.ErrNotFound) {
					httpx.WriteMessage(w, http.StatusNotFound, "User not found")
					return
				}
				log.Error("resolving authenticated user failed", "err", err)
				httpx.WriteMessage(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			ctx = context.WithValue(ctx, authCtxKey{}, user)
			ctx = context.WithValue(ctx, httpx.CtxKeyUserID, user.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
