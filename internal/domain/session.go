package domain

import "time"

// Session is what a successful login returns: the signed bearer token and
// the user it was minted for. Nothing here is persisted server-side; the
// token is self-contained and expires on its own, so "logout" is purely a
// client-side discard.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      User
}
