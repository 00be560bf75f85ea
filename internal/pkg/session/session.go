// Package session implements server-side sessions. The browser carries only
// an opaque token in a cookie; all session state lives in a shared store
// keyed by a keyed hash of that token, so a leaked store dump cannot be
// replayed as cookies.
package session

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when no session exists for a token.
var ErrNotFound = errors.New("session not found")

// CookieName is the name of the session cookie.
const CookieName = "travelreg_session"

// Kind discriminates which flow a pending challenge belongs to.
type Kind string

const (
	// KindSignup marks a pending signup verification.
	KindSignup Kind = "signup"
	// KindLogin marks a pending login verification.
	KindLogin Kind = "login"
)

// Pending captures an in-flight verification challenge. It mirrors the
// request that started the flow so the verify step needs no extra input
// beyond the code.
type Pending struct {
	Kind     Kind   `json:"kind"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email"`
}

// Auth identifies the authenticated account bound to a session.
type Auth struct {
	AccountID int64  `json:"account_id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
}

// State is the full server-side session payload.
type State struct {
	Pending *Pending `json:"pending,omitempty"`
	Auth    *Auth    `json:"auth,omitempty"`
}

// Store persists session state keyed by the raw cookie token.
type Store interface {
	// Load returns the state for token, or ErrNotFound.
	Load(ctx context.Context, token string) (*State, error)

	// Save writes the state for token with the given lifetime.
	Save(ctx context.Context, token string, state *State, ttl time.Duration) error

	// Delete removes the state for token. Deleting a missing session is not
	// an error.
	Delete(ctx context.Context, token string) error
}

type contextKey int

const (
	tokenKey contextKey = iota
	authKey
)

// SetToken stores the raw session token in the context.
func SetToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// GetToken returns the raw session token from the context, if any.
func GetToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	return token, ok
}

// SetAuth stores the authenticated identity in the context.
func SetAuth(ctx context.Context, auth Auth) context.Context {
	return context.WithValue(ctx, authKey, auth)
}

// GetAuth returns the authenticated identity from the context, if any.
func GetAuth(ctx context.Context) (Auth, bool) {
	auth, ok := ctx.Value(authKey).(Auth)
	return auth, ok
}
