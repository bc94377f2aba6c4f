// Package session holds the client's belief about the current operator: a
// bearer token for the upstream API and the user it was validated for.
// The session record lives server-side (Redis, or memory when Redis is
// unavailable); the browser only carries a signed cookie with the record's
// id. The lifecycle is ANONYMOUS → Login → AUTHENTICATED → Logout or
// token rejection → ANONYMOUS, with no other states.
package session

import (
	"context"

	"github.com/rmonterol/tour-admin/internal/model"
)

// Session pairs the upstream bearer token with the validated user.
// Invariant: User != nil iff Token was accepted by the upstream, either at
// login or by a /auth/me validation during restore.
type Session struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

// Authenticated reports whether the session belongs to a validated user.
func (s Session) Authenticated() bool {
	return s.Token != "" && s.User != nil
}

type ctxKey struct{}

// NewContext stashes the restored session into ctx so downstream readers
// (route guard, gateway client) can consult it without another lookup.
func NewContext(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the session restored for this request, or the zero
// (anonymous) session when none was.
func FromContext(ctx context.Context) Session {
	if s, ok := ctx.Value(ctxKey{}).(Session); ok {
		return s
	}
	return Session{}
}

// Token is an api.TokenSource reading the bearer token out of ctx.
func Token(ctx context.Context) string {
	return FromContext(ctx).Token
}
