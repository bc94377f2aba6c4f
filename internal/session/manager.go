package session

import (
	"context"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/rmonterol/tour-admin/internal/model"
)

// Validator checks a bearer token against the upstream API and returns the
// user it belongs to. The gateway client satisfies it with Me; it reads
// the token from the context this package stashes it into.
type Validator interface {
	Me(ctx context.Context) (model.User, error)
}

// Manager owns the session lifecycle. It is the only writer of session
// state; everything else reads through the context helpers.
type Manager struct {
	store Store
	codec *CookieCodec
	val   Validator
}

// NewManager wires a store, a cookie codec and a token validator.
func NewManager(store Store, codec *CookieCodec, val Validator) *Manager {
	return &Manager{store: store, codec: codec, val: val}
}

// Restore resolves the request's cookie into a session. It runs once per
// request, before routing. The possible outcomes:
//
//   - no/invalid cookie, or no record: anonymous session.
//   - record with a validated user: that session, no upstream call.
//   - record holding a token but no user yet: the token is validated
//     against /auth/me exactly once; success caches the user back into
//     the record, failure discards the record. A rejected token is
//     recovered silently, the caller only ever sees "anonymous".
//
// Restore never returns an error; a broken session store degrades to
// anonymous so public pages keep working.
func (m *Manager) Restore(ctx context.Context, r *http.Request) Session {
	sid, ok := m.codec.Decode(r)
	if !ok {
		return Session{}
	}
	s, err := m.store.Get(ctx, sid)
	if err != nil {
		if err != ErrNotFound {
			log.Printf("session: restore %s: %v", sid, err)
		}
		return Session{}
	}
	if s.Token == "" {
		_ = m.store.Delete(ctx, sid)
		return Session{}
	}
	if s.User != nil {
		return s
	}
	// Token present but never validated: ask the upstream who it belongs
	// to. The token travels via the context so the gateway client's
	// request interceptor picks it up.
	user, err := m.val.Me(NewContext(ctx, s))
	if err != nil {
		_ = m.store.Delete(ctx, sid)
		return Session{}
	}
	s.User = &user
	if err := m.store.Put(ctx, sid, s); err != nil {
		log.Printf("session: cache user for %s: %v", sid, err)
	}
	return s
}

// Login persists a freshly issued token and its validated user under a new
// session id and returns the cookie to set. The in-memory session is
// authenticated from this point on; the caller attaches the cookie and
// redirects.
func (m *Manager) Login(ctx context.Context, token string, user model.User) (*http.Cookie, error) {
	sid := uuid.NewString()
	if err := m.store.Put(ctx, sid, Session{Token: token, User: &user}); err != nil {
		return nil, err
	}
	return m.codec.Issue(sid)
}

// Logout deletes the record and returns the expiring cookie. Store errors
// are logged and swallowed: whether or not the delete lands, the browser
// loses its cookie and the caller performs the same redirect.
func (m *Manager) Logout(ctx context.Context, r *http.Request) *http.Cookie {
	if sid, ok := m.codec.Decode(r); ok {
		if err := m.store.Delete(ctx, sid); err != nil {
			log.Printf("session: logout %s: %v", sid, err)
		}
	}
	return m.codec.Expire()
}
