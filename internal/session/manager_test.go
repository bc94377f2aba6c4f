package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmonterol/tour-admin/internal/model"
)

// stubValidator records the token it saw and returns a fixed outcome.
type stubValidator struct {
	user  model.User
	err   error
	calls int
	seen  string
}

func (v *stubValidator) Me(ctx context.Context) (model.User, error) {
	v.calls++
	v.seen = Token(ctx)
	if v.err != nil {
		return model.User{}, v.err
	}
	return v.user, nil
}

func newTestManager(val *stubValidator) (*Manager, *MemoryStore) {
	store := NewMemoryStore(time.Hour)
	return NewManager(store, NewCookieCodec("secret", time.Hour), val), store
}

func TestManager_LoginThenRestore(t *testing.T) {
	val := &stubValidator{}
	m, _ := newTestManager(val)
	user := model.User{ID: "u1", Name: "Ana", Email: "ana@example.com"}

	cookie, err := m.Login(context.Background(), "tok-1", user)
	require.NoError(t, err)

	s := m.Restore(context.Background(), requestWithCookie(cookie))
	require.True(t, s.Authenticated())
	assert.Equal(t, "tok-1", s.Token)
	assert.Equal(t, user, *s.User)

	// The user was validated at login; restore must not hit the upstream.
	assert.Zero(t, val.calls)
}

func TestManager_RestoreWithoutCookie(t *testing.T) {
	m, _ := newTestManager(&stubValidator{})
	s := m.Restore(context.Background(), requestWithCookie(nil))
	assert.False(t, s.Authenticated())
}

func TestManager_RestoreValidatesPendingToken(t *testing.T) {
	val := &stubValidator{user: model.User{ID: "u1", Name: "Ana"}}
	m, store := newTestManager(val)

	// A record holding a token but no user yet, as left by an interrupted
	// login.
	require.NoError(t, store.Put(context.Background(), "sid-1", Session{Token: "tok-1"}))
	cookie, err := NewCookieCodec("secret", time.Hour).Issue("sid-1")
	require.NoError(t, err)

	s := m.Restore(context.Background(), requestWithCookie(cookie))
	require.True(t, s.Authenticated())
	assert.Equal(t, "u1", s.User.ID)
	assert.Equal(t, 1, val.calls)
	assert.Equal(t, "tok-1", val.seen, "validation call must carry the record's token")

	// The user is cached back; a second restore goes nowhere near the
	// upstream.
	s = m.Restore(context.Background(), requestWithCookie(cookie))
	require.True(t, s.Authenticated())
	assert.Equal(t, 1, val.calls)
}

func TestManager_RestoreDiscardsRejectedToken(t *testing.T) {
	val := &stubValidator{err: errors.New("401")}
	m, store := newTestManager(val)

	require.NoError(t, store.Put(context.Background(), "sid-1", Session{Token: "stale"}))
	cookie, err := NewCookieCodec("secret", time.Hour).Issue("sid-1")
	require.NoError(t, err)

	s := m.Restore(context.Background(), requestWithCookie(cookie))
	assert.False(t, s.Authenticated())

	_, err = store.Get(context.Background(), "sid-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestManager_Logout(t *testing.T) {
	m, _ := newTestManager(&stubValidator{})

	cookie, err := m.Login(context.Background(), "tok-1", model.User{ID: "u1"})
	require.NoError(t, err)

	expired := m.Logout(context.Background(), requestWithCookie(cookie))
	assert.Negative(t, expired.MaxAge)

	s := m.Restore(context.Background(), requestWithCookie(cookie))
	assert.False(t, s.Authenticated())

	// Logging out without a cookie still hands back the expiring cookie.
	expired = m.Logout(context.Background(), requestWithCookie(nil))
	assert.Negative(t, expired.MaxAge)
}

func TestMemoryStore_Expiry(t *testing.T) {
	store := NewMemoryStore(10 * time.Millisecond)
	require.NoError(t, store.Put(context.Background(), "sid-1", Session{Token: "t"}))

	s, err := store.Get(context.Background(), "sid-1")
	require.NoError(t, err)
	assert.Equal(t, "t", s.Token)

	time.Sleep(20 * time.Millisecond)
	_, err = store.Get(context.Background(), "sid-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionContext(t *testing.T) {
	assert.Empty(t, Token(context.Background()))

	ctx := NewContext(context.Background(), Session{Token: "tok-1", User: &model.User{ID: "u1"}})
	assert.Equal(t, "tok-1", Token(ctx))
	assert.True(t, FromContext(ctx).Authenticated())
}
