package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestWithCookie(c *http.Cookie) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if c != nil {
		r.AddCookie(c)
	}
	return r
}

func TestCookieCodec_RoundTrip(t *testing.T) {
	cc := NewCookieCodec("secret", time.Hour)

	c, err := cc.Issue("sid-1")
	require.NoError(t, err)
	assert.Equal(t, CookieName, c.Name)
	assert.True(t, c.HttpOnly)

	sid, ok := cc.Decode(requestWithCookie(c))
	require.True(t, ok)
	assert.Equal(t, "sid-1", sid)
}

func TestCookieCodec_RejectsBadCookies(t *testing.T) {
	cc := NewCookieCodec("secret", time.Hour)

	t.Run("missing cookie", func(t *testing.T) {
		_, ok := cc.Decode(requestWithCookie(nil))
		assert.False(t, ok)
	})

	t.Run("tampered value", func(t *testing.T) {
		c, err := cc.Issue("sid-1")
		require.NoError(t, err)
		c.Value += "x"
		_, ok := cc.Decode(requestWithCookie(c))
		assert.False(t, ok)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewCookieCodec("other", time.Hour)
		c, err := other.Issue("sid-1")
		require.NoError(t, err)
		_, ok := cc.Decode(requestWithCookie(c))
		assert.False(t, ok)
	})

	t.Run("expired", func(t *testing.T) {
		short := NewCookieCodec("secret", -time.Minute)
		c, err := short.Issue("sid-1")
		require.NoError(t, err)
		_, ok := short.Decode(requestWithCookie(c))
		assert.False(t, ok)
	})

	t.Run("garbage value", func(t *testing.T) {
		_, ok := cc.Decode(requestWithCookie(&http.Cookie{Name: CookieName, Value: "garbage"}))
		assert.False(t, ok)
	})
}

func TestCookieCodec_Expire(t *testing.T) {
	c := NewCookieCodec("secret", time.Hour).Expire()
	assert.Equal(t, CookieName, c.Name)
	assert.Empty(t, c.Value)
	assert.Negative(t, c.MaxAge)
}
