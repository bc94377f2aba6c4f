package session

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the single fixed key under which the browser keeps its
// session reference. Nothing else is persisted client-side.
const CookieName = "tour_admin_session"

// CookieCodec signs and verifies the session cookie. The cookie value is
// an HS256 JWT whose subject is the server-side record id, so a tampered
// or forged cookie reads as "no session" instead of leaking someone
// else's record.
type CookieCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewCookieCodec builds a codec from the configured signing secret and
// session TTL (the cookie expires together with the record).
func NewCookieCodec(secret string, ttl time.Duration) *CookieCodec {
	return &CookieCodec{secret: []byte(secret), ttl: ttl}
}

// Issue signs a cookie referencing the given session record id.
func (cc *CookieCodec) Issue(sessionID string) (*http.Cookie, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub": sessionID,
		"exp": now.Add(cc.ttl).Unix(),
		"iat": now.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(cc.secret)
	if err != nil {
		return nil, err
	}
	return &http.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		Expires:  now.Add(cc.ttl),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}, nil
}

// Decode extracts the session record id from the request's cookie. Any
// problem at all, missing cookie, bad signature, wrong signing method,
// expiry, reads as (_, false): the request is simply anonymous.
func (cc *CookieCodec) Decode(r *http.Request) (string, bool) {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return "", false
	}
	tok, err := jwt.Parse(c.Value, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return cc.secret, nil
	})
	if err != nil || !tok.Valid {
		return "", false
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}
	sid, _ := claims["sub"].(string)
	return sid, sid != ""
}

// Expire returns a cookie that clears the browser's session reference.
func (cc *CookieCodec) Expire() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
