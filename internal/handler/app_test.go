package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmonterol/tour-admin/internal/api"
	"github.com/rmonterol/tour-admin/internal/config"
	"github.com/rmonterol/tour-admin/internal/handler"
	mw "github.com/rmonterol/tour-admin/internal/middleware"
	"github.com/rmonterol/tour-admin/internal/router"
	"github.com/rmonterol/tour-admin/internal/session"
	"github.com/rmonterol/tour-admin/internal/view"
)

// fakeUpstream is a minimal stand-in for the booking API, just enough
// endpoints for the flows under test. It records the Authorization header
// of the last /customers request.
type fakeUpstream struct {
	lastAuth string
}

func (f *fakeUpstream) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var creds struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		json.NewDecoder(r.Body).Decode(&creds)
		if creds.Password != "correcta" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"Credenciales incorrectas"}`))
			return
		}
		w.Write([]byte(`{"token":"t1","user":{"_id":"u1","name":"Ana","email":"` + creds.Email + `"}}`))
	})

	mux.HandleFunc("GET /customers", func(w http.ResponseWriter, r *http.Request) {
		f.lastAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"status":"success","results":1,"pages":1,"data":{"customers":[{"_id":"c1","firstName":"María","lastName":"Pérez","email":"maria@example.com"}]}}`))
	})

	mux.HandleFunc("DELETE /customers/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") == "gone" {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message":"Customer not found"}`))
			return
		}
		w.Write([]byte(`{"status":"success"}`))
	})

	mux.HandleFunc("GET /tours/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != "t1" {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message":"Tour not found"}`))
			return
		}
		w.Write([]byte(`{"_id":"t1","name":"Valle Sagrado","price":50,"isActive":true,
			"availableDates":["2030-05-01T00:00:00Z","2030-05-08T00:00:00Z"]}`))
	})

	return mux
}

// newApp wires the full stack (renderer, session middleware, router)
// against the fake upstream, the way main does.
func newApp(t *testing.T, upstream *httptest.Server) *echo.Echo {
	t.Helper()

	client, err := api.New(upstream.URL, time.Second, session.Token)
	require.NoError(t, err)

	sessions := session.NewManager(
		session.NewMemoryStore(time.Hour),
		session.NewCookieCodec("test-secret", time.Hour),
		client,
	)

	renderer, err := view.New("../../web/templates")
	require.NoError(t, err)

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.Use(mw.WithSession(sessions))

	router.Register(e,
		handler.NewAuthHandler(client, sessions),
		handler.NewCustomerHandler(client, 5),
		handler.NewTourHandler(client, 5),
		handler.NewReservationHandler(client, 5),
		mw.LoginRateLimit(config.RateLimitConfig{}, nil),
	)
	return e
}

func postForm(e *echo.Echo, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func get(e *echo.Echo, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == session.CookieName && c.Value != "" {
			return c
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

func login(t *testing.T, e *echo.Echo) *http.Cookie {
	t.Helper()
	rec := postForm(e, "/login", url.Values{"email": {"ana@example.com"}, "password": {"correcta"}})
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/customers", rec.Header().Get("Location"))
	return sessionCookie(t, rec)
}

func TestLoginFlow(t *testing.T) {
	up := &fakeUpstream{}
	srv := httptest.NewServer(up.handler())
	defer srv.Close()
	e := newApp(t, srv)

	cookie := login(t, e)

	// The list request must reuse the token handed out at login.
	rec := get(e, "/customers", cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "María")
	assert.Equal(t, "Bearer t1", up.lastAuth)
}

func TestLoginRejected(t *testing.T) {
	up := &fakeUpstream{}
	srv := httptest.NewServer(up.handler())
	defer srv.Close()
	e := newApp(t, srv)

	rec := postForm(e, "/login", url.Values{"email": {"ana@example.com"}, "password": {"mala"}})

	// The form re-renders with the upstream's message; no session opens.
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Credenciales incorrectas")
	for _, c := range rec.Result().Cookies() {
		assert.NotEqual(t, session.CookieName, c.Name)
	}
}

func TestGuardsThroughFullStack(t *testing.T) {
	up := &fakeUpstream{}
	srv := httptest.NewServer(up.handler())
	defer srv.Close()
	e := newApp(t, srv)

	t.Run("anonymous cannot reach customers", func(t *testing.T) {
		rec := get(e, "/customers")
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get("Location"))
	})

	t.Run("authenticated cannot reach login", func(t *testing.T) {
		rec := get(e, "/login", login(t, e))
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))
	})

	t.Run("unknown path goes home", func(t *testing.T) {
		rec := get(e, "/no-such-page")
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))
	})
}

func TestDeleteMissingCustomerFlashesError(t *testing.T) {
	up := &fakeUpstream{}
	srv := httptest.NewServer(up.handler())
	defer srv.Close()
	e := newApp(t, srv)
	cookie := login(t, e)

	rec := postForm(e, "/customers/gone/delete", nil, cookie)
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/customers", rec.Header().Get("Location"))

	var flash *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "tour_admin_flash" {
			flash = c
		}
	}
	require.NotNil(t, flash, "expected a flash cookie")
	raw, err := url.QueryUnescape(flash.Value)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(raw, "error|"), "flash %q should be an error", raw)
}

func TestDeriveEndpoint(t *testing.T) {
	up := &fakeUpstream{}
	srv := httptest.NewServer(up.handler())
	defer srv.Close()
	e := newApp(t, srv)
	cookie := login(t, e)

	t.Run("tour and people", func(t *testing.T) {
		rec := get(e, "/reservations/derive?tour=t1&people=3&seq=7", cookie)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Dates []string `json:"dates"`
			Price float64  `json:"price"`
			Seq   int      `json:"seq"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, []string{"2030-05-01", "2030-05-08"}, resp.Dates)
		assert.Equal(t, 150.0, resp.Price)
		assert.Equal(t, 7, resp.Seq)
	})

	t.Run("no tour selected", func(t *testing.T) {
		rec := get(e, "/reservations/derive?people=2&seq=1", cookie)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Dates []string `json:"dates"`
			Price float64  `json:"price"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Empty(t, resp.Dates)
		assert.Zero(t, resp.Price)
	})

	t.Run("unknown tour", func(t *testing.T) {
		rec := get(e, "/reservations/derive?tour=nope&people=1&seq=2", cookie)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
