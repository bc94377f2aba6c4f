package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmonterol/tour-admin/internal/model"
	"github.com/rmonterol/tour-admin/internal/session"
)

func guardContext(t *testing.T, path string, authed bool) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authed {
		s := session.Session{Token: "tok", User: &model.User{ID: "u1"}}
		req = req.WithContext(session.NewContext(req.Context(), s))
	}
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func TestRequireAuth(t *testing.T) {
	t.Run("anonymous redirected to login", func(t *testing.T) {
		c, rec := guardContext(t, "/customers", false)
		require.NoError(t, RequireAuth(okHandler)(c))
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get("Location"))
	})

	t.Run("authenticated passes through", func(t *testing.T) {
		c, rec := guardContext(t, "/customers", true)
		require.NoError(t, RequireAuth(okHandler)(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ok", rec.Body.String())
	})
}

func TestRequireGuest(t *testing.T) {
	t.Run("authenticated redirected home", func(t *testing.T) {
		c, rec := guardContext(t, "/login", true)
		require.NoError(t, RequireGuest(okHandler)(c))
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))
	})

	t.Run("anonymous passes through", func(t *testing.T) {
		c, rec := guardContext(t, "/login", false)
		require.NoError(t, RequireGuest(okHandler)(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
