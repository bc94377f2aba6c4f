package middleware // reusable HTTP middleware for the admin UI

import (
	"github.com/labstack/echo/v4"

	"github.com/rmonterol/tour-admin/internal/session"
)

// WithSession restores the session once per request, before routing
// decisions, and stashes it into the request context. The route guards
// and the gateway client's token source both read it from there; nothing
// downstream mutates it.
func WithSession(m *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			r := c.Request()
			s := m.Restore(r.Context(), r)
			c.SetRequest(r.WithContext(session.NewContext(r.Context(), s)))
			return next(c)
		}
	}
}
