package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rmonterol/tour-admin/internal/session"
)

// Route guarding is a pure function of (session, path classification),
// re-evaluated on every request:
//
//   protected    – render only when authenticated, else redirect to /login
//   public-only  – render only when anonymous, else redirect to /
//   open         – always render (no guard applied)
//
// Unknown paths are redirected to the home page at the router level.

// RequireAuth wraps protected views. Anonymous visitors are sent to the
// login page; the guard has no side effects beyond the redirect.
func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !session.FromContext(c.Request().Context()).Authenticated() {
			return c.Redirect(http.StatusFound, "/login")
		}
		return next(c)
	}
}

// RequireGuest wraps the public-only views (login, register). An already
// authenticated operator is sent to the application home instead.
func RequireGuest(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if session.FromContext(c.Request().Context()).Authenticated() {
			return c.Redirect(http.StatusFound, "/")
		}
		return next(c)
	}
}
