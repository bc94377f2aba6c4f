package router // package router defines how HTTP routes are registered for the admin UI

import (
	"net/http"

	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/rmonterol/tour-admin/internal/handler"    // import the handlers that render the views
	"github.com/rmonterol/tour-admin/internal/middleware" // import the session guards
)

// Register wires every route with its guard classification:
//
//   open        – /, /healthz: rendered for everyone.
//   public-only – /login, /register: only while anonymous, otherwise the
//                 guard redirects to the application home.
//   protected   – the entity views and /logout: only while authenticated,
//                 otherwise the guard redirects to /login.
//
// Anything else redirects to the home page.
//
// limitCreds is the rate limiter applied to the credential POSTs; pass
// the pass-through middleware when Redis is unavailable.
func Register(e *echo.Echo, a *handler.AuthHandler, cu *handler.CustomerHandler, to *handler.TourHandler, re *handler.ReservationHandler, limitCreds echo.MiddlewareFunc) {
	e.GET("/healthz", handler.Health)
	e.GET("/", handler.Home)

	// Public-only: an authenticated operator has no business on the
	// login or register screens.
	e.GET("/login", a.ShowLogin, middleware.RequireGuest)
	e.POST("/login", a.Login, middleware.RequireGuest, limitCreds)
	e.GET("/register", a.ShowRegister, middleware.RequireGuest)
	e.POST("/register", a.Register, middleware.RequireGuest, limitCreds)

	// Protected views. The group has no path prefix; it exists to apply
	// the auth guard uniformly.
	g := e.Group("", middleware.RequireAuth)
	g.POST("/logout", a.Logout)

	g.GET("/customers", cu.List)
	g.GET("/customers/new", cu.New)
	g.GET("/customers/:id", cu.Detail)
	g.GET("/customers/:id/edit", cu.Edit)
	g.POST("/customers", cu.Create)
	g.POST("/customers/:id", cu.Update)
	g.POST("/customers/:id/delete", cu.Delete)

	g.GET("/tours", to.List)
	g.GET("/tours/new", to.New)
	g.GET("/tours/:id", to.Detail)
	g.GET("/tours/:id/edit", to.Edit)
	g.POST("/tours", to.Create)
	g.POST("/tours/:id", to.Update)
	g.POST("/tours/:id/delete", to.Delete)

	g.GET("/reservations", re.List)
	g.GET("/reservations/new", re.New)
	g.GET("/reservations/derive", re.Derive)
	g.GET("/reservations/:id", re.Detail)
	g.GET("/reservations/:id/edit", re.Edit)
	g.POST("/reservations", re.Create)
	g.POST("/reservations/:id", re.Update)
	g.POST("/reservations/:id/delete", re.Delete)

	// Unknown paths land on the home page.
	e.RouteNotFound("/*", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/")
	})
}
