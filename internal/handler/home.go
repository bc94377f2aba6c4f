package handler // HTTP handlers rendering the admin UI pages

import "github.com/labstack/echo/v4"

// Home renders the landing page. It is an open route: both anonymous and
// authenticated visitors see it, with the nav adapting to the session.
func Home(c echo.Context) error {
	return render(c, "home.html", echo.Map{"Title": "Inicio"})
}
