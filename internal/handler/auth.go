package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/rmonterol/tour-admin/internal/api"
	"github.com/rmonterol/tour-admin/internal/model"
	"github.com/rmonterol/tour-admin/internal/session"
)

// AuthHandler bundles dependencies for the login, register and logout
// endpoints.
type AuthHandler struct {
	API      *api.Client
	Sessions *session.Manager
}

func NewAuthHandler(client *api.Client, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{API: client, Sessions: sessions}
}

// ShowLogin renders the login form (public-only, guarded upstream).
func (h *AuthHandler) ShowLogin(c echo.Context) error {
	return render(c, "login.html", echo.Map{"Title": "Login"})
}

// Login exchanges the submitted credentials for a token via the upstream
// API and opens a session. Failures re-render the form with an inline
// error so the email is not lost; success lands on the customers view.
func (h *AuthHandler) Login(c echo.Context) error {
	email := strings.ToLower(strings.TrimSpace(c.FormValue("email")))
	password := c.FormValue("password")
	if email == "" || password == "" {
		return render(c, "login.html", echo.Map{
			"Title": "Login", "Email": email,
			"Error": "email y password son requeridos",
		})
	}

	ctx := c.Request().Context()
	resp, err := h.API.Login(ctx, model.Credentials{Email: email, Password: password})
	if err != nil {
		return render(c, "login.html", echo.Map{
			"Title": "Login", "Email": email,
			"Error": api.Message(err, "no se pudo iniciar sesión"),
		})
	}

	cookie, err := h.Sessions.Login(ctx, resp.Token, resp.User)
	if err != nil {
		return render(c, "login.html", echo.Map{
			"Title": "Login", "Email": email,
			"Error": "no se pudo iniciar sesión",
		})
	}
	c.SetCookie(cookie)
	return c.Redirect(http.StatusFound, "/customers")
}

// ShowRegister renders the account creation form.
func (h *AuthHandler) ShowRegister(c echo.Context) error {
	return render(c, "register.html", echo.Map{"Title": "Registro"})
}

// Register creates an account upstream. The password confirmation is
// checked client-side first: a mismatch blocks the submission without any
// network call. The upstream logs the account in, so on success the
// session opens immediately.
func (h *AuthHandler) Register(c echo.Context) error {
	name := strings.TrimSpace(c.FormValue("name"))
	email := strings.ToLower(strings.TrimSpace(c.FormValue("email")))
	password := c.FormValue("password")
	confirm := c.FormValue("passwordConfirm")

	data := echo.Map{"Title": "Registro", "Name": name, "Email": email}
	if name == "" || email == "" || password == "" {
		data["Error"] = "todos los campos son requeridos"
		return render(c, "register.html", data)
	}
	if password != confirm {
		data["Error"] = "las contraseñas no coinciden"
		return render(c, "register.html", data)
	}

	ctx := c.Request().Context()
	resp, err := h.API.Register(ctx, model.RegisterInput{Name: name, Email: email, Password: password})
	if err != nil {
		data["Error"] = api.Message(err, "no se pudo crear la cuenta")
		return render(c, "register.html", data)
	}

	cookie, err := h.Sessions.Login(ctx, resp.Token, resp.User)
	if err != nil {
		data["Error"] = "no se pudo iniciar sesión"
		return render(c, "register.html", data)
	}
	c.SetCookie(cookie)
	return c.Redirect(http.StatusFound, "/customers")
}

// Logout clears the session. The store delete may fail (and is only
// logged); either way the cookie is expired and the redirect to the login
// page happens, the two paths converge.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(h.Sessions.Logout(c.Request().Context(), c.Request()))
	return c.Redirect(http.StatusFound, "/login")
}
