package handler

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/rmonterol/tour-admin/internal/session"
)

// flashCookie carries one transient notification across a redirect. It is
// set right before redirecting and consumed (and expired) on the next
// render. Besides the session cookie this is the only client-side state.
const flashCookie = "tour_admin_flash"

// setFlash queues a notification of the given kind ("success" or "error")
// for the next rendered page.
func setFlash(c echo.Context, kind, msg string) {
	c.SetCookie(&http.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(kind + "|" + msg),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// takeFlash pops the pending notification, if any, expiring its cookie.
func takeFlash(c echo.Context) (kind, msg string, ok bool) {
	ck, err := c.Cookie(flashCookie)
	if err != nil || ck.Value == "" {
		return "", "", false
	}
	c.SetCookie(&http.Cookie{Name: flashCookie, Value: "", Path: "/", MaxAge: -1})
	raw, err := url.QueryUnescape(ck.Value)
	if err != nil {
		return "", "", false
	}
	parts := strings.SplitN(raw, "|", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// render executes a page template, injecting the restored session's user
// and any pending flash notification. Handlers that need to show an error
// on the page they render directly (list-fetch failures) preset Flash in
// data; render never overwrites it.
func render(c echo.Context, name string, data echo.Map) error {
	if data == nil {
		data = echo.Map{}
	}
	data["User"] = session.FromContext(c.Request().Context()).User
	if _, present := data["Flash"]; !present {
		if kind, msg, ok := takeFlash(c); ok {
			data["FlashKind"] = kind
			data["Flash"] = msg
		}
	}
	return c.Render(http.StatusOK, name, data)
}

// pageParam reads ?page=, defaulting to 1 and clamping garbage input.
func pageParam(c echo.Context) int {
	n, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || n < 1 {
		return 1
	}
	return n
}
