package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"
)

// VisitorCookieName identifies an anonymous visitor across requests so
// scroll-reveal state, toasts and the demo dialog stay per-visitor.
const VisitorCookieName = "pulseboard_visitor"

const visitorCookieMaxAge = 60 * 60 * 24 * 30

func render(c echo.Context, status int, node g.Node) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)
	return node.Render(c.Response().Writer)
}

// visitorID returns the visitor id from the cookie, minting one on first
// contact.
func visitorID(c echo.Context) string {
	if cookie, err := c.Cookie(VisitorCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	id := uuid.New().String()
	c.SetCookie(&http.Cookie{
		Name:     VisitorCookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   visitorCookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
