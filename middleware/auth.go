package middleware

import (
	"net/http"

	"pulseboard_app_go/config"
	"pulseboard_app_go/db"
	"pulseboard_app_go/services"

	"github.com/labstack/echo/v4"
)

const (
	// SessionCookieName is the name of the admin session cookie
	SessionCookieName = "pulseboard_session"
	// ContextKeyAdmin is the context key for the authenticated admin email
	ContextKeyAdmin = "admin"
	// ContextKeySession is the context key for the session
	ContextKeySession = "session"
)

// RequireAdmin is middleware that requires an authenticated admin session
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil {
				// No cookie, redirect to login
				if c.Request().Header.Get("HX-Request") == "true" {
					c.Response().Header().Set("HX-Redirect", "/login")
					return c.NoContent(http.StatusUnauthorized)
				}
				return c.Redirect(http.StatusSeeOther, "/login")
			}

			session, err := services.ValidateSession(db.DB, cookie.Value)
			if err != nil {
				// Invalid or expired session, clear cookie and redirect
				ClearSessionCookie(c)
				if c.Request().Header.Get("HX-Request") == "true" {
					c.Response().Header().Set("HX-Redirect", "/login")
					return c.NoContent(http.StatusUnauthorized)
				}
				return c.Redirect(http.StatusSeeOther, "/login")
			}

			c.Set(ContextKeyAdmin, session.AdminEmail)
			c.Set(ContextKeySession, session)

			return next(c)
		}
	}
}

// GetAdminEmail retrieves the authenticated admin email from context
func GetAdminEmail(c echo.Context) string {
	email, ok := c.Get(ContextKeyAdmin).(string)
	if !ok {
		return ""
	}
	return email
}

// SetSessionCookie sets the admin session cookie
func SetSessionCookie(c echo.Context, token string, maxAge int) {
	var isProduction bool
	if cfg, ok := c.Get("config").(*config.Config); ok {
		isProduction = cfg.Environment == "production"
	}

	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie clears the admin session cookie
func ClearSessionCookie(c echo.Context) {
	SetSessionCookie(c, "", -1)
}
