package handlers

import (
	"log"
	"net/http"
	"strings"

	"pulseboard_app_go/config"
	"pulseboard_app_go/db"
	"pulseboard_app_go/middleware"
	"pulseboard_app_go/services"
	"pulseboard_app_go/templates/pages"

	"github.com/labstack/echo/v4"
)

// LoginHandler renders the admin sign-in page.
func LoginHandler(c echo.Context) error {
	return render(c, http.StatusOK, pages.Login(""))
}

// LoginPostHandler checks the admin credentials and starts a session. The
// same response is returned for a wrong email and a wrong password.
func LoginPostHandler(c echo.Context) error {
	cfg := config.Load()

	email := strings.ToLower(strings.TrimSpace(c.FormValue("email")))
	password := c.FormValue("password")

	if email != strings.ToLower(cfg.AdminEmail) ||
		!services.CheckPassword(password, cfg.AdminPasswordHash) {
		return render(c, http.StatusUnauthorized, pages.Login("Invalid email or password."))
	}

	session, err := services.CreateSession(db.DB, email, c.RealIP(), c.Request().UserAgent())
	if err != nil {
		log.Printf("Error creating session: %v", err)
		return render(c, http.StatusInternalServerError, pages.Login("Something went wrong. Please try again."))
	}

	middleware.SetSessionCookie(c, session.Token, int(services.DefaultSessionDuration.Seconds()))
	return c.Redirect(http.StatusSeeOther, "/admin")
}

// LogoutHandler ends the current session.
func LogoutHandler(c echo.Context) error {
	if cookie, err := c.Cookie(middleware.SessionCookieName); err == nil && cookie.Value != "" {
		if err := services.DeleteSession(db.DB, cookie.Value); err != nil {
			log.Printf("Error deleting session: %v", err)
		}
	}
	middleware.ClearSessionCookie(c)
	return c.Redirect(http.StatusSeeOther, "/login")
}
