package handlers

import (
	"net/http"
	"strconv"

	"pulseboard_app_go/templates/partials"

	"github.com/labstack/echo/v4"
)

// RevealHandler records a visibility report for a reveal subscription. The
// latch is one-way: once a section's visible fraction reaches its threshold
// the subscription is released and further reports for the token are no-ops.
func RevealHandler(c echo.Context) error {
	token := c.FormValue("token")
	if token == "" {
		return c.NoContent(http.StatusBadRequest)
	}

	fraction, err := strconv.ParseFloat(c.FormValue("fraction"), 64)
	if err != nil {
		// Malformed reports fail open rather than leaving content hidden.
		fraction = 1
	}

	revealed, section := reveals.Report(token, fraction)
	if revealed {
		markRevealed(token, section)
	}
	return c.NoContent(http.StatusNoContent)
}

// ToastHandler renders the visitor's current notification. The toast region
// polls this endpoint, so dismissal by timeout needs no server push.
func ToastHandler(c echo.Context) error {
	visitor := visitorID(c)
	return render(c, http.StatusOK, partials.Toast(toasts.Current(visitor)))
}

// ToastDismissHandler dismisses the visitor's current notification early.
func ToastDismissHandler(c echo.Context) error {
	visitor := visitorID(c)
	toasts.Notifier(visitor).Dismiss()
	return c.HTML(http.StatusOK, "")
}
