package handlers

import (
	"net/http"
	"sync"
	"time"

	"pulseboard_app_go/templates/pages"
	"pulseboard_app_go/templates/partials"
	"pulseboard_app_go/ui"

	"github.com/labstack/echo/v4"
)

// Shared per-process UI state. Reveal subscriptions and toasts are keyed by
// the visitor cookie, so concurrent visitors never observe each other.
var (
	reveals = ui.NewRevealRegistry()
	toasts  = ui.NewToastCenter(ui.DefaultNotificationTimeout)

	revealMu     sync.Mutex
	revealedBy   = make(map[string]map[string]bool) // visitor -> section -> revealed
	revealTokens = make(map[string]revealToken)     // token -> issuing visitor
)

type revealToken struct {
	visitor string
	issued  time.Time
}

// LandingHandler renders the marketing page. Sections the visitor has not
// yet scrolled into view get a fresh reveal subscription; sections already
// revealed render visible so reloads do not replay the animation.
func LandingHandler(c echo.Context) error {
	visitor := visitorID(c)

	revealMu.Lock()
	seen := revealedBy[visitor]
	revealMu.Unlock()

	state := make(map[string]partials.Reveal, len(pages.RevealSections()))
	for _, section := range pages.RevealSections() {
		if seen[section] {
			state[section] = partials.Reveal{Revealed: true}
			continue
		}
		token := reveals.Subscribe(section, ui.DefaultRevealThreshold)
		revealMu.Lock()
		revealTokens[token] = revealToken{visitor: visitor, issued: time.Now()}
		revealMu.Unlock()
		state[section] = partials.Reveal{Token: token}
	}

	return render(c, http.StatusOK, pages.Landing(GetSEO("landing"), pages.DefaultLandingContent(), state))
}

// HealthHandler reports service liveness.
func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func markRevealed(token, section string) {
	revealMu.Lock()
	defer revealMu.Unlock()

	ref, ok := revealTokens[token]
	if !ok {
		return
	}
	delete(revealTokens, token)
	if revealedBy[ref.visitor] == nil {
		revealedBy[ref.visitor] = make(map[string]bool)
	}
	revealedBy[ref.visitor][section] = true
}

// SweepUIState drops reveal subscriptions and idle toast notifiers older
// than maxAge. Called periodically from the server loop.
func SweepUIState(maxAge time.Duration) {
	reveals.Sweep(maxAge)
	toasts.Sweep(maxAge)

	revealMu.Lock()
	defer revealMu.Unlock()
	for token, ref := range revealTokens {
		if time.Since(ref.issued) > maxAge {
			delete(revealTokens, token)
		}
	}
}
