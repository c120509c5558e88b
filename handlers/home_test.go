package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"pulseboard_app_go/templates/pages"
	"pulseboard_app_go/ui"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLandingHandler(t *testing.T) {
	setupTestDB(t)

	_, c, rec := setupEcho(http.MethodGet, "/", nil)
	newVisitor(c)

	err := LandingHandler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	content := pages.DefaultLandingContent()
	assert.Contains(t, body, content.HeroTitle)
	assert.Contains(t, body, content.Features[0].Title)
	assert.Contains(t, body, content.Testimonials[0].Name)
	// Every below-the-fold section gets a reveal subscription.
	assert.Equal(t, len(pages.RevealSections()), strings.Count(body, "data-reveal-token"))
}

func TestLandingHandlerMintsVisitorCookie(t *testing.T) {
	setupTestDB(t)

	_, c, rec := setupEcho(http.MethodGet, "/", nil)
	assert.NoError(t, LandingHandler(c))

	cookies := rec.Result().Cookies()
	var found bool
	for _, cookie := range cookies {
		if cookie.Name == VisitorCookieName && cookie.Value != "" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestRevealHandler(t *testing.T) {
	setupTestDB(t)

	report := func(t *testing.T, token, fraction string) *httptest.ResponseRecorder {
		t.Helper()
		f := url.Values{}
		f.Add("token", token)
		f.Add("fraction", fraction)
		_, c, rec := setupEcho(http.MethodPost, "/htmx/reveal", strings.NewReader(f.Encode()))
		c.Request().Header.Set("Content-Type", "application/x-www-form-urlencoded")
		assert.NoError(t, RevealHandler(c))
		return rec
	}

	subscribe := func(visitor, section string) string {
		token := reveals.Subscribe(section, ui.DefaultRevealThreshold)
		revealMu.Lock()
		revealTokens[token] = revealToken{visitor: visitor, issued: time.Now()}
		revealMu.Unlock()
		return token
	}

	sectionRevealed := func(visitor, section string) bool {
		revealMu.Lock()
		defer revealMu.Unlock()
		return revealedBy[visitor][section]
	}

	t.Run("Below threshold stays hidden", func(t *testing.T) {
		visitor := "reveal-below"
		token := subscribe(visitor, pages.SectionFeatures)

		rec := report(t, token, "0.05")
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.False(t, sectionRevealed(visitor, pages.SectionFeatures))
	})

	t.Run("At threshold latches and releases", func(t *testing.T) {
		visitor := "reveal-at"
		token := subscribe(visitor, pages.SectionStats)

		rec := report(t, token, "0.1")
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.True(t, sectionRevealed(visitor, pages.SectionStats))

		// The subscription is gone; replays are no-ops.
		report(t, token, "1")
		assert.True(t, sectionRevealed(visitor, pages.SectionStats))
	})

	t.Run("Malformed fraction fails open", func(t *testing.T) {
		visitor := "reveal-bad-fraction"
		token := subscribe(visitor, pages.SectionCTA)

		report(t, token, "garbage")
		assert.True(t, sectionRevealed(visitor, pages.SectionCTA))
	})

	t.Run("Missing token is rejected", func(t *testing.T) {
		rec := report(t, "", "0.5")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Revealed section renders visible on reload", func(t *testing.T) {
		_, c, _ := setupEcho(http.MethodGet, "/", nil)
		visitor := newVisitor(c)
		require.NoError(t, LandingHandler(c))

		revealMu.Lock()
		var token string
		for tok, ref := range revealTokens {
			if ref.visitor == visitor {
				token = tok
				break
			}
		}
		revealMu.Unlock()
		require.NotEmpty(t, token)

		report(t, token, "0.5")

		_, c2, rec2 := setupEcho(http.MethodGet, "/", nil)
		c2.Request().AddCookie(&http.Cookie{Name: VisitorCookieName, Value: visitor})
		require.NoError(t, LandingHandler(c2))
		assert.Contains(t, rec2.Body.String(), "reveal revealed")
	})
}

func TestSweepUIState(t *testing.T) {
	setupTestDB(t)

	token := reveals.Subscribe(pages.SectionFeatures, ui.DefaultRevealThreshold)
	revealMu.Lock()
	revealTokens[token] = revealToken{visitor: "sweep-visitor", issued: time.Now().Add(-time.Hour)}
	revealMu.Unlock()

	SweepUIState(30 * time.Minute)

	revealMu.Lock()
	_, ok := revealTokens[token]
	revealMu.Unlock()
	assert.False(t, ok)
}

func TestHealthHandler(t *testing.T) {
	_, c, rec := setupEcho(http.MethodGet, "/healthz", nil)
	assert.NoError(t, HealthHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
