package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"pulseboard_app_go/models"
	"pulseboard_app_go/services"
	"pulseboard_app_go/ui"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submitForm(t *testing.T, visitor string, values url.Values) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	_, c, rec := setupEcho(http.MethodPost, "/demo", strings.NewReader(values.Encode()))
	c.Request().Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.Request().AddCookie(&http.Cookie{Name: VisitorCookieName, Value: visitor})
	return rec, c
}

func TestDemoModalHandler(t *testing.T) {
	setupTestDB(t)

	_, c, rec := setupEcho(http.MethodGet, "/demo", nil)
	visitor := newVisitor(c)

	err := DemoModalHandler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Book a demo")

	flowMu.Lock()
	flow := flows[visitor]
	flowMu.Unlock()
	require.NotNil(t, flow)
	assert.Equal(t, ui.StateEditing, flow.State())
}

func TestDemoSubmitHandler(t *testing.T) {
	setupTestDB(t)

	submit := func(t *testing.T, visitor string, f url.Values) *httptest.ResponseRecorder {
		t.Helper()
		rec, c := submitForm(t, visitor, f)
		assert.NoError(t, DemoSubmitHandler(c))
		return rec
	}

	t.Run("Missing fields", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/demo", nil)
		visitor := newVisitor(c)
		assert.NoError(t, DemoModalHandler(c))

		f := url.Values{}
		f.Add("name", "Ada")
		rec = submit(t, visitor, f)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), ui.MsgMissingFields)
		// Typed values survive the round trip.
		assert.Contains(t, rec.Body.String(), "Ada")
	})

	t.Run("Missing fields beats invalid email", func(t *testing.T) {
		_, c, _ := setupEcho(http.MethodGet, "/demo", nil)
		visitor := newVisitor(c)
		assert.NoError(t, DemoModalHandler(c))

		f := url.Values{}
		f.Add("email", "not-an-address")
		rec := submit(t, visitor, f)
		assert.Contains(t, rec.Body.String(), ui.MsgMissingFields)
		assert.NotContains(t, rec.Body.String(), ui.MsgInvalidEmail)
	})

	t.Run("Invalid email", func(t *testing.T) {
		_, c, _ := setupEcho(http.MethodGet, "/demo", nil)
		visitor := newVisitor(c)
		assert.NoError(t, DemoModalHandler(c))

		f := url.Values{}
		f.Add("name", "Ada")
		f.Add("email", "ada@nodot")
		f.Add("organization", "Analytical Engines")
		rec := submit(t, visitor, f)
		assert.Contains(t, rec.Body.String(), ui.MsgInvalidEmail)
	})

	t.Run("Delivery failure keeps dialog open with values", func(t *testing.T) {
		_, c, _ := setupEcho(http.MethodGet, "/demo", nil)
		visitor := newVisitor(c)
		assert.NoError(t, DemoModalHandler(c))

		f := url.Values{}
		f.Add("name", "Ada")
		f.Add("email", "ada@fail.example.com")
		f.Add("organization", "Analytical Engines")
		rec := submit(t, visitor, f)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), services.MsgDeliveryFailure)
		assert.Contains(t, rec.Body.String(), "Analytical Engines")
		assert.Empty(t, rec.Header().Get("HX-Trigger"))
	})

	t.Run("Success closes the dialog and records the request", func(t *testing.T) {
		_, c, _ := setupEcho(http.MethodGet, "/demo", nil)
		visitor := newVisitor(c)
		assert.NoError(t, DemoModalHandler(c))

		f := url.Values{}
		f.Add("name", "Grace")
		f.Add("email", "grace@ok.example.com")
		f.Add("organization", "Compilers Inc")
		f.Add("message", "Show us alerting.")
		rec := submit(t, visitor, f)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "demo-modal-close", rec.Header().Get("HX-Trigger"))

		n := toasts.Current(visitor)
		require.NotNil(t, n)
		assert.Equal(t, ui.KindSuccess, n.Kind)
		assert.Equal(t, services.MsgDeliverySuccess, n.Text)

		// The flow is gone; the success is terminal for this dialog.
		flowMu.Lock()
		_, ok := flows[visitor]
		flowMu.Unlock()
		assert.False(t, ok)
	})

	t.Run("Submit without opening the modal still works", func(t *testing.T) {
		visitor := "visitor-direct-post"

		f := url.Values{}
		f.Add("name", "Edsger")
		f.Add("email", "edsger@ok.example.com")
		f.Add("organization", "Structured Co")
		rec := submit(t, visitor, f)
		assert.Equal(t, "demo-modal-close", rec.Header().Get("HX-Trigger"))
	})

	t.Run("Double submit delivers once", func(t *testing.T) {
		database := setupTestDB(t)

		_, c, _ := setupEcho(http.MethodGet, "/demo", nil)
		visitor := newVisitor(c)
		assert.NoError(t, DemoModalHandler(c))

		f := url.Values{}
		f.Add("name", "Barbara")
		f.Add("email", "barbara@ok.example.com")
		f.Add("organization", "Liskov Labs")

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec, c := submitForm(t, visitor, f)
			assert.NoError(t, DemoSubmitHandler(c))
			assert.Equal(t, "demo-modal-close", rec.Header().Get("HX-Trigger"))
		}()

		// Second POST lands while the first delivery is still in flight.
		time.Sleep(services.MockDeliveryDelay / 4)
		rec2, c2 := submitForm(t, visitor, f)
		assert.NoError(t, DemoSubmitHandler(c2))
		assert.Equal(t, http.StatusNoContent, rec2.Code)

		wg.Wait()

		// Test mode skips persistence entirely; no duplicate rows either way.
		var count int64
		assert.NoError(t, database.Model(&models.DemoRequest{}).Count(&count).Error)
		assert.LessOrEqual(t, count, int64(1))
	})

	t.Run("Concurrent first submits share one flow", func(t *testing.T) {
		setupTestDB(t)

		// Neither request opens the modal first, so both land on a visitor
		// with no flow yet. They must still converge on a single state
		// machine so only one delivery runs.
		visitor := uuid.New().String()

		f := url.Values{}
		f.Add("name", "Margaret")
		f.Add("email", "margaret@ok.example.com")
		f.Add("organization", "Hamilton Computing")

		start := make(chan struct{})
		recs := make([]*httptest.ResponseRecorder, 2)
		var wg sync.WaitGroup
		for i := range recs {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				rec, c := submitForm(t, visitor, f)
				<-start
				assert.NoError(t, DemoSubmitHandler(c))
				recs[i] = rec
			}(i)
		}
		close(start)
		wg.Wait()

		closes, rejected := 0, 0
		for _, rec := range recs {
			if rec.Header().Get("HX-Trigger") == "demo-modal-close" {
				closes++
			}
			if rec.Code == http.StatusNoContent {
				rejected++
			}
		}
		assert.Equal(t, 1, closes, "exactly one concurrent submit may deliver")
		assert.Equal(t, 1, rejected, "the other gets the in-flight rejection")
	})
}

func TestDemoCancelHandler(t *testing.T) {
	setupTestDB(t)

	_, c, _ := setupEcho(http.MethodGet, "/demo", nil)
	visitor := newVisitor(c)
	assert.NoError(t, DemoModalHandler(c))

	_, cc, rec := setupEcho(http.MethodPost, "/demo/cancel", nil)
	cc.Request().AddCookie(&http.Cookie{Name: VisitorCookieName, Value: visitor})
	assert.NoError(t, DemoCancelHandler(cc))
	assert.Equal(t, http.StatusOK, rec.Code)

	flowMu.Lock()
	_, ok := flows[visitor]
	flowMu.Unlock()
	assert.False(t, ok)
}
