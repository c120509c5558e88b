package handlers

import (
	"errors"
	"net/http"
	"strings"
	"sync"

	"pulseboard_app_go/config"
	"pulseboard_app_go/db"
	"pulseboard_app_go/services"
	"pulseboard_app_go/templates/partials"
	"pulseboard_app_go/ui"

	"github.com/labstack/echo/v4"
)

// One submission flow per visitor. The flow owns the dialog's state machine,
// so the no-double-submit guarantee holds across every POST the visitor's
// browser manages to fire.
var (
	flowMu sync.Mutex
	flows  = make(map[string]*ui.SubmissionFlow)
)

// DemoModalHandler opens the request-a-demo dialog with a fresh flow. A flow
// that is mid-delivery is kept so re-opening cannot defeat the in-flight
// guard.
func DemoModalHandler(c echo.Context) error {
	visitor := visitorID(c)

	flowMu.Lock()
	existing := flows[visitor]
	if existing == nil || existing.State() != ui.StateSending {
		flows[visitor] = newVisitorFlow(visitor, c)
	}
	flowMu.Unlock()

	return render(c, http.StatusOK, partials.DemoModal(ui.Fields{}, ""))
}

// DemoSubmitHandler runs one submission attempt through the visitor's flow.
func DemoSubmitHandler(c echo.Context) error {
	visitor := visitorID(c)
	flow := visitorFlow(visitor, c)

	flow.SetFields(ui.Fields{
		Name:         strings.TrimSpace(c.FormValue("name")),
		Email:        strings.TrimSpace(c.FormValue("email")),
		Organization: strings.TrimSpace(c.FormValue("organization")),
		Message:      services.SanitizeMessage(c.FormValue("message")),
	})

	err := flow.Submit(c.Request().Context())
	switch {
	case errors.Is(err, ui.ErrSubmitInFlight):
		// Duplicate POST while a delivery is outstanding; nothing to swap.
		return c.NoContent(http.StatusNoContent)
	case errors.Is(err, ui.ErrFlowClosed):
		return closeModal(c)
	case errors.Is(err, ui.ErrMissingFields):
		return render(c, http.StatusOK, partials.DemoModal(flow.Fields(), ui.MsgMissingFields))
	case errors.Is(err, ui.ErrInvalidEmail):
		return render(c, http.StatusOK, partials.DemoModal(flow.Fields(), ui.MsgInvalidEmail))
	}

	if flow.Closed() {
		return closeModal(c)
	}

	// Delivery failed; the dialog stays open with the typed values intact.
	errMsg := services.MsgDeliveryFailure
	if n := toasts.Current(visitor); n != nil && n.Kind == ui.KindError {
		errMsg = n.Text
	}
	return render(c, http.StatusOK, partials.DemoModal(flow.Fields(), errMsg))
}

// DemoCancelHandler closes the dialog. An in-flight delivery is allowed to
// finish but its result is discarded.
func DemoCancelHandler(c echo.Context) error {
	visitor := visitorID(c)

	flowMu.Lock()
	flow := flows[visitor]
	delete(flows, visitor)
	flowMu.Unlock()

	if flow != nil {
		flow.Close()
	}
	return c.HTML(http.StatusOK, "")
}

func newVisitorFlow(visitor string, c echo.Context) *ui.SubmissionFlow {
	cfg := config.Load()
	deliverer := services.NewDeliverer(cfg, db.DB, services.RequestMeta{
		IPAddress: c.RealIP(),
		UserAgent: c.Request().UserAgent(),
	})

	var flow *ui.SubmissionFlow
	flow = ui.NewSubmissionFlow(
		deliverer.Deliver,
		func(kind, text string) {
			toasts.Show(visitor, kind, text)
		},
		func() {
			removeFlow(visitor, flow)
		},
	)
	return flow
}

// visitorFlow returns the visitor's flow, creating one if none exists. The
// lookup and store happen in one critical section, so concurrent POSTs for
// the same visitor always share a single flow and the in-flight guard sees
// all of them.
func visitorFlow(visitor string, c echo.Context) *ui.SubmissionFlow {
	flowMu.Lock()
	defer flowMu.Unlock()

	if flow := flows[visitor]; flow != nil {
		return flow
	}
	flow := newVisitorFlow(visitor, c)
	flows[visitor] = flow
	return flow
}

// removeFlow drops the visitor's flow only if it is still the given one, so
// a close signal from a stale flow cannot evict its replacement.
func removeFlow(visitor string, flow *ui.SubmissionFlow) {
	flowMu.Lock()
	defer flowMu.Unlock()
	if flows[visitor] == flow {
		delete(flows, visitor)
	}
}

func closeModal(c echo.Context) error {
	c.Response().Header().Set("HX-Trigger", "demo-modal-close")
	return c.HTML(http.StatusOK, "")
}
