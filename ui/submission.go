package ui

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"sync"
)

// SubmissionState is the state of a demo request dialog.
type SubmissionState int

const (
	StateEditing SubmissionState = iota
	StateValidating
	StateSending
	StateSucceeded
	StateFailed
)

func (s SubmissionState) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateValidating:
		return "validating"
	case StateSending:
		return "sending"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

var (
	// ErrMissingFields is returned when a required field is empty.
	ErrMissingFields = errors.New("missing required fields")
	// ErrInvalidEmail is returned when the email does not match the address grammar.
	ErrInvalidEmail = errors.New("invalid email address")
	// ErrSubmitInFlight is returned when Submit is called while a delivery is outstanding.
	ErrSubmitInFlight = errors.New("submission already in flight")
	// ErrFlowClosed is returned when the dialog was already closed.
	ErrFlowClosed = errors.New("submission flow closed")
)

// User-facing notification texts for the two validation failures.
const (
	MsgMissingFields = "Please fill in your name, email and organization."
	MsgInvalidEmail  = "Please enter a valid email address."
)

// local-part@domain, with at least one dot in the domain
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether addr matches the address grammar the demo form
// accepts.
func ValidEmail(addr string) bool {
	return emailPattern.MatchString(addr)
}

// Fields holds the demo request form state. Message is optional.
type Fields struct {
	Name         string
	Email        string
	Organization string
	Message      string
}

// Outcome is the single result of a delivery operation.
type Outcome struct {
	OK      bool
	Message string
}

// DeliverFunc performs the external delivery operation: one result after a
// bounded wait, no partial responses.
type DeliverFunc func(ctx context.Context, fields Fields) (Outcome, error)

// NotificationSink receives the outcome of a submission as a user-facing
// notification.
type NotificationSink func(kind, text string)

// CloseSignal is invoked once when the dialog should close.
type CloseSignal func()

// SubmissionFlow owns the demo request form's state machine:
//
//	Editing -> Validating -> Sending -> Succeeded (dialog closes)
//	                      \          -> Failed -> Editing (fields kept)
//	                       -> Editing (validation failure, delivery never invoked)
//
// Re-submission while Sending is rejected as a hard guarantee, independent of
// any disabled-button affordance in the markup.
type SubmissionFlow struct {
	mu      sync.Mutex
	state   SubmissionState
	fields  Fields
	closed  bool
	deliver DeliverFunc
	notify  NotificationSink
	close   CloseSignal
}

// NewSubmissionFlow wires a flow to its delivery operation, notification sink
// and dialog close signal. Nil callbacks are tolerated and simply skipped.
func NewSubmissionFlow(deliver DeliverFunc, notify NotificationSink, closeSignal CloseSignal) *SubmissionFlow {
	return &SubmissionFlow{
		state:   StateEditing,
		deliver: deliver,
		notify:  notify,
		close:   closeSignal,
	}
}

// SetFields accepts field updates. Updates are ignored while a delivery is
// outstanding so the in-flight payload stays what the user submitted.
func (f *SubmissionFlow) SetFields(fields Fields) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == StateSending || f.closed {
		return
	}
	f.fields = fields
}

// Fields returns the current form state. After a failed submission the
// values the user typed are preserved for correction.
func (f *SubmissionFlow) Fields() Fields {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

// State returns the current state.
func (f *SubmissionFlow) State() SubmissionState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Closed reports whether the dialog has been closed.
func (f *SubmissionFlow) Closed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

// Submit validates the fields and, if they pass, invokes the delivery
// operation exactly once, blocking until its single result arrives. Every
// failure path resolves to a notification and a return to Editing; there are
// no fatal errors here.
func (f *SubmissionFlow) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return ErrFlowClosed
	}
	if f.state == StateSending {
		f.mu.Unlock()
		return ErrSubmitInFlight
	}

	f.state = StateValidating
	fields := f.fields

	// Missing fields take precedence over a malformed email.
	if strings.TrimSpace(fields.Name) == "" ||
		strings.TrimSpace(fields.Email) == "" ||
		strings.TrimSpace(fields.Organization) == "" {
		f.state = StateEditing
		f.mu.Unlock()
		f.emit(KindError, MsgMissingFields)
		return ErrMissingFields
	}
	if !ValidEmail(strings.TrimSpace(fields.Email)) {
		f.state = StateEditing
		f.mu.Unlock()
		f.emit(KindError, MsgInvalidEmail)
		return ErrInvalidEmail
	}

	f.state = StateSending
	deliver := f.deliver
	f.mu.Unlock()

	var outcome Outcome
	var err error
	if deliver != nil {
		outcome, err = deliver(ctx, fields)
	} else {
		err = errors.New("no delivery operation configured")
	}

	f.mu.Lock()
	if f.closed {
		// Dialog closed mid-flight: the result is discarded with no
		// observable effect.
		f.mu.Unlock()
		return nil
	}

	if err != nil || !outcome.OK {
		reason := outcome.Message
		if reason == "" {
			reason = "Something went wrong sending your request. Please try again."
		}
		// Failed resolves straight back to Editing so the user can correct
		// and resubmit; fields stay put.
		f.state = StateEditing
		f.mu.Unlock()
		f.emit(KindError, reason)
		if err != nil {
			return err
		}
		return nil
	}

	f.state = StateSucceeded
	f.closed = true
	closeSignal := f.close
	f.mu.Unlock()

	f.emit(KindSuccess, outcome.Message)
	if closeSignal != nil {
		closeSignal()
	}
	return nil
}

// Close marks the dialog closed, e.g. on user-initiated cancel. An in-flight
// delivery is allowed to finish but its result is discarded.
func (f *SubmissionFlow) Close() {
	f.mu.Lock()
	f.closed = true
	f.mu.Unlock()
}

func (f *SubmissionFlow) emit(kind, text string) {
	if f.notify != nil {
		f.notify(kind, text)
	}
}
