package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"pulseboard_app_go/config"
	"pulseboard_app_go/ui"

	"gorm.io/gorm"
)

// MockDeliveryDelay is the artificial wait the simulated delivery imposes so
// the sending affordance is visible during local development.
const MockDeliveryDelay = 800 * time.Millisecond

// User-facing outcome messages for the delivery operation.
const (
	MsgDeliverySuccess = "Thanks! Our team will reach out within one business day."
	MsgDeliveryFailure = "We couldn't send your request right now. Please try again in a moment."
)

// Deliverer performs the external delivery operation for a demo request:
// a single outcome after a bounded wait, no partial or streaming response.
type Deliverer interface {
	Deliver(ctx context.Context, fields ui.Fields) (ui.Outcome, error)
}

// RequestMeta carries audit metadata about the submitting request.
type RequestMeta struct {
	IPAddress string
	UserAgent string
}

// NewDeliverer picks the delivery implementation: the simulated transport in
// email test mode, the real persist-and-email path otherwise.
func NewDeliverer(cfg *config.Config, database *gorm.DB, meta RequestMeta) Deliverer {
	if cfg.EmailTestMode {
		return &MockDeliverer{}
	}
	return &EmailDeliverer{DB: database, Config: cfg, Meta: meta}
}

// MockDeliverer simulates the delivery operation with an artificial delay.
// Policy: the outcome is a failure iff the email contains the substring
// "fail", which makes the error path reachable from a browser.
type MockDeliverer struct {
	Delay time.Duration // defaults to MockDeliveryDelay
}

func (d *MockDeliverer) Deliver(ctx context.Context, fields ui.Fields) (ui.Outcome, error) {
	delay := d.Delay
	if delay <= 0 {
		delay = MockDeliveryDelay
	}

	select {
	case <-ctx.Done():
		return ui.Outcome{}, ctx.Err()
	case <-time.After(delay):
	}

	if strings.Contains(fields.Email, "fail") {
		return ui.Outcome{OK: false, Message: MsgDeliveryFailure}, nil
	}
	return ui.Outcome{OK: true, Message: MsgDeliverySuccess}, nil
}

// EmailDeliverer is the real delivery path: it records the demo request and
// sends the sales notification plus the requester confirmation via Resend.
type EmailDeliverer struct {
	DB     *gorm.DB
	Config *config.Config
	Meta   RequestMeta
}

func (d *EmailDeliverer) Deliver(ctx context.Context, fields ui.Fields) (ui.Outcome, error) {
	svc := NewDemoRequestService(d.DB)

	request, err := svc.Create(ctx, fields, d.Meta)
	if err != nil {
		log.Printf("Error recording demo request for %s: %v", fields.Email, err)
		return ui.Outcome{OK: false, Message: MsgDeliveryFailure}, fmt.Errorf("failed to record demo request: %w", err)
	}

	salesEmail := BuildDemoRequestSalesEmail(d.Config.SalesEmail, DemoRequestSalesEmailData{
		Name:         fields.Name,
		Email:        fields.Email,
		Organization: fields.Organization,
		Message:      fields.Message,
		RequestID:    request.ID,
		DashboardURL: d.Config.AppURL + "/admin",
	})
	SendEmailAsync(d.Config, salesEmail)

	confirmation := BuildDemoConfirmationEmail(fields.Email, DemoConfirmationEmailData{
		Name:         fields.Name,
		Organization: fields.Organization,
	})
	SendEmailAsync(d.Config, confirmation)

	return ui.Outcome{OK: true, Message: MsgDeliverySuccess}, nil
}
