// Package mailer sends transactional email for order lifecycle events and
// contact-form relays. Sends triggered by state transitions are best-effort:
// callers log failures and never roll back the transition.
package mailer

import (
	"context"

	"sofa-shop/internal/model"

	"github.com/rs/zerolog"
)

// Mailer delivers the three transactional message kinds.
type Mailer interface {
	// SendOrderConfirmation asks the customer to confirm a freshly placed
	// cash-on-delivery order via an emailed link.
	SendOrderConfirmation(ctx context.Context, order *model.Order) error

	// SendStatusUpdate notifies the customer that their order's status changed.
	SendStatusUpdate(ctx context.Context, order *model.Order, status string) error

	// SendContactMessage relays a contact-form submission to the shop inbox.
	SendContactMessage(ctx context.Context, req *model.ContactRequest) error
}

// nopMailer drops every message. Used when SMTP is not configured.
type nopMailer struct {
	logger zerolog.Logger
}

// NewNopMailer creates a mailer that logs and discards every message.
func NewNopMailer(logger zerolog.Logger) Mailer {
	return &nopMailer{logger: logger.With().Str("mailer", "nop").Logger()}
}

func (m *nopMailer) SendOrderConfirmation(_ context.Context, order *model.Order) error {
	m.logger.Debug().Str("order_id", order.ID.String()).Msg("mail disabled, dropping order confirmation")
	return nil
}

func (m *nopMailer) SendStatusUpdate(_ context.Context, order *model.Order, status string) error {
	m.logger.Debug().
		Str("order_id", order.ID.String()).
		Str("status", status).
		Msg("mail disabled, dropping status update")
	return nil
}

func (m *nopMailer) SendContactMessage(_ context.Context, req *model.ContactRequest) error {
	m.logger.Debug().Str("from", req.Email).Msg("mail disabled, dropping contact message")
	return nil
}
