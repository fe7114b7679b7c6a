// Package mailer notifies the shop inbox about new bookings and quote
// requests. Delivery is best effort: callers fire it off a goroutine and a
// failed mail never fails the booking.
package mailer

import (
	"context"
	"fmt"
	"strings"

	"github.com/drphonenord/repairdesk/internal/domain"
)

// Notifier composes and sends the shop-facing notification mails.
type Notifier struct {
	sender Sender
	to     string
	logger Logger
}

// NewNotifier creates a notifier that mails the given shop address.
func NewNotifier(sender Sender, to string, logger Logger) *Notifier {
	return &Notifier{
		sender: sender,
		to:     to,
		logger: logger,
	}
}

// AppointmentCreated mails the shop about a new appointment.
func (n *Notifier) AppointmentCreated(ctx context.Context, appt *domain.Appointment) error {
	var b strings.Builder
	fmt.Fprintf(&b, "New appointment #%d\n\n", appt.Number)
	fmt.Fprintf(&b, "Name:  %s\n", appt.FullName())
	fmt.Fprintf(&b, "Phone: %s\n", appt.Phone)
	if appt.Email != "" {
		fmt.Fprintf(&b, "Email: %s\n", appt.Email)
	}
	if appt.City != "" {
		fmt.Fprintf(&b, "City:  %s\n", appt.City)
	}
	fmt.Fprintf(&b, "Model: %s\n", appt.Model)
	fmt.Fprintf(&b, "Issue: %s\n", appt.Issue)
	fmt.Fprintf(&b, "Slot:  %s %s\n", appt.Date, appt.Time.String())

	msg := Message{
		To:      n.to,
		Subject: fmt.Sprintf("New appointment #%d - %s", appt.Number, appt.FullName()),
		Body:    b.String(),
	}
	if err := n.sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("mailer: appointment notification: %w", err)
	}
	return nil
}

// QuoteRequested mails the shop about a new quote request.
func (n *Notifier) QuoteRequested(ctx context.Context, quote *domain.Quote) error {
	var b strings.Builder
	b.WriteString("New quote request\n\n")
	fmt.Fprintf(&b, "Name:  %s\n", quote.FullName())
	fmt.Fprintf(&b, "Phone: %s\n", quote.Phone)
	if quote.Email != "" {
		fmt.Fprintf(&b, "Email: %s\n", quote.Email)
	}
	if quote.City != "" {
		fmt.Fprintf(&b, "City:  %s\n", quote.City)
	}
	fmt.Fprintf(&b, "Model: %s\n", quote.Model)
	fmt.Fprintf(&b, "Issue: %s\n", quote.Issue)

	msg := Message{
		To:      n.to,
		Subject: fmt.Sprintf("New quote request - %s", quote.FullName()),
		Body:    b.String(),
	}
	if err := n.sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("mailer: quote notification: %w", err)
	}
	return nil
}
