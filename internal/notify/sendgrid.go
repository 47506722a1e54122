// Package notify implements the fire-and-forget Notifier over SendGrid.
package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"carrental-backend/internal/service"
)

type sendGridNotifier struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewSendGridNotifier(apiKey, fromEmail, fromName string) service.Notifier {
	return &sendGridNotifier{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (n *sendGridNotifier) send(to, toName, subject, body string) error {
	from := mail.NewEmail(n.fromName, n.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, body, "")

	client := sendgrid.NewSendClient(n.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (n *sendGridNotifier) SendBookingConfirmation(ctx context.Context, email, name, plate string, start, end time.Time, totalPriceCents int64) error {
	body := fmt.Sprintf(
		"Hello %s,\n\nYour rental of vehicle %s is confirmed from %s to %s.\nTotal price: %d.%02d\n\nSafe travels,\nThe Rentals Team",
		name, plate, start.Format(time.RFC3339), end.Format(time.RFC3339), totalPriceCents/100, totalPriceCents%100,
	)
	return n.send(email, name, "Rental confirmed", body)
}

func (n *sendGridNotifier) SendBookingCancellation(ctx context.Context, email, name, plate string) error {
	body := fmt.Sprintf(
		"Hello %s,\n\nYour rental of vehicle %s has been cancelled and the charge was voided.\n\nBest regards,\nThe Rentals Team",
		name, plate,
	)
	return n.send(email, name, "Rental cancelled", body)
}

func (n *sendGridNotifier) SendReturnReminder(ctx context.Context, email, name, plate string, due time.Time) error {
	body := fmt.Sprintf(
		"Hello %s,\n\nA reminder that vehicle %s is due back on %s.\n\nBest regards,\nThe Rentals Team",
		name, plate, due.Format("2006-01-02 15:04"),
	)
	return n.send(email, name, "Return reminder", body)
}
