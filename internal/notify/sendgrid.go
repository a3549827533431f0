package notify

import (
	"context"
	"fmt"

	"locadora-admin/internal/domain"
	"locadora-admin/internal/logger"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// mailSender is the subset of *sendgrid.Client used here.
type mailSender interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

type SendGridNotifier struct {
	client    mailSender
	fromEmail string
	fromName  string
}

func NewSendGridNotifier(apiKey, fromEmail, fromName string) *SendGridNotifier {
	return &SendGridNotifier{
		client:    sendgrid.NewSendClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *SendGridNotifier) ReservationStatusChanged(ctx context.Context, customer *domain.Customer, r *domain.Reservation) error {
	if customer.Email == "" {
		logger.Warn("Customer has no email, skipping notification", "customer_id", customer.ID, "reservation_id", r.ID)
		return nil
	}

	msg := BuildMessage(customer, r)
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(customer.Name, customer.Email)
	message := mail.NewSingleEmail(from, msg.Subject, to, msg.PlainText, msg.HTML)

	logger.ExternalServiceCall("sendgrid", "send", "reservation_id", r.ID)
	response, err := s.client.SendWithContext(ctx, message)
	if err == nil && response.StatusCode >= 400 {
		err = fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	logger.ExternalServiceResult("sendgrid", "send", err, "reservation_id", r.ID)

	if err != nil {
		return fmt.Errorf("failed to send reservation email: %w", err)
	}
	return nil
}
