// Package notify tells customers about reservation lifecycle changes made from the admin backend.
package notify

import (
	"context"
	"fmt"
	"html"

	"locadora-admin/internal/domain"
	"locadora-admin/internal/logger"
)

// Notifier sends a customer-facing message after a reservation transition succeeded.
type Notifier interface {
	ReservationStatusChanged(ctx context.Context, customer *domain.Customer, reservation *domain.Reservation) error
}

// Message is the rendered email for a reservation status change.
type Message struct {
	Subject   string
	PlainText string
	HTML      string
}

var statusLabels = map[domain.ReservationStatus]string{
	domain.ReservationStatusPendingPayment: "Pendente Pagamento",
	domain.ReservationStatusConfirmed:      "Confirmada",
	domain.ReservationStatusInProgress:     "Em Curso",
	domain.ReservationStatusFinished:       "Finalizada",
	domain.ReservationStatusCanceled:       "Cancelada",
}

// StatusLabel returns the operator-facing label of a reservation status.
func StatusLabel(s domain.ReservationStatus) string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

func BuildMessage(customer *domain.Customer, r *domain.Reservation) Message {
	label := StatusLabel(r.Status)
	subject := fmt.Sprintf("Reserva %s: %s", shortID(r.ID), label)
	plain := fmt.Sprintf(
		"Olá %s,\n\nSua reserva de %s a %s (%d dias, R$ %s) agora está: %s.\n",
		customer.Name, r.StartDate, r.EndDate, r.PeriodDays, r.TotalAmount.StringFixed(2), label,
	)
	body := fmt.Sprintf(`<html>
	<body>
		<h2>Reserva %s</h2>
		<p>Olá <strong>%s</strong>,</p>
		<p>Sua reserva de %s a %s (%d dias, R$ %s) agora está: <strong>%s</strong>.</p>
	</body>
</html>`, html.EscapeString(shortID(r.ID)), html.EscapeString(customer.Name), html.EscapeString(r.StartDate),
		html.EscapeString(r.EndDate), r.PeriodDays, r.TotalAmount.StringFixed(2), html.EscapeString(label))

	return Message{Subject: subject, PlainText: plain, HTML: body}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// LogNotifier only logs; it is used when no email provider is configured.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) ReservationStatusChanged(ctx context.Context, customer *domain.Customer, r *domain.Reservation) error {
	msg := BuildMessage(customer, r)
	logger.InfoContext(ctx, "Reservation notification (not sent)",
		"reservation_id", r.ID,
		"customer_id", customer.ID,
		"subject", msg.Subject)
	return nil
}
