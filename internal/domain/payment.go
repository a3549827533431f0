package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentMethodCard     PaymentMethod = "CARTAO"
	PaymentMethodTransfer PaymentMethod = "TRANSFERENCIA"
	PaymentMethodPix      PaymentMethod = "PIX"
	PaymentMethodCash     PaymentMethod = "DINHEIRO"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCard, PaymentMethodTransfer, PaymentMethodPix, PaymentMethodCash:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "PENDENTE"
	PaymentStatusProcessing PaymentStatus = "PROCESSANDO"
	PaymentStatusPaid       PaymentStatus = "PAGO"
	PaymentStatusFailed     PaymentStatus = "FALHADO"
	PaymentStatusRefunded   PaymentStatus = "REEMBOLSADO"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusProcessing, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}

func ParsePaymentStatus(value string) (PaymentStatus, error) {
	s := PaymentStatus(normalizeEnum(value))
	if !s.IsValid() {
		return "", fmt.Errorf("unknown payment status %q: %w", value, ErrValidation)
	}
	return s, nil
}

type Payment struct {
	ID                   string          `json:"id,omitempty"`
	ReservationID        string          `json:"reserva_id"`
	Amount               decimal.Decimal `json:"valor"`
	Method               PaymentMethod   `json:"metodo"`
	Status               PaymentStatus   `json:"status"`
	GatewayTransactionID string          `json:"transacao_gateway_id,omitempty"`
}

func (p *Payment) Validate() error {
	if err := ValidateID("reserva_id", p.ReservationID); err != nil {
		return err
	}
	if err := nonNegative("valor", p.Amount); err != nil {
		return err
	}
	p.Method = PaymentMethod(normalizeEnum(string(p.Method)))
	if !p.Method.IsValid() {
		return invalid("metodo", fmt.Sprintf("unknown payment method %q", p.Method))
	}
	p.Status = PaymentStatus(normalizeEnum(string(p.Status)))
	if p.Status == "" {
		p.Status = PaymentStatusPending
	}
	if !p.Status.IsValid() {
		return invalid("status", fmt.Sprintf("unknown payment status %q", p.Status))
	}
	return nil
}
