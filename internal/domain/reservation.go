package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type ReservationStatus string

const (
	ReservationStatusPendingPayment ReservationStatus = "PENDENTE_PAGAMENTO"
	ReservationStatusConfirmed      ReservationStatus = "CONFIRMADA"
	ReservationStatusInProgress     ReservationStatus = "EM_CURSO"
	ReservationStatusFinished       ReservationStatus = "FINALIZADA"
	ReservationStatusCanceled       ReservationStatus = "CANCELADA"
)

var reservationStatuses = []ReservationStatus{
	ReservationStatusPendingPayment,
	ReservationStatusConfirmed,
	ReservationStatusInProgress,
	ReservationStatusFinished,
	ReservationStatusCanceled,
}

// ReservationStatuses lists every status in lifecycle order.
func ReservationStatuses() []ReservationStatus {
	out := make([]ReservationStatus, len(reservationStatuses))
	copy(out, reservationStatuses)
	return out
}

func (s ReservationStatus) IsValid() bool {
	for _, v := range reservationStatuses {
		if s == v {
			return true
		}
	}
	return false
}

func (s ReservationStatus) String() string {
	return string(s)
}

func ParseReservationStatus(value string) (ReservationStatus, error) {
	s := ReservationStatus(normalizeEnum(value))
	if !s.IsValid() {
		return "", fmt.Errorf("unknown reservation status %q: %w", value, ErrValidation)
	}
	return s, nil
}

// Channel is where a reservation originated.
type Channel string

const (
	ChannelWeb   Channel = "WEB"
	ChannelStore Channel = "LOJA"
	ChannelPhone Channel = "TELEFONE"
)

func (c Channel) IsValid() bool {
	switch c {
	case ChannelWeb, ChannelStore, ChannelPhone:
		return true
	}
	return false
}

const DateLayout = "2006-01-02"

type Reservation struct {
	ID             string            `json:"id,omitempty"`
	CustomerID     string            `json:"cliente_id"`
	VehicleID      string            `json:"veiculo_id"`
	PickupStoreID  string            `json:"loja_retirada_id"`
	ReturnStoreID  string            `json:"loja_devolucao_id"`
	StartDate      string            `json:"data_inicio"` // Format: YYYY-MM-DD
	EndDate        string            `json:"data_fim"`    // Format: YYYY-MM-DD
	TotalAmount    decimal.Decimal   `json:"valor_total"`
	PeriodDays     int               `json:"periodo"`
	DriverIncluded bool              `json:"motorista_incluido"`
	Channel        Channel           `json:"canal_origem"`
	Status         ReservationStatus `json:"status"`
}

// ReservationDraft is the operator input for creating or editing a reservation.
// Period and total are never taken from the caller; they are always re-derived.
type ReservationDraft struct {
	CustomerID     string            `json:"cliente_id"`
	VehicleID      string            `json:"veiculo_id"`
	PickupStoreID  string            `json:"loja_retirada_id"`
	ReturnStoreID  string            `json:"loja_devolucao_id"`
	StartDate      string            `json:"data_inicio"`
	EndDate        string            `json:"data_fim"`
	DriverIncluded bool              `json:"motorista_incluido"`
	Channel        Channel           `json:"canal_origem"`
	Status         ReservationStatus `json:"status"`
}

// Normalize applies the defaults used when an operator leaves optional fields blank.
func (d *ReservationDraft) Normalize() {
	d.Channel = Channel(normalizeEnum(string(d.Channel)))
	if d.Channel == "" {
		d.Channel = ChannelWeb
	}
	d.Status = ReservationStatus(normalizeEnum(string(d.Status)))
	if d.Status == "" {
		d.Status = ReservationStatusPendingPayment
	}
}

func (d *ReservationDraft) Validate() error {
	ids := []struct{ field, value string }{
		{"cliente_id", d.CustomerID},
		{"veiculo_id", d.VehicleID},
		{"loja_retirada_id", d.PickupStoreID},
		{"loja_devolucao_id", d.ReturnStoreID},
	}
	for _, id := range ids {
		if err := ValidateID(id.field, id.value); err != nil {
			return err
		}
	}
	if _, err := time.Parse(DateLayout, d.StartDate); err != nil {
		return invalid("data_inicio", "must be formatted as YYYY-MM-DD")
	}
	if _, err := time.Parse(DateLayout, d.EndDate); err != nil {
		return invalid("data_fim", "must be formatted as YYYY-MM-DD")
	}
	if !d.Channel.IsValid() {
		return invalid("canal_origem", fmt.Sprintf("unknown channel %q", d.Channel))
	}
	if !d.Status.IsValid() {
		return invalid("status", fmt.Sprintf("unknown reservation status %q", d.Status))
	}
	return nil
}

// Reservation builds the record sent to the rental API from the draft and the derived values.
func (d *ReservationDraft) Reservation(periodDays int, total decimal.Decimal) *Reservation {
	return &Reservation{
		CustomerID:     d.CustomerID,
		VehicleID:      d.VehicleID,
		PickupStoreID:  d.PickupStoreID,
		ReturnStoreID:  d.ReturnStoreID,
		StartDate:      d.StartDate,
		EndDate:        d.EndDate,
		TotalAmount:    total,
		PeriodDays:     periodDays,
		DriverIncluded: d.DriverIncluded,
		Channel:        d.Channel,
		Status:         d.Status,
	}
}
