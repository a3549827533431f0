package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type VehicleStatus string

const (
	VehicleStatusAvailable   VehicleStatus = "DISPONIVEL"
	VehicleStatusRented      VehicleStatus = "ALUGADO"
	VehicleStatusReserved    VehicleStatus = "RESERVADO"
	VehicleStatusMaintenance VehicleStatus = "MANUTENCAO"
	VehicleStatusOutOfArea   VehicleStatus = "FORA_AREA"
	VehicleStatusInUse       VehicleStatus = "EM_USO"
)

var vehicleStatuses = []VehicleStatus{
	VehicleStatusAvailable,
	VehicleStatusRented,
	VehicleStatusReserved,
	VehicleStatusMaintenance,
	VehicleStatusOutOfArea,
	VehicleStatusInUse,
}

func (s VehicleStatus) IsValid() bool {
	for _, v := range vehicleStatuses {
		if s == v {
			return true
		}
	}
	return false
}

func ParseVehicleStatus(value string) (VehicleStatus, error) {
	s := VehicleStatus(normalizeEnum(value))
	if !s.IsValid() {
		return "", fmt.Errorf("unknown vehicle status %q: %w", value, ErrValidation)
	}
	return s, nil
}

type Vehicle struct {
	ID           string          `json:"id,omitempty"`
	Plate        string          `json:"placa"`
	Brand        string          `json:"marca"`
	Model        string          `json:"modelo"`
	Year         int             `json:"ano"`
	Color        string          `json:"cor"`
	Doors        int             `json:"portas"`
	Mileage      float64         `json:"quilometragem"`
	Transmission string          `json:"cambio"`
	Fuel         string          `json:"combustivel"`
	DailyRate    decimal.Decimal `json:"diaria"`
	CategoryID   string          `json:"categoria_id"`
	Status       VehicleStatus   `json:"status"`
	ImageURL     string          `json:"image_url,omitempty"`
	Latitude     *float64        `json:"latitude"`
	Longitude    *float64        `json:"longitude"`
}

func (v *Vehicle) Validate() error {
	if err := requireText("placa", v.Plate); err != nil {
		return err
	}
	if err := requireText("marca", v.Brand); err != nil {
		return err
	}
	if err := requireText("modelo", v.Model); err != nil {
		return err
	}
	if v.Year <= 0 {
		return invalid("ano", "must be positive")
	}
	if v.Doors < 0 {
		return invalid("portas", "must not be negative")
	}
	if v.Mileage < 0 {
		return invalid("quilometragem", "must not be negative")
	}
	if err := nonNegative("diaria", v.DailyRate); err != nil {
		return err
	}
	if err := optionalID("categoria_id", v.CategoryID); err != nil {
		return err
	}
	if v.Status == "" {
		v.Status = VehicleStatusAvailable
	}
	if !v.Status.IsValid() {
		return invalid("status", fmt.Sprintf("unknown vehicle status %q", v.Status))
	}
	return nil
}

// DisplayName is the "brand model" label used in listings.
func (v *Vehicle) DisplayName() string {
	return v.Brand + " " + v.Model
}
