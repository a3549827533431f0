package domain

import "fmt"

// StockEntry is the number of units of a vehicle model held by a store in a given status.
type StockEntry struct {
	ID        string        `json:"id,omitempty"`
	StoreID   string        `json:"loja_id"`
	VehicleID string        `json:"veiculo_id"`
	Quantity  int           `json:"quantidade"`
	Status    VehicleStatus `json:"status"`
}

func (s *StockEntry) Validate() error {
	if err := ValidateID("loja_id", s.StoreID); err != nil {
		return err
	}
	if err := ValidateID("veiculo_id", s.VehicleID); err != nil {
		return err
	}
	if s.Quantity < 0 {
		return invalid("quantidade", "must not be negative")
	}
	if s.Status == "" {
		s.Status = VehicleStatusAvailable
	}
	if !s.Status.IsValid() {
		return invalid("status", fmt.Sprintf("unknown vehicle status %q", s.Status))
	}
	return nil
}

type StockTransfer struct {
	VehicleID   string `json:"veiculo_id"`
	FromStoreID string `json:"loja_origem_id"`
	ToStoreID   string `json:"loja_destino_id"`
	Quantity    int    `json:"quantidade"`
}

func (t *StockTransfer) Validate() error {
	if err := ValidateID("veiculo_id", t.VehicleID); err != nil {
		return err
	}
	if err := ValidateID("loja_origem_id", t.FromStoreID); err != nil {
		return err
	}
	if err := ValidateID("loja_destino_id", t.ToStoreID); err != nil {
		return err
	}
	if t.FromStoreID == t.ToStoreID {
		return invalid("loja_destino_id", "must differ from the origin store")
	}
	if t.Quantity <= 0 {
		return invalid("quantidade", "must be positive")
	}
	return nil
}
