package domain

import "time"

// StatusHistoryEntry records one vehicle status change.
type StatusHistoryEntry struct {
	ID          string        `json:"id,omitempty"`
	VehicleID   string        `json:"veiculo_id"`
	Status      VehicleStatus `json:"status"`
	Description string        `json:"descricao,omitempty"`
	CreatedAt   *time.Time    `json:"criado_em,omitempty"`
}

func (h *StatusHistoryEntry) Validate() error {
	if err := ValidateID("veiculo_id", h.VehicleID); err != nil {
		return err
	}
	if !h.Status.IsValid() {
		return invalid("status", "unknown vehicle status")
	}
	return nil
}
