package service

import (
	"context"
	"fmt"
	"strings"

	"locadora-admin/internal/domain"
	"locadora-admin/internal/logger"
	"locadora-admin/internal/repository"
)

// VehicleFilter narrows a vehicle listing. Empty fields match everything.
type VehicleFilter struct {
	// Query matches plate, brand or model, case-insensitively.
	Query  string
	Status domain.VehicleStatus
	Brand  string
}

func (f VehicleFilter) matches(v *domain.Vehicle) bool {
	if f.Status != "" && v.Status != f.Status {
		return false
	}
	if f.Brand != "" && !strings.EqualFold(strings.TrimSpace(f.Brand), v.Brand) {
		return false
	}
	q := strings.ToLower(strings.TrimSpace(f.Query))
	if q == "" {
		return true
	}
	for _, field := range []string{v.Plate, v.Brand, v.Model} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

type vehicleService struct {
	CatalogService[domain.Vehicle]
	vehicleRepo repository.VehicleRepository
	historyRepo repository.StatusHistoryRepository
}

func NewVehicleService(vehicleRepo repository.VehicleRepository, historyRepo repository.StatusHistoryRepository) VehicleService {
	return &vehicleService{
		CatalogService: NewCatalogService[domain.Vehicle]("vehicle", vehicleRepo),
		vehicleRepo:    vehicleRepo,
		historyRepo:    historyRepo,
	}
}

func (s *vehicleService) Search(ctx context.Context, filter VehicleFilter) ([]domain.Vehicle, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, &domain.ValidationError{Field: "status", Reason: fmt.Sprintf("unknown vehicle status %q", filter.Status)}
	}
	vehicles, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]domain.Vehicle, 0, len(vehicles))
	for i := range vehicles {
		if filter.matches(&vehicles[i]) {
			matched = append(matched, vehicles[i])
		}
	}
	return matched, nil
}

// SetStatus changes a vehicle's operational status and records the change in its history.
// A failure to record history does not undo the change.
func (s *vehicleService) SetStatus(ctx context.Context, id string, status domain.VehicleStatus, note string) (*domain.Vehicle, error) {
	logger.EnterMethod("vehicleService.SetStatus", "vehicleID", id, "status", status)

	if err := domain.ValidateID("id", id); err != nil {
		logger.ExitMethodWithError("vehicleService.SetStatus", err, "vehicleID", id)
		return nil, err
	}
	if !status.IsValid() {
		err := &domain.ValidationError{Field: "status", Reason: fmt.Sprintf("unknown vehicle status %q", status)}
		logger.ExitMethodWithError("vehicleService.SetStatus", err, "vehicleID", id)
		return nil, err
	}

	if err := s.vehicleRepo.UpdateStatus(ctx, id, status); err != nil {
		logger.ExitMethodWithError("vehicleService.SetStatus", err, "vehicleID", id)
		return nil, fmt.Errorf("failed to set status of vehicle %s: %w", id, err)
	}

	if strings.TrimSpace(note) == "" {
		note = "Status alterado para " + string(status)
	}
	entry := &domain.StatusHistoryEntry{VehicleID: id, Status: status, Description: note}
	if _, err := s.historyRepo.Create(ctx, entry); err != nil {
		logger.Warn("Failed to record vehicle status history", "vehicleID", id, "status", status, "error", err)
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		logger.ExitMethodWithError("vehicleService.SetStatus", err, "vehicleID", id)
		return nil, err
	}

	logger.ExitMethod("vehicleService.SetStatus", "vehicleID", id, "status", vehicle.Status)
	return vehicle, nil
}
