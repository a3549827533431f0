package service

import (
	"context"
	"fmt"

	"locadora-admin/internal/domain"
	"locadora-admin/internal/repository"
)

type statusHistoryService struct {
	historyRepo repository.StatusHistoryRepository
}

func NewStatusHistoryService(historyRepo repository.StatusHistoryRepository) StatusHistoryService {
	return &statusHistoryService{historyRepo: historyRepo}
}

func (s *statusHistoryService) List(ctx context.Context, vehicleID string) ([]domain.StatusHistoryEntry, error) {
	if vehicleID == "" {
		return s.historyRepo.List(ctx)
	}
	if err := domain.ValidateID("veiculo_id", vehicleID); err != nil {
		return nil, err
	}
	return s.historyRepo.ListByVehicle(ctx, vehicleID)
}

func (s *statusHistoryService) Get(ctx context.Context, id string) (*domain.StatusHistoryEntry, error) {
	if err := domain.ValidateID("id", id); err != nil {
		return nil, err
	}
	return s.historyRepo.GetByID(ctx, id)
}

func (s *statusHistoryService) Create(ctx context.Context, entry *domain.StatusHistoryEntry) (*domain.StatusHistoryEntry, error) {
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	created, err := s.historyRepo.Create(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("failed to record status history: %w", err)
	}
	return created, nil
}
