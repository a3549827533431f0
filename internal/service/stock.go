package service

import (
	"context"
	"fmt"

	"locadora-admin/internal/domain"
	"locadora-admin/internal/logger"
	"locadora-admin/internal/repository"
)

type stockService struct {
	stockRepo repository.StockRepository
}

func NewStockService(stockRepo repository.StockRepository) StockService {
	return &stockService{stockRepo: stockRepo}
}

func (s *stockService) Get(ctx context.Context, id string) (*domain.StockEntry, error) {
	if err := domain.ValidateID("id", id); err != nil {
		return nil, err
	}
	return s.stockRepo.GetByID(ctx, id)
}

func (s *stockService) Create(ctx context.Context, entry *domain.StockEntry) (*domain.StockEntry, error) {
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	created, err := s.stockRepo.Create(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("failed to create stock entry: %w", err)
	}
	return created, nil
}

func (s *stockService) Update(ctx context.Context, id string, entry *domain.StockEntry) (*domain.StockEntry, error) {
	if err := domain.ValidateID("id", id); err != nil {
		return nil, err
	}
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	updated, err := s.stockRepo.Update(ctx, id, entry)
	if err != nil {
		return nil, fmt.Errorf("failed to update stock entry %s: %w", id, err)
	}
	return updated, nil
}

func (s *stockService) Delete(ctx context.Context, id string) error {
	if err := domain.ValidateID("id", id); err != nil {
		return err
	}
	if err := s.stockRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete stock entry %s: %w", id, err)
	}
	return nil
}

func (s *stockService) ListByStore(ctx context.Context, storeID string) ([]domain.StockEntry, error) {
	if err := domain.ValidateID("loja_id", storeID); err != nil {
		return nil, err
	}
	return s.stockRepo.ListByStore(ctx, storeID)
}

func (s *stockService) ListByVehicle(ctx context.Context, vehicleID string) ([]domain.StockEntry, error) {
	if err := domain.ValidateID("veiculo_id", vehicleID); err != nil {
		return nil, err
	}
	return s.stockRepo.ListByVehicle(ctx, vehicleID)
}

func (s *stockService) Transfer(ctx context.Context, transfer *domain.StockTransfer) error {
	logger.EnterMethod("stockService.Transfer", "vehicleID", transfer.VehicleID,
		"from", transfer.FromStoreID, "to", transfer.ToStoreID, "quantity", transfer.Quantity)

	if err := transfer.Validate(); err != nil {
		logger.ExitMethodWithError("stockService.Transfer", err, "vehicleID", transfer.VehicleID)
		return err
	}
	if err := s.stockRepo.Transfer(ctx, transfer); err != nil {
		logger.ExitMethodWithError("stockService.Transfer", err, "vehicleID", transfer.VehicleID)
		return fmt.Errorf("failed to transfer stock: %w", err)
	}

	logger.ExitMethod("stockService.Transfer", "vehicleID", transfer.VehicleID)
	return nil
}
