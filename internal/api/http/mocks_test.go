package http

import (
	"context"

	"locadora-admin/internal/domain"
	"locadora-admin/internal/lifecycle"
	"locadora-admin/internal/pricing"
	"locadora-admin/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockCatalog[T any] struct {
	mock.Mock
}

func (m *MockCatalog[T]) List(ctx context.Context) ([]T, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockCatalog[T]) Get(ctx context.Context, id string) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockCatalog[T]) Create(ctx context.Context, item *T) (*T, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockCatalog[T]) Update(ctx context.Context, id string, item *T) (*T, error) {
	args := m.Called(ctx, id, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockCatalog[T]) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockVehicleService struct {
	MockCatalog[domain.Vehicle]
}

func (m *MockVehicleService) Search(ctx context.Context, filter service.VehicleFilter) ([]domain.Vehicle, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}

func (m *MockVehicleService) SetStatus(ctx context.Context, id string, status domain.VehicleStatus, note string) (*domain.Vehicle, error) {
	args := m.Called(ctx, id, status, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

type MockPaymentService struct {
	MockCatalog[domain.Payment]
}

func (m *MockPaymentService) ListByStatus(ctx context.Context, status domain.PaymentStatus) ([]domain.Payment, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

type MockReservationService struct {
	mock.Mock
}

func (m *MockReservationService) Quote(ctx context.Context, startDate, endDate, vehicleID string) (pricing.Quote, error) {
	args := m.Called(ctx, startDate, endDate, vehicleID)
	return args.Get(0).(pricing.Quote), args.Error(1)
}

func (m *MockReservationService) List(ctx context.Context) ([]domain.Reservation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockReservationService) Get(ctx context.Context, id string) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationService) Create(ctx context.Context, draft *domain.ReservationDraft) (*domain.Reservation, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationService) Update(ctx context.Context, id string, draft *domain.ReservationDraft) (*domain.Reservation, error) {
	args := m.Called(ctx, id, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockReservationService) Confirm(ctx context.Context, id string) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationService) Cancel(ctx context.Context, id string) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationService) AvailableActions(ctx context.Context, id string) (*domain.Reservation, []lifecycle.Action, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Reservation), args.Get(1).([]lifecycle.Action), args.Error(2)
}

type MockStockService struct {
	mock.Mock
}

func (m *MockStockService) Get(ctx context.Context, id string) (*domain.StockEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockEntry), args.Error(1)
}

func (m *MockStockService) Create(ctx context.Context, entry *domain.StockEntry) (*domain.StockEntry, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockEntry), args.Error(1)
}

func (m *MockStockService) Update(ctx context.Context, id string, entry *domain.StockEntry) (*domain.StockEntry, error) {
	args := m.Called(ctx, id, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockEntry), args.Error(1)
}

func (m *MockStockService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStockService) ListByStore(ctx context.Context, storeID string) ([]domain.StockEntry, error) {
	args := m.Called(ctx, storeID)
	return args.Get(0).([]domain.StockEntry), args.Error(1)
}

func (m *MockStockService) ListByVehicle(ctx context.Context, vehicleID string) ([]domain.StockEntry, error) {
	args := m.Called(ctx, vehicleID)
	return args.Get(0).([]domain.StockEntry), args.Error(1)
}

func (m *MockStockService) Transfer(ctx context.Context, transfer *domain.StockTransfer) error {
	args := m.Called(ctx, transfer)
	return args.Error(0)
}

type MockStatusHistoryService struct {
	mock.Mock
}

func (m *MockStatusHistoryService) List(ctx context.Context, vehicleID string) ([]domain.StatusHistoryEntry, error) {
	args := m.Called(ctx, vehicleID)
	return args.Get(0).([]domain.StatusHistoryEntry), args.Error(1)
}

func (m *MockStatusHistoryService) Get(ctx context.Context, id string) (*domain.StatusHistoryEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StatusHistoryEntry), args.Error(1)
}

func (m *MockStatusHistoryService) Create(ctx context.Context, entry *domain.StatusHistoryEntry) (*domain.StatusHistoryEntry, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StatusHistoryEntry), args.Error(1)
}

type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) Summary(ctx context.Context) (*service.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Stats), args.Error(1)
}
