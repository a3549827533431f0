package service

import (
	"context"

	"locadora-admin/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockCRUD[T any] struct {
	mock.Mock
}

func (m *MockCRUD[T]) List(ctx context.Context) ([]T, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockCRUD[T]) GetByID(ctx context.Context, id string) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockCRUD[T]) Create(ctx context.Context, item *T) (*T, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockCRUD[T]) Update(ctx context.Context, id string, item *T) (*T, error) {
	args := m.Called(ctx, id, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockCRUD[T]) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockVehicleRepo struct {
	MockCRUD[domain.Vehicle]
}

func (m *MockVehicleRepo) UpdateStatus(ctx context.Context, id string, status domain.VehicleStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

type MockReservationRepo struct {
	MockCRUD[domain.Reservation]
}

func (m *MockReservationRepo) Confirm(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockReservationRepo) Cancel(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPaymentRepo struct {
	MockCRUD[domain.Payment]
}

func (m *MockPaymentRepo) ListByStatus(ctx context.Context, status domain.PaymentStatus) ([]domain.Payment, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

type MockStatusHistoryRepo struct {
	MockCRUD[domain.StatusHistoryEntry]
}

func (m *MockStatusHistoryRepo) ListByVehicle(ctx context.Context, vehicleID string) ([]domain.StatusHistoryEntry, error) {
	args := m.Called(ctx, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StatusHistoryEntry), args.Error(1)
}

type MockStockRepo struct {
	MockCRUD[domain.StockEntry]
}

func (m *MockStockRepo) ListByStore(ctx context.Context, storeID string) ([]domain.StockEntry, error) {
	args := m.Called(ctx, storeID)
	return args.Get(0).([]domain.StockEntry), args.Error(1)
}

func (m *MockStockRepo) ListByVehicle(ctx context.Context, vehicleID string) ([]domain.StockEntry, error) {
	args := m.Called(ctx, vehicleID)
	return args.Get(0).([]domain.StockEntry), args.Error(1)
}

func (m *MockStockRepo) Transfer(ctx context.Context, transfer *domain.StockTransfer) error {
	args := m.Called(ctx, transfer)
	return args.Error(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) ReservationStatusChanged(ctx context.Context, customer *domain.Customer, reservation *domain.Reservation) error {
	args := m.Called(ctx, customer, reservation)
	return args.Error(0)
}
