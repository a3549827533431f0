package repository

import (
	"context"
	"errors"

	"locadora-admin/internal/domain"
)

// ErrNotFound is matched by errors returned for records the rental API does not know.
var ErrNotFound = errors.New("record not found")

// ErrRejected is matched by errors for requests the rental API understood but refused.
var ErrRejected = errors.New("request rejected by rental API")

// CRUD is the list/get/create/update/delete surface shared by every rental API resource.
type CRUD[T any] interface {
	List(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, item *T) (*T, error)
	Update(ctx context.Context, id string, item *T) (*T, error)
	Delete(ctx context.Context, id string) error
}

type AddressRepository = CRUD[domain.Address]

type StoreRepository = CRUD[domain.Store]

type CategoryRepository = CRUD[domain.Category]

type CustomerRepository = CRUD[domain.Customer]

type VehicleRepository interface {
	CRUD[domain.Vehicle]
	UpdateStatus(ctx context.Context, id string, status domain.VehicleStatus) error
}

type ReservationRepository interface {
	CRUD[domain.Reservation]
	// Confirm and Cancel ask the rental API to apply a lifecycle transition. The API may refuse
	// independently of any local prediction.
	Confirm(ctx context.Context, id string) error
	Cancel(ctx context.Context, id string) error
}

type PaymentRepository interface {
	CRUD[domain.Payment]
	ListByStatus(ctx context.Context, status domain.PaymentStatus) ([]domain.Payment, error)
}

type StatusHistoryRepository interface {
	List(ctx context.Context) ([]domain.StatusHistoryEntry, error)
	GetByID(ctx context.Context, id string) (*domain.StatusHistoryEntry, error)
	Create(ctx context.Context, entry *domain.StatusHistoryEntry) (*domain.StatusHistoryEntry, error)
	ListByVehicle(ctx context.Context, vehicleID string) ([]domain.StatusHistoryEntry, error)
}

type StockRepository interface {
	GetByID(ctx context.Context, id string) (*domain.StockEntry, error)
	Create(ctx context.Context, entry *domain.StockEntry) (*domain.StockEntry, error)
	Update(ctx context.Context, id string, entry *domain.StockEntry) (*domain.StockEntry, error)
	Delete(ctx context.Context, id string) error
	ListByStore(ctx context.Context, storeID string) ([]domain.StockEntry, error)
	ListByVehicle(ctx context.Context, vehicleID string) ([]domain.StockEntry, error)
	Transfer(ctx context.Context, transfer *domain.StockTransfer) error
}
