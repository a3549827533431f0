package service

import (
	"context"
	"errors"
	"fmt"

	"locadora-admin/internal/domain"
	"locadora-admin/internal/lifecycle"
	"locadora-admin/internal/pricing"
)

type ReservationService interface {
	Quote(ctx context.Context, startDate, endDate, vehicleID string) (pricing.Quote, error)
	List(ctx context.Context) ([]domain.Reservation, error)
	Get(ctx context.Context, id string) (*domain.Reservation, error)
	Create(ctx context.Context, draft *domain.ReservationDraft) (*domain.Reservation, error)
	Update(ctx context.Context, id string, draft *domain.ReservationDraft) (*domain.Reservation, error)
	Delete(ctx context.Context, id string) error
	Confirm(ctx context.Context, id string) (*domain.Reservation, error)
	Cancel(ctx context.Context, id string) (*domain.Reservation, error)
	AvailableActions(ctx context.Context, id string) (*domain.Reservation, []lifecycle.Action, error)
}

// CatalogService is the validated CRUD surface for records without extra behavior.
type CatalogService[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, item *T) (*T, error)
	Update(ctx context.Context, id string, item *T) (*T, error)
	Delete(ctx context.Context, id string) error
}

type VehicleService interface {
	CatalogService[domain.Vehicle]
	Search(ctx context.Context, filter VehicleFilter) ([]domain.Vehicle, error)
	SetStatus(ctx context.Context, id string, status domain.VehicleStatus, note string) (*domain.Vehicle, error)
}

type PaymentService interface {
	CatalogService[domain.Payment]
	ListByStatus(ctx context.Context, status domain.PaymentStatus) ([]domain.Payment, error)
}

type StockService interface {
	Get(ctx context.Context, id string) (*domain.StockEntry, error)
	Create(ctx context.Context, entry *domain.StockEntry) (*domain.StockEntry, error)
	Update(ctx context.Context, id string, entry *domain.StockEntry) (*domain.StockEntry, error)
	Delete(ctx context.Context, id string) error
	ListByStore(ctx context.Context, storeID string) ([]domain.StockEntry, error)
	ListByVehicle(ctx context.Context, vehicleID string) ([]domain.StockEntry, error)
	Transfer(ctx context.Context, transfer *domain.StockTransfer) error
}

type StatusHistoryService interface {
	// List returns every entry, or only those of vehicleID when it is not empty.
	List(ctx context.Context, vehicleID string) ([]domain.StatusHistoryEntry, error)
	Get(ctx context.Context, id string) (*domain.StatusHistoryEntry, error)
	Create(ctx context.Context, entry *domain.StatusHistoryEntry) (*domain.StatusHistoryEntry, error)
}

type StatsService interface {
	Summary(ctx context.Context) (*Stats, error)
}

var ErrTransitionRejected = errors.New("transition rejected by rental API")

// TransitionRejectedError is returned when the rental API refuses a transition the local guard
// allowed. Status is the reservation's status as re-read after the refusal.
type TransitionRejectedError struct {
	ReservationID string
	Action        lifecycle.Action
	Status        domain.ReservationStatus
	Err           error
}

func (e *TransitionRejectedError) Error() string {
	return fmt.Sprintf("rental API refused to %s reservation %s (current status %s): %v",
		e.Action, e.ReservationID, e.Status, e.Err)
}

func (e *TransitionRejectedError) Unwrap() error { return e.Err }

func (e *TransitionRejectedError) Is(target error) bool { return target == ErrTransitionRejected }
