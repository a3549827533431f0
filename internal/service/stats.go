package service

import (
	"context"
	"fmt"

	"locadora-admin/internal/domain"
	"locadora-admin/internal/logger"
	"locadora-admin/internal/repository"

	"golang.org/x/sync/errgroup"
)

// Stats holds the record counts shown on the back-office home page.
type Stats struct {
	Vehicles     int `json:"veiculos"`
	Customers    int `json:"clientes"`
	Reservations int `json:"reservas"`
	Payments     int `json:"pagamentos"`
}

type lister[T any] interface {
	List(ctx context.Context) ([]T, error)
}

type statsService struct {
	vehicles     lister[domain.Vehicle]
	customers    lister[domain.Customer]
	reservations lister[domain.Reservation]
	payments     lister[domain.Payment]
}

func NewStatsService(
	vehicles repository.VehicleRepository,
	customers repository.CustomerRepository,
	reservations repository.ReservationRepository,
	payments repository.PaymentRepository,
) StatsService {
	return &statsService{
		vehicles:     vehicles,
		customers:    customers,
		reservations: reservations,
		payments:     payments,
	}
}

// Summary lists the four collections concurrently. The first failure cancels the rest.
func (s *statsService) Summary(ctx context.Context) (*Stats, error) {
	logger.EnterMethod("statsService.Summary")

	var stats Stats
	g, ctx := errgroup.WithContext(ctx)
	g.Go(countOf(ctx, "vehicles", s.vehicles, &stats.Vehicles))
	g.Go(countOf(ctx, "customers", s.customers, &stats.Customers))
	g.Go(countOf(ctx, "reservations", s.reservations, &stats.Reservations))
	g.Go(countOf(ctx, "payments", s.payments, &stats.Payments))
	if err := g.Wait(); err != nil {
		logger.ExitMethodWithError("statsService.Summary", err)
		return nil, err
	}

	logger.ExitMethod("statsService.Summary",
		"vehicles", stats.Vehicles, "customers", stats.Customers,
		"reservations", stats.Reservations, "payments", stats.Payments)
	return &stats, nil
}

func countOf[T any](ctx context.Context, name string, l lister[T], dst *int) func() error {
	return func() error {
		items, err := l.List(ctx)
		if err != nil {
			return fmt.Errorf("failed to count %s: %w", name, err)
		}
		*dst = len(items)
		return nil
	}
}
