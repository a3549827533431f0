package service

import (
	"context"
	"errors"
	"testing"

	"locadora-admin/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStatsService_Summary(t *testing.T) {
	ctx := context.Background()

	setup := func() (*MockVehicleRepo, *MockCRUD[domain.Customer], *MockReservationRepo, *MockPaymentRepo, StatsService) {
		vehicles := new(MockVehicleRepo)
		customers := new(MockCRUD[domain.Customer])
		reservations := new(MockReservationRepo)
		payments := new(MockPaymentRepo)
		return vehicles, customers, reservations, payments, NewStatsService(vehicles, customers, reservations, payments)
	}

	t.Run("Counts every collection", func(t *testing.T) {
		vehicles, customers, reservations, payments, svc := setup()
		vehicles.On("List", mock.Anything).Return([]domain.Vehicle{{ID: "v1"}, {ID: "v2"}, {ID: "v3"}}, nil)
		customers.On("List", mock.Anything).Return([]domain.Customer{{ID: "c1"}}, nil)
		reservations.On("List", mock.Anything).Return([]domain.Reservation{{ID: "r1"}, {ID: "r2"}}, nil)
		payments.On("List", mock.Anything).Return([]domain.Payment{}, nil)

		stats, err := svc.Summary(ctx)
		require.NoError(t, err)
		assert.Equal(t, Stats{Vehicles: 3, Customers: 1, Reservations: 2, Payments: 0}, *stats)
	})

	t.Run("Any failure fails the summary", func(t *testing.T) {
		vehicles, customers, reservations, payments, svc := setup()
		upstream := errors.New("connection refused")
		vehicles.On("List", mock.Anything).Return([]domain.Vehicle{}, nil)
		customers.On("List", mock.Anything).Return([]domain.Customer{}, nil)
		reservations.On("List", mock.Anything).Return(nil, upstream)
		payments.On("List", mock.Anything).Return([]domain.Payment{}, nil)

		stats, err := svc.Summary(ctx)
		assert.Nil(t, stats)
		assert.ErrorIs(t, err, upstream)
		assert.ErrorContains(t, err, "failed to count reservations")
	})
}
