package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"locadora-admin/internal/domain"
	"locadora-admin/internal/lifecycle"
	"locadora-admin/internal/pricing"
	"locadora-admin/internal/service"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReservations struct {
	mock.Mock
}

func (m *MockReservations) Quote(ctx context.Context, startDate, endDate, vehicleID string) (pricing.Quote, error) {
	args := m.Called(ctx, startDate, endDate, vehicleID)
	return args.Get(0).(pricing.Quote), args.Error(1)
}

func (m *MockReservations) List(ctx context.Context) ([]domain.Reservation, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockReservations) Confirm(ctx context.Context, id string) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservations) Cancel(ctx context.Context, id string) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservations) AvailableActions(ctx context.Context, id string) (*domain.Reservation, []lifecycle.Action, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.Reservation), args.Get(1).([]lifecycle.Action), args.Error(2)
}

type MockVehicles struct {
	mock.Mock
}

func (m *MockVehicles) Search(ctx context.Context, filter service.VehicleFilter) ([]domain.Vehicle, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}

func (m *MockVehicles) SetStatus(ctx context.Context, id string, status domain.VehicleStatus, note string) (*domain.Vehicle, error) {
	args := m.Called(ctx, id, status, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

func run(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true

	var gotConfig string
	root := NewRootCmd(func(path string) (*App, error) {
		gotConfig = path
		return app, nil
	})
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	if err == nil {
		assert.NotEmpty(t, gotConfig)
	}
	return out.String(), err
}

func TestQuoteCommand(t *testing.T) {
	t.Run("With explicit rate", func(t *testing.T) {
		out, err := run(t, &App{}, "quote", "--start", "2024-03-01", "--end", "2024-03-05", "--rate", "100")
		require.NoError(t, err)
		assert.Contains(t, out, "Período: 4 dia(s) (2024-03-01 a 2024-03-05)")
		assert.Contains(t, out, "Total:   R$ 400.00")
	})

	t.Run("With vehicle", func(t *testing.T) {
		reservations := new(MockReservations)
		q, _ := pricing.QuoteFromStrings("2024-01-10", "2024-01-10", "150")
		reservations.On("Quote", mock.Anything, "2024-01-10", "2024-01-10", "v1").Return(q, nil)

		out, err := run(t, &App{Reservations: reservations}, "quote", "--start", "2024-01-10", "--end", "2024-01-10", "--vehicle", "v1")
		require.NoError(t, err)
		assert.Contains(t, out, "Período: 1 dia(s)")
		assert.Contains(t, out, "R$ 150.00")
	})

	t.Run("Incomplete", func(t *testing.T) {
		out, err := run(t, &App{}, "quote", "--start", "2024-01-10", "--rate", "150")
		require.NoError(t, err)
		assert.Contains(t, out, "Período incompleto")
	})

	t.Run("Inverted range", func(t *testing.T) {
		_, err := run(t, &App{}, "quote", "--start", "2024-03-05", "--end", "2024-03-01", "--rate", "100")
		assert.ErrorIs(t, err, pricing.ErrInvalidRange)
	})
}

func TestReservationsCommands(t *testing.T) {
	t.Run("List", func(t *testing.T) {
		reservations := new(MockReservations)
		reservations.On("List", mock.Anything).Return([]domain.Reservation{{
			ID: "0b6f3c9e-8a41", VehicleID: "7d1e2f3a-4b5c", StartDate: "2024-03-01", EndDate: "2024-03-05",
			PeriodDays: 4, TotalAmount: decimal.NewFromInt(400), Status: domain.ReservationStatusInProgress,
		}}, nil)

		out, err := run(t, &App{Reservations: reservations}, "reservations", "list")
		require.NoError(t, err)
		assert.Contains(t, out, "0b6f3c9e")
		assert.Contains(t, out, "400.00")
		assert.Contains(t, out, "Em Curso")
	})

	t.Run("Confirm", func(t *testing.T) {
		reservations := new(MockReservations)
		reservations.On("Confirm", mock.Anything, "r1").Return(&domain.Reservation{ID: "r1", Status: domain.ReservationStatusConfirmed}, nil)

		out, err := run(t, &App{Reservations: reservations}, "reservations", "confirm", "r1")
		require.NoError(t, err)
		assert.Contains(t, out, "Reserva r1: Confirmada")
	})

	t.Run("Cancel rejected", func(t *testing.T) {
		reservations := new(MockReservations)
		reservations.On("Cancel", mock.Anything, "r1").Return(nil, &service.TransitionRejectedError{
			ReservationID: "r1", Action: lifecycle.ActionCancel, Status: domain.ReservationStatusFinished, Err: errors.New("409"),
		})

		out, err := run(t, &App{Reservations: reservations}, "reservas", "cancel", "r1")
		assert.ErrorIs(t, err, service.ErrTransitionRejected)
		assert.Contains(t, out, "status atual: Finalizada")
	})

	t.Run("Actions", func(t *testing.T) {
		reservations := new(MockReservations)
		reservations.On("AvailableActions", mock.Anything, "r1").Return(
			&domain.Reservation{ID: "r1", Status: domain.ReservationStatusCanceled},
			lifecycle.Available(domain.ReservationStatusCanceled), nil)

		out, err := run(t, &App{Reservations: reservations}, "reservations", "actions", "r1")
		require.NoError(t, err)
		assert.Contains(t, out, "Reserva r1 (Cancelada): edit, delete")
	})

	t.Run("Missing id", func(t *testing.T) {
		_, err := run(t, &App{Reservations: new(MockReservations)}, "reservations", "confirm")
		assert.Error(t, err)
	})
}

func TestVehiclesCommands(t *testing.T) {
	t.Run("List with filters", func(t *testing.T) {
		vehicles := new(MockVehicles)
		vehicles.On("Search", mock.Anything, service.VehicleFilter{Query: "argo", Brand: "Fiat", Status: domain.VehicleStatusAvailable}).
			Return([]domain.Vehicle{{ID: "v1", Plate: "ABC1D23", Brand: "Fiat", Model: "Argo", Year: 2023,
				DailyRate: decimal.NewFromInt(120), Status: domain.VehicleStatusAvailable}}, nil)

		out, err := run(t, &App{Vehicles: vehicles}, "vehicles", "list", "--status", "disponivel", "--brand", "Fiat", "--search", "argo")
		require.NoError(t, err)
		assert.Contains(t, out, "ABC1D23")
		assert.Contains(t, out, "Fiat Argo")
		assert.Contains(t, out, "DISPONIVEL")
	})

	t.Run("Set status", func(t *testing.T) {
		vehicles := new(MockVehicles)
		vehicles.On("SetStatus", mock.Anything, "v1", domain.VehicleStatusMaintenance, "pneu").
			Return(&domain.Vehicle{ID: "v1", Plate: "ABC1D23", Brand: "Fiat", Model: "Argo", Status: domain.VehicleStatusMaintenance}, nil)

		out, err := run(t, &App{Vehicles: vehicles}, "vehicles", "set-status", "v1", "manutencao", "--note", "pneu")
		require.NoError(t, err)
		assert.Contains(t, out, "Fiat Argo (ABC1D23): MANUTENCAO")
	})

	t.Run("Unknown status", func(t *testing.T) {
		vehicles := new(MockVehicles)
		_, err := run(t, &App{Vehicles: vehicles}, "vehicles", "set-status", "v1", "VENDIDO")
		assert.ErrorIs(t, err, domain.ErrValidation)
		vehicles.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestRootCmd_LoadFailure(t *testing.T) {
	root := NewRootCmd(func(string) (*App, error) { return nil, errors.New("no such file") })
	root.SetArgs([]string{"reservations", "list"})
	root.SetOut(&bytes.Buffer{})
	err := root.Execute()
	assert.ErrorContains(t, err, "failed to load configuration")
}

type MockStats struct {
	mock.Mock
}

func (m *MockStats) Summary(ctx context.Context) (*service.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Stats), args.Error(1)
}

func TestStatsCommand(t *testing.T) {
	t.Run("Prints the counts", func(t *testing.T) {
		stats := new(MockStats)
		stats.On("Summary", mock.Anything).Return(&service.Stats{Vehicles: 12, Customers: 30, Reservations: 7, Payments: 5}, nil)

		out, err := run(t, &App{Stats: stats}, "stats")
		require.NoError(t, err)
		assert.Regexp(t, `Veículos\s+12`, out)
		assert.Regexp(t, `Clientes\s+30`, out)
		assert.Regexp(t, `Reservas\s+7`, out)
		assert.Regexp(t, `Pagamentos\s+5`, out)
	})

	t.Run("Upstream failure", func(t *testing.T) {
		stats := new(MockStats)
		stats.On("Summary", mock.Anything).Return(nil, errors.New("failed to count vehicles: timeout"))

		_, err := run(t, &App{Stats: stats}, "stats")
		assert.ErrorContains(t, err, "failed to count vehicles")
	})
}
