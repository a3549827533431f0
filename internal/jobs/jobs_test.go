package jobs

import (
	"context"
	"errors"
	"testing"

	"locadora-admin/internal/config"
	"locadora-admin/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockLister[T any] struct {
	mock.Mock
}

func (m *MockLister[T]) List(ctx context.Context) ([]T, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type recordingSink struct {
	reports []error
}

func (s *recordingSink) ReportUpstream(err error) {
	s.reports = append(s.reports, err)
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Parse([]byte("api:\n  base_url: http://localhost:8000\n"))
	require.NoError(t, err)
	return cfg
}

func TestAuditReservationQuotes(t *testing.T) {
	reservations := new(MockLister[domain.Reservation])
	vehicles := new(MockLister[domain.Vehicle])

	reservations.On("List", mock.Anything).Return([]domain.Reservation{
		// 4 days x 100 = 400, stored correctly
		{ID: "r1", VehicleID: "v1", StartDate: "2024-03-01", EndDate: "2024-03-05", PeriodDays: 4,
			TotalAmount: decimal.NewFromInt(400), Status: domain.ReservationStatusConfirmed},
		// same-day rental stored as zero days
		{ID: "r2", VehicleID: "v1", StartDate: "2024-03-01", EndDate: "2024-03-01", PeriodDays: 0,
			TotalAmount: decimal.Zero, Status: domain.ReservationStatusPendingPayment},
		// terminal, never checked
		{ID: "r3", VehicleID: "v1", StartDate: "2024-03-01", EndDate: "2024-03-09", PeriodDays: 1,
			TotalAmount: decimal.NewFromInt(1), Status: domain.ReservationStatusCanceled},
		// unknown vehicle
		{ID: "r4", VehicleID: "v9", StartDate: "2024-03-01", EndDate: "2024-03-02", Status: domain.ReservationStatusInProgress},
		// malformed dates
		{ID: "r5", VehicleID: "v1", StartDate: "01/03/2024", EndDate: "2024-03-02", Status: domain.ReservationStatusInProgress},
	}, nil)
	vehicles.On("List", mock.Anything).Return([]domain.Vehicle{{ID: "v1", DailyRate: decimal.NewFromInt(100)}}, nil)

	jr := NewJobRunner(&Services{Reservations: reservations, Vehicles: vehicles}, testConfig(t))

	report, err := jr.auditReservationQuotes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, AuditReport{Checked: 2, Drifted: 1, Skipped: 2}, report)
}

func TestAuditReservationQuotes_ListFailure(t *testing.T) {
	reservations := new(MockLister[domain.Reservation])
	reservations.On("List", mock.Anything).Return(nil, errors.New("502"))

	jr := NewJobRunner(&Services{Reservations: reservations, Vehicles: new(MockLister[domain.Vehicle])}, testConfig(t))

	_, err := jr.auditReservationQuotes(context.Background())
	assert.Error(t, err)

	assert.NotPanics(t, jr.AuditReservationQuotes)
}

func TestProbeUpstream(t *testing.T) {
	pinger := new(MockPinger)
	pinger.On("Ping", mock.Anything).Return(nil).Once()
	pinger.On("Ping", mock.Anything).Return(errors.New("connection refused")).Once()
	sink := &recordingSink{}

	jr := NewJobRunner(&Services{Upstream: pinger, Health: sink}, testConfig(t))
	jr.ProbeUpstream()
	jr.ProbeUpstream()

	require.Len(t, sink.reports, 2)
	assert.NoError(t, sink.reports[0])
	assert.EqualError(t, sink.reports[1], "connection refused")
}

func TestRunWithRecovery(t *testing.T) {
	jr := NewJobRunner(&Services{}, testConfig(t))
	assert.NotPanics(t, func() {
		jr.runWithRecovery("Boom", func() { panic("boom") })
	})
}

func TestRun(t *testing.T) {
	pinger := new(MockPinger)
	pinger.On("Ping", mock.Anything).Return(nil)
	jr := NewJobRunner(&Services{Upstream: pinger}, testConfig(t))

	assert.Equal(t, []string{"AuditReservationQuotes", "ProbeUpstream"}, jr.JobNames())
	require.NoError(t, jr.Run("ProbeUpstream"))
	pinger.AssertNumberOfCalls(t, "Ping", 1)

	assert.ErrorContains(t, jr.Run("PurgeArchive"), "unknown job")
}
