package jobs

import (
	"context"
	"fmt"
	"sort"

	"locadora-admin/internal/config"
	"locadora-admin/internal/domain"
	"locadora-admin/internal/logger"
)

type ReservationLister interface {
	List(ctx context.Context) ([]domain.Reservation, error)
}

type VehicleLister interface {
	List(ctx context.Context) ([]domain.Vehicle, error)
}

// Pinger reports whether the rental API answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthSink receives the outcome of each upstream probe.
type HealthSink interface {
	ReportUpstream(err error)
}

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	services *Services
	config   *config.Config
}

// Services holds all service dependencies needed by jobs
type Services struct {
	Reservations ReservationLister
	Vehicles     VehicleLister
	Upstream     Pinger
	Health       HealthSink
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(services *Services, cfg *config.Config) *JobRunner {
	return &JobRunner{
		services: services,
		config:   cfg,
	}
}

func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

func (jr *JobRunner) registry() map[string]func() {
	return map[string]func(){
		"AuditReservationQuotes": jr.AuditReservationQuotes,
		"ProbeUpstream":          jr.ProbeUpstream,
	}
}

// JobNames lists the jobs accepted by Run.
func (jr *JobRunner) JobNames() []string {
	names := make([]string, 0, len(jr.registry()))
	for name := range jr.registry() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run executes a single job by name (for manual execution)
func (jr *JobRunner) Run(name string) error {
	job, ok := jr.registry()[name]
	if !ok {
		return fmt.Errorf("unknown job %q (available: %v)", name, jr.JobNames())
	}
	job()
	return nil
}

// RunAll runs every job once (for manual execution)
func (jr *JobRunner) RunAll() {
	jr.ProbeUpstream()
	jr.AuditReservationQuotes()
}
