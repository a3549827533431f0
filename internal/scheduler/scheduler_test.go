package scheduler

import (
	"testing"

	"locadora-admin/internal/config"
	"locadora-admin/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScheduler_RegistersJobs(t *testing.T) {
	cfg, err := config.Parse([]byte("api:\n  base_url: http://localhost:8000\n"))
	require.NoError(t, err)

	s := NewScheduler(jobs.NewJobRunner(&jobs.Services{}, cfg))
	assert.True(t, s.IsRunning())
	assert.Len(t, s.cron.Entries(), 2)
}

func TestNewScheduler_SkipsInvalidSchedule(t *testing.T) {
	cfg, err := config.Parse([]byte("api:\n  base_url: http://localhost:8000\nscheduler:\n  probe_upstream: \"not a cron\"\n"))
	require.NoError(t, err)

	s := NewScheduler(jobs.NewJobRunner(&jobs.Services{}, cfg))
	assert.Len(t, s.cron.Entries(), 1)

	s.Start()
	s.Stop()
}
