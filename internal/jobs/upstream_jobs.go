package jobs

import (
	"context"

	"locadora-admin/internal/logger"
)

// ProbeUpstream pings the rental API and forwards the result to the health sink.
func (jr *JobRunner) ProbeUpstream() {
	jr.runWithRecovery("ProbeUpstream", func() {
		ctx, cancel := context.WithTimeout(context.Background(), jr.config.APITimeout())
		defer cancel()

		err := jr.services.Upstream.Ping(ctx)
		if jr.services.Health != nil {
			jr.services.Health.ReportUpstream(err)
		}
		if err != nil {
			logger.Error("Rental API probe failed", "error", err)
			return
		}
		logger.Debug("Rental API probe succeeded")
	})
}
