package jobs

import (
	"context"
	"fmt"

	"locadora-admin/internal/domain"
	"locadora-admin/internal/lifecycle"
	"locadora-admin/internal/logger"
	"locadora-admin/internal/pricing"

	"github.com/shopspring/decimal"
)

// AuditReport summarizes one AuditReservationQuotes pass.
type AuditReport struct {
	Checked int
	Drifted int
	Skipped int
}

// AuditReservationQuotes re-derives period and total of every open reservation from its dates
// and the vehicle's current daily rate, and logs those that differ from the stored values.
// Nothing is written back.
func (jr *JobRunner) AuditReservationQuotes() {
	jr.runWithRecovery("AuditReservationQuotes", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*jr.config.APITimeout())
		defer cancel()

		report, err := jr.auditReservationQuotes(ctx)
		if err != nil {
			logger.Error("Failed to audit reservation quotes", "error", err)
			return
		}
		logger.Info("Audited reservation quotes",
			"checked", report.Checked, "drifted", report.Drifted, "skipped", report.Skipped)
	})
}

func (jr *JobRunner) auditReservationQuotes(ctx context.Context) (AuditReport, error) {
	var report AuditReport

	reservations, err := jr.services.Reservations.List(ctx)
	if err != nil {
		return report, err
	}
	vehicles, err := jr.services.Vehicles.List(ctx)
	if err != nil {
		return report, err
	}
	rates := make(map[string]decimal.Decimal, len(vehicles))
	for _, v := range vehicles {
		rates[v.ID] = v.DailyRate
	}

	for i := range reservations {
		r := &reservations[i]
		if lifecycle.IsTerminal(r.Status) {
			continue
		}
		rate, ok := rates[r.VehicleID]
		if !ok {
			logger.Warn("Reservation references unknown vehicle", "reservationID", r.ID, "vehicleID", r.VehicleID)
			report.Skipped++
			continue
		}

		quote, err := requote(r, rate)
		if err != nil {
			logger.Warn("Reservation cannot be priced", "reservationID", r.ID, "error", err)
			report.Skipped++
			continue
		}

		report.Checked++
		if quote.PeriodDays != r.PeriodDays || !quote.Total.Equal(r.TotalAmount) {
			report.Drifted++
			logger.Warn("Reservation quote drift",
				"reservationID", r.ID,
				"status", r.Status,
				"storedPeriod", r.PeriodDays,
				"derivedPeriod", quote.PeriodDays,
				"storedTotal", r.TotalAmount.StringFixed(2),
				"derivedTotal", quote.Total.StringFixed(2))
		}
	}
	return report, nil
}

func requote(r *domain.Reservation, rate decimal.Decimal) (pricing.Quote, error) {
	start, err := pricing.ParseDate(r.StartDate)
	if err != nil {
		return pricing.Quote{}, fmt.Errorf("start date: %w", err)
	}
	end, err := pricing.ParseDate(r.EndDate)
	if err != nil {
		return pricing.Quote{}, fmt.Errorf("end date: %w", err)
	}
	return pricing.ComputeQuote(start, end, rate)
}
