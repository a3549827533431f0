package pricing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// MinimumBillableDays is charged for a rental that starts and ends on the same date.
const MinimumBillableDays = 1

// Quote is the derived rental period and price. It is never persisted by this package.
type Quote struct {
	Start      Date
	End        Date
	DailyRate  decimal.Decimal
	PeriodDays int
	Total      decimal.Decimal
}

// IsZero reports whether the quote was computed from an incomplete set of dates.
func (q Quote) IsZero() bool {
	return q.PeriodDays == 0
}

// ComputeQuote derives the rental period in whole calendar days and the total price
// (period x daily rate, rounded half-up to cents).
//
// A missing start or end date yields the zero quote instead of an error, so a form can be
// re-quoted while it is still being filled in.
func ComputeQuote(start, end Date, dailyRate decimal.Decimal) (Quote, error) {
	if start.IsZero() || end.IsZero() {
		return Quote{Start: start, End: end, DailyRate: dailyRate, Total: decimal.Zero}, nil
	}
	if end.Before(start) {
		return Quote{}, &InvalidRangeError{Start: start, End: end}
	}
	if dailyRate.IsNegative() {
		return Quote{}, &InvalidRateError{Rate: dailyRate}
	}

	days := DaysBetween(start, end)
	if days < MinimumBillableDays {
		days = MinimumBillableDays
	}

	total := dailyRate.Mul(decimal.NewFromInt(int64(days))).Round(2)

	return Quote{
		Start:      start,
		End:        end,
		DailyRate:  dailyRate,
		PeriodDays: days,
		Total:      total,
	}, nil
}

// QuoteFromStrings parses wire-format inputs and computes the quote. Blank dates are treated
// as absent; a blank rate is zero.
func QuoteFromStrings(startStr, endStr, rateStr string) (Quote, error) {
	var start, end Date
	var err error

	if strings.TrimSpace(startStr) != "" {
		if start, err = ParseDate(startStr); err != nil {
			return Quote{}, fmt.Errorf("start date: %w", err)
		}
	}
	if strings.TrimSpace(endStr) != "" {
		if end, err = ParseDate(endStr); err != nil {
			return Quote{}, fmt.Errorf("end date: %w", err)
		}
	}

	rate := decimal.Zero
	if strings.TrimSpace(rateStr) != "" {
		if rate, err = decimal.NewFromString(strings.TrimSpace(rateStr)); err != nil {
			return Quote{}, fmt.Errorf("%w %q: %v", ErrRateFormat, rateStr, err)
		}
	}

	return ComputeQuote(start, end, rate)
}
