package pricing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidRange = errors.New("end date precedes start date")
	ErrInvalidRate  = errors.New("daily rate is negative")
	ErrDateFormat   = errors.New("invalid date")
	ErrRateFormat   = errors.New("invalid daily rate")
)

// InvalidRangeError is returned when the end date is earlier than the start date.
type InvalidRangeError struct {
	Start Date
	End   Date
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("end date %s precedes start date %s", e.End, e.Start)
}

func (e *InvalidRangeError) Unwrap() error { return ErrInvalidRange }

// InvalidRateError is returned for a negative daily rate.
type InvalidRateError struct {
	Rate decimal.Decimal
}

func (e *InvalidRateError) Error() string {
	return fmt.Sprintf("daily rate %s must not be negative", e.Rate.String())
}

func (e *InvalidRateError) Unwrap() error { return ErrInvalidRate }

type DateFormatError struct {
	Value  string
	Reason string
}

func (e *DateFormatError) Error() string {
	return fmt.Sprintf("invalid date %q: %s", e.Value, e.Reason)
}

func (e *DateFormatError) Unwrap() error { return ErrDateFormat }
