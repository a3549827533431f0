package pricing

import (
	"fmt"
		"strings"
	"time"
)

// Date represents a calendar date. The zero value means "not set".
type Date struct {
	Year  int
	Month int
	Day   int
}

// NewDate builds a Date without validating it; use ParseDate for untrusted input.
func NewDate(year, month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf returns the calendar date of t in t's own location, dropping the time of day.
func DateOf(t time.Time) Date {
	if t.IsZero() {
		return Date{}
	}
	y, m, d := t.Date()
	return Date{Year: y, Month: int(m), Day: d}
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// midnight anchors the date at 00:00 UTC so that subtraction is never skewed by DST.
func (d Date) midnight() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// ParseDate converts a yyyy-mm-dd formatted string into a Date. Every field must be
// zero-padded digits: "2024-03-01" parses, "2024-3-1" and "+2024-03-01" do not.
func ParseDate(dateStr string) (Date, error) {
	parts := strings.Split(strings.TrimSpace(dateStr), "-")
	if len(parts) != 3 {
		return Date{}, &DateFormatError{Value: dateStr, Reason: "expected yyyy-mm-dd"}
	}

	year, ok := parseDigits(parts[0], 4)
	if !ok || year < 1 {
		return Date{}, &DateFormatError{Value: dateStr, Reason: "invalid year"}
	}

	month, ok := parseDigits(parts[1], 2)
	if !ok {
		return Date{}, &DateFormatError{Value: dateStr, Reason: "invalid month"}
	}

	day, ok := parseDigits(parts[2], 2)
	if !ok {
		return Date{}, &DateFormatError{Value: dateStr, Reason: "invalid day"}
	}

	if month < 1 || month > 12 {
		return Date{}, &DateFormatError{Value: dateStr, Reason: "month must be between 1 and 12"}
	}

	if day < 1 || day > DaysInMonth(year, month) {
		return Date{}, &DateFormatError{Value: dateStr, Reason: fmt.Sprintf("day must be between 1 and %d", DaysInMonth(year, month))}
	}

	return Date{Year: year, Month: month, Day: day}, nil
}

// parseDigits parses a field of exactly width ASCII digits.
func parseDigits(field string, width int) (int, bool) {
	if len(field) != width {
		return 0, false
	}
	n := 0
	for _, c := range field {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

// DaysInMonth returns the number of days in a given month
func DaysInMonth(year, month int) int {
	if month == 2 {
		// Check for leap year
		if (year%4 == 0 && year%100 != 0) || (year%400 == 0) {
			return 29
		}
		return 28
	}

	// Months with 30 days: April, June, September, November
	if month == 4 || month == 6 || month == 9 || month == 11 {
		return 30
	}

	return 31
}

const secondsPerDay = 24 * 60 * 60

// DaysBetween returns the number of calendar days from start to end (negative when end is earlier).
// It counts from Unix day numbers; a time.Duration would saturate past ~292 years.
func DaysBetween(start, end Date) int {
	return int((end.midnight().Unix() - start.midnight().Unix()) / secondsPerDay)
}
