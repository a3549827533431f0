package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrValidation = errors.New("validation failed")

// ValidationError reports a single invalid field of a record.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// ValidateID checks that value is a well-formed UUID, the identifier format used by the rental API.
func ValidateID(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return invalid(field, "is required")
	}
	if _, err := uuid.Parse(value); err != nil {
		return invalid(field, "must be a UUID")
	}
	return nil
}

func requireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return invalid(field, "is required")
	}
	return nil
}

func optionalID(field, value string) error {
	if value == "" {
		return nil
	}
	return ValidateID(field, value)
}

func nonNegative(field string, value decimal.Decimal) error {
	if value.IsNegative() {
		return invalid(field, "must not be negative")
	}
	return nil
}

func normalizeEnum(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}
