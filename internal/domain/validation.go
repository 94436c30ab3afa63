package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Validation errors
var (
	ErrInvalidName   = errors.New("invalid or missing field")
	ErrNegativeValue = errors.New("value must not be negative")
	ErrMissingDate   = errors.New("date is required")
)

// Validation constants
const (
	MaxScopeNameLength   = 200
	MaxDescriptionLength = 500
	MaxSupplierLength    = 200
)

// ValidateScopeName validates a project or event scope name.
func ValidateScopeName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: scope name cannot be empty", ErrInvalidName)
	}
	if len(name) > MaxScopeNameLength {
		return fmt.Errorf("%w: scope name exceeds %d characters", ErrInvalidName, MaxScopeNameLength)
	}
	return nil
}

// ValidateProviderName validates a provider or supplier name.
func ValidateProviderName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: provider name cannot be empty", ErrInvalidName)
	}
	if len(name) > MaxSupplierLength {
		return fmt.Errorf("%w: provider name exceeds %d characters", ErrInvalidName, MaxSupplierLength)
	}
	return nil
}

// ValidateDescription validates a free-text description.
func ValidateDescription(desc string) error {
	desc = strings.TrimSpace(desc)
	if desc == "" {
		return fmt.Errorf("%w: description cannot be empty", ErrInvalidName)
	}
	if len(desc) > MaxDescriptionLength {
		return fmt.Errorf("%w: description exceeds %d characters", ErrInvalidName, MaxDescriptionLength)
	}
	return nil
}

// ValidateNonNegative rejects amounts with a negative present track.
// Income and expense fields are magnitudes; direction comes from the field,
// not the sign.
func ValidateNonNegative(a Amount, field string) error {
	if a.USD != nil && a.USD.IsNegative() {
		return fmt.Errorf("%w: %s_usd", ErrNegativeValue, field)
	}
	if a.ARS != nil && a.ARS.IsNegative() {
		return fmt.Errorf("%w: %s_ars", ErrNegativeValue, field)
	}
	return nil
}

// ValidatePagination clamps pagination parameters to sane bounds.
func ValidatePagination(limit, offset int) (int, int) {
	const maxPageSize = 1000
	const defaultPageSize = 50

	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
