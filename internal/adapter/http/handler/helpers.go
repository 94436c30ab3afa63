package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/hcstudio/cashtrack/internal/adapter/http/dto"
	"github.com/hcstudio/cashtrack/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrMovementNotFound),
		errors.Is(err, domain.ErrScopeNotFound),
		errors.Is(err, domain.ErrEntryNotFound),
		errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrCashCountNotFound),
		errors.Is(err, domain.ErrSaleNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateSequence),
		errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidName),
		errors.Is(err, domain.ErrMissingDate),
		errors.Is(err, domain.ErrNegativeValue),
		errors.Is(err, domain.ErrNoCurrencyAmount),
		errors.Is(err, domain.ErrNonPositiveAmount),
		errors.Is(err, domain.ErrUnknownApprover),
		errors.Is(err, domain.ErrNegativeTolerance),
		errors.Is(err, domain.ErrNegativeThreshold),
		errors.Is(err, domain.ErrMixedCurrencyAggregate):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// parseIntQuery parses an integer query parameter with a default value.
func parseIntQuery(r *http.Request, key string, defaultValue int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return i
}

// parseDateQuery parses a YYYY-MM-DD query parameter. Returns nil when the
// parameter is absent or malformed.
func parseDateQuery(r *http.Request, key string) *domain.Date {
	val := r.URL.Query().Get(key)
	if val == "" {
		return nil
	}
	d, err := domain.ParseDate(val)
	if err != nil {
		return nil
	}
	return &d
}
