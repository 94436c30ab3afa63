package domain_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/hcstudio/cashtrack/internal/domain"
)

func TestValidateScopeName(t *testing.T) {
	require.NoError(t, domain.ValidateScopeName("Alvear"))
	require.ErrorIs(t, domain.ValidateScopeName(""), domain.ErrInvalidName)
	require.ErrorIs(t, domain.ValidateScopeName("   "), domain.ErrInvalidName)
	require.ErrorIs(t, domain.ValidateScopeName(strings.Repeat("x", 201)), domain.ErrInvalidName)
}

func TestValidateProviderName(t *testing.T) {
	require.NoError(t, domain.ValidateProviderName("AFIP"))

	err := domain.ValidateProviderName("")
	require.ErrorIs(t, err, domain.ErrInvalidName)
	require.Contains(t, err.Error(), "provider")

	require.ErrorIs(t, domain.ValidateProviderName(strings.Repeat("x", 201)), domain.ErrInvalidName)
}

func TestValidateDescription(t *testing.T) {
	require.NoError(t, domain.ValidateDescription("paid supplier"))
	require.ErrorIs(t, domain.ValidateDescription(""), domain.ErrInvalidName)
	require.ErrorIs(t, domain.ValidateDescription(strings.Repeat("x", 501)), domain.ErrInvalidName)
}

func TestValidateNonNegative(t *testing.T) {
	neg := decimal.NewFromInt(-5)
	pos := decimal.NewFromInt(5)

	require.NoError(t, domain.ValidateNonNegative(domain.Amount{}, "income"))
	require.NoError(t, domain.ValidateNonNegative(domain.Amount{USD: &pos}, "income"))

	err := domain.ValidateNonNegative(domain.Amount{USD: &neg}, "income")
	require.ErrorIs(t, err, domain.ErrNegativeValue)
	require.Contains(t, err.Error(), "income_usd")

	err = domain.ValidateNonNegative(domain.Amount{ARS: &neg}, "expense")
	require.ErrorIs(t, err, domain.ErrNegativeValue)
	require.Contains(t, err.Error(), "expense_ars")
}

func TestValidatePagination(t *testing.T) {
	limit, offset := domain.ValidatePagination(0, -3)
	require.Equal(t, 50, limit)
	require.Equal(t, 0, offset)

	limit, _ = domain.ValidatePagination(5000, 0)
	require.Equal(t, 1000, limit)

	limit, offset = domain.ValidatePagination(20, 40)
	require.Equal(t, 20, limit)
	require.Equal(t, 40, offset)
}
