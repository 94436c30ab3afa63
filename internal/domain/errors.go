package domain

import "errors"

var (
	// Ledger errors
	ErrMixedScopes       = errors.New("movements belong to different scopes")
	ErrDuplicateSequence = errors.New("duplicate (date, sequence) within scope")
	ErrMovementNotFound  = errors.New("movement not found")
	ErrScopeNotFound     = errors.New("scope not found")

	// Disbursement order errors
	ErrNoCurrencyAmount  = errors.New("at least one of amount_usd or amount_ars is required")
	ErrNonPositiveAmount = errors.New("amount must be positive")
	ErrInvalidTransition = errors.New("invalid order status transition")
	ErrOrderNotFound     = errors.New("disbursement order not found")

	// Cash entry errors
	ErrUnknownApprover = errors.New("unknown approver")
	ErrEntryNotFound   = errors.New("cash entry not found")

	// Reconciliation errors
	ErrNegativeTolerance = errors.New("tolerance must not be negative")
	ErrNegativeThreshold = errors.New("severity threshold must not be negative")
	ErrCashCountNotFound = errors.New("cash count not found")

	// Shop sale errors
	ErrSaleNotFound = errors.New("shop sale not found")

	// Aggregation errors
	ErrMixedCurrencyAggregate = errors.New("cannot aggregate across currency tracks")
)
