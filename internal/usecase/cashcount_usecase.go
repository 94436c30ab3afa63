package usecase

import (
	"context"
	"time"

	"github.com/hcstudio/cashtrack/internal/domain"
	"github.com/shopspring/decimal"
)

// CashCountUseCase reconciles physical cash counts against the ledger
// balance computed for the count's scope and date.
type CashCountUseCase struct {
	countRepo    CashCountRepository
	movementRepo MovementRepository
	idGen        IDGenerator
	tolerance    domain.Tolerance
	severity     domain.SeverityThreshold
}

// NewCashCountUseCase creates a new CashCountUseCase. The tolerance is the
// configured maximum counted-vs-expected difference still treated as a
// match; zero demands exact equality. The severity threshold grades
// discrepancies High or Medium by their absolute difference.
func NewCashCountUseCase(
	countRepo CashCountRepository,
	movementRepo MovementRepository,
	idGen IDGenerator,
	tolerance domain.Tolerance,
	severity domain.SeverityThreshold,
) (*CashCountUseCase, error) {
	if err := tolerance.Validate(); err != nil {
		return nil, err
	}
	if err := severity.Validate(); err != nil {
		return nil, err
	}
	return &CashCountUseCase{
		countRepo:    countRepo,
		movementRepo: movementRepo,
		idGen:        idGen,
		tolerance:    tolerance,
		severity:     severity,
	}, nil
}

// CreateCashCountInput represents input for submitting a cash count.
type CreateCashCountInput struct {
	Scope      string
	CountDate  domain.Date
	Type       domain.CountType
	CountedUSD decimal.Decimal
	CountedARS decimal.Decimal
	Breakdown  domain.Breakdown
	Notes      string
}

func (in CreateCashCountInput) validate() error {
	if err := domain.ValidateScopeName(in.Scope); err != nil {
		return err
	}
	if in.CountDate.IsZero() {
		return domain.ErrMissingDate
	}
	if !in.Type.Valid() {
		return domain.ErrInvalidName
	}
	counted := domain.NewAmount(in.CountedUSD, in.CountedARS)
	return domain.ValidateNonNegative(counted, "counted")
}

// CreateCount reconciles the submitted count against the ledger balance as
// of the count date and persists the frozen result. The expected balance is
// read from the last committed recomputation; the comparison is stored with
// the count and never recomputed afterwards.
func (uc *CashCountUseCase) CreateCount(ctx context.Context, input CreateCashCountInput) (*domain.CashCount, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	movements, err := uc.movementRepo.ListByScope(ctx, input.Scope)
	if err != nil {
		return nil, err
	}
	expected := domain.BalanceAsOf(movements, input.CountDate)

	count := &domain.CashCount{
		ID:         uc.idGen.Generate(),
		Scope:      input.Scope,
		CountDate:  input.CountDate,
		Type:       input.Type,
		CountedUSD: input.CountedUSD,
		CountedARS: input.CountedARS,
		Breakdown:  input.Breakdown,
		Notes:      input.Notes,
		CreatedAt:  time.Now().UTC(),
	}

	if err := count.Reconcile(expected, uc.tolerance, uc.severity); err != nil {
		return nil, err
	}

	if err := uc.countRepo.Create(ctx, count); err != nil {
		return nil, err
	}

	return count, nil
}

// GetCount retrieves a cash count by ID.
func (uc *CashCountUseCase) GetCount(ctx context.Context, id string) (*domain.CashCount, error) {
	return uc.countRepo.GetByID(ctx, id)
}

// ListCountsInput represents input for listing a scope's counts.
type ListCountsInput struct {
	Scope  string
	Limit  int
	Offset int
}

// ListByScope lists a scope's cash counts.
func (uc *CashCountUseCase) ListByScope(ctx context.Context, input ListCountsInput) ([]*domain.CashCount, error) {
	if err := domain.ValidateScopeName(input.Scope); err != nil {
		return nil, err
	}
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)
	return uc.countRepo.ListByScope(ctx, input.Scope, limit, offset)
}
