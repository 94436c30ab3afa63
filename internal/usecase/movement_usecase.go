package usecase

import (
	"context"
	"time"

	"github.com/hcstudio/cashtrack/internal/domain"
)

// MovementUseCase owns the ledger engine: movements are appended to a scope
// and the full running-balance sequence is recomputed inside one serialized
// transaction per scope.
type MovementUseCase struct {
	txManager    TransactionManager
	scopeRepo    ScopeRepository
	movementRepo MovementRepository
	idGen        IDGenerator
	retrier      Retrier
}

// NewMovementUseCase creates a new MovementUseCase.
func NewMovementUseCase(
	txManager TransactionManager,
	scopeRepo ScopeRepository,
	movementRepo MovementRepository,
	idGen IDGenerator,
	retrier Retrier,
) *MovementUseCase {
	return &MovementUseCase{
		txManager:    txManager,
		scopeRepo:    scopeRepo,
		movementRepo: movementRepo,
		idGen:        idGen,
		retrier:      retrier,
	}
}

// CreateMovementInput represents input for appending a movement to a scope.
type CreateMovementInput struct {
	Scope       string
	Date        domain.Date
	Description string
	Supplier    string
	Reference   string
	Income      domain.Amount
	Expense     domain.Amount
}

func (in CreateMovementInput) validate() error {
	if err := domain.ValidateScopeName(in.Scope); err != nil {
		return err
	}
	if err := domain.ValidateDescription(in.Description); err != nil {
		return err
	}
	if in.Date.IsZero() {
		return domain.ErrMissingDate
	}
	if err := domain.ValidateNonNegative(in.Income, "income"); err != nil {
		return err
	}
	return domain.ValidateNonNegative(in.Expense, "expense")
}

// CreateMovement appends a movement to its scope and recomputes the scope's
// running balances. The scope row is locked FOR UPDATE for the duration, so
// concurrent inserts into the same scope serialize; distinct scopes proceed
// in parallel. Contention errors are retried with a fresh read.
func (uc *MovementUseCase) CreateMovement(ctx context.Context, input CreateMovementInput) (*domain.Movement, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	var created *domain.Movement
	err := uc.retrier.Retry(ctx, func() error {
		created = nil

		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		scope, err := uc.scopeRepo.EnsureAndLock(ctx, tx, input.Scope)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		movement := &domain.Movement{
			ID:          uc.idGen.Generate(),
			Scope:       scope.Name,
			Date:        input.Date,
			Sequence:    scope.LastSequence + 1,
			Description: input.Description,
			Supplier:    input.Supplier,
			Reference:   input.Reference,
			Income:      input.Income,
			Expense:     input.Expense,
			CreatedAt:   now,
		}

		existing, err := uc.movementRepo.ListByScopeTx(ctx, tx, scope.Name)
		if err != nil {
			return err
		}

		ordered, err := domain.ComputeRunningBalances(append(existing, movement))
		if err != nil {
			return err
		}

		if err := uc.movementRepo.Create(ctx, tx, movement); err != nil {
			return err
		}
		if err := uc.movementRepo.UpdateBalances(ctx, tx, ordered); err != nil {
			return err
		}
		if err := uc.scopeRepo.UpdateSequence(ctx, tx, scope.Name, movement.Sequence, now); err != nil {
			return err
		}

		if err := tx.Commit(ctx); err != nil {
			return err
		}

		created = movement
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// ListByScope returns a scope's movements in (date, sequence) order with
// their committed running balances.
func (uc *MovementUseCase) ListByScope(ctx context.Context, scope string) ([]*domain.Movement, error) {
	if err := domain.ValidateScopeName(scope); err != nil {
		return nil, err
	}
	return uc.movementRepo.ListByScope(ctx, scope)
}

// ListMovementsInput represents input for listing movements across scopes.
type ListMovementsInput struct {
	Limit  int
	Offset int
}

// ListAll lists movements across all scopes.
func (uc *MovementUseCase) ListAll(ctx context.Context, input ListMovementsInput) ([]*domain.Movement, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)
	return uc.movementRepo.ListAll(ctx, limit, offset)
}

// GetBalanceAsOf returns the scope's running balance as of the given date:
// the balance of the last movement dated on or before it.
func (uc *MovementUseCase) GetBalanceAsOf(ctx context.Context, scope string, asOf domain.Date) (domain.Amount, error) {
	if err := domain.ValidateScopeName(scope); err != nil {
		return domain.Amount{}, err
	}

	movements, err := uc.movementRepo.ListByScope(ctx, scope)
	if err != nil {
		return domain.Amount{}, err
	}

	return domain.BalanceAsOf(movements, asOf), nil
}

// GetScopeBalance returns the scope's current balance and totals.
func (uc *MovementUseCase) GetScopeBalance(ctx context.Context, scope string) (domain.ScopeTotals, error) {
	if err := domain.ValidateScopeName(scope); err != nil {
		return domain.ScopeTotals{}, err
	}

	movements, err := uc.movementRepo.ListByScope(ctx, scope)
	if err != nil {
		return domain.ScopeTotals{}, err
	}

	return domain.TotalsOf(movements), nil
}
