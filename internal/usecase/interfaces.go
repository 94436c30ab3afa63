package usecase

import (
	"context"
	"time"

	"github.com/hcstudio/cashtrack/internal/domain"
)

// ScopeRepository defines data access for scopes. Locking a scope row is the
// per-scope critical section: while the lock is held no other writer can
// touch the scope's movement sequence.
type ScopeRepository interface {
	// EnsureAndLock creates the scope row if missing and locks it FOR UPDATE.
	EnsureAndLock(ctx context.Context, tx Transaction, name string) (*domain.Scope, error)
	UpdateSequence(ctx context.Context, tx Transaction, name string, lastSequence int64, updatedAt time.Time) error
	List(ctx context.Context) ([]*domain.Scope, error)
}

// MovementRepository defines data access for movements.
type MovementRepository interface {
	Create(ctx context.Context, tx Transaction, movement *domain.Movement) error
	// ListByScopeTx reads a scope's full movement set inside the recompute
	// transaction.
	ListByScopeTx(ctx context.Context, tx Transaction, scope string) ([]*domain.Movement, error)
	// ListByScope reads the last committed state, ordered by (date, sequence).
	ListByScope(ctx context.Context, scope string) ([]*domain.Movement, error)
	ListAll(ctx context.Context, limit, offset int) ([]*domain.Movement, error)
	// UpdateBalances persists recomputed running balances for the whole
	// ordered sequence.
	UpdateBalances(ctx context.Context, tx Transaction, movements []*domain.Movement) error
}

// CashEntryFilter narrows cash entry listings.
type CashEntryFilter struct {
	Application domain.Application
	From        *domain.Date
	To          *domain.Date
	Limit       int
	Offset      int
}

// CashEntryRepository defines data access for general cash entries.
type CashEntryRepository interface {
	Create(ctx context.Context, entry *domain.CashEntry) error
	GetByID(ctx context.Context, id string) (*domain.CashEntry, error)
	// UpdateApprovals merges the two approval flags, the only mutable
	// fields on an entry, into the stored row. The merge is monotonic: a
	// flag set concurrently by the other party is never cleared. Returns
	// the flags as stored after the merge.
	UpdateApprovals(ctx context.Context, id string, fede, sisters bool, updatedAt time.Time) (bool, bool, error)
	List(ctx context.Context, filter CashEntryFilter) ([]*domain.CashEntry, error)
}

// DisbursementFilter narrows order listings.
type DisbursementFilter struct {
	Project  string
	Status   domain.OrderStatus
	Priority domain.OrderPriority
	Limit    int
	Offset   int
}

// DisbursementRepository defines data access for disbursement orders.
type DisbursementRepository interface {
	Create(ctx context.Context, order *domain.DisbursementOrder) error
	GetByID(ctx context.Context, id string) (*domain.DisbursementOrder, error)
	UpdateStatus(ctx context.Context, order *domain.DisbursementOrder) error
	List(ctx context.Context, filter DisbursementFilter) ([]*domain.DisbursementOrder, error)
}

// CashCountRepository defines data access for cash counts. Counts are
// written once, with their reconciliation frozen; there is no update.
type CashCountRepository interface {
	Create(ctx context.Context, count *domain.CashCount) error
	GetByID(ctx context.Context, id string) (*domain.CashCount, error)
	ListByScope(ctx context.Context, scope string, limit, offset int) ([]*domain.CashCount, error)
}

// ShopSaleFilter narrows shop sale listings.
type ShopSaleFilter struct {
	Coordinator string
	Status      domain.SaleStatus
	From        *domain.Date
	To          *domain.Date
	Limit       int
	Offset      int
}

// ShopSaleRepository defines data access for shop sales.
type ShopSaleRepository interface {
	Create(ctx context.Context, sale *domain.ShopSale) error
	GetByID(ctx context.Context, id string) (*domain.ShopSale, error)
	UpdateStatus(ctx context.Context, id string, status domain.SaleStatus, updatedAt time.Time) error
	List(ctx context.Context, filter ShopSaleFilter) ([]*domain.ShopSale, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// Retrier retries an operation on recoverable contention errors.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// IdempotencyStore deduplicates mutating requests by client-supplied key.
type IdempotencyStore interface {
	// CheckAndSet returns the stored response when the key was seen before,
	// otherwise claims the key.
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

// Cache defines caching operations for computed summaries.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
