package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hcstudio/cashtrack/internal/domain"
	"github.com/hcstudio/cashtrack/internal/usecase"
)

const movementColumns = `
	id, scope, movement_date, sequence, description, supplier, reference,
	income_usd, income_ars, expense_usd, expense_ars,
	running_balance_usd, running_balance_ars, created_at`

// MovementRepository implements usecase.MovementRepository.
type MovementRepository struct {
	pool *pgxpool.Pool
}

// NewMovementRepository creates a new MovementRepository.
func NewMovementRepository(pool *pgxpool.Pool) *MovementRepository {
	return &MovementRepository{pool: pool}
}

// Create inserts a movement inside the recompute transaction.
func (r *MovementRepository) Create(ctx context.Context, tx usecase.Transaction, m *domain.Movement) error {
	pgxTx := tx.(*Tx).PgxTx()

	incomeUSD, incomeARS := amountToNumerics(m.Income)
	expenseUSD, expenseARS := amountToNumerics(m.Expense)

	_, err := pgxTx.Exec(ctx, `
		INSERT INTO movements (`+movementColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		m.ID, m.Scope, dateToPgDate(m.Date), m.Sequence, m.Description, m.Supplier, m.Reference,
		incomeUSD, incomeARS, expenseUSD, expenseARS,
		decimalToNumeric(m.RunningBalanceUSD), decimalToNumeric(m.RunningBalanceARS),
		timeToPgTimestamptz(m.CreatedAt),
	)

	return err
}

// ListByScopeTx reads a scope's full movement set inside the recompute
// transaction, so the recomputation sees exactly the locked state.
func (r *MovementRepository) ListByScopeTx(ctx context.Context, tx usecase.Transaction, scope string) ([]*domain.Movement, error) {
	pgxTx := tx.(*Tx).PgxTx()
	return r.listByScope(ctx, pgxTx, scope)
}

// ListByScope reads the last committed state of a scope, ordered by
// (date, sequence).
func (r *MovementRepository) ListByScope(ctx context.Context, scope string) ([]*domain.Movement, error) {
	return r.listByScope(ctx, r.pool, scope)
}

type queryer interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func (r *MovementRepository) listByScope(ctx context.Context, q queryer, scope string) ([]*domain.Movement, error) {
	rows, err := q.Query(ctx, `
		SELECT `+movementColumns+`
		FROM movements
		WHERE scope = $1
		ORDER BY movement_date, sequence`,
		scope,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMovements(rows)
}

// ListAll lists movements across all scopes with pagination.
func (r *MovementRepository) ListAll(ctx context.Context, limit, offset int) ([]*domain.Movement, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+movementColumns+`
		FROM movements
		ORDER BY scope, movement_date, sequence
		LIMIT $1 OFFSET $2`,
		int32(limit), int32(offset),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMovements(rows)
}

// UpdateBalances persists recomputed running balances for the whole ordered
// sequence in one batch.
func (r *MovementRepository) UpdateBalances(ctx context.Context, tx usecase.Transaction, movements []*domain.Movement) error {
	pgxTx := tx.(*Tx).PgxTx()

	batch := &pgx.Batch{}
	for _, m := range movements {
		batch.Queue(`
			UPDATE movements
			SET running_balance_usd = $2, running_balance_ars = $3
			WHERE id = $1`,
			m.ID, decimalToNumeric(m.RunningBalanceUSD), decimalToNumeric(m.RunningBalanceARS),
		)
	}

	results := pgxTx.SendBatch(ctx, batch)
	defer results.Close()

	for range movements {
		if _, err := results.Exec(); err != nil {
			return err
		}
	}

	return results.Close()
}

func scanMovements(rows pgx.Rows) ([]*domain.Movement, error) {
	var movements []*domain.Movement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, err
		}
		movements = append(movements, m)
	}

	return movements, rows.Err()
}

func scanMovement(row pgx.Row) (*domain.Movement, error) {
	var (
		m                                    domain.Movement
		date                                 pgtype.Date
		incomeUSD, incomeARS                 pgtype.Numeric
		expenseUSD, expenseARS               pgtype.Numeric
		runningBalanceUSD, runningBalanceARS pgtype.Numeric
	)

	err := row.Scan(
		&m.ID, &m.Scope, &date, &m.Sequence, &m.Description, &m.Supplier, &m.Reference,
		&incomeUSD, &incomeARS, &expenseUSD, &expenseARS,
		&runningBalanceUSD, &runningBalanceARS, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	m.Date = pgDateToDate(date)
	m.Income = numericsToAmount(incomeUSD, incomeARS)
	m.Expense = numericsToAmount(expenseUSD, expenseARS)
	m.RunningBalanceUSD = numericToDecimal(runningBalanceUSD)
	m.RunningBalanceARS = numericToDecimal(runningBalanceARS)

	return &m, nil
}
