package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hcstudio/cashtrack/internal/domain"
	"github.com/hcstudio/cashtrack/internal/usecase"
)

const cashEntryColumns = `
	id, entry_date, description, application, provider,
	income_usd, income_ars, expense_usd, expense_ars,
	approved_by_fede, approved_by_sisters, created_at, updated_at`

// CashEntryRepository implements usecase.CashEntryRepository.
type CashEntryRepository struct {
	pool *pgxpool.Pool
}

// NewCashEntryRepository creates a new CashEntryRepository.
func NewCashEntryRepository(pool *pgxpool.Pool) *CashEntryRepository {
	return &CashEntryRepository{pool: pool}
}

// Create inserts a cash entry.
func (r *CashEntryRepository) Create(ctx context.Context, entry *domain.CashEntry) error {
	incomeUSD, incomeARS := amountToNumerics(entry.Income)
	expenseUSD, expenseARS := amountToNumerics(entry.Expense)

	_, err := r.pool.Exec(ctx, `
		INSERT INTO cash_entries (`+cashEntryColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		entry.ID, dateToPgDate(entry.Date), entry.Description, string(entry.Application), entry.Provider,
		incomeUSD, incomeARS, expenseUSD, expenseARS,
		entry.ApprovedByFede, entry.ApprovedBySisters,
		timeToPgTimestamptz(entry.CreatedAt), timeToPgTimestamptz(entry.UpdatedAt),
	)

	return err
}

// GetByID retrieves a cash entry by ID.
func (r *CashEntryRepository) GetByID(ctx context.Context, id string) (*domain.CashEntry, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+cashEntryColumns+`
		FROM cash_entries
		WHERE id = $1`,
		id,
	)

	entry, err := scanCashEntry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}

		return nil, err
	}

	return entry, nil
}

// UpdateApprovals merges the approval flags into the stored entry. The OR
// makes the write monotonic: a flag already set in the row survives even
// when the caller read the entry before a concurrent approval committed.
// Returns the flags as stored after the merge.
func (r *CashEntryRepository) UpdateApprovals(ctx context.Context, id string, fede, sisters bool, updatedAt time.Time) (bool, bool, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE cash_entries
		SET approved_by_fede = approved_by_fede OR $2,
		    approved_by_sisters = approved_by_sisters OR $3,
		    updated_at = $4
		WHERE id = $1
		RETURNING approved_by_fede, approved_by_sisters`,
		id, fede, sisters, timeToPgTimestamptz(updatedAt),
	)

	var storedFede, storedSisters bool
	if err := row.Scan(&storedFede, &storedSisters); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, false, domain.ErrEntryNotFound
		}

		return false, false, err
	}

	return storedFede, storedSisters, nil
}

// List lists cash entries matching the filter, newest date first.
func (r *CashEntryRepository) List(ctx context.Context, filter usecase.CashEntryFilter) ([]*domain.CashEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+cashEntryColumns+`
		FROM cash_entries
		WHERE ($1 = '' OR application = $1)
		  AND ($2::date IS NULL OR entry_date >= $2)
		  AND ($3::date IS NULL OR entry_date <= $3)
		ORDER BY entry_date DESC, created_at DESC
		LIMIT $4 OFFSET $5`,
		string(filter.Application), datePtrToPgDate(filter.From), datePtrToPgDate(filter.To),
		int32(filter.Limit), int32(filter.Offset),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.CashEntry
	for rows.Next() {
		entry, err := scanCashEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func scanCashEntry(row pgx.Row) (*domain.CashEntry, error) {
	var (
		entry                  domain.CashEntry
		date                   pgtype.Date
		application            string
		incomeUSD, incomeARS   pgtype.Numeric
		expenseUSD, expenseARS pgtype.Numeric
	)

	err := row.Scan(
		&entry.ID, &date, &entry.Description, &application, &entry.Provider,
		&incomeUSD, &incomeARS, &expenseUSD, &expenseARS,
		&entry.ApprovedByFede, &entry.ApprovedBySisters, &entry.CreatedAt, &entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	entry.Date = pgDateToDate(date)
	entry.Application = domain.Application(application)
	entry.Income = numericsToAmount(incomeUSD, incomeARS)
	entry.Expense = numericsToAmount(expenseUSD, expenseARS)

	return &entry, nil
}
