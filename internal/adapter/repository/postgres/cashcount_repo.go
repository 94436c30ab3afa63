package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/hcstudio/cashtrack/internal/domain"
)

const cashCountColumns = `
	id, scope, count_date, count_type, counted_usd, counted_ars,
	expected_usd, expected_ars, matches_usd, matches_ars, status,
	discrepancies, breakdown, notes, created_at`

// CashCountRepository implements usecase.CashCountRepository. Counts are
// immutable: the reconciliation result is frozen at insert time and read
// back verbatim, never recomputed against the live ledger.
type CashCountRepository struct {
	pool *pgxpool.Pool
}

// NewCashCountRepository creates a new CashCountRepository.
func NewCashCountRepository(pool *pgxpool.Pool) *CashCountRepository {
	return &CashCountRepository{pool: pool}
}

// Create inserts a reconciled cash count.
func (r *CashCountRepository) Create(ctx context.Context, count *domain.CashCount) error {
	discrepancies, err := json.Marshal(count.Discrepancies)
	if err != nil {
		return err
	}
	breakdown, err := json.Marshal(count.Breakdown)
	if err != nil {
		return err
	}

	matchesUSD := count.ComparisonUSD != nil && count.ComparisonUSD.Matches
	matchesARS := count.ComparisonARS != nil && count.ComparisonARS.Matches

	_, err = r.pool.Exec(ctx, `
		INSERT INTO cash_counts (`+cashCountColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		count.ID, count.Scope, dateToPgDate(count.CountDate), string(count.Type),
		decimalToNumeric(count.CountedUSD), decimalToNumeric(count.CountedARS),
		decimalToNumeric(count.ExpectedUSD), decimalToNumeric(count.ExpectedARS),
		matchesUSD, matchesARS, string(count.Status),
		discrepancies, breakdown, count.Notes, timeToPgTimestamptz(count.CreatedAt),
	)

	return err
}

// GetByID retrieves a cash count by ID.
func (r *CashCountRepository) GetByID(ctx context.Context, id string) (*domain.CashCount, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+cashCountColumns+`
		FROM cash_counts
		WHERE id = $1`,
		id,
	)

	count, err := scanCashCount(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCashCountNotFound
		}

		return nil, err
	}

	return count, nil
}

// ListByScope lists a scope's counts, newest count date first.
func (r *CashCountRepository) ListByScope(ctx context.Context, scope string, limit, offset int) ([]*domain.CashCount, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+cashCountColumns+`
		FROM cash_counts
		WHERE scope = $1
		ORDER BY count_date DESC, created_at DESC
		LIMIT $2 OFFSET $3`,
		scope, int32(limit), int32(offset),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []*domain.CashCount
	for rows.Next() {
		count, err := scanCashCount(rows)
		if err != nil {
			return nil, err
		}
		counts = append(counts, count)
	}

	return counts, rows.Err()
}

func scanCashCount(row pgx.Row) (*domain.CashCount, error) {
	var (
		count                    domain.CashCount
		date                     pgtype.Date
		countType, status        string
		countedUSD, countedARS   pgtype.Numeric
		expectedUSD, expectedARS pgtype.Numeric
		matchesUSD, matchesARS   bool
		discrepancies, breakdown []byte
	)

	err := row.Scan(
		&count.ID, &count.Scope, &date, &countType, &countedUSD, &countedARS,
		&expectedUSD, &expectedARS, &matchesUSD, &matchesARS, &status,
		&discrepancies, &breakdown, &count.Notes, &count.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	count.CountDate = pgDateToDate(date)
	count.Type = domain.CountType(countType)
	count.CountedUSD = numericToDecimal(countedUSD)
	count.CountedARS = numericToDecimal(countedARS)
	count.ExpectedUSD = numericToDecimal(expectedUSD)
	count.ExpectedARS = numericToDecimal(expectedARS)
	count.Status = domain.ReconciliationStatus(status)
	count.ComparisonUSD = frozenComparison(domain.USD, count.ExpectedUSD, count.CountedUSD, matchesUSD)
	count.ComparisonARS = frozenComparison(domain.ARS, count.ExpectedARS, count.CountedARS, matchesARS)

	if err := json.Unmarshal(discrepancies, &count.Discrepancies); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(breakdown, &count.Breakdown); err != nil {
		return nil, err
	}

	return &count, nil
}

func frozenComparison(cur domain.Currency, expected, counted decimal.Decimal, matches bool) *domain.LedgerComparison {
	return &domain.LedgerComparison{
		Currency:   cur,
		Expected:   expected,
		Counted:    counted,
		Difference: counted.Sub(expected),
		Matches:    matches,
	}
}
