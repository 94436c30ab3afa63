package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hcstudio/cashtrack/internal/domain"
	"github.com/hcstudio/cashtrack/internal/usecase"
)

const disbursementColumns = `
	id, project, disbursement_type, amount_usd, amount_ars, supplier, description,
	due_date, priority, status, requested_by, approved_by, processed_by,
	rejection_reason, created_at, updated_at`

// DisbursementRepository implements usecase.DisbursementRepository.
type DisbursementRepository struct {
	pool pgxQuerier
}

// NewDisbursementRepository creates a new DisbursementRepository.
func NewDisbursementRepository(pool *pgxpool.Pool) *DisbursementRepository {
	return newDisbursementRepositoryWithPool(pool)
}

func newDisbursementRepositoryWithPool(pool pgxQuerier) *DisbursementRepository {
	return &DisbursementRepository{pool: pool}
}

// Create inserts an order.
func (r *DisbursementRepository) Create(ctx context.Context, order *domain.DisbursementOrder) error {
	amountUSD, amountARS := amountToNumerics(order.Amount)

	_, err := r.pool.Exec(ctx, `
		INSERT INTO disbursement_orders (`+disbursementColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		order.ID, order.Project, string(order.Type), amountUSD, amountARS, order.Supplier, order.Description,
		datePtrToPgDate(order.DueDate), string(order.Priority), string(order.Status),
		order.RequestedBy, order.ApprovedBy, order.ProcessedBy, order.RejectionReason,
		timeToPgTimestamptz(order.CreatedAt), timeToPgTimestamptz(order.UpdatedAt),
	)

	return err
}

// GetByID retrieves an order by ID.
func (r *DisbursementRepository) GetByID(ctx context.Context, id string) (*domain.DisbursementOrder, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+disbursementColumns+`
		FROM disbursement_orders
		WHERE id = $1`,
		id,
	)

	order, err := scanDisbursement(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}

		return nil, err
	}

	return order, nil
}

// UpdateStatus persists an order after a lifecycle transition. The WHERE
// clause refuses writes to orders that reached a terminal state, so a
// racing transition fails instead of resurrecting the order.
func (r *DisbursementRepository) UpdateStatus(ctx context.Context, order *domain.DisbursementOrder) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE disbursement_orders
		SET status = $2, approved_by = $3, processed_by = $4, rejection_reason = $5, updated_at = $6
		WHERE id = $1 AND status NOT IN ($7, $8)`,
		order.ID, string(order.Status), order.ApprovedBy, order.ProcessedBy, order.RejectionReason,
		timeToPgTimestamptz(order.UpdatedAt),
		string(domain.OrderStatusProcessed), string(domain.OrderStatusRejected),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInvalidTransition
	}

	return nil
}

// List lists orders matching the filter, urgent and newest first.
func (r *DisbursementRepository) List(ctx context.Context, filter usecase.DisbursementFilter) ([]*domain.DisbursementOrder, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+disbursementColumns+`
		FROM disbursement_orders
		WHERE ($1 = '' OR project = $1)
		  AND ($2 = '' OR status = $2)
		  AND ($3 = '' OR priority = $3)
		ORDER BY CASE priority
			WHEN 'Urgent' THEN 0
			WHEN 'High' THEN 1
			WHEN 'Normal' THEN 2
			ELSE 3
		END, created_at DESC
		LIMIT $4 OFFSET $5`,
		filter.Project, string(filter.Status), string(filter.Priority),
		int32(filter.Limit), int32(filter.Offset),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*domain.DisbursementOrder
	for rows.Next() {
		order, err := scanDisbursement(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, rows.Err()
}

func scanDisbursement(row pgx.Row) (*domain.DisbursementOrder, error) {
	var (
		order                domain.DisbursementOrder
		orderType            string
		amountUSD, amountARS pgtype.Numeric
		dueDate              pgtype.Date
		priority, status     string
	)

	err := row.Scan(
		&order.ID, &order.Project, &orderType, &amountUSD, &amountARS, &order.Supplier, &order.Description,
		&dueDate, &priority, &status, &order.RequestedBy, &order.ApprovedBy, &order.ProcessedBy,
		&order.RejectionReason, &order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	order.Type = domain.DisbursementType(orderType)
	order.Amount = numericsToAmount(amountUSD, amountARS)
	order.DueDate = pgDateToDatePtr(dueDate)
	order.Priority = domain.OrderPriority(priority)
	order.Status = domain.OrderStatus(status)

	return &order, nil
}
