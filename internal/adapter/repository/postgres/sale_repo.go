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

const shopSaleColumns = `
	id, sale_date, provider, client, coordinator, quantity, item_description, sku,
	sold_usd, sold_ars, cost_usd, cost_ars, payment_method,
	net_usd, net_ars, commission_usd, commission_ars, profit_usd, profit_ars,
	status, comments, created_at, updated_at`

// ShopSaleRepository implements usecase.ShopSaleRepository.
type ShopSaleRepository struct {
	pool pgxQuerier
}

// NewShopSaleRepository creates a new ShopSaleRepository.
func NewShopSaleRepository(pool *pgxpool.Pool) *ShopSaleRepository {
	return &ShopSaleRepository{pool: pool}
}

// Create inserts a sale with its frozen derived figures.
func (r *ShopSaleRepository) Create(ctx context.Context, sale *domain.ShopSale) error {
	soldUSD, soldARS := amountToNumerics(sale.Sold)
	costUSD, costARS := amountToNumerics(sale.Cost)

	_, err := r.pool.Exec(ctx, `
		INSERT INTO shop_sales (`+shopSaleColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21, $22, $23)`,
		sale.ID, dateToPgDate(sale.Date), sale.Provider, sale.Client, sale.Coordinator,
		int32(sale.Quantity), sale.Item, sale.SKU,
		soldUSD, soldARS, costUSD, costARS, string(sale.PaymentMethod),
		decimalToNumeric(sale.NetUSD), decimalToNumeric(sale.NetARS),
		decimalToNumeric(sale.CommissionUSD), decimalToNumeric(sale.CommissionARS),
		decimalToNumeric(sale.ProfitUSD), decimalToNumeric(sale.ProfitARS),
		string(sale.Status), sale.Comments,
		timeToPgTimestamptz(sale.CreatedAt), timeToPgTimestamptz(sale.UpdatedAt),
	)

	return err
}

// GetByID retrieves a sale by ID.
func (r *ShopSaleRepository) GetByID(ctx context.Context, id string) (*domain.ShopSale, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+shopSaleColumns+`
		FROM shop_sales
		WHERE id = $1`,
		id,
	)

	sale, err := scanShopSale(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSaleNotFound
		}

		return nil, err
	}

	return sale, nil
}

// UpdateStatus persists a sale's lifecycle status.
func (r *ShopSaleRepository) UpdateStatus(ctx context.Context, id string, status domain.SaleStatus, updatedAt time.Time) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE shop_sales
		SET status = $2, updated_at = $3
		WHERE id = $1`,
		id, string(status), timeToPgTimestamptz(updatedAt),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSaleNotFound
	}

	return nil
}

// List lists sales matching the filter, newest date first.
func (r *ShopSaleRepository) List(ctx context.Context, filter usecase.ShopSaleFilter) ([]*domain.ShopSale, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+shopSaleColumns+`
		FROM shop_sales
		WHERE ($1 = '' OR coordinator = $1)
		  AND ($2 = '' OR status = $2)
		  AND ($3::date IS NULL OR sale_date >= $3)
		  AND ($4::date IS NULL OR sale_date <= $4)
		ORDER BY sale_date DESC, created_at DESC
		LIMIT $5 OFFSET $6`,
		filter.Coordinator, string(filter.Status),
		datePtrToPgDate(filter.From), datePtrToPgDate(filter.To),
		int32(filter.Limit), int32(filter.Offset),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sales []*domain.ShopSale
	for rows.Next() {
		sale, err := scanShopSale(rows)
		if err != nil {
			return nil, err
		}
		sales = append(sales, sale)
	}

	return sales, rows.Err()
}

func scanShopSale(row pgx.Row) (*domain.ShopSale, error) {
	var (
		sale                 domain.ShopSale
		date                 pgtype.Date
		quantity             int32
		soldUSD, soldARS     pgtype.Numeric
		costUSD, costARS     pgtype.Numeric
		payment              string
		netUSD, netARS       pgtype.Numeric
		commUSD, commARS     pgtype.Numeric
		profitUSD, profitARS pgtype.Numeric
		status               string
	)

	err := row.Scan(
		&sale.ID, &date, &sale.Provider, &sale.Client, &sale.Coordinator,
		&quantity, &sale.Item, &sale.SKU,
		&soldUSD, &soldARS, &costUSD, &costARS, &payment,
		&netUSD, &netARS, &commUSD, &commARS, &profitUSD, &profitARS,
		&status, &sale.Comments, &sale.CreatedAt, &sale.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	sale.Date = pgDateToDate(date)
	sale.Quantity = int(quantity)
	sale.Sold = numericsToAmount(soldUSD, soldARS)
	sale.Cost = numericsToAmount(costUSD, costARS)
	sale.PaymentMethod = domain.PaymentMethod(payment)
	sale.NetUSD = numericToDecimal(netUSD)
	sale.NetARS = numericToDecimal(netARS)
	sale.CommissionUSD = numericToDecimal(commUSD)
	sale.CommissionARS = numericToDecimal(commARS)
	sale.ProfitUSD = numericToDecimal(profitUSD)
	sale.ProfitARS = numericToDecimal(profitARS)
	sale.Status = domain.SaleStatus(status)

	return &sale, nil
}
