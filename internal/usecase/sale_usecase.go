package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hcstudio/cashtrack/internal/domain"
)

// ShopSaleUseCase handles the shop business line: retail sales with
// derived net, commission and profit figures.
type ShopSaleUseCase struct {
	saleRepo       ShopSaleRepository
	idGen          IDGenerator
	commissionRate decimal.Decimal
}

// NewShopSaleUseCase creates a new ShopSaleUseCase.
func NewShopSaleUseCase(saleRepo ShopSaleRepository, idGen IDGenerator) *ShopSaleUseCase {
	return &ShopSaleUseCase{
		saleRepo:       saleRepo,
		idGen:          idGen,
		commissionRate: domain.DefaultCommissionRate,
	}
}

// CreateShopSaleInput represents input for recording a shop sale.
type CreateShopSaleInput struct {
	Date          domain.Date
	Provider      string
	Client        string
	Coordinator   string
	Quantity      int
	Item          string
	SKU           string
	Sold          domain.Amount
	Cost          domain.Amount
	PaymentMethod domain.PaymentMethod
	Comments      string
}

// CreateSale records a sale in Pending state with its derived figures
// computed and frozen.
func (uc *ShopSaleUseCase) CreateSale(ctx context.Context, input CreateShopSaleInput) (*domain.ShopSale, error) {
	now := time.Now().UTC()
	sale := &domain.ShopSale{
		ID:            uc.idGen.Generate(),
		Date:          input.Date,
		Provider:      input.Provider,
		Client:        input.Client,
		Coordinator:   input.Coordinator,
		Quantity:      input.Quantity,
		Item:          input.Item,
		SKU:           input.SKU,
		Sold:          input.Sold,
		Cost:          input.Cost,
		PaymentMethod: input.PaymentMethod,
		Status:        domain.SalePending,
		Comments:      input.Comments,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := sale.Validate(); err != nil {
		return nil, err
	}
	sale.ComputeDerived(uc.commissionRate)

	if err := uc.saleRepo.Create(ctx, sale); err != nil {
		return nil, err
	}

	return sale, nil
}

// GetSale retrieves a sale by ID.
func (uc *ShopSaleUseCase) GetSale(ctx context.Context, id string) (*domain.ShopSale, error) {
	return uc.saleRepo.GetByID(ctx, id)
}

// SetSaleStatus moves a sale through its commercial lifecycle.
func (uc *ShopSaleUseCase) SetSaleStatus(ctx context.Context, id string, status domain.SaleStatus) (*domain.ShopSale, error) {
	if !status.Valid() {
		return nil, domain.ErrInvalidName
	}

	sale, err := uc.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale.Status == status {
		return sale, nil
	}

	sale.Status = status
	sale.UpdatedAt = time.Now().UTC()
	if err := uc.saleRepo.UpdateStatus(ctx, sale.ID, status, sale.UpdatedAt); err != nil {
		return nil, err
	}

	return sale, nil
}

// ListSales lists sales matching the filter.
func (uc *ShopSaleUseCase) ListSales(ctx context.Context, filter ShopSaleFilter) ([]*domain.ShopSale, error) {
	filter.Limit, filter.Offset = domain.ValidatePagination(filter.Limit, filter.Offset)
	return uc.saleRepo.List(ctx, filter)
}
