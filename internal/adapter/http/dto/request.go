package dto

import (
	"github.com/shopspring/decimal"

	"github.com/hcstudio/cashtrack/internal/domain"
	"github.com/hcstudio/cashtrack/internal/usecase"
)

// CreateMovementRequest represents a request to append a movement to a scope.
type CreateMovementRequest struct {
	Scope       string           `json:"scope"`
	Date        domain.Date      `json:"date"`
	Description string           `json:"description"`
	Supplier    string           `json:"supplier,omitempty"`
	Reference   string           `json:"reference,omitempty"`
	IncomeUSD   *decimal.Decimal `json:"income_usd,omitempty"`
	IncomeARS   *decimal.Decimal `json:"income_ars,omitempty"`
	ExpenseUSD  *decimal.Decimal `json:"expense_usd,omitempty"`
	ExpenseARS  *decimal.Decimal `json:"expense_ars,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateMovementRequest) ToUseCaseInput() usecase.CreateMovementInput {
	return usecase.CreateMovementInput{
		Scope:       r.Scope,
		Date:        r.Date,
		Description: r.Description,
		Supplier:    r.Supplier,
		Reference:   r.Reference,
		Income:      domain.Amount{USD: r.IncomeUSD, ARS: r.IncomeARS},
		Expense:     domain.Amount{USD: r.ExpenseUSD, ARS: r.ExpenseARS},
	}
}

// CreateCashEntryRequest represents a request to create a general cash entry.
type CreateCashEntryRequest struct {
	Date        domain.Date      `json:"date"`
	Description string           `json:"description"`
	Application string           `json:"application"`
	Provider    string           `json:"provider"`
	IncomeUSD   *decimal.Decimal `json:"income_usd,omitempty"`
	IncomeARS   *decimal.Decimal `json:"income_ars,omitempty"`
	ExpenseUSD  *decimal.Decimal `json:"expense_usd,omitempty"`
	ExpenseARS  *decimal.Decimal `json:"expense_ars,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateCashEntryRequest) ToUseCaseInput() usecase.CreateCashEntryInput {
	return usecase.CreateCashEntryInput{
		Date:        r.Date,
		Description: r.Description,
		Application: domain.Application(r.Application),
		Provider:    r.Provider,
		Income:      domain.Amount{USD: r.IncomeUSD, ARS: r.IncomeARS},
		Expense:     domain.Amount{USD: r.ExpenseUSD, ARS: r.ExpenseARS},
	}
}

// ApproveEntryRequest names the approving party for a cash entry.
type ApproveEntryRequest struct {
	ApprovedBy string `json:"approved_by"`
}

// CreateDisbursementRequest represents a request for a disbursement order.
type CreateDisbursementRequest struct {
	Project          string           `json:"project"`
	DisbursementType string           `json:"disbursement_type"`
	AmountUSD        *decimal.Decimal `json:"amount_usd,omitempty"`
	AmountARS        *decimal.Decimal `json:"amount_ars,omitempty"`
	Supplier         string           `json:"supplier"`
	Description      string           `json:"description"`
	DueDate          *domain.Date     `json:"due_date,omitempty"`
	Priority         string           `json:"priority,omitempty"`
	RequestedBy      string           `json:"requested_by"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateDisbursementRequest) ToUseCaseInput() usecase.CreateDisbursementInput {
	return usecase.CreateDisbursementInput{
		Project:     r.Project,
		Type:        domain.DisbursementType(r.DisbursementType),
		Amount:      domain.Amount{USD: r.AmountUSD, ARS: r.AmountARS},
		Supplier:    r.Supplier,
		Description: r.Description,
		DueDate:     r.DueDate,
		Priority:    domain.OrderPriority(r.Priority),
		RequestedBy: r.RequestedBy,
	}
}

// ApproveOrderRequest names the approver of a disbursement order.
type ApproveOrderRequest struct {
	ApprovedBy string `json:"approved_by"`
}

// ProcessOrderRequest names who processed a disbursement order.
type ProcessOrderRequest struct {
	ProcessedBy string `json:"processed_by"`
}

// RejectOrderRequest carries the rejection reason.
type RejectOrderRequest struct {
	Reason string `json:"reason"`
}

// CreateCashCountRequest represents a physical cash count submission.
type CreateCashCountRequest struct {
	Scope          string          `json:"scope"`
	CountDate      domain.Date     `json:"count_date"`
	CountType      string          `json:"count_type"`
	CashUSDCounted decimal.Decimal `json:"cash_usd_counted"`
	CashARSCounted decimal.Decimal `json:"cash_ars_counted"`

	ProfitCashUSD     decimal.Decimal `json:"profit_cash_usd"`
	ProfitCashARS     decimal.Decimal `json:"profit_cash_ars"`
	ProfitTransferUSD decimal.Decimal `json:"profit_transfer_usd"`
	ProfitTransferARS decimal.Decimal `json:"profit_transfer_ars"`

	CommissionsCashUSD     decimal.Decimal `json:"commissions_cash_usd"`
	CommissionsCashARS     decimal.Decimal `json:"commissions_cash_ars"`
	CommissionsTransferUSD decimal.Decimal `json:"commissions_transfer_usd"`
	CommissionsTransferARS decimal.Decimal `json:"commissions_transfer_ars"`

	HonorariaCashUSD     decimal.Decimal `json:"honoraria_cash_usd"`
	HonorariaCashARS     decimal.Decimal `json:"honoraria_cash_ars"`
	HonorariaTransferUSD decimal.Decimal `json:"honoraria_transfer_usd"`
	HonorariaTransferARS decimal.Decimal `json:"honoraria_transfer_ars"`

	Notes string `json:"notes,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateCashCountRequest) ToUseCaseInput() usecase.CreateCashCountInput {
	return usecase.CreateCashCountInput{
		Scope:      r.Scope,
		CountDate:  r.CountDate,
		Type:       domain.CountType(r.CountType),
		CountedUSD: r.CashUSDCounted,
		CountedARS: r.CashARSCounted,
		Breakdown: domain.Breakdown{
			ProfitCashUSD:          r.ProfitCashUSD,
			ProfitCashARS:          r.ProfitCashARS,
			ProfitTransferUSD:      r.ProfitTransferUSD,
			ProfitTransferARS:      r.ProfitTransferARS,
			CommissionsCashUSD:     r.CommissionsCashUSD,
			CommissionsCashARS:     r.CommissionsCashARS,
			CommissionsTransferUSD: r.CommissionsTransferUSD,
			CommissionsTransferARS: r.CommissionsTransferARS,
			HonorariaCashUSD:       r.HonorariaCashUSD,
			HonorariaCashARS:       r.HonorariaCashARS,
			HonorariaTransferUSD:   r.HonorariaTransferUSD,
			HonorariaTransferARS:   r.HonorariaTransferARS,
		},
		Notes: r.Notes,
	}
}

// CreateShopSaleRequest represents a request to record a shop sale.
type CreateShopSaleRequest struct {
	Date          domain.Date      `json:"date"`
	Provider      string           `json:"provider"`
	Client        string           `json:"client"`
	Coordinator   string           `json:"internal_coordinator"`
	Quantity      int              `json:"quantity"`
	Item          string           `json:"item_description"`
	SKU           string           `json:"sku,omitempty"`
	SoldUSD       *decimal.Decimal `json:"sold_amount_usd,omitempty"`
	SoldARS       *decimal.Decimal `json:"sold_amount_ars,omitempty"`
	CostUSD       *decimal.Decimal `json:"cost_usd,omitempty"`
	CostARS       *decimal.Decimal `json:"cost_ars,omitempty"`
	PaymentMethod string           `json:"payment_method"`
	Comments      string           `json:"comments,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateShopSaleRequest) ToUseCaseInput() usecase.CreateShopSaleInput {
	return usecase.CreateShopSaleInput{
		Date:          r.Date,
		Provider:      r.Provider,
		Client:        r.Client,
		Coordinator:   r.Coordinator,
		Quantity:      r.Quantity,
		Item:          r.Item,
		SKU:           r.SKU,
		Sold:          domain.Amount{USD: r.SoldUSD, ARS: r.SoldARS},
		Cost:          domain.Amount{USD: r.CostUSD, ARS: r.CostARS},
		PaymentMethod: domain.PaymentMethod(r.PaymentMethod),
		Comments:      r.Comments,
	}
}

// SetSaleStatusRequest names the target lifecycle status for a shop sale.
type SetSaleStatusRequest struct {
	Status string `json:"status"`
}
