package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hcstudio/cashtrack/internal/domain"
	"github.com/hcstudio/cashtrack/internal/usecase"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// MovementResponse represents a movement with its running balances.
type MovementResponse struct {
	ID                string           `json:"id"`
	Scope             string           `json:"scope"`
	Date              domain.Date      `json:"date"`
	Sequence          int64            `json:"sequence"`
	Description       string           `json:"description"`
	Supplier          string           `json:"supplier,omitempty"`
	Reference         string           `json:"reference,omitempty"`
	IncomeUSD         *decimal.Decimal `json:"income_usd,omitempty"`
	IncomeARS         *decimal.Decimal `json:"income_ars,omitempty"`
	ExpenseUSD        *decimal.Decimal `json:"expense_usd,omitempty"`
	ExpenseARS        *decimal.Decimal `json:"expense_ars,omitempty"`
	RunningBalanceUSD decimal.Decimal  `json:"running_balance_usd"`
	RunningBalanceARS decimal.Decimal  `json:"running_balance_ars"`
	CreatedAt         time.Time        `json:"created_at"`
}

// MovementFromDomain converts a domain movement to a response.
func MovementFromDomain(m *domain.Movement) MovementResponse {
	return MovementResponse{
		ID:                m.ID,
		Scope:             m.Scope,
		Date:              m.Date,
		Sequence:          m.Sequence,
		Description:       m.Description,
		Supplier:          m.Supplier,
		Reference:         m.Reference,
		IncomeUSD:         m.Income.USD,
		IncomeARS:         m.Income.ARS,
		ExpenseUSD:        m.Expense.USD,
		ExpenseARS:        m.Expense.ARS,
		RunningBalanceUSD: m.RunningBalanceUSD,
		RunningBalanceARS: m.RunningBalanceARS,
		CreatedAt:         m.CreatedAt,
	}
}

// MovementsFromDomain converts a movement list.
func MovementsFromDomain(movements []*domain.Movement) []MovementResponse {
	out := make([]MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, MovementFromDomain(m))
	}
	return out
}

// ListMovementsResponse wraps a movement listing.
type ListMovementsResponse struct {
	Movements []MovementResponse `json:"movements"`
	Total     int64              `json:"total"`
}

// BalanceResponse represents a scope balance, possibly as of a date.
type BalanceResponse struct {
	Scope      string           `json:"scope"`
	AsOf       *domain.Date     `json:"as_of,omitempty"`
	BalanceUSD *decimal.Decimal `json:"balance_usd,omitempty"`
	BalanceARS *decimal.Decimal `json:"balance_ars,omitempty"`
}

// ScopeTotalsResponse represents a scope's full totals.
type ScopeTotalsResponse struct {
	Scope      string          `json:"scope"`
	IncomeUSD  decimal.Decimal `json:"income_usd"`
	ExpenseUSD decimal.Decimal `json:"expense_usd"`
	BalanceUSD decimal.Decimal `json:"balance_usd"`
	IncomeARS  decimal.Decimal `json:"income_ars"`
	ExpenseARS decimal.Decimal `json:"expense_ars"`
	BalanceARS decimal.Decimal `json:"balance_ars"`
}

// ScopeTotalsFromDomain converts scope totals to a response.
func ScopeTotalsFromDomain(scope string, t domain.ScopeTotals) ScopeTotalsResponse {
	return ScopeTotalsResponse{
		Scope:      scope,
		IncomeUSD:  t.IncomeUSD,
		ExpenseUSD: t.ExpenseUSD,
		BalanceUSD: t.BalanceUSD(),
		IncomeARS:  t.IncomeARS,
		ExpenseARS: t.ExpenseARS,
		BalanceARS: t.BalanceARS(),
	}
}

// CashEntryResponse represents a general cash entry.
type CashEntryResponse struct {
	ID                string           `json:"id"`
	Date              domain.Date      `json:"date"`
	Description       string           `json:"description"`
	Application       string           `json:"application"`
	Provider          string           `json:"provider"`
	IncomeUSD         *decimal.Decimal `json:"income_usd,omitempty"`
	IncomeARS         *decimal.Decimal `json:"income_ars,omitempty"`
	ExpenseUSD        *decimal.Decimal `json:"expense_usd,omitempty"`
	ExpenseARS        *decimal.Decimal `json:"expense_ars,omitempty"`
	ApprovedByFede    bool             `json:"approved_by_fede"`
	ApprovedBySisters bool             `json:"approved_by_sisters"`
	Status            string           `json:"status"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// CashEntryFromDomain converts a domain cash entry to a response. Status is
// derived from the approval flags at conversion time.
func CashEntryFromDomain(e *domain.CashEntry) CashEntryResponse {
	return CashEntryResponse{
		ID:                e.ID,
		Date:              e.Date,
		Description:       e.Description,
		Application:       string(e.Application),
		Provider:          e.Provider,
		IncomeUSD:         e.Income.USD,
		IncomeARS:         e.Income.ARS,
		ExpenseUSD:        e.Expense.USD,
		ExpenseARS:        e.Expense.ARS,
		ApprovedByFede:    e.ApprovedByFede,
		ApprovedBySisters: e.ApprovedBySisters,
		Status:            string(e.Status()),
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}

// CashEntriesFromDomain converts a cash entry list.
func CashEntriesFromDomain(entries []*domain.CashEntry) []CashEntryResponse {
	out := make([]CashEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, CashEntryFromDomain(e))
	}
	return out
}

// ListCashEntriesResponse wraps a cash entry listing.
type ListCashEntriesResponse struct {
	Entries []CashEntryResponse `json:"entries"`
	Total   int64               `json:"total"`
}

// DisbursementResponse represents a disbursement order.
type DisbursementResponse struct {
	ID               string           `json:"id"`
	Project          string           `json:"project"`
	DisbursementType string           `json:"disbursement_type"`
	AmountUSD        *decimal.Decimal `json:"amount_usd,omitempty"`
	AmountARS        *decimal.Decimal `json:"amount_ars,omitempty"`
	Supplier         string           `json:"supplier"`
	Description      string           `json:"description"`
	DueDate          *domain.Date     `json:"due_date,omitempty"`
	Priority         string           `json:"priority"`
	Status           string           `json:"status"`
	IsOverdue        bool             `json:"is_overdue"`
	RequestedBy      string           `json:"requested_by"`
	ApprovedBy       string           `json:"approved_by,omitempty"`
	ProcessedBy      string           `json:"processed_by,omitempty"`
	RejectionReason  string           `json:"rejection_reason,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// DisbursementFromDomain converts an order to a response. is_overdue is
// evaluated against today at conversion time, never read from storage.
func DisbursementFromDomain(o *domain.DisbursementOrder, today domain.Date) DisbursementResponse {
	return DisbursementResponse{
		ID:               o.ID,
		Project:          o.Project,
		DisbursementType: string(o.Type),
		AmountUSD:        o.Amount.USD,
		AmountARS:        o.Amount.ARS,
		Supplier:         o.Supplier,
		Description:      o.Description,
		DueDate:          o.DueDate,
		Priority:         string(o.Priority),
		Status:           string(o.Status),
		IsOverdue:        o.IsOverdue(today),
		RequestedBy:      o.RequestedBy,
		ApprovedBy:       o.ApprovedBy,
		ProcessedBy:      o.ProcessedBy,
		RejectionReason:  o.RejectionReason,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}

// DisbursementsFromDomain converts an order list.
func DisbursementsFromDomain(orders []*domain.DisbursementOrder, today domain.Date) []DisbursementResponse {
	out := make([]DisbursementResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, DisbursementFromDomain(o, today))
	}
	return out
}

// ListDisbursementsResponse wraps an order listing.
type ListDisbursementsResponse struct {
	Orders []DisbursementResponse `json:"orders"`
	Total  int64                  `json:"total"`
}

// LedgerComparisonResponse represents one track's reconciliation result.
type LedgerComparisonResponse struct {
	Currency   string          `json:"currency"`
	Expected   decimal.Decimal `json:"expected"`
	Counted    decimal.Decimal `json:"counted"`
	Difference decimal.Decimal `json:"difference"`
	Matches    bool            `json:"matches"`
}

func ledgerComparisonFromDomain(c *domain.LedgerComparison) *LedgerComparisonResponse {
	if c == nil {
		return nil
	}
	return &LedgerComparisonResponse{
		Currency:   string(c.Currency),
		Expected:   c.Expected,
		Counted:    c.Counted,
		Difference: c.Difference,
		Matches:    c.Matches,
	}
}

// DiscrepancyResponse represents one reconciliation discrepancy.
type DiscrepancyResponse struct {
	Type       string          `json:"type"`
	Severity   string          `json:"severity"`
	Currency   string          `json:"currency"`
	Expected   decimal.Decimal `json:"expected"`
	Counted    decimal.Decimal `json:"counted"`
	Difference decimal.Decimal `json:"difference"`
}

// CashCountResponse represents a reconciled cash count.
type CashCountResponse struct {
	ID             string          `json:"id"`
	Scope          string          `json:"scope"`
	CountDate      domain.Date     `json:"count_date"`
	CountType      string          `json:"count_type"`
	CashUSDCounted decimal.Decimal `json:"cash_usd_counted"`
	CashARSCounted decimal.Decimal `json:"cash_ars_counted"`

	LedgerComparisonUSD *LedgerComparisonResponse `json:"ledger_comparison_usd"`
	LedgerComparisonARS *LedgerComparisonResponse `json:"ledger_comparison_ars"`
	Status              string                    `json:"status"`
	Discrepancies       []DiscrepancyResponse     `json:"discrepancies"`

	BreakdownTotalUSD decimal.Decimal `json:"breakdown_total_usd"`
	BreakdownTotalARS decimal.Decimal `json:"breakdown_total_ars"`

	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CashCountFromDomain converts a cash count to a response.
func CashCountFromDomain(c *domain.CashCount) CashCountResponse {
	discrepancies := make([]DiscrepancyResponse, 0, len(c.Discrepancies))
	for _, d := range c.Discrepancies {
		discrepancies = append(discrepancies, DiscrepancyResponse{
			Type:       string(d.Type),
			Severity:   string(d.Severity),
			Currency:   string(d.Currency),
			Expected:   d.Expected,
			Counted:    d.Counted,
			Difference: d.Difference,
		})
	}

	totals := c.Breakdown.Totals()

	return CashCountResponse{
		ID:                  c.ID,
		Scope:               c.Scope,
		CountDate:           c.CountDate,
		CountType:           string(c.Type),
		CashUSDCounted:      c.CountedUSD,
		CashARSCounted:      c.CountedARS,
		LedgerComparisonUSD: ledgerComparisonFromDomain(c.ComparisonUSD),
		LedgerComparisonARS: ledgerComparisonFromDomain(c.ComparisonARS),
		Status:              string(c.Status),
		Discrepancies:       discrepancies,
		BreakdownTotalUSD:   totals.TotalUSD,
		BreakdownTotalARS:   totals.TotalARS,
		Notes:               c.Notes,
		CreatedAt:           c.CreatedAt,
	}
}

// CashCountsFromDomain converts a cash count list.
func CashCountsFromDomain(counts []*domain.CashCount) []CashCountResponse {
	out := make([]CashCountResponse, 0, len(counts))
	for _, c := range counts {
		out = append(out, CashCountFromDomain(c))
	}
	return out
}

// ScopeSummaryResponse represents one scope's aggregate rollup.
type ScopeSummaryResponse struct {
	Scope         string          `json:"scope"`
	IncomeUSD     decimal.Decimal `json:"income_usd"`
	ExpenseUSD    decimal.Decimal `json:"expense_usd"`
	BalanceUSD    decimal.Decimal `json:"balance_usd"`
	IncomeARS     decimal.Decimal `json:"income_ars"`
	ExpenseARS    decimal.Decimal `json:"expense_ars"`
	BalanceARS    decimal.Decimal `json:"balance_ars"`
	MovementCount int             `json:"movement_count"`
}

// ScopeSummariesFromDomain converts scope aggregates, keeping their order.
func ScopeSummariesFromDomain(groups []domain.ScopeAggregate) []ScopeSummaryResponse {
	out := make([]ScopeSummaryResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, ScopeSummaryResponse{
			Scope:         g.Scope,
			IncomeUSD:     g.Totals.IncomeUSD,
			ExpenseUSD:    g.Totals.ExpenseUSD,
			BalanceUSD:    g.Totals.BalanceUSD(),
			IncomeARS:     g.Totals.IncomeARS,
			ExpenseARS:    g.Totals.ExpenseARS,
			BalanceARS:    g.Totals.BalanceARS(),
			MovementCount: g.Count,
		})
	}
	return out
}

// MonthlySummaryResponse represents one month's rollup inside a scope.
type MonthlySummaryResponse struct {
	Month         string          `json:"month"`
	IncomeUSD     decimal.Decimal `json:"income_usd"`
	ExpenseUSD    decimal.Decimal `json:"expense_usd"`
	BalanceUSD    decimal.Decimal `json:"balance_usd"`
	IncomeARS     decimal.Decimal `json:"income_ars"`
	ExpenseARS    decimal.Decimal `json:"expense_ars"`
	BalanceARS    decimal.Decimal `json:"balance_ars"`
	MovementCount int             `json:"movement_count"`
}

// MonthlySummariesFromDomain converts monthly aggregates, keeping their
// chronological order.
func MonthlySummariesFromDomain(months []domain.MonthlyAggregate) []MonthlySummaryResponse {
	out := make([]MonthlySummaryResponse, 0, len(months))
	for _, m := range months {
		out = append(out, MonthlySummaryResponse{
			Month:         m.Month.String(),
			IncomeUSD:     m.Totals.IncomeUSD,
			ExpenseUSD:    m.Totals.ExpenseUSD,
			BalanceUSD:    m.Totals.BalanceUSD(),
			IncomeARS:     m.Totals.IncomeARS,
			ExpenseARS:    m.Totals.ExpenseARS,
			BalanceARS:    m.Totals.BalanceARS(),
			MovementCount: m.Count,
		})
	}
	return out
}

// ApplicationSummaryResponse represents one application category's rollup of
// general cash entries.
type ApplicationSummaryResponse struct {
	Application string          `json:"application"`
	IncomeUSD   decimal.Decimal `json:"income_usd"`
	ExpenseUSD  decimal.Decimal `json:"expense_usd"`
	IncomeARS   decimal.Decimal `json:"income_ars"`
	ExpenseARS  decimal.Decimal `json:"expense_ars"`
	EntryCount  int             `json:"entry_count"`
	Pending     int             `json:"pending"`
}

// ApplicationSummariesFromDomain converts application rollups.
func ApplicationSummariesFromDomain(summaries []usecase.ApplicationSummary) []ApplicationSummaryResponse {
	out := make([]ApplicationSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, ApplicationSummaryResponse{
			Application: string(s.Application),
			IncomeUSD:   s.Totals.IncomeUSD,
			ExpenseUSD:  s.Totals.ExpenseUSD,
			IncomeARS:   s.Totals.IncomeARS,
			ExpenseARS:  s.Totals.ExpenseARS,
			EntryCount:  s.Count,
			Pending:     s.Pending,
		})
	}
	return out
}

// ShopSaleResponse represents a shop sale with its derived figures.
type ShopSaleResponse struct {
	ID            string           `json:"id"`
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
	NetUSD        decimal.Decimal  `json:"net_sale_usd"`
	NetARS        decimal.Decimal  `json:"net_sale_ars"`
	CommissionUSD decimal.Decimal  `json:"commission_usd"`
	CommissionARS decimal.Decimal  `json:"commission_ars"`
	ProfitUSD     decimal.Decimal  `json:"profit_usd"`
	ProfitARS     decimal.Decimal  `json:"profit_ars"`
	Status        string           `json:"status"`
	Comments      string           `json:"comments,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// ShopSaleFromDomain converts a shop sale to a response.
func ShopSaleFromDomain(s *domain.ShopSale) ShopSaleResponse {
	return ShopSaleResponse{
		ID:            s.ID,
		Date:          s.Date,
		Provider:      s.Provider,
		Client:        s.Client,
		Coordinator:   s.Coordinator,
		Quantity:      s.Quantity,
		Item:          s.Item,
		SKU:           s.SKU,
		SoldUSD:       s.Sold.USD,
		SoldARS:       s.Sold.ARS,
		CostUSD:       s.Cost.USD,
		CostARS:       s.Cost.ARS,
		PaymentMethod: string(s.PaymentMethod),
		NetUSD:        s.NetUSD,
		NetARS:        s.NetARS,
		CommissionUSD: s.CommissionUSD,
		CommissionARS: s.CommissionARS,
		ProfitUSD:     s.ProfitUSD,
		ProfitARS:     s.ProfitARS,
		Status:        string(s.Status),
		Comments:      s.Comments,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

// ShopSalesFromDomain converts a slice of shop sales.
func ShopSalesFromDomain(sales []*domain.ShopSale) []ShopSaleResponse {
	out := make([]ShopSaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, ShopSaleFromDomain(s))
	}
	return out
}

// ListShopSalesResponse wraps a shop sale listing.
type ListShopSalesResponse struct {
	Sales []ShopSaleResponse `json:"sales"`
	Total int64              `json:"total"`
}
