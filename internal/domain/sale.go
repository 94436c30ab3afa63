package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is how a shop sale was settled.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "Efectivo"
	PaymentTransfer PaymentMethod = "Transferencia"
	PaymentCard     PaymentMethod = "Tarjeta"
)

// Valid reports whether p is a known payment method.
func (p PaymentMethod) Valid() bool {
	switch p {
	case PaymentCash, PaymentTransfer, PaymentCard:
		return true
	}
	return false
}

// SaleStatus tracks a shop sale through its commercial lifecycle.
type SaleStatus string

const (
	SalePending   SaleStatus = "Pending"
	SaleConfirmed SaleStatus = "Confirmed"
	SaleDelivered SaleStatus = "Delivered"
	SaleCancelled SaleStatus = "Cancelled"
	SaleReturned  SaleStatus = "Returned"
)

// Valid reports whether s is a known sale status.
func (s SaleStatus) Valid() bool {
	switch s {
	case SalePending, SaleConfirmed, SaleDelivered, SaleCancelled, SaleReturned:
		return true
	}
	return false
}

// DefaultCommissionRate is the coordinator commission applied to net sales.
var DefaultCommissionRate = decimal.NewFromFloat(0.02)

// ShopSale is one retail sale in the shop business line. Sold and cost
// amounts carry the usual two independent currency tracks; the net,
// commission and profit figures are derived per track and frozen with the
// sale at creation.
type ShopSale struct {
	ID          string
	Date        Date
	Provider    string
	Client      string
	Coordinator string

	Quantity int
	Item     string
	SKU      string

	Sold          Amount
	Cost          Amount
	PaymentMethod PaymentMethod

	NetUSD        decimal.Decimal
	NetARS        decimal.Decimal
	CommissionUSD decimal.Decimal
	CommissionARS decimal.Decimal
	ProfitUSD     decimal.Decimal
	ProfitARS     decimal.Decimal

	Status   SaleStatus
	Comments string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ComputeDerived fills the net, commission and profit figures, one track at
// a time: net = sold - cost, commission = net * rate, profit = net minus
// commission. Absent tracks count as zero and the tracks never mix.
func (s *ShopSale) ComputeDerived(rate decimal.Decimal) {
	s.NetUSD = s.Sold.USDOrZero().Sub(s.Cost.USDOrZero())
	s.NetARS = s.Sold.ARSOrZero().Sub(s.Cost.ARSOrZero())
	s.CommissionUSD = s.NetUSD.Mul(rate)
	s.CommissionARS = s.NetARS.Mul(rate)
	s.ProfitUSD = s.NetUSD.Sub(s.CommissionUSD)
	s.ProfitARS = s.NetARS.Sub(s.CommissionARS)
}

// Validate checks a sale before it is persisted.
func (s *ShopSale) Validate() error {
	if s.Date.IsZero() {
		return ErrMissingDate
	}
	if err := ValidateProviderName(s.Provider); err != nil {
		return err
	}
	if strings.TrimSpace(s.Client) == "" {
		return fmt.Errorf("%w: client cannot be empty", ErrInvalidName)
	}
	if strings.TrimSpace(s.Coordinator) == "" {
		return fmt.Errorf("%w: coordinator cannot be empty", ErrInvalidName)
	}
	if s.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", ErrInvalidName)
	}
	if err := ValidateDescription(s.Item); err != nil {
		return err
	}
	if !s.PaymentMethod.Valid() {
		return fmt.Errorf("%w: payment method %q", ErrInvalidName, s.PaymentMethod)
	}
	if s.Sold.IsEmpty() {
		return ErrNoCurrencyAmount
	}
	if err := ValidateNonNegative(s.Sold, "sold_amount"); err != nil {
		return err
	}
	return ValidateNonNegative(s.Cost, "cost")
}
