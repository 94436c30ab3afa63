package domain

import (
	"github.com/shopspring/decimal"
)

// Currency is one of the two tracked currency tracks. Tracks are never
// converted into each other.
type Currency string

const (
	USD Currency = "USD"
	ARS Currency = "ARS"
)

// Valid reports whether c is a tracked currency.
func (c Currency) Valid() bool {
	return c == USD || c == ARS
}

// Amount is a dual-currency monetary value. A nil track means "absent",
// which counts as zero in arithmetic but is preserved for display.
type Amount struct {
	USD *decimal.Decimal
	ARS *decimal.Decimal
}

// NewAmount builds an Amount with both tracks present.
func NewAmount(usd, ars decimal.Decimal) Amount {
	return Amount{USD: &usd, ARS: &ars}
}

// USDAmount builds an Amount with only the USD track present.
func USDAmount(usd decimal.Decimal) Amount {
	return Amount{USD: &usd}
}

// ARSAmount builds an Amount with only the ARS track present.
func ARSAmount(ars decimal.Decimal) Amount {
	return Amount{ARS: &ars}
}

// USDOrZero returns the USD track, treating absent as zero.
func (a Amount) USDOrZero() decimal.Decimal {
	if a.USD == nil {
		return decimal.Zero
	}
	return *a.USD
}

// ARSOrZero returns the ARS track, treating absent as zero.
func (a Amount) ARSOrZero() decimal.Decimal {
	if a.ARS == nil {
		return decimal.Zero
	}
	return *a.ARS
}

// Track returns the value of a single currency track, absent as zero.
func (a Amount) Track(c Currency) decimal.Decimal {
	if c == USD {
		return a.USDOrZero()
	}
	return a.ARSOrZero()
}

// IsZero reports whether both tracks are absent or zero.
func (a Amount) IsZero() bool {
	return a.USDOrZero().IsZero() && a.ARSOrZero().IsZero()
}

// IsEmpty reports whether both tracks are absent.
func (a Amount) IsEmpty() bool {
	return a.USD == nil && a.ARS == nil
}

// Add returns the per-track sum of a and b. A track in the result is present
// when it is present in either operand.
func (a Amount) Add(b Amount) Amount {
	var out Amount
	if a.USD != nil || b.USD != nil {
		v := a.USDOrZero().Add(b.USDOrZero())
		out.USD = &v
	}
	if a.ARS != nil || b.ARS != nil {
		v := a.ARSOrZero().Add(b.ARSOrZero())
		out.ARS = &v
	}
	return out
}

// Sub returns the per-track difference a - b, with the same presence rule
// as Add.
func (a Amount) Sub(b Amount) Amount {
	var out Amount
	if a.USD != nil || b.USD != nil {
		v := a.USDOrZero().Sub(b.USDOrZero())
		out.USD = &v
	}
	if a.ARS != nil || b.ARS != nil {
		v := a.ARSOrZero().Sub(b.ARSOrZero())
		out.ARS = &v
	}
	return out
}
