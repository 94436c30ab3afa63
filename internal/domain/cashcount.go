package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// CountType classifies how a cash count was taken.
type CountType string

const (
	CountTypeDaily   CountType = "Daily"
	CountTypeWeekly  CountType = "Weekly"
	CountTypeMonthly CountType = "Monthly"
	CountTypeSpecial CountType = "Special"
	CountTypeAudit   CountType = "Audit"
)

// Valid reports whether t is a known count type.
func (t CountType) Valid() bool {
	switch t {
	case CountTypeDaily, CountTypeWeekly, CountTypeMonthly, CountTypeSpecial, CountTypeAudit:
		return true
	}
	return false
}

// ReconciliationStatus is the outcome of reconciling a count.
type ReconciliationStatus string

const (
	ReconciliationCompleted        ReconciliationStatus = "Completed"
	ReconciliationDiscrepancyFound ReconciliationStatus = "Discrepancy Found"
)

// DiscrepancyType classifies the direction of a mismatch.
type DiscrepancyType string

const (
	DiscrepancyOverage  DiscrepancyType = "Overage"
	DiscrepancyShortage DiscrepancyType = "Shortage"
)

// DiscrepancySeverity ranks how serious a discrepancy is.
type DiscrepancySeverity string

const (
	SeverityMedium DiscrepancySeverity = "Medium"
	SeverityHigh   DiscrepancySeverity = "High"
)

// Tolerance is the maximum absolute counted-vs-expected difference still
// considered a match, per currency track. The zero value demands exact
// equality.
type Tolerance struct {
	USD decimal.Decimal
	ARS decimal.Decimal
}

// Validate rejects negative tolerances.
func (t Tolerance) Validate() error {
	if t.USD.IsNegative() {
		return fmt.Errorf("%w: usd %s", ErrNegativeTolerance, t.USD)
	}
	if t.ARS.IsNegative() {
		return fmt.Errorf("%w: ars %s", ErrNegativeTolerance, t.ARS)
	}
	return nil
}

// SeverityThreshold is the per-track cutoff on the absolute difference
// above which a discrepancy is classified High instead of Medium.
type SeverityThreshold struct {
	USD decimal.Decimal
	ARS decimal.Decimal
}

// DefaultSeverityThreshold returns the stock cutoffs: 100 USD, 10000 ARS.
func DefaultSeverityThreshold() SeverityThreshold {
	return SeverityThreshold{
		USD: decimal.NewFromInt(100),
		ARS: decimal.NewFromInt(10000),
	}
}

// Validate rejects negative thresholds.
func (s SeverityThreshold) Validate() error {
	if s.USD.IsNegative() {
		return fmt.Errorf("%w: usd %s", ErrNegativeThreshold, s.USD)
	}
	if s.ARS.IsNegative() {
		return fmt.Errorf("%w: ars %s", ErrNegativeThreshold, s.ARS)
	}
	return nil
}

func (s SeverityThreshold) classify(cur Currency, difference decimal.Decimal) DiscrepancySeverity {
	cutoff := s.USD
	if cur == ARS {
		cutoff = s.ARS
	}
	if difference.Abs().GreaterThan(cutoff) {
		return SeverityHigh
	}
	return SeverityMedium
}

// LedgerComparison compares a counted amount against the computed ledger
// balance for one currency track.
type LedgerComparison struct {
	Currency   Currency
	Expected   decimal.Decimal
	Counted    decimal.Decimal
	Difference decimal.Decimal
	Matches    bool
}

// Discrepancy records one failed track comparison on a reconciled count.
type Discrepancy struct {
	Type       DiscrepancyType
	Severity   DiscrepancySeverity
	Currency   Currency
	Expected   decimal.Decimal
	Counted    decimal.Decimal
	Difference decimal.Decimal
}

// Breakdown holds the operator-entered sub-totals of a count, split by
// category, channel and currency. It is informational detail: breakdown
// totals never gate the ledger comparison.
type Breakdown struct {
	ProfitCashUSD     decimal.Decimal
	ProfitCashARS     decimal.Decimal
	ProfitTransferUSD decimal.Decimal
	ProfitTransferARS decimal.Decimal

	CommissionsCashUSD     decimal.Decimal
	CommissionsCashARS     decimal.Decimal
	CommissionsTransferUSD decimal.Decimal
	CommissionsTransferARS decimal.Decimal

	HonorariaCashUSD     decimal.Decimal
	HonorariaCashARS     decimal.Decimal
	HonorariaTransferUSD decimal.Decimal
	HonorariaTransferARS decimal.Decimal
}

// BreakdownTotals is the per-track sum of all breakdown categories across
// both channels.
type BreakdownTotals struct {
	ProfitUSD      decimal.Decimal
	ProfitARS      decimal.Decimal
	CommissionsUSD decimal.Decimal
	CommissionsARS decimal.Decimal
	HonorariaUSD   decimal.Decimal
	HonorariaARS   decimal.Decimal
	TotalUSD       decimal.Decimal
	TotalARS       decimal.Decimal
}

// Totals sums the breakdown per category and track.
func (b Breakdown) Totals() BreakdownTotals {
	t := BreakdownTotals{
		ProfitUSD:      b.ProfitCashUSD.Add(b.ProfitTransferUSD),
		ProfitARS:      b.ProfitCashARS.Add(b.ProfitTransferARS),
		CommissionsUSD: b.CommissionsCashUSD.Add(b.CommissionsTransferUSD),
		CommissionsARS: b.CommissionsCashARS.Add(b.CommissionsTransferARS),
		HonorariaUSD:   b.HonorariaCashUSD.Add(b.HonorariaTransferUSD),
		HonorariaARS:   b.HonorariaCashARS.Add(b.HonorariaTransferARS),
	}
	t.TotalUSD = t.ProfitUSD.Add(t.CommissionsUSD).Add(t.HonorariaUSD)
	t.TotalARS = t.ProfitARS.Add(t.CommissionsARS).Add(t.HonorariaARS)
	return t
}

// CashCount is a physical cash count (arqueo) reconciled against the ledger
// balance of its scope as of CountDate. Once reconciled, the comparison
// fields are frozen with the count and never recomputed.
type CashCount struct {
	ID        string
	Scope     string
	CountDate Date
	Type      CountType

	CountedUSD decimal.Decimal
	CountedARS decimal.Decimal
	Breakdown  Breakdown

	ExpectedUSD   decimal.Decimal
	ExpectedARS   decimal.Decimal
	ComparisonUSD *LedgerComparison
	ComparisonARS *LedgerComparison
	Status        ReconciliationStatus
	Discrepancies []Discrepancy

	Notes     string
	CreatedAt time.Time
}

// Reconcile compares the counted amounts against the expected ledger
// balance, one track at a time. A track matches when the absolute counted
// minus expected difference is within tolerance. Failed tracks become
// discrepancy records graded by sev. The count's status, comparisons and
// discrepancies are set from the result.
func (c *CashCount) Reconcile(expected Amount, tol Tolerance, sev SeverityThreshold) error {
	if err := tol.Validate(); err != nil {
		return err
	}
	if err := sev.Validate(); err != nil {
		return err
	}

	c.ExpectedUSD = expected.USDOrZero()
	c.ExpectedARS = expected.ARSOrZero()
	c.ComparisonUSD = compareTrack(USD, c.ExpectedUSD, c.CountedUSD, tol.USD)
	c.ComparisonARS = compareTrack(ARS, c.ExpectedARS, c.CountedARS, tol.ARS)
	c.Discrepancies = nil

	for _, cmp := range []*LedgerComparison{c.ComparisonUSD, c.ComparisonARS} {
		if cmp.Matches {
			continue
		}
		kind := DiscrepancyShortage
		if cmp.Difference.IsPositive() {
			kind = DiscrepancyOverage
		}
		c.Discrepancies = append(c.Discrepancies, Discrepancy{
			Type:       kind,
			Severity:   sev.classify(cmp.Currency, cmp.Difference),
			Currency:   cmp.Currency,
			Expected:   cmp.Expected,
			Counted:    cmp.Counted,
			Difference: cmp.Difference,
		})
	}

	if c.HasDiscrepancies() {
		c.Status = ReconciliationDiscrepancyFound
	} else {
		c.Status = ReconciliationCompleted
	}
	return nil
}

// HasDiscrepancies reports whether either currency track failed to match.
func (c *CashCount) HasDiscrepancies() bool {
	if c.ComparisonUSD == nil || c.ComparisonARS == nil {
		return false
	}
	return !c.ComparisonUSD.Matches || !c.ComparisonARS.Matches
}

func compareTrack(cur Currency, expected, counted, tol decimal.Decimal) *LedgerComparison {
	diff := counted.Sub(expected)
	return &LedgerComparison{
		Currency:   cur,
		Expected:   expected,
		Counted:    counted,
		Difference: diff,
		Matches:    diff.Abs().LessThanOrEqual(tol),
	}
}
