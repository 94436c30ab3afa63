package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Movement is a single cash movement inside a scope (a project or event).
// Sequence is assigned by the engine at creation time and is the tie-break
// for movements sharing a date; it is unique per scope. Running balances are
// derived by ComputeRunningBalances and are never settable by callers.
type Movement struct {
	ID          string
	Scope       string
	Date        Date
	Sequence    int64
	Description string
	Supplier    string
	Reference   string
	Income      Amount
	Expense     Amount

	RunningBalanceUSD decimal.Decimal
	RunningBalanceARS decimal.Decimal

	CreatedAt time.Time
}

// Scope is the ledger container a movement sequence belongs to: a project
// or an event. LastSequence is the high-water mark used to assign the next
// engine-owned sequence number; the scope row is the serialization point for
// all mutation and recomputation inside it.
type Scope struct {
	Name         string
	LastSequence int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NetUSD returns income minus expense on the USD track, absent as zero.
func (m *Movement) NetUSD() decimal.Decimal {
	return m.Income.USDOrZero().Sub(m.Expense.USDOrZero())
}

// NetARS returns income minus expense on the ARS track, absent as zero.
func (m *Movement) NetARS() decimal.Decimal {
	return m.Income.ARSOrZero().Sub(m.Expense.ARSOrZero())
}
