package domain

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// ComputeRunningBalances orders a scope's movements by (date, sequence) and
// recomputes every running balance from zero, per currency track. It always
// recomputes the full sequence: inserting a movement with an earlier date
// than the scope's latest invalidates everything after the insertion point,
// and a full pass is the only recomputation that is correct under any
// insertion order.
//
// The input slice is not modified; the returned slice holds the same
// Movement pointers sorted, with balances updated in place on them.
// Income and expense nullity is untouched.
func ComputeRunningBalances(movements []*Movement) ([]*Movement, error) {
	if len(movements) == 0 {
		return nil, nil
	}

	scope := movements[0].Scope
	ordered := make([]*Movement, len(movements))
	copy(ordered, movements)

	for _, m := range ordered {
		if m.Scope != scope {
			return nil, fmt.Errorf("%w: %q and %q", ErrMixedScopes, scope, m.Scope)
		}
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		if c := ordered[i].Date.Compare(ordered[j].Date); c != 0 {
			return c < 0
		}
		return ordered[i].Sequence < ordered[j].Sequence
	})

	// Sequence must be engine-assigned and unique per scope; a duplicate
	// (date, sequence) pair is a caller bug, not recoverable data.
	for i := 1; i < len(ordered); i++ {
		prev, cur := ordered[i-1], ordered[i]
		if prev.Date.Equal(cur.Date) && prev.Sequence == cur.Sequence {
			return nil, fmt.Errorf("%w: scope %q date %s sequence %d",
				ErrDuplicateSequence, scope, cur.Date, cur.Sequence)
		}
	}

	balanceUSD := decimal.Zero
	balanceARS := decimal.Zero
	for _, m := range ordered {
		balanceUSD = balanceUSD.Add(m.NetUSD())
		balanceARS = balanceARS.Add(m.NetARS())
		m.RunningBalanceUSD = balanceUSD
		m.RunningBalanceARS = balanceARS
	}

	return ordered, nil
}

// BalanceAsOf returns the running balance of the last movement dated on or
// before asOf. Movements must already be ordered and balanced (the output of
// ComputeRunningBalances). A scope with no movement up to asOf has a zero
// balance on both tracks.
func BalanceAsOf(ordered []*Movement, asOf Date) Amount {
	usd := decimal.Zero
	ars := decimal.Zero
	for _, m := range ordered {
		if m.Date.After(asOf) {
			break
		}
		usd = m.RunningBalanceUSD
		ars = m.RunningBalanceARS
	}
	return NewAmount(usd, ars)
}

// ScopeTotals sums income and expense per track over a scope's movements.
type ScopeTotals struct {
	IncomeUSD  decimal.Decimal
	ExpenseUSD decimal.Decimal
	IncomeARS  decimal.Decimal
	ExpenseARS decimal.Decimal
}

// BalanceUSD returns total income minus total expense on the USD track.
func (t ScopeTotals) BalanceUSD() decimal.Decimal {
	return t.IncomeUSD.Sub(t.ExpenseUSD)
}

// BalanceARS returns total income minus total expense on the ARS track.
func (t ScopeTotals) BalanceARS() decimal.Decimal {
	return t.IncomeARS.Sub(t.ExpenseARS)
}

// TotalsOf aggregates income and expense for a set of movements.
func TotalsOf(movements []*Movement) ScopeTotals {
	var t ScopeTotals
	t.IncomeUSD = decimal.Zero
	t.ExpenseUSD = decimal.Zero
	t.IncomeARS = decimal.Zero
	t.ExpenseARS = decimal.Zero
	for _, m := range movements {
		t.IncomeUSD = t.IncomeUSD.Add(m.Income.USDOrZero())
		t.ExpenseUSD = t.ExpenseUSD.Add(m.Expense.USDOrZero())
		t.IncomeARS = t.IncomeARS.Add(m.Income.ARSOrZero())
		t.ExpenseARS = t.ExpenseARS.Add(m.Expense.ARSOrZero())
	}
	return t
}
