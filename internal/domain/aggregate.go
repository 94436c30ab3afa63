package domain

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// SumAmounts adds a list of dual-currency amounts per track. A track is
// present in the result when it is present in at least one input; summing
// nothing yields the empty Amount.
func SumAmounts(amounts []Amount) Amount {
	var out Amount
	for _, a := range amounts {
		out = out.Add(a)
	}
	return out
}

// SumTrack sums a single currency track, absent values as zero. Aggregating
// "total value" across tracks is rejected: callers must ask per currency.
func SumTrack(amounts []Amount, cur Currency) (decimal.Decimal, error) {
	if !cur.Valid() {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrMixedCurrencyAggregate, cur)
	}
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a.Track(cur))
	}
	return total, nil
}

// MonthKey identifies a calendar month.
type MonthKey struct {
	Year  int
	Month time.Month
}

// MonthOf returns the month containing d.
func MonthOf(d Date) MonthKey {
	return MonthKey{Year: d.Year, Month: d.Month}
}

func (k MonthKey) String() string {
	return fmt.Sprintf("%04d-%02d", k.Year, int(k.Month))
}

func (k MonthKey) less(other MonthKey) bool {
	if k.Year != other.Year {
		return k.Year < other.Year
	}
	return k.Month < other.Month
}

// MonthlyAggregate is the per-month income/expense rollup of a movement set.
type MonthlyAggregate struct {
	Month  MonthKey
	Totals ScopeTotals
	Count  int
}

// GroupMovementsByMonth rolls movements up by calendar month. The result is
// ordered chronologically; consumers rely on that order, it is part of the
// contract.
func GroupMovementsByMonth(movements []*Movement) []MonthlyAggregate {
	byMonth := make(map[MonthKey][]*Movement)
	for _, m := range movements {
		key := MonthOf(m.Date)
		byMonth[key] = append(byMonth[key], m)
	}

	out := make([]MonthlyAggregate, 0, len(byMonth))
	for key, ms := range byMonth {
		out = append(out, MonthlyAggregate{
			Month:  key,
			Totals: TotalsOf(ms),
			Count:  len(ms),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Month.less(out[j].Month)
	})
	return out
}

// ScopeAggregate is the rollup of one scope's movements.
type ScopeAggregate struct {
	Scope  string
	Totals ScopeTotals
	Count  int
}

// GroupMovementsByScope rolls movements up per scope. The result is ordered
// descending by aggregate balance, USD track first, then ARS, then scope
// name ascending, so presentation order is total and deterministic.
func GroupMovementsByScope(movements []*Movement) []ScopeAggregate {
	byScope := make(map[string][]*Movement)
	for _, m := range movements {
		byScope[m.Scope] = append(byScope[m.Scope], m)
	}

	out := make([]ScopeAggregate, 0, len(byScope))
	for scope, ms := range byScope {
		out = append(out, ScopeAggregate{
			Scope:  scope,
			Totals: TotalsOf(ms),
			Count:  len(ms),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		bi, bj := out[i].Totals.BalanceUSD(), out[j].Totals.BalanceUSD()
		if !bi.Equal(bj) {
			return bi.GreaterThan(bj)
		}
		ai, aj := out[i].Totals.BalanceARS(), out[j].Totals.BalanceARS()
		if !ai.Equal(aj) {
			return ai.GreaterThan(aj)
		}
		return out[i].Scope < out[j].Scope
	})
	return out
}
