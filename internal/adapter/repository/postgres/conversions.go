package postgres

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/hcstudio/cashtrack/internal/domain"
)

// Type conversion helpers between domain values and pgtype wire values.

func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(d.String())

	return n
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}

	d, _ := decimal.NewFromString(n.Int.String())
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d
}

// decimalPtrToNumeric maps an absent currency track to SQL NULL. NULL and
// zero are distinct on the wire exactly as they are in the domain.
func decimalPtrToNumeric(d *decimal.Decimal) pgtype.Numeric {
	if d == nil {
		return pgtype.Numeric{}
	}
	return decimalToNumeric(*d)
}

func numericToDecimalPtr(n pgtype.Numeric) *decimal.Decimal {
	if !n.Valid {
		return nil
	}
	d := numericToDecimal(n)
	return &d
}

func amountToNumerics(a domain.Amount) (usd, ars pgtype.Numeric) {
	return decimalPtrToNumeric(a.USD), decimalPtrToNumeric(a.ARS)
}

func numericsToAmount(usd, ars pgtype.Numeric) domain.Amount {
	return domain.Amount{USD: numericToDecimalPtr(usd), ARS: numericToDecimalPtr(ars)}
}

func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func dateToPgDate(d domain.Date) pgtype.Date {
	return pgtype.Date{Time: d.Time(), Valid: true}
}

func pgDateToDate(d pgtype.Date) domain.Date {
	if !d.Valid {
		return domain.Date{}
	}
	return domain.DateOf(d.Time)
}

func datePtrToPgDate(d *domain.Date) pgtype.Date {
	if d == nil {
		return pgtype.Date{}
	}
	return dateToPgDate(*d)
}

func pgDateToDatePtr(d pgtype.Date) *domain.Date {
	if !d.Valid {
		return nil
	}
	out := domain.DateOf(d.Time)
	return &out
}
