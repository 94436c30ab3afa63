package domain

import (
	"fmt"
	"time"
)

// Approver identifies one of the two independent approval parties on a
// general cash entry.
type Approver string

const (
	ApproverFede    Approver = "fede"
	ApproverSisters Approver = "sisters"
)

// Valid reports whether a is a known approver.
func (a Approver) Valid() bool {
	return a == ApproverFede || a == ApproverSisters
}

// EntryStatus is derived from the two approval flags, never stored as an
// independent source of truth.
type EntryStatus string

const (
	EntryStatusPending           EntryStatus = "Pending"
	EntryStatusApprovedByFede    EntryStatus = "Approved by Fede"
	EntryStatusApprovedBySisters EntryStatus = "Approved by Sisters"
	EntryStatusFullyApproved     EntryStatus = "Fully Approved"
)

// Application categorizes a general cash entry.
type Application string

const (
	ApplicationAportesSocias   Application = "Aportes Socias"
	ApplicationSueldosAdmin    Application = "Sueldos Admin."
	ApplicationVentaUSD        Application = "Venta USD"
	ApplicationGastosGenerales Application = "Gastos Generales"
	ApplicationViaticos        Application = "Viáticos"
	ApplicationHonorarios      Application = "Honorarios"
	ApplicationImpuestos       Application = "Impuestos"
	ApplicationOtros           Application = "Otros"
)

var validApplications = map[Application]bool{
	ApplicationAportesSocias:   true,
	ApplicationSueldosAdmin:    true,
	ApplicationVentaUSD:        true,
	ApplicationGastosGenerales: true,
	ApplicationViaticos:        true,
	ApplicationHonorarios:      true,
	ApplicationImpuestos:       true,
	ApplicationOtros:           true,
}

// Valid reports whether a is a known application category.
func (a Application) Valid() bool {
	return validApplications[a]
}

// CashEntry is a general-ledger entry with a two-party approval workflow.
// The two flags are independent and monotonic: approving never clears the
// other flag and there is no reject transition on entries.
type CashEntry struct {
	ID          string
	Date        Date
	Description string
	Application Application
	Provider    string
	Income      Amount
	Expense     Amount

	ApprovedByFede    bool
	ApprovedBySisters bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Approve sets the flag for the given approver. Re-approving by the same
// party is a no-op, not an error. Returns true when the entry changed.
func (e *CashEntry) Approve(by Approver) (bool, error) {
	switch by {
	case ApproverFede:
		if e.ApprovedByFede {
			return false, nil
		}
		e.ApprovedByFede = true
		return true, nil
	case ApproverSisters:
		if e.ApprovedBySisters {
			return false, nil
		}
		e.ApprovedBySisters = true
		return true, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrUnknownApprover, by)
	}
}

// Status derives the display status from the approval flags.
func (e *CashEntry) Status() EntryStatus {
	switch {
	case e.ApprovedByFede && e.ApprovedBySisters:
		return EntryStatusFullyApproved
	case e.ApprovedByFede:
		return EntryStatusApprovedByFede
	case e.ApprovedBySisters:
		return EntryStatusApprovedBySisters
	default:
		return EntryStatusPending
	}
}
