package remittance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Type enum - statutory obligation types remitted to the authorities
type Type string

const (
	TypePAYE         Type = "paye"
	TypeNIS          Type = "nis"
	TypeNHT          Type = "nht"
	TypeEducationTax Type = "education_tax"
	TypeHEART        Type = "heart"
)

// AllTypes lists every obligation type in generation order.
var AllTypes = []Type{TypePAYE, TypeNIS, TypeNHT, TypeEducationTax, TypeHEART}

func (t Type) Valid() bool {
	switch t {
	case TypePAYE, TypeNIS, TypeNHT, TypeEducationTax, TypeHEART:
		return true
	}
	return false
}

// Status enum - derived payment state, never stored
type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
	StatusOverdue Status = "overdue"
)

// Remittance - One aggregated statutory obligation for a period month
//
// One row exists per (company, type, period month), enforced by a database
// uniqueness constraint. Generation refreshes AmountDue; the payment fields
// are only ever written when a payment is recorded and generation never
// touches them.
type Remittance struct {
	ID              string
	CompanyID       string
	Type            Type
	PeriodMonth     time.Time // first day of the period month
	AmountDue       decimal.Decimal
	AmountPaid      decimal.Decimal
	DueDate         time.Time
	PaymentDate     *time.Time
	ReferenceNumber *string
	JournalEntryID  *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// StatusAt derives the payment status as of now. Nothing stores the
// status, so a remittance goes overdue without a background job flipping
// rows. The due date is inclusive: a remittance is on time through the
// whole of its due day.
func (r Remittance) StatusAt(now time.Time) Status {
	if r.AmountPaid.GreaterThanOrEqual(r.AmountDue) {
		return StatusPaid
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if today.After(r.DueDate) {
		return StatusOverdue
	}
	return StatusPending
}

// Outstanding returns the unpaid portion, never negative.
func (r Remittance) Outstanding() decimal.Decimal {
	out := r.AmountDue.Sub(r.AmountPaid)
	if out.IsNegative() {
		return decimal.Zero
	}
	return out
}

// PeriodFor returns the canonical storage date for a period month.
func PeriodFor(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

// DueDateFor returns the statutory filing deadline for a period month:
// the 14th of the following month.
func DueDateFor(year int, month time.Month) time.Time {
	return time.Date(year, month+1, 14, 0, 0, 0, 0, time.UTC)
}

// DeductionTotals carries the per-type sums over the approved and paid
// runs of one period month. The first four come from employee-side
// deductions; HEART is an employer-only levy so its total comes from the
// employer contribution column.
type DeductionTotals struct {
	PAYE         decimal.Decimal
	NIS          decimal.Decimal
	NHT          decimal.Decimal
	EducationTax decimal.Decimal
	HEART        decimal.Decimal
	RunCount     int64
}

func (t DeductionTotals) AmountFor(typ Type) decimal.Decimal {
	switch typ {
	case TypePAYE:
		return t.PAYE
	case TypeNIS:
		return t.NIS
	case TypeNHT:
		return t.NHT
	case TypeEducationTax:
		return t.EducationTax
	case TypeHEART:
		return t.HEART
	}
	return decimal.Zero
}

// Summary aggregates a set of remittances the way the period and listing
// endpoints report them.
type Summary struct {
	TotalDue         decimal.Decimal `json:"total_due"`
	TotalPaid        decimal.Decimal `json:"total_paid"`
	TotalOutstanding decimal.Decimal `json:"total_outstanding"`
	PendingCount     int             `json:"pending_count"`
	OverdueCount     int             `json:"overdue_count"`
	PaidCount        int             `json:"paid_count"`
}

// NewSummary folds remittances into totals and per-status counts, deriving
// each status as of now.
func NewSummary(remittances []Remittance, now time.Time) Summary {
	summary := Summary{
		TotalDue:         decimal.Zero,
		TotalPaid:        decimal.Zero,
		TotalOutstanding: decimal.Zero,
	}
	for _, r := range remittances {
		summary.TotalDue = summary.TotalDue.Add(r.AmountDue)
		summary.TotalPaid = summary.TotalPaid.Add(r.AmountPaid)
		summary.TotalOutstanding = summary.TotalOutstanding.Add(r.Outstanding())
		switch r.StatusAt(now) {
		case StatusPaid:
			summary.PaidCount++
		case StatusOverdue:
			summary.OverdueCount++
		default:
			summary.PendingCount++
		}
	}
	return summary
}
