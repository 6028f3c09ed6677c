package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// RunStatus enum
type RunStatus string

const (
	RunStatusDraft    RunStatus = "draft"
	RunStatusApproved RunStatus = "approved"
	RunStatusPaid     RunStatus = "paid"
)

func (s RunStatus) Valid() bool {
	switch s {
	case RunStatusDraft, RunStatusApproved, RunStatusPaid:
		return true
	}
	return false
}

// CanTransitionTo reports whether the run lifecycle allows moving to next.
// The only legal moves are draft -> approved and approved -> paid; every
// other combination, including repeating the current status, is rejected.
func (s RunStatus) CanTransitionTo(next RunStatus) bool {
	switch s {
	case RunStatusDraft:
		return next == RunStatusApproved
	case RunStatusApproved:
		return next == RunStatusPaid
	}
	return false
}

// PayrollRun - One pay period for a company
//
// The rule-set reference is fixed at creation, so a run keeps computing
// with the statutory figures that were current when it was drafted even
// if a new rule-set version lands later.
type PayrollRun struct {
	ID          string
	CompanyID   string
	RuleSetID   string
	PeriodStart time.Time
	PeriodEnd   time.Time
	PayDate     time.Time
	Status      RunStatus

	TotalGross                 decimal.Decimal
	TotalDeductions            decimal.Decimal
	TotalNet                   decimal.Decimal
	TotalEmployerContributions decimal.Decimal

	PostingReference *string
	ApprovedAt       *time.Time
	PaidAt           *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Joined fields
	Entries []PayrollEntry
}

// IsEditable reports whether entry amounts may still change. Once a run
// leaves draft its entries are frozen.
func (r PayrollRun) IsEditable() bool {
	return r.Status == RunStatusDraft
}

// PayrollEntry - One employee's computed pay within a run
type PayrollEntry struct {
	ID           string
	PayrollRunID string
	EmployeeID   string

	BasicSalary decimal.Decimal
	Overtime    decimal.Decimal
	Bonus       decimal.Decimal
	Commission  decimal.Decimal
	Allowances  decimal.Decimal
	GrossPay    decimal.Decimal

	PAYE                decimal.Decimal
	NIS                 decimal.Decimal
	NHT                 decimal.Decimal
	EducationTax        decimal.Decimal
	PensionContribution decimal.Decimal
	OtherDeductions     decimal.Decimal
	TotalDeductions     decimal.Decimal
	NetPay              decimal.Decimal

	EmployerNIS                decimal.Decimal
	EmployerNHT                decimal.Decimal
	EmployerEducationTax       decimal.Decimal
	EmployerHEART              decimal.Decimal
	TotalEmployerContributions decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeCode *string
	EmployeeName *string
}

// EntryInput is the earnings and voluntary-deduction side of one
// employee's pay, before statutory deductions are applied.
type EntryInput struct {
	EmployeeID          string
	BasicSalary         decimal.Decimal
	Overtime            decimal.Decimal
	Bonus               decimal.Decimal
	Commission          decimal.Decimal
	Allowances          decimal.Decimal
	PensionContribution decimal.Decimal
	OtherDeductions     decimal.Decimal
}

// RunTotals aggregates the entry-level amounts of a run.
type RunTotals struct {
	Gross                 decimal.Decimal
	Deductions            decimal.Decimal
	Net                   decimal.Decimal
	EmployerContributions decimal.Decimal
}

// ComputeTotals sums the entries of a run. Stored run totals are always
// derived this way, never adjusted on their own.
func ComputeTotals(entries []PayrollEntry) RunTotals {
	totals := RunTotals{
		Gross:                 decimal.Zero,
		Deductions:            decimal.Zero,
		Net:                   decimal.Zero,
		EmployerContributions: decimal.Zero,
	}
	for _, entry := range entries {
		totals.Gross = totals.Gross.Add(entry.GrossPay)
		totals.Deductions = totals.Deductions.Add(entry.TotalDeductions)
		totals.Net = totals.Net.Add(entry.NetPay)
		totals.EmployerContributions = totals.EmployerContributions.Add(entry.TotalEmployerContributions)
	}
	return totals
}
