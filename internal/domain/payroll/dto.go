package payroll

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kingstonbooks/payroll-backend-go/internal/pkg/validator"
)

// DateLayout is the wire format for the date-only fields of a run.
const DateLayout = "2006-01-02"

// ========== RUN REQUEST DTOs ==========

type CreateEntryRequest struct {
	EmployeeID          string           `json:"employee_id"`
	BasicSalary         *decimal.Decimal `json:"basic_salary,omitempty"` // nil -> employee's directory base salary
	Overtime            decimal.Decimal  `json:"overtime"`
	Bonus               decimal.Decimal  `json:"bonus"`
	Commission          decimal.Decimal  `json:"commission"`
	Allowances          decimal.Decimal  `json:"allowances"`
	PensionContribution decimal.Decimal  `json:"pension_contribution"`
	OtherDeductions     decimal.Decimal  `json:"other_deductions"`
}

type CreatePayrollRunRequest struct {
	PeriodStart string               `json:"period_start"`
	PeriodEnd   string               `json:"period_end"`
	PayDate     string               `json:"pay_date"`
	Entries     []CreateEntryRequest `json:"entries"`
}

func (r *CreatePayrollRunRequest) Validate() error {
	var errs validator.ValidationErrors

	periodStart, startOK := validator.IsValidDate(r.PeriodStart)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "period_start", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	periodEnd, endOK := validator.IsValidDate(r.PeriodEnd)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	payDate, payOK := validator.IsValidDate(r.PayDate)
	if !payOK {
		errs = append(errs, validator.ValidationError{Field: "pay_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if startOK && endOK && periodEnd.Before(periodStart) {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "must not be before period_start"})
	}
	if startOK && payOK && payDate.Before(periodStart) {
		errs = append(errs, validator.ValidationError{Field: "pay_date", Message: "must not be before period_start"})
	}

	if len(r.Entries) == 0 {
		errs = append(errs, validator.ValidationError{Field: "entries", Message: "at least one employee is required"})
	}
	seen := make(map[string]bool, len(r.Entries))
	for i, entry := range r.Entries {
		field := func(name string) string { return fmt.Sprintf("entries[%d].%s", i, name) }

		if !validator.IsValidUUID(entry.EmployeeID) {
			errs = append(errs, validator.ValidationError{Field: field("employee_id"), Message: "must be a valid UUID"})
		} else if seen[entry.EmployeeID] {
			errs = append(errs, validator.ValidationError{Field: field("employee_id"), Message: "is listed more than once"})
		}
		seen[entry.EmployeeID] = true

		if entry.BasicSalary != nil && entry.BasicSalary.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field("basic_salary"), Message: "must be non-negative"})
		}
		for name, amount := range map[string]decimal.Decimal{
			"overtime":             entry.Overtime,
			"bonus":                entry.Bonus,
			"commission":           entry.Commission,
			"allowances":           entry.Allowances,
			"pension_contribution": entry.PensionContribution,
			"other_deductions":     entry.OtherDeductions,
		} {
			if amount.IsNegative() {
				errs = append(errs, validator.ValidationError{Field: field(name), Message: "must be non-negative"})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEntryRequest struct {
	RunID   string `json:"-"`
	EntryID string `json:"-"`

	BasicSalary         *decimal.Decimal `json:"basic_salary,omitempty"`
	Overtime            *decimal.Decimal `json:"overtime,omitempty"`
	Bonus               *decimal.Decimal `json:"bonus,omitempty"`
	Commission          *decimal.Decimal `json:"commission,omitempty"`
	Allowances          *decimal.Decimal `json:"allowances,omitempty"`
	PensionContribution *decimal.Decimal `json:"pension_contribution,omitempty"`
	OtherDeductions     *decimal.Decimal `json:"other_deductions,omitempty"`
}

func (r *UpdateEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	for name, amount := range map[string]*decimal.Decimal{
		"basic_salary":         r.BasicSalary,
		"overtime":             r.Overtime,
		"bonus":                r.Bonus,
		"commission":           r.Commission,
		"allowances":           r.Allowances,
		"pension_contribution": r.PensionContribution,
		"other_deductions":     r.OtherDeductions,
	} {
		if amount != nil && amount.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: name, Message: "must be non-negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ListRunsFilter narrows ListRuns. Year and Month filter on the pay date.
type ListRunsFilter struct {
	Status *RunStatus
	Year   *int
	Month  *int
	Page   int
	Limit  int
}

// ========== RUN RESPONSE DTOs ==========

type PayrollEntryResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeCode string `json:"employee_code,omitempty"`
	EmployeeName string `json:"employee_name,omitempty"`

	BasicSalary decimal.Decimal `json:"basic_salary"`
	Overtime    decimal.Decimal `json:"overtime"`
	Bonus       decimal.Decimal `json:"bonus"`
	Commission  decimal.Decimal `json:"commission"`
	Allowances  decimal.Decimal `json:"allowances"`
	GrossPay    decimal.Decimal `json:"gross_pay"`

	PAYE                decimal.Decimal `json:"paye"`
	NIS                 decimal.Decimal `json:"nis"`
	NHT                 decimal.Decimal `json:"nht"`
	EducationTax        decimal.Decimal `json:"education_tax"`
	PensionContribution decimal.Decimal `json:"pension_contribution"`
	OtherDeductions     decimal.Decimal `json:"other_deductions"`
	TotalDeductions     decimal.Decimal `json:"total_deductions"`
	NetPay              decimal.Decimal `json:"net_pay"`

	EmployerNIS                decimal.Decimal `json:"employer_nis"`
	EmployerNHT                decimal.Decimal `json:"employer_nht"`
	EmployerEducationTax       decimal.Decimal `json:"employer_education_tax"`
	EmployerHEART              decimal.Decimal `json:"employer_heart"`
	TotalEmployerContributions decimal.Decimal `json:"total_employer_contributions"`
}

type PayrollRunResponse struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"company_id"`
	RuleSetID   string    `json:"rule_set_id"`
	PeriodStart string    `json:"period_start"`
	PeriodEnd   string    `json:"period_end"`
	PayDate     string    `json:"pay_date"`
	Status      RunStatus `json:"status"`

	TotalGross                 decimal.Decimal `json:"total_gross"`
	TotalDeductions            decimal.Decimal `json:"total_deductions"`
	TotalNet                   decimal.Decimal `json:"total_net"`
	TotalEmployerContributions decimal.Decimal `json:"total_employer_contributions"`

	PostingReference *string    `json:"posting_reference,omitempty"`
	ApprovedAt       *time.Time `json:"approved_at,omitempty"`
	PaidAt           *time.Time `json:"paid_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`

	Entries []PayrollEntryResponse `json:"entries,omitempty"`
}

func NewPayrollEntryResponse(entry PayrollEntry) PayrollEntryResponse {
	resp := PayrollEntryResponse{
		ID:         entry.ID,
		EmployeeID: entry.EmployeeID,

		BasicSalary: entry.BasicSalary,
		Overtime:    entry.Overtime,
		Bonus:       entry.Bonus,
		Commission:  entry.Commission,
		Allowances:  entry.Allowances,
		GrossPay:    entry.GrossPay,

		PAYE:                entry.PAYE,
		NIS:                 entry.NIS,
		NHT:                 entry.NHT,
		EducationTax:        entry.EducationTax,
		PensionContribution: entry.PensionContribution,
		OtherDeductions:     entry.OtherDeductions,
		TotalDeductions:     entry.TotalDeductions,
		NetPay:              entry.NetPay,

		EmployerNIS:                entry.EmployerNIS,
		EmployerNHT:                entry.EmployerNHT,
		EmployerEducationTax:       entry.EmployerEducationTax,
		EmployerHEART:              entry.EmployerHEART,
		TotalEmployerContributions: entry.TotalEmployerContributions,
	}
	if entry.EmployeeCode != nil {
		resp.EmployeeCode = *entry.EmployeeCode
	}
	if entry.EmployeeName != nil {
		resp.EmployeeName = *entry.EmployeeName
	}
	return resp
}

func NewPayrollRunResponse(run PayrollRun) PayrollRunResponse {
	resp := PayrollRunResponse{
		ID:          run.ID,
		CompanyID:   run.CompanyID,
		RuleSetID:   run.RuleSetID,
		PeriodStart: run.PeriodStart.Format(DateLayout),
		PeriodEnd:   run.PeriodEnd.Format(DateLayout),
		PayDate:     run.PayDate.Format(DateLayout),
		Status:      run.Status,

		TotalGross:                 run.TotalGross,
		TotalDeductions:            run.TotalDeductions,
		TotalNet:                   run.TotalNet,
		TotalEmployerContributions: run.TotalEmployerContributions,

		PostingReference: run.PostingReference,
		ApprovedAt:       run.ApprovedAt,
		PaidAt:           run.PaidAt,
		CreatedAt:        run.CreatedAt,
	}
	for _, entry := range run.Entries {
		resp.Entries = append(resp.Entries, NewPayrollEntryResponse(entry))
	}
	return resp
}
