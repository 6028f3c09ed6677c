package payroll

import (
	"fmt"

	"github.com/kingstonbooks/payroll-backend-go/internal/domain/payroll"
	"github.com/kingstonbooks/payroll-backend-go/internal/domain/statutory"
)

// ComputeEntry applies a statutory rule set to one employee's earnings and
// returns the fully computed entry. It is a pure function: everything the
// result depends on arrives through its arguments.
//
// Each earning component is rounded to the cent before summing, every
// statutory amount is rounded exactly once inside the rule-set methods,
// and the deduction total and net pay are then exact sums of those
// two-decimal values. Net pay below zero is an invariant violation, not a
// value to clamp: the caller gets ErrNegativeNetPay and nothing is saved.
func ComputeEntry(rules statutory.RuleSet, input payroll.EntryInput) (payroll.PayrollEntry, error) {
	basicSalary := statutory.RoundMoney(input.BasicSalary)
	overtime := statutory.RoundMoney(input.Overtime)
	bonus := statutory.RoundMoney(input.Bonus)
	commission := statutory.RoundMoney(input.Commission)
	allowances := statutory.RoundMoney(input.Allowances)
	pension := statutory.RoundMoney(input.PensionContribution)
	other := statutory.RoundMoney(input.OtherDeductions)

	grossPay := basicSalary.Add(overtime).Add(bonus).Add(commission).Add(allowances)

	paye := rules.MonthlyPAYE(grossPay)
	nisEmployee, nisEmployer := rules.NISContribution(grossPay)
	nhtEmployee, nhtEmployer := rules.NHTContribution(grossPay)
	eduTaxEmployee, eduTaxEmployer := rules.EducationTaxContribution(grossPay)
	heart := rules.HEARTLevy(grossPay)

	totalDeductions := paye.Add(nisEmployee).Add(nhtEmployee).Add(eduTaxEmployee).Add(pension).Add(other)
	netPay := grossPay.Sub(totalDeductions)
	if netPay.IsNegative() {
		return payroll.PayrollEntry{}, fmt.Errorf("%w: employee %s has gross %s against deductions %s",
			payroll.ErrNegativeNetPay, input.EmployeeID,
			grossPay.StringFixed(2), totalDeductions.StringFixed(2))
	}

	totalEmployer := nisEmployer.Add(nhtEmployer).Add(eduTaxEmployer).Add(heart)

	return payroll.PayrollEntry{
		EmployeeID: input.EmployeeID,

		BasicSalary: basicSalary,
		Overtime:    overtime,
		Bonus:       bonus,
		Commission:  commission,
		Allowances:  allowances,
		GrossPay:    grossPay,

		PAYE:                paye,
		NIS:                 nisEmployee,
		NHT:                 nhtEmployee,
		EducationTax:        eduTaxEmployee,
		PensionContribution: pension,
		OtherDeductions:     other,
		TotalDeductions:     totalDeductions,
		NetPay:              netPay,

		EmployerNIS:                nisEmployer,
		EmployerNHT:                nhtEmployer,
		EmployerEducationTax:       eduTaxEmployer,
		EmployerHEART:              heart,
		TotalEmployerContributions: totalEmployer,
	}, nil
}
