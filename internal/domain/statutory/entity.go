package statutory

import (
	"time"

	"github.com/shopspring/decimal"
)

// RuleSet is one effective-dated version of the jurisdiction's statutory
// payroll rules. Instances are immutable: rate changes are published as a new
// version with a later EffectiveFrom, and every payroll run records the
// version it was computed with so historical runs recompute identically.
type RuleSet struct {
	ID            string
	Name          string
	EffectiveFrom time.Time
	EffectiveTo   *time.Time

	// NIS: capped social insurance. The employee side is charged on
	// min(gross, NISAnnualCeiling/12); the employer side is charged on the
	// full gross. The asymmetry matches the statutory forms.
	NISEmployeeRate  decimal.Decimal
	NISEmployerRate  decimal.Decimal
	NISAnnualCeiling decimal.Decimal

	// NHT and education tax: flat percentages of gross, no ceiling.
	NHTEmployeeRate          decimal.Decimal
	NHTEmployerRate          decimal.Decimal
	EducationTaxEmployeeRate decimal.Decimal
	EducationTaxEmployerRate decimal.Decimal

	// HEART levy: employer only, flat percentage of gross.
	HEARTLevyRate decimal.Decimal

	// PAYE: annual tax-free threshold, then PAYEBand1Rate on the first
	// PAYEBand1Width of taxable income and PAYEBand2Rate on the rest.
	PAYEAnnualThreshold decimal.Decimal
	PAYEBand1Rate       decimal.Decimal
	PAYEBand1Width      decimal.Decimal
	PAYEBand2Rate       decimal.Decimal

	CreatedAt time.Time
}

var monthsPerYear = decimal.NewFromInt(12)

// RoundMoney rounds to the currency minor unit: 2 decimal places, half up.
// Statutory amounts are never negative, so shopspring's round-half-away-from-
// zero is exactly half-up here. Every amount leaving this package has passed
// through it.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// MonthlyNISCeiling is the insurable-wage cap applied to one monthly payroll.
func (r RuleSet) MonthlyNISCeiling() decimal.Decimal {
	return RoundMoney(r.NISAnnualCeiling.Div(monthsPerYear))
}

// NISContribution computes both sides of the capped contribution. Only the
// employee side observes the ceiling.
func (r RuleSet) NISContribution(gross decimal.Decimal) (employee, employer decimal.Decimal) {
	base := gross
	if ceiling := r.MonthlyNISCeiling(); gross.GreaterThan(ceiling) {
		base = ceiling
	}
	employee = RoundMoney(base.Mul(r.NISEmployeeRate))
	employer = RoundMoney(gross.Mul(r.NISEmployerRate))
	return employee, employer
}

// NHTContribution computes both flat-rate NHT amounts.
func (r RuleSet) NHTContribution(gross decimal.Decimal) (employee, employer decimal.Decimal) {
	employee = RoundMoney(gross.Mul(r.NHTEmployeeRate))
	employer = RoundMoney(gross.Mul(r.NHTEmployerRate))
	return employee, employer
}

// EducationTaxContribution computes both flat-rate education tax amounts.
func (r RuleSet) EducationTaxContribution(gross decimal.Decimal) (employee, employer decimal.Decimal) {
	employee = RoundMoney(gross.Mul(r.EducationTaxEmployeeRate))
	employer = RoundMoney(gross.Mul(r.EducationTaxEmployerRate))
	return employee, employer
}

// HEARTLevy computes the employer-only training levy.
func (r RuleSet) HEARTLevy(gross decimal.Decimal) decimal.Decimal {
	return RoundMoney(gross.Mul(r.HEARTLevyRate))
}

// MonthlyPAYE annualizes the monthly gross (gross x 12), applies the threshold
// and the two marginal bands, and returns one twelfth of the annual tax. The
// x12 annualization is deliberate regardless of the run's pay frequency; see
// the rule documentation before changing it, because historical payroll
// amounts depend on it.
func (r RuleSet) MonthlyPAYE(gross decimal.Decimal) decimal.Decimal {
	annualized := gross.Mul(monthsPerYear)
	if annualized.LessThanOrEqual(r.PAYEAnnualThreshold) {
		return decimal.Zero
	}

	taxable := annualized.Sub(r.PAYEAnnualThreshold)
	var annualTax decimal.Decimal
	if taxable.LessThanOrEqual(r.PAYEBand1Width) {
		annualTax = taxable.Mul(r.PAYEBand1Rate)
	} else {
		annualTax = r.PAYEBand1Width.Mul(r.PAYEBand1Rate).
			Add(taxable.Sub(r.PAYEBand1Width).Mul(r.PAYEBand2Rate))
	}

	return RoundMoney(annualTax.Div(monthsPerYear))
}

// AppliesOn reports whether this version covers the given date. EffectiveTo is
// exclusive; a nil EffectiveTo means the version is still open.
func (r RuleSet) AppliesOn(date time.Time) bool {
	if date.Before(r.EffectiveFrom) {
		return false
	}
	if r.EffectiveTo != nil && !date.Before(*r.EffectiveTo) {
		return false
	}
	return true
}
