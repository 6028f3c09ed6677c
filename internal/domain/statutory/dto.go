package statutory

import (
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type RuleSetResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	EffectiveFrom string  `json:"effective_from"`
	EffectiveTo   *string `json:"effective_to,omitempty"`

	NISEmployeeRate  decimal.Decimal `json:"nis_employee_rate"`
	NISEmployerRate  decimal.Decimal `json:"nis_employer_rate"`
	NISAnnualCeiling decimal.Decimal `json:"nis_annual_ceiling"`

	NHTEmployeeRate          decimal.Decimal `json:"nht_employee_rate"`
	NHTEmployerRate          decimal.Decimal `json:"nht_employer_rate"`
	EducationTaxEmployeeRate decimal.Decimal `json:"education_tax_employee_rate"`
	EducationTaxEmployerRate decimal.Decimal `json:"education_tax_employer_rate"`

	HEARTLevyRate decimal.Decimal `json:"heart_levy_rate"`

	PAYEAnnualThreshold decimal.Decimal `json:"paye_annual_threshold"`
	PAYEBand1Rate       decimal.Decimal `json:"paye_band1_rate"`
	PAYEBand1Width      decimal.Decimal `json:"paye_band1_width"`
	PAYEBand2Rate       decimal.Decimal `json:"paye_band2_rate"`
}

func NewRuleSetResponse(ruleSet RuleSet) RuleSetResponse {
	resp := RuleSetResponse{
		ID:            ruleSet.ID,
		Name:          ruleSet.Name,
		EffectiveFrom: ruleSet.EffectiveFrom.Format(dateLayout),

		NISEmployeeRate:  ruleSet.NISEmployeeRate,
		NISEmployerRate:  ruleSet.NISEmployerRate,
		NISAnnualCeiling: ruleSet.NISAnnualCeiling,

		NHTEmployeeRate:          ruleSet.NHTEmployeeRate,
		NHTEmployerRate:          ruleSet.NHTEmployerRate,
		EducationTaxEmployeeRate: ruleSet.EducationTaxEmployeeRate,
		EducationTaxEmployerRate: ruleSet.EducationTaxEmployerRate,

		HEARTLevyRate: ruleSet.HEARTLevyRate,

		PAYEAnnualThreshold: ruleSet.PAYEAnnualThreshold,
		PAYEBand1Rate:       ruleSet.PAYEBand1Rate,
		PAYEBand1Width:      ruleSet.PAYEBand1Width,
		PAYEBand2Rate:       ruleSet.PAYEBand2Rate,
	}
	if ruleSet.EffectiveTo != nil {
		to := ruleSet.EffectiveTo.Format(dateLayout)
		resp.EffectiveTo = &to
	}
	return resp
}
