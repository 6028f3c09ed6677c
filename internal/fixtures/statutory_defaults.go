package fixtures

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kingstonbooks/payroll-backend-go/internal/domain/statutory"
)

// ==========================================
// HELPER FUNCTIONS
// ==========================================

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func timePtr(t time.Time) *time.Time { return &t }

// ==========================================
// DEFAULT STATUTORY RULE SETS
// ==========================================

// GetDefaultRuleSets returns the statutory rule-set versions seeded into a
// fresh database. Figures follow the Jamaican fiscal years: the NIS insurable
// wage ceiling moved from 3,000,000 to 5,000,000 per annum on 1 April 2024,
// while the PAYE threshold and band structure stayed unchanged.
//
// Rule sets are jurisdiction-wide, so no company ID is attached.
func GetDefaultRuleSets() []statutory.RuleSet {
	return []statutory.RuleSet{
		{
			Name:          "FY2023-2024",
			EffectiveFrom: date(2023, time.April, 1),
			EffectiveTo:   timePtr(date(2024, time.April, 1)),

			NISEmployeeRate:  dec("0.03"),
			NISEmployerRate:  dec("0.03"),
			NISAnnualCeiling: dec("3000000.00"),

			NHTEmployeeRate: dec("0.02"),
			NHTEmployerRate: dec("0.03"),

			EducationTaxEmployeeRate: dec("0.0225"),
			EducationTaxEmployerRate: dec("0.035"),

			HEARTLevyRate: dec("0.03"),

			PAYEAnnualThreshold: dec("1500096.00"),
			PAYEBand1Rate:       dec("0.25"),
			PAYEBand1Width:      dec("4499904.00"),
			PAYEBand2Rate:       dec("0.30"),
		},
		{
			Name:          "FY2024-2025",
			EffectiveFrom: date(2024, time.April, 1),
			EffectiveTo:   nil, // current version, open-ended

			NISEmployeeRate:  dec("0.03"),
			NISEmployerRate:  dec("0.03"),
			NISAnnualCeiling: dec("5000000.00"),

			NHTEmployeeRate: dec("0.02"),
			NHTEmployerRate: dec("0.03"),

			EducationTaxEmployeeRate: dec("0.0225"),
			EducationTaxEmployerRate: dec("0.035"),

			HEARTLevyRate: dec("0.03"),

			PAYEAnnualThreshold: dec("1500096.00"),
			PAYEBand1Rate:       dec("0.25"),
			PAYEBand1Width:      dec("4499904.00"),
			PAYEBand2Rate:       dec("0.30"),
		},
	}
}

// GetCurrentRuleSet returns the open-ended rule-set version from
// GetDefaultRuleSets. Tests use it as the canonical set of figures.
func GetCurrentRuleSet() statutory.RuleSet {
	sets := GetDefaultRuleSets()
	return sets[len(sets)-1]
}
