package statutory_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/kingstonbooks/payroll-backend-go/internal/domain/statutory"
	"github.com/kingstonbooks/payroll-backend-go/internal/fixtures"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", s, err)
	}
	return d
}

func TestRoundMoney(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "exact two decimals unchanged", input: "12.34", want: "12.34"},
		{name: "half rounds up", input: "12.345", want: "12.35"},
		{name: "below half rounds down", input: "12.344", want: "12.34"},
		{name: "half at cent boundary", input: "2.005", want: "2.01"},
		{name: "sub-cent fraction", input: "0.004999", want: "0.00"},
		{name: "zero", input: "0", want: "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := statutory.RoundMoney(dec(t, tt.input))
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestMonthlyNISCeiling(t *testing.T) {
	rs := fixtures.GetCurrentRuleSet()

	// 5,000,000 / 12 = 416,666.666..., rounded half-up to the cent.
	assert.Equal(t, "416666.67", rs.MonthlyNISCeiling().StringFixed(2))
}

func TestNISContribution(t *testing.T) {
	rs := fixtures.GetCurrentRuleSet()

	tests := []struct {
		name         string
		gross        string
		wantEmployee string
		wantEmployer string
	}{
		{
			// The employee share is computed on the capped base while the
			// employer share stays on full gross.
			name:         "gross above ceiling keeps employer share uncapped",
			gross:        "1000000.00",
			wantEmployee: "12500.00",
			wantEmployer: "30000.00",
		},
		{
			name:         "gross below ceiling matches both shares",
			gross:        "300000.00",
			wantEmployee: "9000.00",
			wantEmployer: "9000.00",
		},
		{
			name:         "gross exactly at monthly ceiling",
			gross:        "416666.67",
			wantEmployee: "12500.00",
			wantEmployer: "12500.00",
		},
		{
			name:         "gross one cent above monthly ceiling",
			gross:        "416666.68",
			wantEmployee: "12500.00",
			wantEmployer: "12500.00",
		},
		{
			name:         "zero gross",
			gross:        "0.00",
			wantEmployee: "0.00",
			wantEmployer: "0.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			employee, employer := rs.NISContribution(dec(t, tt.gross))
			assert.Equal(t, tt.wantEmployee, employee.StringFixed(2), "employee share")
			assert.Equal(t, tt.wantEmployer, employer.StringFixed(2), "employer share")
		})
	}
}

func TestNHTContribution(t *testing.T) {
	rs := fixtures.GetCurrentRuleSet()

	tests := []struct {
		name         string
		gross        string
		wantEmployee string
		wantEmployer string
	}{
		{name: "round gross", gross: "250000.00", wantEmployee: "5000.00", wantEmployer: "7500.00"},
		{name: "half-cent result rounds up", gross: "100000.25", wantEmployee: "2000.01", wantEmployer: "3000.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			employee, employer := rs.NHTContribution(dec(t, tt.gross))
			assert.Equal(t, tt.wantEmployee, employee.StringFixed(2), "employee share")
			assert.Equal(t, tt.wantEmployer, employer.StringFixed(2), "employer share")
		})
	}
}

func TestEducationTaxContribution(t *testing.T) {
	rs := fixtures.GetCurrentRuleSet()

	employee, employer := rs.EducationTaxContribution(dec(t, "200000.00"))
	assert.Equal(t, "4500.00", employee.StringFixed(2))
	assert.Equal(t, "7000.00", employer.StringFixed(2))
}

func TestHEARTLevy(t *testing.T) {
	rs := fixtures.GetCurrentRuleSet()

	assert.Equal(t, "6000.00", rs.HEARTLevy(dec(t, "200000.00")).StringFixed(2))
	assert.Equal(t, "0.00", rs.HEARTLevy(decimal.Zero).StringFixed(2))
}

func TestMonthlyPAYE(t *testing.T) {
	rs := fixtures.GetCurrentRuleSet()

	tests := []struct {
		name  string
		gross string
		want  string
	}{
		{
			name:  "annualized below threshold pays nothing",
			gross: "100000.00", // annualized 1,200,000
			want:  "0.00",
		},
		{
			name:  "annualized exactly at threshold pays nothing",
			gross: "125008.00", // annualized 1,500,096
			want:  "0.00",
		},
		{
			name:  "taxable income within first band",
			gross: "200000.00", // taxable 899,904 at 25% = 224,976/yr
			want:  "18748.00",
		},
		{
			name:  "taxable income exactly at band boundary",
			gross: "500000.00", // taxable 4,499,904, all at 25%
			want:  "93748.00",
		},
		{
			name:  "taxable income crossing into second band",
			gross: "600000.00", // 4,499,904 at 25% plus 1,200,000 at 30%
			want:  "123748.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rs.MonthlyPAYE(dec(t, tt.gross))
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestAppliesOn(t *testing.T) {
	sets := fixtures.GetDefaultRuleSets()
	closed := sets[0] // 2023-04-01 up to but excluding 2024-04-01
	open := sets[1]   // 2024-04-01 onwards

	tests := []struct {
		name string
		rs   statutory.RuleSet
		date time.Time
		want bool
	}{
		{name: "closed range includes effective-from day", rs: closed, date: time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC), want: true},
		{name: "closed range includes last covered day", rs: closed, date: time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), want: true},
		{name: "closed range excludes effective-to day", rs: closed, date: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), want: false},
		{name: "closed range excludes earlier dates", rs: closed, date: time.Date(2023, 3, 31, 0, 0, 0, 0, time.UTC), want: false},
		{name: "open range includes effective-from day", rs: open, date: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), want: true},
		{name: "open range includes far future dates", rs: open, date: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC), want: true},
		{name: "open range excludes earlier dates", rs: open, date: time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rs.AppliesOn(tt.date))
		})
	}
}
