package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRunStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from RunStatus
		to   RunStatus
		want bool
	}{
		{name: "draft to approved", from: RunStatusDraft, to: RunStatusApproved, want: true},
		{name: "approved to paid", from: RunStatusApproved, to: RunStatusPaid, want: true},
		{name: "draft straight to paid", from: RunStatusDraft, to: RunStatusPaid, want: false},
		{name: "draft to draft", from: RunStatusDraft, to: RunStatusDraft, want: false},
		{name: "approved to approved", from: RunStatusApproved, to: RunStatusApproved, want: false},
		{name: "approved back to draft", from: RunStatusApproved, to: RunStatusDraft, want: false},
		{name: "paid to paid", from: RunStatusPaid, to: RunStatusPaid, want: false},
		{name: "paid back to approved", from: RunStatusPaid, to: RunStatusApproved, want: false},
		{name: "paid back to draft", from: RunStatusPaid, to: RunStatusDraft, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestRunStatusValid(t *testing.T) {
	assert.True(t, RunStatusDraft.Valid())
	assert.True(t, RunStatusApproved.Valid())
	assert.True(t, RunStatusPaid.Valid())
	assert.False(t, RunStatus("cancelled").Valid())
	assert.False(t, RunStatus("").Valid())
}

func TestIsEditable(t *testing.T) {
	assert.True(t, PayrollRun{Status: RunStatusDraft}.IsEditable())
	assert.False(t, PayrollRun{Status: RunStatusApproved}.IsEditable())
	assert.False(t, PayrollRun{Status: RunStatusPaid}.IsEditable())
}

func TestComputeTotals(t *testing.T) {
	entries := []PayrollEntry{
		{
			GrossPay:                   decimal.RequireFromString("100000.00"),
			TotalDeductions:            decimal.RequireFromString("7250.00"),
			NetPay:                     decimal.RequireFromString("92750.00"),
			TotalEmployerContributions: decimal.RequireFromString("12500.00"),
		},
		{
			GrossPay:                   decimal.RequireFromString("50000.00"),
			TotalDeductions:            decimal.RequireFromString("3625.00"),
			NetPay:                     decimal.RequireFromString("46375.00"),
			TotalEmployerContributions: decimal.RequireFromString("6250.00"),
		},
	}

	totals := ComputeTotals(entries)
	assert.Equal(t, "150000.00", totals.Gross.StringFixed(2))
	assert.Equal(t, "10875.00", totals.Deductions.StringFixed(2))
	assert.Equal(t, "139125.00", totals.Net.StringFixed(2))
	assert.Equal(t, "18750.00", totals.EmployerContributions.StringFixed(2))
}

func TestComputeTotalsEmpty(t *testing.T) {
	totals := ComputeTotals(nil)
	assert.True(t, totals.Gross.IsZero())
	assert.True(t, totals.Deductions.IsZero())
	assert.True(t, totals.Net.IsZero())
	assert.True(t, totals.EmployerContributions.IsZero())
}

func TestCreatePayrollRunRequestValidate(t *testing.T) {
	valid := func() CreatePayrollRunRequest {
		return CreatePayrollRunRequest{
			PeriodStart: "2026-07-01",
			PeriodEnd:   "2026-07-31",
			PayDate:     "2026-07-28",
			Entries: []CreateEntryRequest{
				{EmployeeID: "018f6a2b-3c4d-7e5f-8a9b-0c1d2e3f4a5b"},
			},
		}
	}

	t.Run("valid request", func(t *testing.T) {
		req := valid()
		assert.NoError(t, req.Validate())
	})

	t.Run("pay date before period start", func(t *testing.T) {
		req := valid()
		req.PayDate = "2026-06-30"
		assert.Error(t, req.Validate())
	})

	t.Run("period end before period start", func(t *testing.T) {
		req := valid()
		req.PeriodEnd = "2026-06-30"
		assert.Error(t, req.Validate())
	})

	t.Run("malformed date", func(t *testing.T) {
		req := valid()
		req.PeriodStart = "01/07/2026"
		assert.Error(t, req.Validate())
	})

	t.Run("no entries", func(t *testing.T) {
		req := valid()
		req.Entries = nil
		assert.Error(t, req.Validate())
	})

	t.Run("duplicate employee", func(t *testing.T) {
		req := valid()
		req.Entries = append(req.Entries, req.Entries[0])
		assert.Error(t, req.Validate())
	})

	t.Run("negative amount", func(t *testing.T) {
		req := valid()
		req.Entries[0].Bonus = decimal.RequireFromString("-1")
		assert.Error(t, req.Validate())
	})
}

func TestUpdateEntryRequestValidate(t *testing.T) {
	negative := decimal.RequireFromString("-0.01")
	positive := decimal.RequireFromString("5000.00")

	t.Run("all fields unset", func(t *testing.T) {
		req := UpdateEntryRequest{}
		assert.NoError(t, req.Validate())
	})

	t.Run("non-negative override", func(t *testing.T) {
		req := UpdateEntryRequest{Bonus: &positive}
		assert.NoError(t, req.Validate())
	})

	t.Run("negative override", func(t *testing.T) {
		req := UpdateEntryRequest{Overtime: &negative}
		assert.Error(t, req.Validate())
	})
}
