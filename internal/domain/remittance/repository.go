package remittance

import (
	"context"
	"time"
)

// RemittanceRepository defines data access for remittances. All methods
// take companyID so access stays scoped to the caller's company.
type RemittanceRepository interface {
	// SumDeductionsForMonth totals the statutory deduction columns of
	// every approved or paid run whose pay date falls in the given month.
	SumDeductionsForMonth(ctx context.Context, companyID string, year int, month time.Month) (DeductionTotals, error)
	// UpsertAmountDue creates the remittance for its (type, period month)
	// or refreshes amount_due on the existing row. The payment fields are
	// left untouched either way.
	UpsertAmountDue(ctx context.Context, rem Remittance) (Remittance, error)
	ListForPeriod(ctx context.Context, companyID string, year int, month time.Month) ([]Remittance, error)
	List(ctx context.Context, companyID string, filter ListFilter) ([]Remittance, error)
}
