package payroll

import (
	"context"
	"time"
)

// RunRepository defines data access for payroll runs and their entries.
// All methods take companyID so access stays scoped to the caller's company.
type RunRepository interface {
	// CreateRun inserts the run and all of its entries.
	CreateRun(ctx context.Context, run PayrollRun) (PayrollRun, error)
	// GetRunByID loads a run with its entries and joined employee fields.
	GetRunByID(ctx context.Context, companyID string, id string) (PayrollRun, error)
	// GetRunForUpdate locks the run row for the rest of the transaction
	// before re-reading it. Callers use it to re-check status ahead of a
	// transition so concurrent approvals serialize instead of racing.
	GetRunForUpdate(ctx context.Context, companyID string, id string) (PayrollRun, error)
	ListRuns(ctx context.Context, companyID string, filter ListRunsFilter) ([]PayrollRun, int64, error)

	// UpdateEntryAmounts rewrites the computed amounts of one entry.
	UpdateEntryAmounts(ctx context.Context, companyID string, entry PayrollEntry) error
	UpdateRunTotals(ctx context.Context, companyID string, runID string, totals RunTotals) error

	// MarkApproved transitions a draft run in one statement; zero rows
	// affected means the run was no longer a draft.
	MarkApproved(ctx context.Context, companyID string, runID string, postingReference string, approvedAt time.Time) error
	// MarkPaid transitions an approved run; zero rows affected means the
	// run was not approved.
	MarkPaid(ctx context.Context, companyID string, runID string, paidAt time.Time) error
}
