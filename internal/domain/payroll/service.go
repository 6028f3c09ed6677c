package payroll

import (
	"context"
	"io"
)

// PayrollService drives the payroll run lifecycle.
type PayrollService interface {
	// CreateRun drafts a run for a pay period, computing every entry with
	// the statutory rule set in force on the pay date.
	CreateRun(ctx context.Context, companyID string, req CreatePayrollRunRequest) (PayrollRunResponse, error)
	GetRun(ctx context.Context, companyID string, runID string) (PayrollRunResponse, error)
	ListRuns(ctx context.Context, companyID string, filter ListRunsFilter) ([]PayrollRunResponse, int64, error)
	// UpdateEntry recomputes one entry of a draft run and refreshes the
	// run totals. Runs that left draft reject edits.
	UpdateEntry(ctx context.Context, companyID string, req UpdateEntryRequest) (PayrollRunResponse, error)
	// ApproveRun posts the run to the general ledger and transitions it
	// to approved. The posting and the transition succeed or fail
	// together.
	ApproveRun(ctx context.Context, companyID string, runID string) (PayrollRunResponse, error)
	// MarkRunPaid transitions an approved run to paid.
	MarkRunPaid(ctx context.Context, companyID string, runID string) (PayrollRunResponse, error)
	// RenderPayslip writes one entry's payslip to w as a PDF document.
	RenderPayslip(ctx context.Context, companyID string, runID string, entryID string, w io.Writer) error
}
