package remittance

import "context"

// RemittanceService aggregates statutory deductions into remittances.
type RemittanceService interface {
	// Generate sums the deductions of all approved and paid runs whose
	// pay date falls in the requested month and upserts one remittance
	// per obligation type. Calling it again for the same month refreshes
	// the amounts due without duplicating records or touching payments.
	Generate(ctx context.Context, companyID string, req GenerateRemittancesRequest) (RemittanceListResponse, error)
	// List returns the remittances matching the filter together with the
	// same summary aggregation Generate reports.
	List(ctx context.Context, companyID string, filter ListFilter) (RemittanceListResponse, error)
}
