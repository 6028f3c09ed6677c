package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/kingstonbooks/payroll-backend-go/internal/domain/remittance"
	"github.com/kingstonbooks/payroll-backend-go/internal/pkg/database"
)

type remittanceRepository struct {
	db *database.DB
}

func NewRemittanceRepository(db *database.DB) remittance.RemittanceRepository {
	return &remittanceRepository{db: db}
}

func (r *remittanceRepository) SumDeductionsForMonth(ctx context.Context, companyID string, year int, month time.Month) (remittance.DeductionTotals, error) {
	q := GetQuerier(ctx, r.db)

	from := remittance.PeriodFor(year, month)
	to := from.AddDate(0, 1, 0)

	query := `
		SELECT COUNT(DISTINCT pr.id),
			   COALESCE(SUM(pe.paye), 0),
			   COALESCE(SUM(pe.nis), 0),
			   COALESCE(SUM(pe.nht), 0),
			   COALESCE(SUM(pe.education_tax), 0),
			   COALESCE(SUM(pe.employer_heart), 0)
		FROM payroll_runs pr
		JOIN payroll_entries pe ON pe.payroll_run_id = pr.id
		WHERE pr.company_id = $1
		  AND pr.status IN ('approved', 'paid')
		  AND pr.pay_date >= $2
		  AND pr.pay_date < $3
	`

	var totals remittance.DeductionTotals
	err := q.QueryRow(ctx, query, companyID, from, to).Scan(
		&totals.RunCount,
		&totals.PAYE, &totals.NIS, &totals.NHT, &totals.EducationTax, &totals.HEART,
	)
	if err != nil {
		return remittance.DeductionTotals{}, fmt.Errorf("failed to sum deductions: %w", err)
	}

	return totals, nil
}

func (r *remittanceRepository) UpsertAmountDue(ctx context.Context, rem remittance.Remittance) (remittance.Remittance, error) {
	q := GetQuerier(ctx, r.db)

	// The uniqueness constraint makes two concurrent generations for the
	// same month converge on one row: the second writer lands on the
	// UPDATE arm instead of failing.
	query := `
		INSERT INTO remittances (company_id, remittance_type, period_month, amount_due, due_date)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT ON CONSTRAINT uk_remittance_company_type_period
		DO UPDATE SET amount_due = EXCLUDED.amount_due, due_date = EXCLUDED.due_date, updated_at = NOW()
		RETURNING id, company_id, remittance_type, period_month, amount_due, amount_paid,
				  due_date, payment_date, reference_number, journal_entry_id, created_at, updated_at
	`

	var saved remittance.Remittance
	err := q.QueryRow(ctx, query,
		rem.CompanyID, rem.Type, rem.PeriodMonth, rem.AmountDue, rem.DueDate,
	).Scan(
		&saved.ID, &saved.CompanyID, &saved.Type, &saved.PeriodMonth, &saved.AmountDue, &saved.AmountPaid,
		&saved.DueDate, &saved.PaymentDate, &saved.ReferenceNumber, &saved.JournalEntryID,
		&saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		return remittance.Remittance{}, fmt.Errorf("failed to upsert remittance: %w", err)
	}

	return saved, nil
}

func (r *remittanceRepository) ListForPeriod(ctx context.Context, companyID string, year int, month time.Month) ([]remittance.Remittance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, remittance_type, period_month, amount_due, amount_paid,
			   due_date, payment_date, reference_number, journal_entry_id, created_at, updated_at
		FROM remittances
		WHERE company_id = $1 AND period_month = $2
		ORDER BY remittance_type
	`

	rows, err := q.Query(ctx, query, companyID, remittance.PeriodFor(year, month))
	if err != nil {
		return nil, fmt.Errorf("failed to list remittances: %w", err)
	}
	defer rows.Close()

	return scanRemittances(rows)
}

func (r *remittanceRepository) List(ctx context.Context, companyID string, filter remittance.ListFilter) ([]remittance.Remittance, error) {
	q := GetQuerier(ctx, r.db)

	baseQuery := `
		SELECT id, company_id, remittance_type, period_month, amount_due, amount_paid,
			   due_date, payment_date, reference_number, journal_entry_id, created_at, updated_at
		FROM remittances
		WHERE company_id = $1
	`
	args := []interface{}{companyID}
	argIdx := 2

	from := time.Date(filter.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)
	if filter.Month != nil {
		from = remittance.PeriodFor(filter.Year, time.Month(*filter.Month))
		to = from.AddDate(0, 1, 0)
	}
	baseQuery += fmt.Sprintf(" AND period_month >= $%d AND period_month < $%d", argIdx, argIdx+1)
	args = append(args, from, to)
	argIdx += 2

	if filter.Type != nil {
		baseQuery += fmt.Sprintf(" AND remittance_type = $%d", argIdx)
		args = append(args, *filter.Type)
		argIdx++
	}

	baseQuery += " ORDER BY period_month DESC, remittance_type"

	rows, err := q.Query(ctx, baseQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list remittances: %w", err)
	}
	defer rows.Close()

	return scanRemittances(rows)
}

func scanRemittances(rows pgx.Rows) ([]remittance.Remittance, error) {
	var remittances []remittance.Remittance
	for rows.Next() {
		var rem remittance.Remittance
		err := rows.Scan(
			&rem.ID, &rem.CompanyID, &rem.Type, &rem.PeriodMonth, &rem.AmountDue, &rem.AmountPaid,
			&rem.DueDate, &rem.PaymentDate, &rem.ReferenceNumber, &rem.JournalEntryID,
			&rem.CreatedAt, &rem.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan remittance: %w", err)
		}
		remittances = append(remittances, rem)
	}

	return remittances, rows.Err()
}
