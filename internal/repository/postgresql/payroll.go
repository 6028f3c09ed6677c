package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/kingstonbooks/payroll-backend-go/internal/domain/payroll"
	"github.com/kingstonbooks/payroll-backend-go/internal/pkg/database"
)

type runRepository struct {
	db *database.DB
}

func NewRunRepository(db *database.DB) payroll.RunRepository {
	return &runRepository{db: db}
}

// ========== RUNS ==========

func (r *runRepository) CreateRun(ctx context.Context, run payroll.PayrollRun) (payroll.PayrollRun, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_runs (
			company_id, rule_set_id, period_start, period_end, pay_date, status,
			total_gross, total_deductions, total_net, total_employer_contributions
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		run.CompanyID, run.RuleSetID, run.PeriodStart, run.PeriodEnd, run.PayDate, run.Status,
		run.TotalGross, run.TotalDeductions, run.TotalNet, run.TotalEmployerContributions,
	).Scan(&run.ID, &run.CreatedAt, &run.UpdatedAt)
	if err != nil {
		return payroll.PayrollRun{}, fmt.Errorf("failed to create payroll run: %w", err)
	}

	entryQuery := `
		INSERT INTO payroll_entries (
			payroll_run_id, employee_id,
			basic_salary, overtime, bonus, commission, allowances, gross_pay,
			paye, nis, nht, education_tax, pension_contribution, other_deductions,
			total_deductions, net_pay,
			employer_nis, employer_nht, employer_education_tax, employer_heart,
			total_employer_contributions
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		RETURNING id, created_at, updated_at
	`

	for i := range run.Entries {
		entry := &run.Entries[i]
		entry.PayrollRunID = run.ID
		err := q.QueryRow(ctx, entryQuery,
			entry.PayrollRunID, entry.EmployeeID,
			entry.BasicSalary, entry.Overtime, entry.Bonus, entry.Commission, entry.Allowances, entry.GrossPay,
			entry.PAYE, entry.NIS, entry.NHT, entry.EducationTax, entry.PensionContribution, entry.OtherDeductions,
			entry.TotalDeductions, entry.NetPay,
			entry.EmployerNIS, entry.EmployerNHT, entry.EmployerEducationTax, entry.EmployerHEART,
			entry.TotalEmployerContributions,
		).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)
		if err != nil {
			return payroll.PayrollRun{}, fmt.Errorf("failed to create payroll entry: %w", err)
		}
	}

	return run, nil
}

func (r *runRepository) GetRunByID(ctx context.Context, companyID string, id string) (payroll.PayrollRun, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, rule_set_id, period_start, period_end, pay_date, status,
			   total_gross, total_deductions, total_net, total_employer_contributions,
			   posting_reference, approved_at, paid_at, created_at, updated_at
		FROM payroll_runs
		WHERE id = $1 AND company_id = $2
	`

	var run payroll.PayrollRun
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&run.ID, &run.CompanyID, &run.RuleSetID, &run.PeriodStart, &run.PeriodEnd, &run.PayDate, &run.Status,
		&run.TotalGross, &run.TotalDeductions, &run.TotalNet, &run.TotalEmployerContributions,
		&run.PostingReference, &run.ApprovedAt, &run.PaidAt, &run.CreatedAt, &run.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRun{}, payroll.ErrRunNotFound
		}
		return payroll.PayrollRun{}, fmt.Errorf("failed to get payroll run: %w", err)
	}

	run.Entries, err = r.loadEntries(ctx, run.ID)
	if err != nil {
		return payroll.PayrollRun{}, err
	}

	return run, nil
}

// GetRunForUpdate locks the run row for the remainder of the current
// transaction. Only meaningful when the context carries a transaction.
func (r *runRepository) GetRunForUpdate(ctx context.Context, companyID string, id string) (payroll.PayrollRun, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, rule_set_id, period_start, period_end, pay_date, status,
			   total_gross, total_deductions, total_net, total_employer_contributions,
			   posting_reference, approved_at, paid_at, created_at, updated_at
		FROM payroll_runs
		WHERE id = $1 AND company_id = $2
		FOR UPDATE
	`

	var run payroll.PayrollRun
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&run.ID, &run.CompanyID, &run.RuleSetID, &run.PeriodStart, &run.PeriodEnd, &run.PayDate, &run.Status,
		&run.TotalGross, &run.TotalDeductions, &run.TotalNet, &run.TotalEmployerContributions,
		&run.PostingReference, &run.ApprovedAt, &run.PaidAt, &run.CreatedAt, &run.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRun{}, payroll.ErrRunNotFound
		}
		return payroll.PayrollRun{}, fmt.Errorf("failed to lock payroll run: %w", err)
	}

	run.Entries, err = r.loadEntries(ctx, run.ID)
	if err != nil {
		return payroll.PayrollRun{}, err
	}

	return run, nil
}

func (r *runRepository) ListRuns(ctx context.Context, companyID string, filter payroll.ListRunsFilter) ([]payroll.PayrollRun, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseQuery := `
		FROM payroll_runs pr
		WHERE pr.company_id = $1
	`
	args := []interface{}{companyID}
	argIdx := 2

	if filter.Status != nil {
		baseQuery += fmt.Sprintf(" AND pr.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.Year != nil {
		from := time.Date(*filter.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
		to := from.AddDate(1, 0, 0)
		if filter.Month != nil {
			from = time.Date(*filter.Year, time.Month(*filter.Month), 1, 0, 0, 0, 0, time.UTC)
			to = from.AddDate(0, 1, 0)
		}
		baseQuery += fmt.Sprintf(" AND pr.pay_date >= $%d AND pr.pay_date < $%d", argIdx, argIdx+1)
		args = append(args, from, to)
		argIdx += 2
	}

	var totalCount int64
	countQuery := "SELECT COUNT(*) " + baseQuery
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll runs: %w", err)
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	selectQuery := fmt.Sprintf(`
		SELECT pr.id, pr.company_id, pr.rule_set_id, pr.period_start, pr.period_end, pr.pay_date, pr.status,
			   pr.total_gross, pr.total_deductions, pr.total_net, pr.total_employer_contributions,
			   pr.posting_reference, pr.approved_at, pr.paid_at, pr.created_at, pr.updated_at
		%s
		ORDER BY pr.pay_date DESC, pr.created_at DESC
		LIMIT $%d OFFSET $%d
	`, baseQuery, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll runs: %w", err)
	}
	defer rows.Close()

	var runs []payroll.PayrollRun
	for rows.Next() {
		var run payroll.PayrollRun
		err := rows.Scan(
			&run.ID, &run.CompanyID, &run.RuleSetID, &run.PeriodStart, &run.PeriodEnd, &run.PayDate, &run.Status,
			&run.TotalGross, &run.TotalDeductions, &run.TotalNet, &run.TotalEmployerContributions,
			&run.PostingReference, &run.ApprovedAt, &run.PaidAt, &run.CreatedAt, &run.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll run: %w", err)
		}
		runs = append(runs, run)
	}

	return runs, totalCount, rows.Err()
}

// ========== ENTRIES ==========

func (r *runRepository) loadEntries(ctx context.Context, runID string) ([]payroll.PayrollEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT pe.id, pe.payroll_run_id, pe.employee_id,
			   pe.basic_salary, pe.overtime, pe.bonus, pe.commission, pe.allowances, pe.gross_pay,
			   pe.paye, pe.nis, pe.nht, pe.education_tax, pe.pension_contribution, pe.other_deductions,
			   pe.total_deductions, pe.net_pay,
			   pe.employer_nis, pe.employer_nht, pe.employer_education_tax, pe.employer_heart,
			   pe.total_employer_contributions,
			   pe.created_at, pe.updated_at,
			   e.employee_code, e.full_name AS employee_name
		FROM payroll_entries pe
		JOIN employees e ON pe.employee_id = e.id
		WHERE pe.payroll_run_id = $1
		ORDER BY e.employee_code
	`

	rows, err := q.Query(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to load payroll entries: %w", err)
	}
	defer rows.Close()

	var entries []payroll.PayrollEntry
	for rows.Next() {
		var entry payroll.PayrollEntry
		err := rows.Scan(
			&entry.ID, &entry.PayrollRunID, &entry.EmployeeID,
			&entry.BasicSalary, &entry.Overtime, &entry.Bonus, &entry.Commission, &entry.Allowances, &entry.GrossPay,
			&entry.PAYE, &entry.NIS, &entry.NHT, &entry.EducationTax, &entry.PensionContribution, &entry.OtherDeductions,
			&entry.TotalDeductions, &entry.NetPay,
			&entry.EmployerNIS, &entry.EmployerNHT, &entry.EmployerEducationTax, &entry.EmployerHEART,
			&entry.TotalEmployerContributions,
			&entry.CreatedAt, &entry.UpdatedAt,
			&entry.EmployeeCode, &entry.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func (r *runRepository) UpdateEntryAmounts(ctx context.Context, companyID string, entry payroll.PayrollEntry) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_entries pe
		SET basic_salary = $1, overtime = $2, bonus = $3, commission = $4, allowances = $5,
			gross_pay = $6, paye = $7, nis = $8, nht = $9, education_tax = $10,
			pension_contribution = $11, other_deductions = $12, total_deductions = $13,
			net_pay = $14, employer_nis = $15, employer_nht = $16, employer_education_tax = $17,
			employer_heart = $18, total_employer_contributions = $19, updated_at = NOW()
		FROM payroll_runs pr
		WHERE pe.id = $20 AND pe.payroll_run_id = pr.id AND pr.company_id = $21
	`

	result, err := q.Exec(ctx, query,
		entry.BasicSalary, entry.Overtime, entry.Bonus, entry.Commission, entry.Allowances,
		entry.GrossPay, entry.PAYE, entry.NIS, entry.NHT, entry.EducationTax,
		entry.PensionContribution, entry.OtherDeductions, entry.TotalDeductions,
		entry.NetPay, entry.EmployerNIS, entry.EmployerNHT, entry.EmployerEducationTax,
		entry.EmployerHEART, entry.TotalEmployerContributions,
		entry.ID, companyID,
	)
	if err != nil {
		return fmt.Errorf("failed to update payroll entry: %w", err)
	}
	if result.RowsAffected() == 0 {
		return payroll.ErrEntryNotFound
	}

	return nil
}

func (r *runRepository) UpdateRunTotals(ctx context.Context, companyID string, runID string, totals payroll.RunTotals) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_runs
		SET total_gross = $1, total_deductions = $2, total_net = $3,
			total_employer_contributions = $4, updated_at = NOW()
		WHERE id = $5 AND company_id = $6
	`

	result, err := q.Exec(ctx, query,
		totals.Gross, totals.Deductions, totals.Net, totals.EmployerContributions,
		runID, companyID,
	)
	if err != nil {
		return fmt.Errorf("failed to update payroll run totals: %w", err)
	}
	if result.RowsAffected() == 0 {
		return payroll.ErrRunNotFound
	}

	return nil
}

// ========== TRANSITIONS ==========

func (r *runRepository) MarkApproved(ctx context.Context, companyID string, runID string, postingReference string, approvedAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_runs
		SET status = 'approved', posting_reference = $1, approved_at = $2, updated_at = NOW()
		WHERE id = $3 AND company_id = $4 AND status = 'draft'
	`

	result, err := q.Exec(ctx, query, postingReference, approvedAt, runID, companyID)
	if err != nil {
		return fmt.Errorf("failed to approve payroll run: %w", err)
	}
	if result.RowsAffected() == 0 {
		return payroll.ErrRunNotDraft
	}

	return nil
}

func (r *runRepository) MarkPaid(ctx context.Context, companyID string, runID string, paidAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_runs
		SET status = 'paid', paid_at = $1, updated_at = NOW()
		WHERE id = $2 AND company_id = $3 AND status = 'approved'
	`

	result, err := q.Exec(ctx, query, paidAt, runID, companyID)
	if err != nil {
		return fmt.Errorf("failed to mark payroll run paid: %w", err)
	}
	if result.RowsAffected() == 0 {
		return payroll.ErrRunNotApproved
	}

	return nil
}
