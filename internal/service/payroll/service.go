package payroll

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/kingstonbooks/payroll-backend-go/internal/domain/employee"
	"github.com/kingstonbooks/payroll-backend-go/internal/domain/ledger"
	"github.com/kingstonbooks/payroll-backend-go/internal/domain/payroll"
	"github.com/kingstonbooks/payroll-backend-go/internal/domain/statutory"
	"github.com/kingstonbooks/payroll-backend-go/internal/pkg/database"
	"github.com/kingstonbooks/payroll-backend-go/internal/repository/postgresql"
)

// Chart-of-accounts positions the payroll posting touches.
const (
	acctSalariesExpense = "6100"
	acctEmployerExpense = "6150"
	acctPAYEPayable     = "2100"
	acctNISPayable      = "2110"
	acctNHTPayable      = "2120"
	acctEduTaxPayable   = "2130"
	acctHEARTPayable    = "2140"
	acctPensionPayable  = "2150"
	acctOtherPayable    = "2160"
	acctWagesPayable    = "2200"
)

type PayrollServiceImpl struct {
	db           *database.DB
	runRepo      payroll.RunRepository
	employeeRepo employee.EmployeeRepository
	ruleSetRepo  statutory.RuleSetRepository
	ledgerRepo   ledger.LedgerRepository
}

func NewPayrollService(
	db *database.DB,
	runRepo payroll.RunRepository,
	employeeRepo employee.EmployeeRepository,
	ruleSetRepo statutory.RuleSetRepository,
	ledgerRepo ledger.LedgerRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:           db,
		runRepo:      runRepo,
		employeeRepo: employeeRepo,
		ruleSetRepo:  ruleSetRepo,
		ledgerRepo:   ledgerRepo,
	}
}

func (s *PayrollServiceImpl) CreateRun(ctx context.Context, companyID string, req payroll.CreatePayrollRunRequest) (payroll.PayrollRunResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollRunResponse{}, err
	}

	periodStart, err := time.Parse(payroll.DateLayout, req.PeriodStart)
	if err != nil {
		return payroll.PayrollRunResponse{}, fmt.Errorf("failed to parse period start: %w", err)
	}
	periodEnd, err := time.Parse(payroll.DateLayout, req.PeriodEnd)
	if err != nil {
		return payroll.PayrollRunResponse{}, fmt.Errorf("failed to parse period end: %w", err)
	}
	payDate, err := time.Parse(payroll.DateLayout, req.PayDate)
	if err != nil {
		return payroll.PayrollRunResponse{}, fmt.Errorf("failed to parse pay date: %w", err)
	}

	// The rule set in force on the pay date is fixed onto the run here;
	// later rule changes never touch an existing run.
	rules, err := s.ruleSetRepo.GetForDate(ctx, payDate)
	if err != nil {
		return payroll.PayrollRunResponse{}, err
	}

	employeeIDs := make([]string, 0, len(req.Entries))
	for _, entry := range req.Entries {
		employeeIDs = append(employeeIDs, entry.EmployeeID)
	}
	employees, err := s.employeeRepo.GetByIDs(ctx, companyID, employeeIDs)
	if err != nil {
		return payroll.PayrollRunResponse{}, err
	}
	employeesByID := make(map[string]employee.Employee, len(employees))
	for _, emp := range employees {
		employeesByID[emp.ID] = emp
	}

	entries := make([]payroll.PayrollEntry, 0, len(req.Entries))
	for _, entryReq := range req.Entries {
		emp, ok := employeesByID[entryReq.EmployeeID]
		if !ok {
			return payroll.PayrollRunResponse{}, fmt.Errorf("%w: %s", employee.ErrEmployeeNotFound, entryReq.EmployeeID)
		}
		if !emp.IsActive() {
			return payroll.PayrollRunResponse{}, fmt.Errorf("%w: %s", payroll.ErrEmployeeNotActive, emp.ID)
		}

		basicSalary := emp.BaseSalary
		if entryReq.BasicSalary != nil {
			basicSalary = *entryReq.BasicSalary
		} else if emp.BaseSalary.IsZero() {
			return payroll.PayrollRunResponse{}, fmt.Errorf("%w: %s", payroll.ErrEmployeeHasNoBaseSalary, emp.ID)
		}

		entry, err := ComputeEntry(rules, payroll.EntryInput{
			EmployeeID:          emp.ID,
			BasicSalary:         basicSalary,
			Overtime:            entryReq.Overtime,
			Bonus:               entryReq.Bonus,
			Commission:          entryReq.Commission,
			Allowances:          entryReq.Allowances,
			PensionContribution: entryReq.PensionContribution,
			OtherDeductions:     entryReq.OtherDeductions,
		})
		if err != nil {
			return payroll.PayrollRunResponse{}, err
		}
		entries = append(entries, entry)
	}

	totals := payroll.ComputeTotals(entries)
	run := payroll.PayrollRun{
		CompanyID:                  companyID,
		RuleSetID:                  rules.ID,
		PeriodStart:                periodStart,
		PeriodEnd:                  periodEnd,
		PayDate:                    payDate,
		Status:                     payroll.RunStatusDraft,
		TotalGross:                 totals.Gross,
		TotalDeductions:            totals.Deductions,
		TotalNet:                   totals.Net,
		TotalEmployerContributions: totals.EmployerContributions,
		Entries:                    entries,
	}

	var created payroll.PayrollRun
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		inserted, err := s.runRepo.CreateRun(txCtx, run)
		if err != nil {
			return err
		}

		created, err = s.runRepo.GetRunByID(txCtx, companyID, inserted.ID)
		return err
	})
	if err != nil {
		return payroll.PayrollRunResponse{}, err
	}

	slog.Info("payroll run created", "run_id", created.ID, "company_id", companyID, "entries", len(created.Entries))
	return payroll.NewPayrollRunResponse(created), nil
}

func (s *PayrollServiceImpl) GetRun(ctx context.Context, companyID string, runID string) (payroll.PayrollRunResponse, error) {
	run, err := s.runRepo.GetRunByID(ctx, companyID, runID)
	if err != nil {
		return payroll.PayrollRunResponse{}, err
	}
	return payroll.NewPayrollRunResponse(run), nil
}

func (s *PayrollServiceImpl) ListRuns(ctx context.Context, companyID string, filter payroll.ListRunsFilter) ([]payroll.PayrollRunResponse, int64, error) {
	runs, total, err := s.runRepo.ListRuns(ctx, companyID, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]payroll.PayrollRunResponse, 0, len(runs))
	for _, run := range runs {
		responses = append(responses, payroll.NewPayrollRunResponse(run))
	}
	return responses, total, nil
}

func (s *PayrollServiceImpl) UpdateEntry(ctx context.Context, companyID string, req payroll.UpdateEntryRequest) (payroll.PayrollRunResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollRunResponse{}, err
	}

	var updated payroll.PayrollRun
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		run, err := s.runRepo.GetRunForUpdate(txCtx, companyID, req.RunID)
		if err != nil {
			return err
		}
		if !run.IsEditable() {
			return fmt.Errorf("%w: run %s is %s", payroll.ErrRunNotDraft, run.ID, run.Status)
		}

		var target *payroll.PayrollEntry
		for i := range run.Entries {
			if run.Entries[i].ID == req.EntryID {
				target = &run.Entries[i]
				break
			}
		}
		if target == nil {
			return payroll.ErrEntryNotFound
		}

		// Recompute with the rule set snapshotted at creation, not with
		// whatever is current today.
		rules, err := s.ruleSetRepo.GetByID(txCtx, run.RuleSetID)
		if err != nil {
			return err
		}

		input := payroll.EntryInput{
			EmployeeID:          target.EmployeeID,
			BasicSalary:         target.BasicSalary,
			Overtime:            target.Overtime,
			Bonus:               target.Bonus,
			Commission:          target.Commission,
			Allowances:          target.Allowances,
			PensionContribution: target.PensionContribution,
			OtherDeductions:     target.OtherDeductions,
		}
		if req.BasicSalary != nil {
			input.BasicSalary = *req.BasicSalary
		}
		if req.Overtime != nil {
			input.Overtime = *req.Overtime
		}
		if req.Bonus != nil {
			input.Bonus = *req.Bonus
		}
		if req.Commission != nil {
			input.Commission = *req.Commission
		}
		if req.Allowances != nil {
			input.Allowances = *req.Allowances
		}
		if req.PensionContribution != nil {
			input.PensionContribution = *req.PensionContribution
		}
		if req.OtherDeductions != nil {
			input.OtherDeductions = *req.OtherDeductions
		}

		computed, err := ComputeEntry(rules, input)
		if err != nil {
			return err
		}
		computed.ID = target.ID
		computed.PayrollRunID = target.PayrollRunID

		if err := s.runRepo.UpdateEntryAmounts(txCtx, companyID, computed); err != nil {
			return err
		}

		*target = computed
		totals := payroll.ComputeTotals(run.Entries)
		if err := s.runRepo.UpdateRunTotals(txCtx, companyID, run.ID, totals); err != nil {
			return err
		}

		updated, err = s.runRepo.GetRunByID(txCtx, companyID, run.ID)
		return err
	})
	if err != nil {
		return payroll.PayrollRunResponse{}, err
	}

	return payroll.NewPayrollRunResponse(updated), nil
}

func (s *PayrollServiceImpl) ApproveRun(ctx context.Context, companyID string, runID string) (payroll.PayrollRunResponse, error) {
	var approved payroll.PayrollRun
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		// Lock and re-read the run so concurrent approvals settle on one
		// winner; the loser observes the post-transition status here.
		run, err := s.runRepo.GetRunForUpdate(txCtx, companyID, runID)
		if err != nil {
			return err
		}
		if !run.Status.CanTransitionTo(payroll.RunStatusApproved) {
			return fmt.Errorf("%w: run %s is %s, expected %s", payroll.ErrInvalidTransition, run.ID, run.Status, payroll.RunStatusDraft)
		}

		reference, err := s.ledgerRepo.Post(txCtx, buildJournalEntry(run))
		if err != nil {
			return err
		}

		approvedAt := time.Now().UTC()
		if err := s.runRepo.MarkApproved(txCtx, companyID, run.ID, reference, approvedAt); err != nil {
			return err
		}

		run.Status = payroll.RunStatusApproved
		run.PostingReference = &reference
		run.ApprovedAt = &approvedAt
		approved = run
		return nil
	})
	if err != nil {
		return payroll.PayrollRunResponse{}, err
	}

	slog.Info("payroll run approved", "run_id", approved.ID, "posting_reference", *approved.PostingReference)
	return payroll.NewPayrollRunResponse(approved), nil
}

func (s *PayrollServiceImpl) MarkRunPaid(ctx context.Context, companyID string, runID string) (payroll.PayrollRunResponse, error) {
	var paid payroll.PayrollRun
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		run, err := s.runRepo.GetRunForUpdate(txCtx, companyID, runID)
		if err != nil {
			return err
		}
		if !run.Status.CanTransitionTo(payroll.RunStatusPaid) {
			return fmt.Errorf("%w: run %s is %s, expected %s", payroll.ErrInvalidTransition, run.ID, run.Status, payroll.RunStatusApproved)
		}

		paidAt := time.Now().UTC()
		if err := s.runRepo.MarkPaid(txCtx, companyID, run.ID, paidAt); err != nil {
			return err
		}

		run.Status = payroll.RunStatusPaid
		run.PaidAt = &paidAt
		paid = run
		return nil
	})
	if err != nil {
		return payroll.PayrollRunResponse{}, err
	}

	slog.Info("payroll run marked paid", "run_id", paid.ID)
	return payroll.NewPayrollRunResponse(paid), nil
}

// buildJournalEntry folds a run into one balanced posting: gross pay and
// employer contributions on the debit side, the statutory and voluntary
// liabilities plus net wages payable on the credit side. Balance holds by
// construction because net pay is gross minus the deductions credited.
func buildJournalEntry(run payroll.PayrollRun) ledger.JournalEntry {
	paye := decimal.Zero
	nis := decimal.Zero
	nht := decimal.Zero
	eduTax := decimal.Zero
	heart := decimal.Zero
	pension := decimal.Zero
	other := decimal.Zero

	for _, entry := range run.Entries {
		paye = paye.Add(entry.PAYE)
		nis = nis.Add(entry.NIS).Add(entry.EmployerNIS)
		nht = nht.Add(entry.NHT).Add(entry.EmployerNHT)
		eduTax = eduTax.Add(entry.EducationTax).Add(entry.EmployerEducationTax)
		heart = heart.Add(entry.EmployerHEART)
		pension = pension.Add(entry.PensionContribution)
		other = other.Add(entry.OtherDeductions)
	}

	var lines []ledger.JournalLine
	appendLine := func(code, name string, debit, credit decimal.Decimal) {
		if debit.IsZero() && credit.IsZero() {
			return
		}
		lines = append(lines, ledger.JournalLine{
			LineNo:      len(lines) + 1,
			AccountCode: code,
			AccountName: name,
			Debit:       debit,
			Credit:      credit,
		})
	}

	appendLine(acctSalariesExpense, "Salaries and wages expense", run.TotalGross, decimal.Zero)
	appendLine(acctEmployerExpense, "Employer statutory contributions expense", run.TotalEmployerContributions, decimal.Zero)
	appendLine(acctPAYEPayable, "PAYE payable", decimal.Zero, paye)
	appendLine(acctNISPayable, "NIS payable", decimal.Zero, nis)
	appendLine(acctNHTPayable, "NHT payable", decimal.Zero, nht)
	appendLine(acctEduTaxPayable, "Education tax payable", decimal.Zero, eduTax)
	appendLine(acctHEARTPayable, "HEART levy payable", decimal.Zero, heart)
	appendLine(acctPensionPayable, "Pension contributions payable", decimal.Zero, pension)
	appendLine(acctOtherPayable, "Other deductions payable", decimal.Zero, other)
	appendLine(acctWagesPayable, "Net wages payable", decimal.Zero, run.TotalNet)

	return ledger.JournalEntry{
		CompanyID:   run.CompanyID,
		EntryDate:   run.PayDate,
		Description: fmt.Sprintf("Payroll %s to %s", run.PeriodStart.Format(payroll.DateLayout), run.PeriodEnd.Format(payroll.DateLayout)),
		SourceType:  ledger.SourceTypePayrollRun,
		SourceID:    run.ID,
		Lines:       lines,
	}
}
