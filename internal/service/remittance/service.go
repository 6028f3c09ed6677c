package remittance

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/kingstonbooks/payroll-backend-go/internal/domain/remittance"
	"github.com/kingstonbooks/payroll-backend-go/internal/pkg/database"
	"github.com/kingstonbooks/payroll-backend-go/internal/pkg/validator"
	"github.com/kingstonbooks/payroll-backend-go/internal/repository/postgresql"
)

type RemittanceServiceImpl struct {
	db   *database.DB
	repo remittance.RemittanceRepository
}

func NewRemittanceService(db *database.DB, repo remittance.RemittanceRepository) remittance.RemittanceService {
	return &RemittanceServiceImpl{db: db, repo: repo}
}

func (s *RemittanceServiceImpl) Generate(ctx context.Context, companyID string, req remittance.GenerateRemittancesRequest) (remittance.RemittanceListResponse, error) {
	if err := req.Validate(); err != nil {
		return remittance.RemittanceListResponse{}, err
	}

	month := time.Month(req.Month)

	var (
		generated []remittance.Remittance
		runCount  int64
	)
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		totals, err := s.repo.SumDeductionsForMonth(txCtx, companyID, req.Year, month)
		if err != nil {
			return err
		}
		runCount = totals.RunCount

		existing, err := s.repo.ListForPeriod(txCtx, companyID, req.Year, month)
		if err != nil {
			return err
		}
		hasRecord := make(map[remittance.Type]bool, len(existing))
		for _, rem := range existing {
			hasRecord[rem.Type] = true
		}

		period := remittance.PeriodFor(req.Year, month)
		dueDate := remittance.DueDateFor(req.Year, month)
		for _, typ := range remittance.AllTypes {
			amountDue := totals.AmountFor(typ)
			// A type only gets a record once something is owed for it.
			// Existing records are always refreshed so a correction that
			// drops the obligation to zero still shows up.
			if !amountDue.IsPositive() && !hasRecord[typ] {
				continue
			}
			if _, err := s.repo.UpsertAmountDue(txCtx, remittance.Remittance{
				CompanyID:   companyID,
				Type:        typ,
				PeriodMonth: period,
				AmountDue:   amountDue,
				DueDate:     dueDate,
			}); err != nil {
				return err
			}
		}

		generated, err = s.repo.ListForPeriod(txCtx, companyID, req.Year, month)
		return err
	})
	if err != nil {
		return remittance.RemittanceListResponse{}, err
	}

	slog.Info("remittances generated",
		"company_id", companyID, "year", req.Year, "month", req.Month,
		"runs", runCount, "count", len(generated))
	return remittance.NewRemittanceListResponse(generated, time.Now().UTC()), nil
}

func (s *RemittanceServiceImpl) List(ctx context.Context, companyID string, filter remittance.ListFilter) (remittance.RemittanceListResponse, error) {
	var errs validator.ValidationErrors
	if !validator.IsValidYear(filter.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be a valid year"})
	}
	if filter.Month != nil && !validator.IsValidMonth(*filter.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if filter.Type != nil && !filter.Type.Valid() {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be one of paye, nis, nht, education_tax, heart"})
	}
	if len(errs) > 0 {
		return remittance.RemittanceListResponse{}, errs
	}

	remittances, err := s.repo.List(ctx, companyID, filter)
	if err != nil {
		return remittance.RemittanceListResponse{}, err
	}

	return remittance.NewRemittanceListResponse(remittances, time.Now().UTC()), nil
}
