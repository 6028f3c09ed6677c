package remittance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kingstonbooks/payroll-backend-go/internal/pkg/validator"
)

const (
	dateLayout  = "2006-01-02"
	monthLayout = "2006-01"
)

// ========== REQUEST DTOs ==========

type GenerateRemittancesRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

func (r *GenerateRemittancesRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be a valid year"})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ListFilter narrows List. Year is required; month and type are optional.
type ListFilter struct {
	Year  int
	Month *int
	Type  *Type
}

// ========== RESPONSE DTOs ==========

type RemittanceResponse struct {
	ID              string          `json:"id"`
	Type            Type            `json:"type"`
	PeriodMonth     string          `json:"period_month"`
	AmountDue       decimal.Decimal `json:"amount_due"`
	AmountPaid      decimal.Decimal `json:"amount_paid"`
	Outstanding     decimal.Decimal `json:"outstanding"`
	DueDate         string          `json:"due_date"`
	Status          Status          `json:"status"`
	PaymentDate     *string         `json:"payment_date,omitempty"`
	ReferenceNumber *string         `json:"reference_number,omitempty"`
}

type RemittanceListResponse struct {
	Remittances []RemittanceResponse `json:"remittances"`
	Summary     Summary              `json:"summary"`
}

func NewRemittanceResponse(r Remittance, now time.Time) RemittanceResponse {
	resp := RemittanceResponse{
		ID:              r.ID,
		Type:            r.Type,
		PeriodMonth:     r.PeriodMonth.Format(monthLayout),
		AmountDue:       r.AmountDue,
		AmountPaid:      r.AmountPaid,
		Outstanding:     r.Outstanding(),
		DueDate:         r.DueDate.Format(dateLayout),
		Status:          r.StatusAt(now),
		ReferenceNumber: r.ReferenceNumber,
	}
	if r.PaymentDate != nil {
		paid := r.PaymentDate.Format(dateLayout)
		resp.PaymentDate = &paid
	}
	return resp
}

func NewRemittanceListResponse(remittances []Remittance, now time.Time) RemittanceListResponse {
	resp := RemittanceListResponse{
		Remittances: make([]RemittanceResponse, 0, len(remittances)),
		Summary:     NewSummary(remittances, now),
	}
	for _, r := range remittances {
		resp.Remittances = append(resp.Remittances, NewRemittanceResponse(r, now))
	}
	return resp
}
