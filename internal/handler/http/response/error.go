package response

import (
	"errors"
	"net/http"

	"github.com/kingstonbooks/payroll-backend-go/internal/domain/employee"
	"github.com/kingstonbooks/payroll-backend-go/internal/domain/ledger"
	"github.com/kingstonbooks/payroll-backend-go/internal/domain/payroll"
	"github.com/kingstonbooks/payroll-backend-go/internal/domain/remittance"
	"github.com/kingstonbooks/payroll-backend-go/internal/domain/statutory"
	"github.com/kingstonbooks/payroll-backend-go/internal/pkg/tenant"
	"github.com/kingstonbooks/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Request scoping
	case errors.Is(err, tenant.ErrCompanyIDMissing):
		BadRequest(w, "X-Company-ID header is required", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrRunNotFound):
		NotFound(w, "Payroll run not found")
	case errors.Is(err, payroll.ErrEntryNotFound):
		NotFound(w, "Payroll entry not found")
	case errors.Is(err, payroll.ErrRunNotDraft),
		errors.Is(err, payroll.ErrRunNotApproved),
		errors.Is(err, payroll.ErrInvalidTransition):
		Conflict(w, err.Error())
	case errors.Is(err, payroll.ErrEmployeeNotActive),
		errors.Is(err, payroll.ErrEmployeeHasNoBaseSalary),
		errors.Is(err, payroll.ErrDuplicateEmployee),
		errors.Is(err, payroll.ErrNegativeNetPay):
		BadRequest(w, err.Error(), nil)

	// Employee directory errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Statutory rule errors
	case errors.Is(err, statutory.ErrRuleSetNotFound):
		NotFound(w, "Statutory rule set not found")
	case errors.Is(err, statutory.ErrNoRuleSetForDate):
		BadRequest(w, "No statutory rule set covers the pay date", nil)
	case errors.Is(err, statutory.ErrEffectiveFromTaken):
		Conflict(w, "A statutory rule set with this effective date already exists")

	// Ledger errors
	case errors.Is(err, ledger.ErrEntryNotFound):
		NotFound(w, "Journal entry not found")
	case errors.Is(err, ledger.ErrUnbalancedEntry),
		errors.Is(err, ledger.ErrTooFewLines),
		errors.Is(err, ledger.ErrInvalidLine):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, ledger.ErrDuplicateSource):
		Conflict(w, "A journal entry was already posted for this payroll run")

	// Remittance errors
	case errors.Is(err, remittance.ErrRemittanceNotFound):
		NotFound(w, "Remittance not found")
	case errors.Is(err, remittance.ErrDuplicateRemittance):
		Conflict(w, "Remittance already exists for this period")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
