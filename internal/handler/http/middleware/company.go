package middleware

import (
	"net/http"

	"github.com/kingstonbooks/payroll-backend-go/internal/handler/http/response"
	"github.com/kingstonbooks/payroll-backend-go/internal/pkg/tenant"
	"github.com/kingstonbooks/payroll-backend-go/internal/pkg/validator"
)

// CompanyHeader names the header the authenticating gateway forwards after
// resolving the caller's company. Authentication itself happens upstream;
// this service only scopes its work to the company it is told about.
const CompanyHeader = "X-Company-ID"

// RequireCompany rejects requests without a usable company header and puts
// the company ID on the request context for handlers and services.
func RequireCompany(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		companyID := r.Header.Get(CompanyHeader)
		if companyID == "" {
			response.HandleError(w, tenant.ErrCompanyIDMissing)
			return
		}
		if !validator.IsValidUUID(companyID) {
			response.BadRequest(w, "X-Company-ID must be a valid UUID", nil)
			return
		}

		ctx := tenant.WithCompanyID(r.Context(), companyID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
