package employee

import "context"

// EmployeeRepository reads the employee directory. Payroll only consumes
// employee records, so there are no write operations here.
type EmployeeRepository interface {
	GetByID(ctx context.Context, companyID string, id string) (Employee, error)
	GetByIDs(ctx context.Context, companyID string, ids []string) ([]Employee, error)
}
