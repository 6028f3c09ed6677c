package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID               string
	CompanyID        string
	EmployeeCode     string
	FullName         string
	Email            *string
	BaseSalary       decimal.Decimal
	PayFrequency     PayFrequency
	EmploymentStatus EmploymentStatus
	HireDate         *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type PayFrequency string

const (
	PayFrequencyMonthly PayFrequency = "monthly"
)

type EmploymentStatus string

const (
	EmploymentStatusActive     EmploymentStatus = "active"
	EmploymentStatusResigned   EmploymentStatus = "resigned"
	EmploymentStatusTerminated EmploymentStatus = "terminated"
)

// IsActive reports whether the employee can be included in a payroll run.
func (e Employee) IsActive() bool {
	return e.EmploymentStatus == EmploymentStatusActive
}
