package fixtures

import (
	"time"

	"github.com/kingstonbooks/payroll-backend-go/internal/domain/employee"
)

// ==========================================
// HELPER FUNCTIONS
// ==========================================

func strPtr(s string) *string { return &s }

// ==========================================
// DEMO COMPANY
// ==========================================

// DemoCompany is the sample tenant cmd/migrate can seed for local
// development and demos.
type DemoCompany struct {
	Name string
}

func GetDemoCompany() DemoCompany {
	return DemoCompany{Name: "Kingston Stationery & Office Supplies Ltd"}
}

// ==========================================
// DEMO EMPLOYEES
// ==========================================

// GetDemoEmployees returns a small staff roster for the demo company. The
// salaries are chosen to cover the interesting statutory cases: one above
// the monthly NIS insurable ceiling, one under the annual PAYE threshold,
// and one former employee that payroll must refuse to include.
func GetDemoEmployees(companyID string) []employee.Employee {
	hired := func(year int, month time.Month, day int) *time.Time {
		t := date(year, month, day)
		return &t
	}

	return []employee.Employee{
		{
			CompanyID:        companyID,
			EmployeeCode:     "EMP-001",
			FullName:         "Alton Reid",
			Email:            strPtr("alton.reid@kingstonstationery.com"),
			BaseSalary:       dec("450000.00"), // above the monthly NIS ceiling
			PayFrequency:     employee.PayFrequencyMonthly,
			EmploymentStatus: employee.EmploymentStatusActive,
			HireDate:         hired(2019, time.March, 4),
		},
		{
			CompanyID:        companyID,
			EmployeeCode:     "EMP-002",
			FullName:         "Marcia Campbell",
			Email:            strPtr("marcia.campbell@kingstonstationery.com"),
			BaseSalary:       dec("300000.00"),
			PayFrequency:     employee.PayFrequencyMonthly,
			EmploymentStatus: employee.EmploymentStatusActive,
			HireDate:         hired(2020, time.September, 14),
		},
		{
			CompanyID:        companyID,
			EmployeeCode:     "EMP-003",
			FullName:         "Devon Thompson",
			Email:            strPtr("devon.thompson@kingstonstationery.com"),
			BaseSalary:       dec("180000.00"),
			PayFrequency:     employee.PayFrequencyMonthly,
			EmploymentStatus: employee.EmploymentStatusActive,
			HireDate:         hired(2022, time.January, 10),
		},
		{
			CompanyID:        companyID,
			EmployeeCode:     "EMP-004",
			FullName:         "Keisha Douglas",
			Email:            strPtr("keisha.douglas@kingstonstationery.com"),
			BaseSalary:       dec("120000.00"), // annualized below the PAYE threshold
			PayFrequency:     employee.PayFrequencyMonthly,
			EmploymentStatus: employee.EmploymentStatusActive,
			HireDate:         hired(2023, time.June, 1),
		},
		{
			CompanyID:        companyID,
			EmployeeCode:     "EMP-005",
			FullName:         "Omar Levy",
			Email:            strPtr("omar.levy@kingstonstationery.com"),
			BaseSalary:       dec("95000.00"),
			PayFrequency:     employee.PayFrequencyMonthly,
			EmploymentStatus: employee.EmploymentStatusActive,
			HireDate:         hired(2024, time.February, 19),
		},
		{
			CompanyID:        companyID,
			EmployeeCode:     "EMP-006",
			FullName:         "Patrice Grant",
			Email:            strPtr("patrice.grant@kingstonstationery.com"),
			BaseSalary:       dec("210000.00"),
			PayFrequency:     employee.PayFrequencyMonthly,
			EmploymentStatus: employee.EmploymentStatusResigned,
			HireDate:         hired(2018, time.November, 5),
		},
	}
}
