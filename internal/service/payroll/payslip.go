package payroll

import (
	"context"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/kingstonbooks/payroll-backend-go/internal/domain/payroll"
)

// RenderPayslip writes one entry's payslip to w as an A4 PDF. Works for
// any run status: a draft payslip is a preview, an approved or paid one is
// the record handed to the employee.
func (s *PayrollServiceImpl) RenderPayslip(ctx context.Context, companyID string, runID string, entryID string, w io.Writer) error {
	run, err := s.runRepo.GetRunByID(ctx, companyID, runID)
	if err != nil {
		return err
	}

	var entry *payroll.PayrollEntry
	for i := range run.Entries {
		if run.Entries[i].ID == entryID {
			entry = &run.Entries[i]
			break
		}
	}
	if entry == nil {
		return payroll.ErrEntryNotFound
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Payslip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	if entry.EmployeeName != nil {
		pdf.Cell(0, 7, fmt.Sprintf("Employee: %s", *entry.EmployeeName))
		pdf.Ln(6)
	}
	if entry.EmployeeCode != nil {
		pdf.Cell(0, 7, fmt.Sprintf("Employee code: %s", *entry.EmployeeCode))
		pdf.Ln(6)
	}
	pdf.Cell(0, 7, fmt.Sprintf("Period: %s to %s", run.PeriodStart.Format(payroll.DateLayout), run.PeriodEnd.Format(payroll.DateLayout)))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Pay date: %s", run.PayDate.Format(payroll.DateLayout)))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Status: %s", run.Status))
	pdf.Ln(10)

	section := func(title string) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, title)
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
	}
	row := func(label string, amount decimal.Decimal) {
		pdf.Cell(120, 6, label)
		pdf.CellFormat(50, 6, amount.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.Ln(6)
	}
	optionalRow := func(label string, amount decimal.Decimal) {
		if amount.IsZero() {
			return
		}
		row(label, amount)
	}
	totalRow := func(label string, amount decimal.Decimal) {
		pdf.SetFont("Helvetica", "B", 11)
		row(label, amount)
		pdf.SetFont("Helvetica", "", 11)
		pdf.Ln(4)
	}

	section("Earnings")
	row("Basic salary", entry.BasicSalary)
	optionalRow("Overtime", entry.Overtime)
	optionalRow("Bonus", entry.Bonus)
	optionalRow("Commission", entry.Commission)
	optionalRow("Allowances", entry.Allowances)
	totalRow("Gross pay", entry.GrossPay)

	section("Deductions")
	row("PAYE", entry.PAYE)
	row("NIS", entry.NIS)
	row("NHT", entry.NHT)
	row("Education tax", entry.EducationTax)
	optionalRow("Pension contribution", entry.PensionContribution)
	optionalRow("Other deductions", entry.OtherDeductions)
	totalRow("Total deductions", entry.TotalDeductions)

	totalRow("Net pay", entry.NetPay)

	section("Employer contributions (informational)")
	row("NIS", entry.EmployerNIS)
	row("NHT", entry.EmployerNHT)
	row("Education tax", entry.EmployerEducationTax)
	row("HEART levy", entry.EmployerHEART)
	totalRow("Total employer contributions", entry.TotalEmployerContributions)

	return pdf.Output(w)
}
