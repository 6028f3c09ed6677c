package payroll

import "errors"

var (
	ErrRunNotFound             = errors.New("payroll run not found")
	ErrEntryNotFound           = errors.New("payroll entry not found")
	ErrRunNotDraft             = errors.New("payroll run is no longer a draft")
	ErrRunNotApproved          = errors.New("payroll run is not approved")
	ErrInvalidTransition       = errors.New("invalid payroll run status transition")
	ErrEmployeeNotActive       = errors.New("employee is not active")
	ErrDuplicateEmployee       = errors.New("employee appears more than once in the run")
	ErrNegativeNetPay          = errors.New("net pay cannot be negative")
	ErrEmployeeHasNoBaseSalary = errors.New("employee has no base salary configured")
)
