package remittance

import "errors"

var (
	ErrRemittanceNotFound  = errors.New("remittance not found")
	ErrDuplicateRemittance = errors.New("remittance already exists for this period")
)
