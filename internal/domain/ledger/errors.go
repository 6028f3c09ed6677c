package ledger

import "errors"

var (
	ErrEntryNotFound   = errors.New("journal entry not found")
	ErrTooFewLines     = errors.New("journal entry needs at least two lines")
	ErrInvalidLine     = errors.New("invalid journal line")
	ErrUnbalancedEntry = errors.New("journal entry is not balanced")
	ErrDuplicateSource = errors.New("journal entry already posted for this source")
)
