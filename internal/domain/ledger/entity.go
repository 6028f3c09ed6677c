package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// SourceType identifies the subsystem that produced a journal entry.
// The ledger enforces one entry per (source type, source ID) pair, which is
// what makes posting idempotent for callers that retry.
const (
	SourceTypePayrollRun = "payroll_run"
)

// JournalEntry is a double-entry posting. Entries are immutable once
// accepted by the ledger; corrections are new entries.
type JournalEntry struct {
	ID          string
	Reference   string
	CompanyID   string
	EntryDate   time.Time
	Description string
	SourceType  string
	SourceID    string
	Lines       []JournalLine
	CreatedAt   time.Time
}

// JournalLine carries an amount on exactly one side. LineNo preserves the
// order lines were built in, for display only.
type JournalLine struct {
	LineNo      int
	AccountCode string
	AccountName string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
}

func (e JournalEntry) TotalDebit() decimal.Decimal {
	total := decimal.Zero
	for _, line := range e.Lines {
		total = total.Add(line.Debit)
	}
	return total
}

func (e JournalEntry) TotalCredit() decimal.Decimal {
	total := decimal.Zero
	for _, line := range e.Lines {
		total = total.Add(line.Credit)
	}
	return total
}

// Validate checks the double-entry invariants: at least two lines, an
// amount on exactly one side of every line, and total debits equal to
// total credits. The ledger refuses to post an entry that fails any of
// these checks.
func (e JournalEntry) Validate() error {
	if len(e.Lines) < 2 {
		return ErrTooFewLines
	}
	for i, line := range e.Lines {
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			return fmt.Errorf("%w: line %d has a negative amount", ErrInvalidLine, i+1)
		}
		if line.Debit.IsPositive() == line.Credit.IsPositive() {
			return fmt.Errorf("%w: line %d must carry an amount on exactly one side", ErrInvalidLine, i+1)
		}
	}
	if !e.TotalDebit().Equal(e.TotalCredit()) {
		return fmt.Errorf("%w: debits %s, credits %s", ErrUnbalancedEntry,
			e.TotalDebit().StringFixed(2), e.TotalCredit().StringFixed(2))
	}
	return nil
}
