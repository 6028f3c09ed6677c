package ledger

import "context"

// LedgerRepository posts journal entries to the general ledger and reads
// them back. Post participates in the caller's transaction when one is in
// flight, so a failed caller rolls the posting back with everything else.
type LedgerRepository interface {
	// Post validates the entry, stores it and returns the posting
	// reference. An unbalanced entry is rejected with ErrUnbalancedEntry;
	// a second posting for the same source is rejected with
	// ErrDuplicateSource.
	Post(ctx context.Context, entry JournalEntry) (string, error)
	GetByReference(ctx context.Context, companyID string, reference string) (JournalEntry, error)
}
