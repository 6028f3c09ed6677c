package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/kingstonbooks/payroll-backend-go/internal/domain/ledger"
	"github.com/kingstonbooks/payroll-backend-go/internal/pkg/database"
)

type ledgerRepository struct {
	db *database.DB
}

func NewLedgerRepository(db *database.DB) ledger.LedgerRepository {
	return &ledgerRepository{db: db}
}

func (r *ledgerRepository) Post(ctx context.Context, entry ledger.JournalEntry) (string, error) {
	if err := entry.Validate(); err != nil {
		return "", err
	}

	q := GetQuerier(ctx, r.db)

	if entry.Reference == "" {
		entry.Reference = "JE-" + uuid.NewString()
	}

	query := `
		INSERT INTO journal_entries (
			reference, company_id, entry_date, description, source_type, source_id,
			total_debit, total_credit
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	var entryID string
	err := q.QueryRow(ctx, query,
		entry.Reference, entry.CompanyID, entry.EntryDate, entry.Description,
		entry.SourceType, entry.SourceID,
		entry.TotalDebit(), entry.TotalCredit(),
	).Scan(&entryID)
	if err != nil {
		if strings.Contains(err.Error(), "uk_journal_entry_source") {
			return "", ledger.ErrDuplicateSource
		}
		return "", fmt.Errorf("failed to post journal entry: %w", err)
	}

	lineQuery := `
		INSERT INTO journal_lines (journal_entry_id, line_no, account_code, account_name, debit, credit)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	for i, line := range entry.Lines {
		_, err := q.Exec(ctx, lineQuery,
			entryID, i+1, line.AccountCode, line.AccountName, line.Debit, line.Credit,
		)
		if err != nil {
			return "", fmt.Errorf("failed to insert journal line: %w", err)
		}
	}

	return entry.Reference, nil
}

func (r *ledgerRepository) GetByReference(ctx context.Context, companyID string, reference string) (ledger.JournalEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, reference, company_id, entry_date, description, source_type, source_id, created_at
		FROM journal_entries
		WHERE reference = $1 AND company_id = $2
	`

	var entry ledger.JournalEntry
	err := q.QueryRow(ctx, query, reference, companyID).Scan(
		&entry.ID, &entry.Reference, &entry.CompanyID, &entry.EntryDate,
		&entry.Description, &entry.SourceType, &entry.SourceID, &entry.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return ledger.JournalEntry{}, ledger.ErrEntryNotFound
		}
		return ledger.JournalEntry{}, fmt.Errorf("failed to get journal entry: %w", err)
	}

	lineQuery := `
		SELECT line_no, account_code, account_name, debit, credit
		FROM journal_lines
		WHERE journal_entry_id = $1
		ORDER BY line_no
	`

	rows, err := q.Query(ctx, lineQuery, entry.ID)
	if err != nil {
		return ledger.JournalEntry{}, fmt.Errorf("failed to load journal lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var line ledger.JournalLine
		err := rows.Scan(&line.LineNo, &line.AccountCode, &line.AccountName, &line.Debit, &line.Credit)
		if err != nil {
			return ledger.JournalEntry{}, fmt.Errorf("failed to scan journal line: %w", err)
		}
		entry.Lines = append(entry.Lines, line)
	}

	return entry, rows.Err()
}
