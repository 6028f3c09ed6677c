package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func line(account string, debit, credit string) JournalLine {
	return JournalLine{
		AccountCode: account,
		AccountName: account,
		Debit:       decimal.RequireFromString(debit),
		Credit:      decimal.RequireFromString(credit),
	}
}

func TestJournalEntryValidate(t *testing.T) {
	tests := []struct {
		name    string
		lines   []JournalLine
		wantErr error
	}{
		{
			name: "balanced two-line entry",
			lines: []JournalLine{
				line("6100", "1000.00", "0"),
				line("2100", "0", "1000.00"),
			},
		},
		{
			name: "balanced entry with split credits",
			lines: []JournalLine{
				line("6100", "1500.00", "0"),
				line("2100", "0", "900.00"),
				line("2200", "0", "600.00"),
			},
		},
		{
			name:    "no lines",
			lines:   nil,
			wantErr: ErrTooFewLines,
		},
		{
			name: "single line",
			lines: []JournalLine{
				line("6100", "1000.00", "0"),
			},
			wantErr: ErrTooFewLines,
		},
		{
			name: "debits and credits differ",
			lines: []JournalLine{
				line("6100", "1000.00", "0"),
				line("2100", "0", "999.99"),
			},
			wantErr: ErrUnbalancedEntry,
		},
		{
			name: "line with both sides set",
			lines: []JournalLine{
				line("6100", "500.00", "500.00"),
				line("2100", "0", "0"),
			},
			wantErr: ErrInvalidLine,
		},
		{
			name: "line with neither side set",
			lines: []JournalLine{
				line("6100", "1000.00", "0"),
				line("2100", "0", "0"),
			},
			wantErr: ErrInvalidLine,
		},
		{
			name: "line with negative amount",
			lines: []JournalLine{
				line("6100", "-1000.00", "0"),
				line("2100", "0", "-1000.00"),
			},
			wantErr: ErrInvalidLine,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := JournalEntry{Lines: tt.lines}
			err := entry.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestJournalEntryTotals(t *testing.T) {
	entry := JournalEntry{
		Lines: []JournalLine{
			line("6100", "1200.50", "0"),
			line("6200", "300.25", "0"),
			line("2100", "0", "1500.75"),
		},
	}

	assert.Equal(t, "1500.75", entry.TotalDebit().StringFixed(2))
	assert.Equal(t, "1500.75", entry.TotalCredit().StringFixed(2))
}
