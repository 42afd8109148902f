package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidateEntry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		entry   JournalEntry
		strict  bool
		wantErr error
	}{
		{
			name:  "valid debit entry",
			entry: JournalEntry{Description: "Setoran modal", Debit: decimal.NewFromInt(1000)},
		},
		{
			name:  "valid kredit entry",
			entry: JournalEntry{Description: "Pendapatan", Kredit: decimal.NewFromInt(1000)},
		},
		{
			name:    "blank description",
			entry:   JournalEntry{Description: "   ", Debit: decimal.NewFromInt(1000)},
			wantErr: ErrBlankDescription,
		},
		{
			name:    "negative debit",
			entry:   JournalEntry{Description: "x", Debit: decimal.NewFromInt(-1)},
			wantErr: ErrNegativeAmount,
		},
		{
			name:    "negative kredit",
			entry:   JournalEntry{Description: "x", Kredit: decimal.NewFromInt(-1)},
			wantErr: ErrNegativeAmount,
		},
		{
			name:    "no amount",
			entry:   JournalEntry{Description: "x"},
			wantErr: ErrNoAmount,
		},
		{
			name:  "both sides tolerated by default",
			entry: JournalEntry{Description: "x", Debit: decimal.NewFromInt(1), Kredit: decimal.NewFromInt(1)},
		},
		{
			name:    "both sides rejected in strict mode",
			entry:   JournalEntry{Description: "x", Debit: decimal.NewFromInt(1), Kredit: decimal.NewFromInt(1)},
			strict:  true,
			wantErr: ErrBothSidesFilled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEntry(&tt.entry, tt.strict)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestJournalEntryKey(t *testing.T) {
	t.Parallel()

	e := JournalEntry{Ref: " 1-1 ", Account: "Kas"}
	if got := e.Key(); got != "1-1" {
		t.Fatalf("expected ref key, got %q", got)
	}

	e = JournalEntry{Account: " Kas "}
	if got := e.Key(); got != "Kas" {
		t.Fatalf("expected account fallback, got %q", got)
	}

	e = JournalEntry{}
	if got := e.Key(); got != "" {
		t.Fatalf("expected empty key, got %q", got)
	}
}

func TestJournalEntryIsBlank(t *testing.T) {
	t.Parallel()

	if !(&JournalEntry{Description: "  "}).IsBlank() {
		t.Fatal("expected blank")
	}
	if (&JournalEntry{Description: "isi"}).IsBlank() {
		t.Fatal("expected non-blank")
	}
}
