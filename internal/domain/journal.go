package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is one keyed-in transaction line of the general journal.
// Date is kept as the raw text the operator typed; it is parsed lazily so an
// unparseable date never blocks storage (it only drops the entry from period
// views).
type JournalEntry struct {
	ID          string
	Date        string
	Description string
	Ref         string
	Account     string
	Debit       decimal.Decimal
	Kredit      decimal.Decimal
	CreatedAt   time.Time
}

// Key returns the grouping key for the ledger: the Ref code, falling back to
// the account name when no Ref was entered. Empty means the entry belongs to
// no account.
func (e *JournalEntry) Key() string {
	if ref := strings.TrimSpace(e.Ref); ref != "" {
		return ref
	}
	return strings.TrimSpace(e.Account)
}

// IsBlank reports whether the row is an empty grid placeholder. Blank rows
// are kept in the store but excluded from every derived view.
func (e *JournalEntry) IsBlank() bool {
	return strings.TrimSpace(e.Description) == ""
}

// JournalTotals sums the debit and kredit columns over non-blank rows, for
// the TOTAL line of the journal view.
func JournalTotals(entries []*JournalEntry) (debit, kredit decimal.Decimal) {
	debit, kredit = decimal.Zero, decimal.Zero
	for _, e := range entries {
		if e.IsBlank() {
			continue
		}
		debit = debit.Add(e.Debit)
		kredit = kredit.Add(e.Kredit)
	}
	return debit, kredit
}
