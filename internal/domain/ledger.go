package domain

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Transaction is one ledger line inside an account: a debit or a kredit
// posting copied from a journal entry.
type Transaction struct {
	Date        string
	Description string
	Debit       decimal.Decimal
	Kredit      decimal.Decimal
}

// Account is the per-account aggregate of the ledger (Buku Besar).
type Account struct {
	Ref          string
	Name         string
	TotalDebit   decimal.Decimal
	TotalKredit  decimal.Decimal
	Transactions []Transaction
}

// NetDebit is max(TotalDebit - TotalKredit, 0).
func (a *Account) NetDebit() decimal.Decimal {
	net := a.TotalDebit.Sub(a.TotalKredit)
	if net.IsNegative() {
		return decimal.Zero
	}
	return net
}

// NetKredit is max(TotalKredit - TotalDebit, 0).
func (a *Account) NetKredit() decimal.Decimal {
	net := a.TotalKredit.Sub(a.TotalDebit)
	if net.IsNegative() {
		return decimal.Zero
	}
	return net
}

// Ledger maps account key (Ref, or account name when Ref is blank) to its
// aggregate. Rebuilt from scratch from the journal on every access.
type Ledger map[string]*Account

// BuildLedger folds journal entries into per-account aggregates.
//
// An entry with a positive debit posts a debit transaction; a positive kredit
// posts a kredit transaction. The checks are independent: a malformed row
// with both sides filled posts twice. That tolerance is deliberate, the grid
// does not enforce well-formed entries.
func BuildLedger(entries []*JournalEntry) Ledger {
	ledger := Ledger{}
	for _, e := range entries {
		key := e.Key()
		if key == "" {
			continue
		}

		acc, ok := ledger[key]
		if !ok {
			name := strings.TrimSpace(e.Account)
			if name == "" {
				name = "Akun " + key
			}
			acc = &Account{
				Ref:         key,
				Name:        name,
				TotalDebit:  decimal.Zero,
				TotalKredit: decimal.Zero,
			}
			ledger[key] = acc
		}

		if e.Debit.IsPositive() {
			acc.Transactions = append(acc.Transactions, Transaction{
				Date:        e.Date,
				Description: strings.TrimSpace(e.Description),
				Debit:       e.Debit,
				Kredit:      decimal.Zero,
			})
			acc.TotalDebit = acc.TotalDebit.Add(e.Debit)
		}
		if e.Kredit.IsPositive() {
			acc.Transactions = append(acc.Transactions, Transaction{
				Date:        e.Date,
				Description: strings.TrimSpace(e.Description),
				Debit:       decimal.Zero,
				Kredit:      e.Kredit,
			})
			acc.TotalKredit = acc.TotalKredit.Add(e.Kredit)
		}
	}
	return ledger
}

// OverlayNames replaces account display names with the trial balance's
// naming where a row with the same Ref carries a non-blank name. The trial
// balance is where the operator names accounts authoritatively.
func (l Ledger) OverlayNames(rows []TrialBalanceRow) {
	for _, row := range rows {
		ref := strings.TrimSpace(row.Ref)
		name := strings.TrimSpace(row.Account)
		if ref == "" || name == "" {
			continue
		}
		if acc, ok := l[ref]; ok {
			acc.Name = name
		}
	}
}

// Refs lists the account keys in sorted order for deterministic output.
func (l Ledger) Refs() []string {
	refs := make([]string, 0, len(l))
	for ref := range l {
		refs = append(refs, ref)
	}
	sort.Strings(refs)
	return refs
}
