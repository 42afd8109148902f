package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// TrialBalanceRow is one line of the Neraca Saldo. Rows are synchronized
// from ledger snapshots but remain independently editable: a manual row may
// exist with no journal activity behind it.
type TrialBalanceRow struct {
	Ref     string
	Account string
	Debit   decimal.Decimal
	Kredit  decimal.Decimal
}

// SyncMode selects how MergeTrialBalance treats rows that no longer match a
// ledger account.
type SyncMode string

const (
	// SyncMerge updates and appends only; unmatched rows are left untouched.
	SyncMerge SyncMode = "merge"
	// SyncReplace prunes rows whose Ref is absent from the ledger, so the
	// trial balance exactly mirrors current journal activity.
	SyncReplace SyncMode = "replace"
)

// Valid reports whether m is a known sync mode.
func (m SyncMode) Valid() bool {
	return m == SyncMerge || m == SyncReplace
}

// MergeTrialBalance reconciles the persisted trial balance against a ledger
// snapshot. Existing rows are updated in place by Ref (blank Refs are never
// merge targets), unknown accounts are appended in sorted key order, and row
// order is otherwise preserved. No Ref is ever duplicated.
func MergeTrialBalance(rows []TrialBalanceRow, ledger Ledger, mode SyncMode) []TrialBalanceRow {
	merged := make([]TrialBalanceRow, len(rows))
	copy(merged, rows)

	index := make(map[string]int, len(merged))
	for i, row := range merged {
		ref := strings.TrimSpace(row.Ref)
		if ref == "" {
			continue
		}
		if _, seen := index[ref]; !seen {
			index[ref] = i
		}
	}

	for _, ref := range ledger.Refs() {
		acc := ledger[ref]
		row := TrialBalanceRow{
			Ref:     ref,
			Account: acc.Name,
			Debit:   acc.NetDebit(),
			Kredit:  acc.NetKredit(),
		}
		if i, ok := index[ref]; ok {
			if strings.TrimSpace(acc.Name) == "" {
				row.Account = merged[i].Account
			}
			merged[i] = row
			continue
		}
		index[ref] = len(merged)
		merged = append(merged, row)
	}

	if mode == SyncReplace {
		kept := merged[:0]
		for _, row := range merged {
			if _, ok := ledger[strings.TrimSpace(row.Ref)]; ok {
				kept = append(kept, row)
			}
		}
		merged = kept
	}

	return merged
}

// TrialBalanceTotals sums both columns over rows with a non-blank account
// name, for the Jumlah line.
func TrialBalanceTotals(rows []TrialBalanceRow) (debit, kredit decimal.Decimal) {
	debit, kredit = decimal.Zero, decimal.Zero
	for _, row := range rows {
		if strings.TrimSpace(row.Account) == "" {
			continue
		}
		debit = debit.Add(row.Debit)
		kredit = kredit.Add(row.Kredit)
	}
	return debit, kredit
}
