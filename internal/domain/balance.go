package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// BalanceRow is one line of the per-account running-balance view. Exactly
// one of SaldoDebit/SaldoKredit is nonzero, unless the running balance is
// exactly zero.
type BalanceRow struct {
	Date        string
	Description string
	Debit       decimal.Decimal
	Kredit      decimal.Decimal
	SaldoDebit  decimal.Decimal
	SaldoKredit decimal.Decimal
}

// RunningBalance sorts an account's transactions by date ascending (stable,
// so same-day postings keep journal order; unparseable dates sort first) and
// folds a signed balance over them. A non-negative running balance shows in
// the Saldo Debit column, a negative one shows its magnitude in Saldo
// Kredit, following normal-balance presentation.
func RunningBalance(txs []Transaction) []BalanceRow {
	sorted := make([]Transaction, len(txs))
	copy(sorted, txs)
	sort.SliceStable(sorted, func(i, j int) bool {
		ti, _ := ParseDate(sorted[i].Date)
		tj, _ := ParseDate(sorted[j].Date)
		return ti.Before(tj)
	})

	rows := make([]BalanceRow, 0, len(sorted))
	running := decimal.Zero
	for _, tx := range sorted {
		running = running.Add(tx.Debit).Sub(tx.Kredit)
		row := BalanceRow{
			Date:        tx.Date,
			Description: tx.Description,
			Debit:       tx.Debit,
			Kredit:      tx.Kredit,
			SaldoDebit:  decimal.Zero,
			SaldoKredit: decimal.Zero,
		}
		if running.IsNegative() {
			row.SaldoKredit = running.Neg()
		} else {
			row.SaldoDebit = running
		}
		rows = append(rows, row)
	}
	return rows
}
