package domain

import "github.com/shopspring/decimal"

// LineItem is one user-curated row of a financial statement table.
type LineItem struct {
	Label  string
	Amount decimal.Decimal
}

// SumLineItems totals a statement table.
func SumLineItems(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Amount)
	}
	return total
}

// StatementData holds every user-curated statement table for the session.
// Tables are optionally bulk-seeded once from the trial balance (Seeded
// guards the one-shot), thereafter edited independently.
type StatementData struct {
	Revenues      []LineItem
	Expenses      []LineItem
	CurrentAssets []LineItem
	FixedAssets   []LineItem
	Liabilities   []LineItem
	Operating     []LineItem
	Investing     []LineItem
	Financing     []LineItem

	OpeningCapital decimal.Decimal
	Withdrawals    decimal.Decimal
	Seeded         bool
}

// NewStatementData returns an empty statement state with zeroed equity.
func NewStatementData() *StatementData {
	return &StatementData{
		OpeningCapital: decimal.Zero,
		Withdrawals:    decimal.Zero,
	}
}

// IncomeStatement is the derived Laba/Rugi report.
type IncomeStatement struct {
	Revenues     []LineItem
	Expenses     []LineItem
	TotalRevenue decimal.Decimal
	TotalExpense decimal.Decimal
	NetResult    decimal.Decimal
	Profit       bool
}

// Income derives the income statement: revenue credits minus expense debits.
// A non-negative net result reports as Laba (profit), otherwise the Rugi
// magnitude.
func (d *StatementData) Income() IncomeStatement {
	totalRevenue := SumLineItems(d.Revenues)
	totalExpense := SumLineItems(d.Expenses)
	net := totalRevenue.Sub(totalExpense)
	return IncomeStatement{
		Revenues:     d.Revenues,
		Expenses:     d.Expenses,
		TotalRevenue: totalRevenue,
		TotalExpense: totalExpense,
		NetResult:    net,
		Profit:       !net.IsNegative(),
	}
}

// BalanceSheet is the derived Neraca report. Balanced reports whether the
// closure identity holds; it is reported, never enforced.
type BalanceSheet struct {
	CurrentAssets []LineItem
	FixedAssets   []LineItem
	Liabilities   []LineItem

	TotalCurrentAssets decimal.Decimal
	TotalFixedAssets   decimal.Decimal
	TotalAssets        decimal.Decimal
	TotalLiabilities   decimal.Decimal

	OpeningCapital decimal.Decimal
	NetResult      decimal.Decimal
	Withdrawals    decimal.Decimal
	EndingEquity   decimal.Decimal

	TotalLiabilitiesEquity decimal.Decimal
	Balanced               bool
}

// Balance derives the balance sheet. Ending equity is opening capital plus
// the income statement's net result minus owner withdrawals (prive).
func (d *StatementData) Balance() BalanceSheet {
	income := d.Income()

	totalCurrent := SumLineItems(d.CurrentAssets)
	totalFixed := SumLineItems(d.FixedAssets)
	totalAssets := totalCurrent.Add(totalFixed)
	totalLiabilities := SumLineItems(d.Liabilities)

	equity := d.OpeningCapital.Add(income.NetResult).Sub(d.Withdrawals)
	totalPassiva := totalLiabilities.Add(equity)

	return BalanceSheet{
		CurrentAssets:          d.CurrentAssets,
		FixedAssets:            d.FixedAssets,
		Liabilities:            d.Liabilities,
		TotalCurrentAssets:     totalCurrent,
		TotalFixedAssets:       totalFixed,
		TotalAssets:            totalAssets,
		TotalLiabilities:       totalLiabilities,
		OpeningCapital:         d.OpeningCapital,
		NetResult:              income.NetResult,
		Withdrawals:            d.Withdrawals,
		EndingEquity:           equity,
		TotalLiabilitiesEquity: totalPassiva,
		Balanced:               totalAssets.Equal(totalPassiva),
	}
}

// CashFlowStatement groups the three independent activity subtotals. There
// is no derivation from the ledger; every line is operator input.
type CashFlowStatement struct {
	Operating []LineItem
	Investing []LineItem
	Financing []LineItem

	TotalOperating decimal.Decimal
	TotalInvesting decimal.Decimal
	TotalFinancing decimal.Decimal
}

// CashFlow derives the Arus Kas report.
func (d *StatementData) CashFlow() CashFlowStatement {
	return CashFlowStatement{
		Operating:      d.Operating,
		Investing:      d.Investing,
		Financing:      d.Financing,
		TotalOperating: SumLineItems(d.Operating),
		TotalInvesting: SumLineItems(d.Investing),
		TotalFinancing: SumLineItems(d.Financing),
	}
}
