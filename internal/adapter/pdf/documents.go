package pdf

import (
	"fmt"

	"github.com/desadigital/bumdeskas/internal/domain"
	"github.com/desadigital/bumdeskas/internal/usecase"
)

// JournalDocument lays out the general journal with its TOTAL line.
func JournalDocument(view *usecase.JournalView, period domain.Period) *Document {
	doc := &Document{
		Title:     "Jurnal Umum BUMDes",
		Subtitles: []string{"Periode: " + period.Label()},
		Header:    []string{"No", "Tanggal", "Keterangan", "Ref", "Akun", "Debit (Rp)", "Kredit (Rp)"},
		Widths:    []float64{12, 24, 50, 16, 40, 24, 24},
		Aligns:    []string{"C", "C", "L", "C", "L", "R", "R"},
		BoldRows:  map[int]bool{},
	}

	for i, e := range view.Entries {
		doc.Rows = append(doc.Rows, []string{
			fmt.Sprintf("%d", i+1),
			e.Date,
			Truncate(e.Description, 30),
			e.Ref,
			Truncate(e.Account, 24),
			FormatRupiah(e.Debit),
			FormatRupiah(e.Kredit),
		})
	}

	doc.Rows = append(doc.Rows, []string{
		"", "", "TOTAL", "", "",
		FormatRupiah(view.TotalDebit),
		FormatRupiah(view.TotalKredit),
	})
	doc.BoldRows[len(doc.Rows)-1] = true

	return doc
}

// LedgerAccountDocument lays out one account's ledger page with running
// balances.
func LedgerAccountDocument(view *usecase.AccountView) *Document {
	doc := &Document{
		Title: "Buku Besar",
		Subtitles: []string{
			"Akun: " + view.Account.Name,
			"Total Debit: " + FormatRupiah(view.Account.TotalDebit),
			"Total Kredit: " + FormatRupiah(view.Account.TotalKredit),
		},
		Header: []string{"Tanggal", "Keterangan", "Debit (Rp)", "Kredit (Rp)", "Saldo Debit (Rp)", "Saldo Kredit (Rp)"},
		Widths: []float64{24, 52, 28, 28, 29, 29},
		Aligns: []string{"C", "L", "R", "R", "R", "R"},
	}

	for _, row := range view.Rows {
		doc.Rows = append(doc.Rows, []string{
			row.Date,
			Truncate(row.Description, 30),
			FormatRupiah(row.Debit),
			FormatRupiah(row.Kredit),
			FormatRupiah(row.SaldoDebit),
			FormatRupiah(row.SaldoKredit),
		})
	}

	return doc
}

// TrialBalanceDocument lays out the Neraca Saldo with its Jumlah line.
func TrialBalanceDocument(view *usecase.TrialBalanceView, period domain.Period) *Document {
	doc := &Document{
		Title:     "Neraca Saldo BUMDes",
		Subtitles: []string{"Periode: " + period.Label()},
		Header:    []string{"No", "Ref", "Akun", "Debit (Rp)", "Kredit (Rp)"},
		Widths:    []float64{15, 25, 70, 40, 40},
		Aligns:    []string{"C", "C", "L", "R", "R"},
		BoldRows:  map[int]bool{},
	}

	n := 0
	for _, row := range view.Rows {
		if row.Account == "" {
			continue
		}
		n++
		doc.Rows = append(doc.Rows, []string{
			fmt.Sprintf("%d", n),
			row.Ref,
			Truncate(row.Account, 35),
			FormatRupiahOrDash(row.Debit),
			FormatRupiahOrDash(row.Kredit),
		})
	}

	doc.Rows = append(doc.Rows, []string{
		"", "", "Jumlah",
		FormatRupiah(view.TotalDebit),
		FormatRupiah(view.TotalKredit),
	})
	doc.BoldRows[len(doc.Rows)-1] = true

	return doc
}

// IncomeStatementDocument lays out the Laba/Rugi report.
func IncomeStatementDocument(s domain.IncomeStatement, period domain.Period) *Document {
	doc := &Document{
		Title:     "Laporan Laba/Rugi",
		Subtitles: []string{"BUMDes", "Periode: " + period.Label()},
		Header:    []string{"Keterangan", "Debit (Rp)", "Kredit (Rp)"},
		Widths:    []float64{100, 45, 45},
		Aligns:    []string{"L", "R", "R"},
		BoldRows:  map[int]bool{},
	}

	bold := func() { doc.BoldRows[len(doc.Rows)-1] = true }

	doc.Rows = append(doc.Rows, []string{"Pendapatan:", "", ""})
	for i, it := range s.Revenues {
		doc.Rows = append(doc.Rows, []string{
			fmt.Sprintf("  %d. %s", i+1, Truncate(it.Label, 40)),
			"",
			FormatRupiah(it.Amount),
		})
	}
	doc.Rows = append(doc.Rows, []string{"Total Pendapatan", "", FormatRupiah(s.TotalRevenue)})
	bold()

	doc.Rows = append(doc.Rows, []string{"Beban-Beban:", "", ""})
	for i, it := range s.Expenses {
		doc.Rows = append(doc.Rows, []string{
			fmt.Sprintf("  %d. %s", i+1, Truncate(it.Label, 40)),
			FormatRupiah(it.Amount),
			"",
		})
	}
	doc.Rows = append(doc.Rows, []string{"Total Beban", FormatRupiah(s.TotalExpense), ""})
	bold()

	if s.Profit {
		doc.Rows = append(doc.Rows, []string{"Laba Bersih", "", FormatRupiah(s.NetResult)})
	} else {
		doc.Rows = append(doc.Rows, []string{"Rugi Bersih", FormatRupiah(s.NetResult.Neg()), ""})
	}
	bold()

	return doc
}

// BalanceSheetDocument lays out the Neraca report in the two-sided
// Aktiva/Passiva form.
func BalanceSheetDocument(s domain.BalanceSheet, period domain.Period) *Document {
	doc := &Document{
		Title:     "Laporan Neraca",
		Subtitles: []string{"BUMDes", "Periode: " + period.Label()},
		Header:    []string{"Aktiva", "Jumlah (Rp)", "Passiva", "Jumlah (Rp)"},
		Widths:    []float64{60, 35, 60, 35},
		Aligns:    []string{"L", "R", "L", "R"},
		BoldRows:  map[int]bool{},
	}

	left := [][]string{{"Aktiva Lancar:", ""}}
	for _, it := range s.CurrentAssets {
		left = append(left, []string{"  " + Truncate(it.Label, 28), FormatRupiah(it.Amount)})
	}
	left = append(left, []string{"Jml Aktiva Lancar", FormatRupiah(s.TotalCurrentAssets)})
	left = append(left, []string{"Aktiva Tetap:", ""})
	for _, it := range s.FixedAssets {
		left = append(left, []string{"  " + Truncate(it.Label, 28), FormatRupiah(it.Amount)})
	}
	left = append(left, []string{"Jml Aktiva Tetap", FormatRupiah(s.TotalFixedAssets)})

	right := [][]string{{"Kewajiban:", ""}}
	for _, it := range s.Liabilities {
		right = append(right, []string{"  " + Truncate(it.Label, 28), FormatRupiah(it.Amount)})
	}
	right = append(right, []string{"Jml Kewajiban", FormatRupiah(s.TotalLiabilities)})
	right = append(right, []string{"Ekuitas:", ""})
	right = append(right, []string{"  Modal Awal", FormatRupiah(s.OpeningCapital)})
	if !s.NetResult.IsNegative() {
		right = append(right, []string{"  Laba", FormatRupiah(s.NetResult)})
	} else {
		right = append(right, []string{"  Rugi", FormatRupiah(s.NetResult)})
	}
	if !s.Withdrawals.IsZero() {
		right = append(right, []string{"  Prive", FormatRupiah(s.Withdrawals.Neg())})
	}
	right = append(right, []string{"Jml Ekuitas", FormatRupiah(s.EndingEquity)})

	rows := len(left)
	if len(right) > rows {
		rows = len(right)
	}
	for i := 0; i < rows; i++ {
		row := []string{"", "", "", ""}
		if i < len(left) {
			row[0], row[1] = left[i][0], left[i][1]
		}
		if i < len(right) {
			row[2], row[3] = right[i][0], right[i][1]
		}
		doc.Rows = append(doc.Rows, row)
	}

	doc.Rows = append(doc.Rows, []string{
		"Jml Aktiva", FormatRupiah(s.TotalAssets),
		"Jml Kewajiban & Ekuitas", FormatRupiah(s.TotalLiabilitiesEquity),
	})
	doc.BoldRows[len(doc.Rows)-1] = true

	return doc
}

// CashFlowDocument lays out the Arus Kas report.
func CashFlowDocument(s domain.CashFlowStatement, period domain.Period) *Document {
	doc := &Document{
		Title:     "Laporan Arus Kas",
		Subtitles: []string{"BUMDes", "Periode: " + period.Label()},
		Header:    []string{"Aktivitas", "Jumlah (Rp)"},
		Widths:    []float64{120, 70},
		Aligns:    []string{"L", "R"},
		BoldRows:  map[int]bool{},
	}

	section := func(title string, items []domain.LineItem, total domain.LineItem) {
		doc.Rows = append(doc.Rows, []string{title, ""})
		doc.BoldRows[len(doc.Rows)-1] = true
		for _, it := range items {
			doc.Rows = append(doc.Rows, []string{"  " + Truncate(it.Label, 45), FormatRupiah(it.Amount)})
		}
		doc.Rows = append(doc.Rows, []string{total.Label, FormatRupiah(total.Amount)})
		doc.BoldRows[len(doc.Rows)-1] = true
	}

	section("Arus Kas Operasi:", s.Operating, domain.LineItem{Label: "Jml Arus Kas Operasi", Amount: s.TotalOperating})
	section("Arus Kas Investasi:", s.Investing, domain.LineItem{Label: "Jml Arus Kas Investasi", Amount: s.TotalInvesting})
	section("Arus Kas Pendanaan:", s.Financing, domain.LineItem{Label: "Jml Arus Kas Pendanaan", Amount: s.TotalFinancing})

	return doc
}
