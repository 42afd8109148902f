package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func amount(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func TestBuildLedger(t *testing.T) {
	t.Parallel()

	t.Run("setoran modal dan pembelian peralatan", func(t *testing.T) {
		entries := []*JournalEntry{
			{Date: "01-03-2025", Description: "Setoran modal awal", Ref: "3-1", Account: "Modal Desa", Kredit: amount(50_000_000)},
			{Date: "01-03-2025", Description: "Setoran modal awal", Ref: "1-1", Account: "Kas", Debit: amount(50_000_000)},
			{Date: "05-03-2025", Description: "Beli peralatan", Ref: "1-2", Account: "Peralatan", Debit: amount(5_000_000)},
			{Date: "05-03-2025", Description: "Beli peralatan", Ref: "1-1", Account: "Kas", Kredit: amount(5_000_000)},
		}

		ledger := BuildLedger(entries)
		if len(ledger) != 3 {
			t.Fatalf("expected 3 accounts, got %d", len(ledger))
		}

		kas := ledger["1-1"]
		if kas == nil {
			t.Fatal("expected account 1-1")
		}
		if kas.Name != "Kas" {
			t.Fatalf("expected name Kas, got %q", kas.Name)
		}
		if !kas.TotalDebit.Equal(amount(50_000_000)) || !kas.TotalKredit.Equal(amount(5_000_000)) {
			t.Fatalf("unexpected kas totals: %s / %s", kas.TotalDebit, kas.TotalKredit)
		}
		if !kas.NetDebit().Equal(amount(45_000_000)) || !kas.NetKredit().IsZero() {
			t.Fatalf("unexpected kas nets: %s / %s", kas.NetDebit(), kas.NetKredit())
		}
		if len(kas.Transactions) != 2 {
			t.Fatalf("expected 2 kas transactions, got %d", len(kas.Transactions))
		}

		modal := ledger["3-1"]
		if !modal.NetKredit().Equal(amount(50_000_000)) || !modal.NetDebit().IsZero() {
			t.Fatalf("unexpected modal nets: %s / %s", modal.NetDebit(), modal.NetKredit())
		}
	})

	t.Run("account name used when ref is blank", func(t *testing.T) {
		entries := []*JournalEntry{
			{Description: "Jual barang", Account: "Pendapatan Penjualan", Kredit: amount(250_000)},
		}
		ledger := BuildLedger(entries)
		acc := ledger["Pendapatan Penjualan"]
		if acc == nil {
			t.Fatal("expected grouping by account name")
		}
		if acc.Ref != "Pendapatan Penjualan" {
			t.Fatalf("expected key as ref, got %q", acc.Ref)
		}
	})

	t.Run("placeholder name for ref without account", func(t *testing.T) {
		entries := []*JournalEntry{
			{Description: "x", Ref: "1-1", Debit: amount(100)},
		}
		ledger := BuildLedger(entries)
		if got := ledger["1-1"].Name; got != "Akun 1-1" {
			t.Fatalf("expected placeholder name, got %q", got)
		}
	})

	t.Run("both sides filled posts twice", func(t *testing.T) {
		entries := []*JournalEntry{
			{Description: "rusak", Ref: "1-1", Debit: amount(100), Kredit: amount(100)},
		}
		ledger := BuildLedger(entries)
		acc := ledger["1-1"]
		if len(acc.Transactions) != 2 {
			t.Fatalf("expected 2 postings, got %d", len(acc.Transactions))
		}
		if !acc.TotalDebit.Equal(amount(100)) || !acc.TotalKredit.Equal(amount(100)) {
			t.Fatalf("unexpected totals: %s / %s", acc.TotalDebit, acc.TotalKredit)
		}
	})

	t.Run("keyless and zero-amount entries are skipped", func(t *testing.T) {
		entries := []*JournalEntry{
			{Description: "no key", Debit: amount(100)},
			{Description: "no amounts", Ref: "1-1"},
		}
		ledger := BuildLedger(entries)
		if len(ledger) != 1 {
			t.Fatalf("expected 1 account, got %d", len(ledger))
		}
		if len(ledger["1-1"].Transactions) != 0 {
			t.Fatal("expected no postings for zero amounts")
		}
	})
}

func TestLedgerSumsMatchJournal(t *testing.T) {
	t.Parallel()

	entries := []*JournalEntry{
		{Description: "a", Ref: "1-1", Debit: amount(100)},
		{Description: "b", Ref: "1-2", Debit: amount(300)},
		{Description: "c", Ref: "3-1", Kredit: amount(400)},
		{Description: "d", Ref: "1-1", Kredit: amount(50)},
	}

	ledger := BuildLedger(entries)

	totalDebit, totalKredit := decimal.Zero, decimal.Zero
	for _, ref := range ledger.Refs() {
		totalDebit = totalDebit.Add(ledger[ref].TotalDebit)
		totalKredit = totalKredit.Add(ledger[ref].TotalKredit)
	}

	journalDebit, journalKredit := JournalTotals(entries)
	if !totalDebit.Equal(journalDebit) || !totalKredit.Equal(journalKredit) {
		t.Fatalf("ledger totals %s/%s do not match journal totals %s/%s",
			totalDebit, totalKredit, journalDebit, journalKredit)
	}
}

func TestLedgerOverlayNames(t *testing.T) {
	t.Parallel()

	ledger := BuildLedger([]*JournalEntry{
		{Description: "x", Ref: "1-1", Debit: amount(100)},
	})

	ledger.OverlayNames([]TrialBalanceRow{
		{Ref: "1-1", Account: "Kas Besar"},
		{Ref: "9-9", Account: "Tidak Ada"},
		{Ref: "1-1", Account: ""},
	})

	if got := ledger["1-1"].Name; got != "Kas Besar" {
		t.Fatalf("expected overlay name Kas Besar, got %q", got)
	}
}

func TestLedgerRefsSorted(t *testing.T) {
	t.Parallel()

	ledger := BuildLedger([]*JournalEntry{
		{Description: "a", Ref: "2-1", Debit: amount(1)},
		{Description: "b", Ref: "1-1", Debit: amount(1)},
		{Description: "c", Ref: "1-2", Debit: amount(1)},
	})

	refs := ledger.Refs()
	want := []string{"1-1", "1-2", "2-1"}
	for i, ref := range want {
		if refs[i] != ref {
			t.Fatalf("expected refs %v, got %v", want, refs)
		}
	}
}
