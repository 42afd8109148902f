package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestNewPeriod(t *testing.T) {
	t.Parallel()

	if _, err := NewPeriod(3, 2025); err != nil {
		t.Fatalf("expected valid period, got %v", err)
	}

	for _, bad := range [][2]int{{0, 2025}, {13, 2025}, {3, 1999}, {3, 2101}} {
		if _, err := NewPeriod(bad[0], bad[1]); err != ErrInvalidPeriod {
			t.Fatalf("expected ErrInvalidPeriod for %v, got %v", bad, err)
		}
	}
}

func TestPeriodBounds(t *testing.T) {
	t.Parallel()

	t.Run("march has 31 days", func(t *testing.T) {
		p, _ := NewPeriod(3, 2025)
		if got := p.End().Day(); got != 31 {
			t.Fatalf("expected end day 31, got %d", got)
		}
		if !p.Contains(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)) {
			t.Fatal("expected start of march to be contained")
		}
		if !p.Contains(time.Date(2025, 3, 31, 23, 0, 0, 0, time.UTC)) {
			t.Fatal("expected end of march to be contained, date-only")
		}
		if p.Contains(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)) {
			t.Fatal("expected april 1 to be excluded")
		}
	})

	t.Run("leap february", func(t *testing.T) {
		p, _ := NewPeriod(2, 2024)
		if got := p.End().Day(); got != 29 {
			t.Fatalf("expected leap-year end day 29, got %d", got)
		}

		p, _ = NewPeriod(2, 2025)
		if got := p.End().Day(); got != 28 {
			t.Fatalf("expected end day 28, got %d", got)
		}
	})
}

func TestPeriodLabel(t *testing.T) {
	t.Parallel()

	p, _ := NewPeriod(3, 2025)
	if got := p.Label(); got != "Maret 2025" {
		t.Fatalf("expected label Maret 2025, got %q", got)
	}
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	want := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	for _, input := range []string{
		"31-03-2025",
		"31/03/2025",
		"2025-03-31",
		"2025/03/31",
		"31 March 2025",
		"  31-03-2025  ",
		"2025-03-31T10:30:00Z",
	} {
		got, ok := ParseDate(input)
		if !ok {
			t.Fatalf("expected %q to parse", input)
		}
		if !got.Equal(want) {
			t.Fatalf("expected %v for %q, got %v", want, input, got)
		}
	}

	t.Run("day-first wins over month-first", func(t *testing.T) {
		got, ok := ParseDate("05-03-2025")
		if !ok || got.Day() != 5 || got.Month() != time.March {
			t.Fatalf("expected 5 Maret 2025, got %v (ok=%v)", got, ok)
		}
	})

	for _, input := range []string{"", "   ", "bukan tanggal", "99-99-2025"} {
		if _, ok := ParseDate(input); ok {
			t.Fatalf("expected %q not to parse", input)
		}
	}
}

func TestFilterByPeriod(t *testing.T) {
	t.Parallel()

	entries := []*JournalEntry{
		{ID: "1", Date: "28-02-2025", Description: "before"},
		{ID: "2", Date: "01-03-2025", Description: "first day"},
		{ID: "3", Date: "31-03-2025", Description: "last day"},
		{ID: "4", Date: "01-04-2025", Description: "after"},
		{ID: "5", Date: "tanggal rusak", Description: "unparseable", Debit: decimal.NewFromInt(100)},
	}

	p, _ := NewPeriod(3, 2025)
	got := FilterByPeriod(entries, p)

	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].ID != "2" || got[1].ID != "3" {
		t.Fatalf("expected entries 2 and 3, got %s and %s", got[0].ID, got[1].ID)
	}
}
