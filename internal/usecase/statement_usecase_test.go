package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/desadigital/bumdeskas/internal/adapter/memory"
	"github.com/desadigital/bumdeskas/internal/classify"
	"github.com/desadigital/bumdeskas/internal/domain"
	"github.com/desadigital/bumdeskas/internal/usecase"
)

type stmtFixture struct {
	stmtUC   *usecase.StatementUseCase
	stmtRepo *memory.StatementRepository
	tbRepo   *memory.TrialBalanceRepository
}

func newStmtFixture() stmtFixture {
	store := memory.NewStore()
	stmtRepo := memory.NewStatementRepository(store)
	tbRepo := memory.NewTrialBalanceRepository(store)
	return stmtFixture{
		stmtUC:   usecase.NewStatementUseCase(stmtRepo, tbRepo, classify.DefaultRules),
		stmtRepo: stmtRepo,
		tbRepo:   tbRepo,
	}
}

func seedTrialBalance(t *testing.T, f stmtFixture) {
	t.Helper()
	err := f.tbRepo.Replace(context.Background(), []domain.TrialBalanceRow{
		{Ref: "1-1", Account: "Kas", Debit: decimal.NewFromInt(45_000_000)},
		{Ref: "1-3", Account: "Peralatan", Debit: decimal.NewFromInt(5_000_000)},
		{Ref: "3-1", Account: "Modal Desa", Kredit: decimal.NewFromInt(50_000_000)},
		{Ref: "4-1", Account: "Pendapatan Jasa", Kredit: decimal.NewFromInt(1_000_000)},
		{Ref: "5-1", Account: "Beban Listrik", Debit: decimal.NewFromInt(250_000)},
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestStatementUseCase_Seed(t *testing.T) {
	ctx := context.Background()

	t.Run("first seed loads tables", func(t *testing.T) {
		f := newStmtFixture()
		seedTrialBalance(t, f)

		ran, err := f.stmtUC.Seed(ctx, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ran {
			t.Fatal("expected seed to run")
		}

		data, _ := f.stmtRepo.Get(ctx)
		if !data.Seeded {
			t.Fatal("expected Seeded flag")
		}
		if len(data.CurrentAssets) != 1 || len(data.FixedAssets) != 1 {
			t.Fatalf("unexpected asset tables: %+v / %+v", data.CurrentAssets, data.FixedAssets)
		}
		if !data.OpeningCapital.Equal(decimal.NewFromInt(50_000_000)) {
			t.Fatalf("expected opening capital seeded, got %s", data.OpeningCapital)
		}
	})

	t.Run("second seed is a no-op", func(t *testing.T) {
		f := newStmtFixture()
		seedTrialBalance(t, f)
		_, _ = f.stmtUC.Seed(ctx, false)

		// Manual edit after seeding.
		_ = f.stmtUC.AddItem(ctx, usecase.SectionRevenue, domain.LineItem{Label: "Pendapatan Lain", Amount: decimal.NewFromInt(42)})

		ran, err := f.stmtUC.Seed(ctx, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ran {
			t.Fatal("expected guarded seed not to run")
		}

		data, _ := f.stmtRepo.Get(ctx)
		if len(data.Revenues) != 2 {
			t.Fatalf("expected manual edit to survive, got %+v", data.Revenues)
		}
	})

	t.Run("force reloads and discards edits", func(t *testing.T) {
		f := newStmtFixture()
		seedTrialBalance(t, f)
		_, _ = f.stmtUC.Seed(ctx, false)
		_ = f.stmtUC.AddItem(ctx, usecase.SectionRevenue, domain.LineItem{Label: "Pendapatan Lain", Amount: decimal.NewFromInt(42)})

		ran, err := f.stmtUC.Seed(ctx, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ran {
			t.Fatal("expected forced seed to run")
		}

		data, _ := f.stmtRepo.Get(ctx)
		if len(data.Revenues) != 1 {
			t.Fatalf("expected reseeded revenues, got %+v", data.Revenues)
		}
	})

	t.Run("cash flow tables are never seeded", func(t *testing.T) {
		f := newStmtFixture()
		seedTrialBalance(t, f)
		_ = f.stmtUC.AddItem(ctx, usecase.SectionOperating, domain.LineItem{Label: "Kas masuk", Amount: decimal.NewFromInt(7)})

		_, _ = f.stmtUC.Seed(ctx, true)

		data, _ := f.stmtRepo.Get(ctx)
		if len(data.Operating) != 1 {
			t.Fatalf("expected operating table untouched, got %+v", data.Operating)
		}
	})
}

func TestStatementUseCase_Items(t *testing.T) {
	ctx := context.Background()
	f := newStmtFixture()

	if err := f.stmtUC.AddItem(ctx, usecase.SectionExpense, domain.LineItem{Label: "Beban Air", Amount: decimal.NewFromInt(50_000)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("unknown section", func(t *testing.T) {
		err := f.stmtUC.AddItem(ctx, "utang-rahasia", domain.LineItem{Label: "x"})
		if !errors.Is(err, domain.ErrUnknownSection) {
			t.Fatalf("expected ErrUnknownSection, got %v", err)
		}
	})

	t.Run("remove by label", func(t *testing.T) {
		if err := f.stmtUC.RemoveItem(ctx, usecase.SectionExpense, "Beban Air"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := f.stmtUC.RemoveItem(ctx, usecase.SectionExpense, "Beban Air"); !errors.Is(err, domain.ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})
}

func TestStatementUseCase_SetEquityAndDerive(t *testing.T) {
	ctx := context.Background()
	f := newStmtFixture()

	_ = f.stmtUC.AddItem(ctx, usecase.SectionRevenue, domain.LineItem{Label: "Pendapatan", Amount: decimal.NewFromInt(1_000_000)})
	_ = f.stmtUC.AddItem(ctx, usecase.SectionExpense, domain.LineItem{Label: "Beban", Amount: decimal.NewFromInt(400_000)})
	if err := f.stmtUC.SetEquity(ctx, decimal.NewFromInt(10_000_000), decimal.NewFromInt(100_000)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	income, err := f.stmtUC.Income(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !income.NetResult.Equal(decimal.NewFromInt(600_000)) || !income.Profit {
		t.Fatalf("unexpected income result: %s", income.NetResult)
	}

	sheet, err := f.stmtUC.BalanceSheet(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 10.000.000 + 600.000 - 100.000
	if !sheet.EndingEquity.Equal(decimal.NewFromInt(10_500_000)) {
		t.Fatalf("unexpected ending equity: %s", sheet.EndingEquity)
	}
}
