package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/desadigital/bumdeskas/internal/domain"
)

func TestJournalRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewJournalRepository(NewStore())

	e1 := &domain.JournalEntry{ID: "a", Description: "pertama", Debit: decimal.NewFromInt(100)}
	e2 := &domain.JournalEntry{ID: "b", Description: "kedua", Kredit: decimal.NewFromInt(50)}

	if err := repo.Add(ctx, e1); err != nil {
		t.Fatal(err)
	}
	if err := repo.Add(ctx, e2); err != nil {
		t.Fatal(err)
	}

	t.Run("list preserves insertion order", func(t *testing.T) {
		entries, err := repo.List(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != 2 || entries[0].ID != "a" || entries[1].ID != "b" {
			t.Fatalf("unexpected order: %+v", entries)
		}
	})

	t.Run("list returns copies", func(t *testing.T) {
		entries, _ := repo.List(ctx)
		entries[0].Description = "diubah dari luar"

		again, _ := repo.List(ctx)
		if again[0].Description != "pertama" {
			t.Fatal("expected store to be isolated from returned copies")
		}
	})

	t.Run("get by id", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "b")
		if err != nil || got.Description != "kedua" {
			t.Fatalf("unexpected result: %+v, %v", got, err)
		}
		if _, err := repo.GetByID(ctx, "z"); !errors.Is(err, domain.ErrEntryNotFound) {
			t.Fatalf("expected ErrEntryNotFound, got %v", err)
		}
	})

	t.Run("update keeps position", func(t *testing.T) {
		if err := repo.Update(ctx, &domain.JournalEntry{ID: "a", Description: "revisi"}); err != nil {
			t.Fatal(err)
		}
		entries, _ := repo.List(ctx)
		if entries[0].ID != "a" || entries[0].Description != "revisi" {
			t.Fatalf("unexpected first entry: %+v", entries[0])
		}
	})

	t.Run("delete", func(t *testing.T) {
		if err := repo.Delete(ctx, "a"); err != nil {
			t.Fatal(err)
		}
		if err := repo.Delete(ctx, "a"); !errors.Is(err, domain.ErrEntryNotFound) {
			t.Fatalf("expected ErrEntryNotFound, got %v", err)
		}
	})

	t.Run("replace", func(t *testing.T) {
		err := repo.Replace(ctx, []*domain.JournalEntry{
			{ID: "x", Description: "baru"},
		})
		if err != nil {
			t.Fatal(err)
		}
		entries, _ := repo.List(ctx)
		if len(entries) != 1 || entries[0].ID != "x" {
			t.Fatalf("unexpected entries after replace: %+v", entries)
		}
	})
}
