package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/desadigital/bumdeskas/internal/domain"
)

// JournalUseCase handles journal entry commands.
type JournalUseCase struct {
	journalRepo JournalRepository
	idGen       IDGenerator
	strict      bool
}

// NewJournalUseCase creates a new JournalUseCase. With strict enabled,
// entries with both debit and kredit filled are rejected at input.
func NewJournalUseCase(journalRepo JournalRepository, idGen IDGenerator, strict bool) *JournalUseCase {
	return &JournalUseCase{
		journalRepo: journalRepo,
		idGen:       idGen,
		strict:      strict,
	}
}

// EntryInput carries one journal row as keyed in. Amounts arrive already
// coerced: the transport layer turns malformed numeric cells into zero.
type EntryInput struct {
	Date        string
	Description string
	Ref         string
	Account     string
	Debit       decimal.Decimal
	Kredit      decimal.Decimal
}

// AddEntry validates and appends a journal row.
func (uc *JournalUseCase) AddEntry(ctx context.Context, input EntryInput) (*domain.JournalEntry, error) {
	entry := &domain.JournalEntry{
		ID:          uc.idGen.NewID(),
		Date:        input.Date,
		Description: input.Description,
		Ref:         input.Ref,
		Account:     input.Account,
		Debit:       input.Debit,
		Kredit:      input.Kredit,
		CreatedAt:   time.Now().UTC(),
	}

	if err := domain.ValidateEntry(entry, uc.strict); err != nil {
		return nil, err
	}

	if err := uc.journalRepo.Add(ctx, entry); err != nil {
		return nil, fmt.Errorf("add entry: %w", err)
	}
	return entry, nil
}

// UpdateEntry replaces an existing row's cells in place, keeping its
// position in the journal.
func (uc *JournalUseCase) UpdateEntry(ctx context.Context, id string, input EntryInput) (*domain.JournalEntry, error) {
	existing, err := uc.journalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := &domain.JournalEntry{
		ID:          existing.ID,
		Date:        input.Date,
		Description: input.Description,
		Ref:         input.Ref,
		Account:     input.Account,
		Debit:       input.Debit,
		Kredit:      input.Kredit,
		CreatedAt:   existing.CreatedAt,
	}

	if err := domain.ValidateEntry(updated, uc.strict); err != nil {
		return nil, err
	}

	if err := uc.journalRepo.Update(ctx, updated); err != nil {
		return nil, fmt.Errorf("update entry: %w", err)
	}
	return updated, nil
}

// DeleteEntry removes a row by ID.
func (uc *JournalUseCase) DeleteEntry(ctx context.Context, id string) error {
	return uc.journalRepo.Delete(ctx, id)
}

// ListEntries returns the journal, optionally restricted to a period.
func (uc *JournalUseCase) ListEntries(ctx context.Context, period *domain.Period) ([]*domain.JournalEntry, error) {
	entries, err := uc.journalRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if period != nil {
		entries = domain.FilterByPeriod(entries, *period)
	}
	return entries, nil
}

// JournalView is the printable journal: non-blank rows plus column totals
// for the TOTAL line.
type JournalView struct {
	Entries     []*domain.JournalEntry
	TotalDebit  decimal.Decimal
	TotalKredit decimal.Decimal
}

// View filters blank grid rows out and computes the totals.
func (uc *JournalUseCase) View(ctx context.Context, period *domain.Period) (*JournalView, error) {
	entries, err := uc.ListEntries(ctx, period)
	if err != nil {
		return nil, err
	}

	filled := make([]*domain.JournalEntry, 0, len(entries))
	for _, e := range entries {
		if !e.IsBlank() {
			filled = append(filled, e)
		}
	}

	debit, kredit := domain.JournalTotals(filled)
	return &JournalView{
		Entries:     filled,
		TotalDebit:  debit,
		TotalKredit: kredit,
	}, nil
}
