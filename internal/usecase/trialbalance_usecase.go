package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/desadigital/bumdeskas/internal/domain"
)

// TrialBalanceUseCase keeps the Neraca Saldo in sync with the ledger while
// preserving rows the operator maintains by hand.
type TrialBalanceUseCase struct {
	tbRepo   TrialBalanceRepository
	ledgerUC *LedgerUseCase
}

// NewTrialBalanceUseCase creates a new TrialBalanceUseCase.
func NewTrialBalanceUseCase(tbRepo TrialBalanceRepository, ledgerUC *LedgerUseCase) *TrialBalanceUseCase {
	return &TrialBalanceUseCase{
		tbRepo:   tbRepo,
		ledgerUC: ledgerUC,
	}
}

// TrialBalanceView is the trial balance table with its Jumlah totals.
type TrialBalanceView struct {
	Rows        []domain.TrialBalanceRow
	TotalDebit  decimal.Decimal
	TotalKredit decimal.Decimal
}

// List returns the current rows and totals.
func (uc *TrialBalanceUseCase) List(ctx context.Context) (*TrialBalanceView, error) {
	rows, err := uc.tbRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	debit, kredit := domain.TrialBalanceTotals(rows)
	return &TrialBalanceView{Rows: rows, TotalDebit: debit, TotalKredit: kredit}, nil
}

// Sync rebuilds the ledger (period-filtered when a period is given) and
// merges it into the trial balance. An empty ledger is a no-op: syncing
// never wipes manual rows just because the period has no activity.
func (uc *TrialBalanceUseCase) Sync(ctx context.Context, period *domain.Period, mode domain.SyncMode) (*TrialBalanceView, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("invalid sync mode %q", mode)
	}

	ledger, err := uc.ledgerUC.Build(ctx, period)
	if err != nil {
		return nil, err
	}
	if len(ledger) == 0 {
		return uc.List(ctx)
	}

	rows, err := uc.tbRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	merged := domain.MergeTrialBalance(rows, ledger, mode)
	if err := uc.tbRepo.Replace(ctx, merged); err != nil {
		return nil, fmt.Errorf("sync trial balance: %w", err)
	}

	debit, kredit := domain.TrialBalanceTotals(merged)
	return &TrialBalanceView{Rows: merged, TotalDebit: debit, TotalKredit: kredit}, nil
}

// AddRow appends a manual row, e.g. an account with no journal activity yet.
func (uc *TrialBalanceUseCase) AddRow(ctx context.Context, row domain.TrialBalanceRow) error {
	rows, err := uc.tbRepo.List(ctx)
	if err != nil {
		return err
	}
	rows = append(rows, row)
	return uc.tbRepo.Replace(ctx, rows)
}

// DeleteRow removes the first row whose Ref matches, or whose account name
// matches when the Ref is blank.
func (uc *TrialBalanceUseCase) DeleteRow(ctx context.Context, key string) error {
	rows, err := uc.tbRepo.List(ctx)
	if err != nil {
		return err
	}

	key = strings.TrimSpace(key)
	for i, row := range rows {
		ref := strings.TrimSpace(row.Ref)
		if ref == key || (ref == "" && strings.TrimSpace(row.Account) == key) {
			rows = append(rows[:i], rows[i+1:]...)
			return uc.tbRepo.Replace(ctx, rows)
		}
	}
	return domain.ErrRowNotFound
}

// RemoveBlankRows drops rows with no account name, mirroring the grid's
// clear-empty-rows button.
func (uc *TrialBalanceUseCase) RemoveBlankRows(ctx context.Context) error {
	rows, err := uc.tbRepo.List(ctx)
	if err != nil {
		return err
	}

	kept := rows[:0]
	for _, row := range rows {
		if strings.TrimSpace(row.Account) != "" {
			kept = append(kept, row)
		}
	}
	return uc.tbRepo.Replace(ctx, kept)
}
