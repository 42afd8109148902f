package usecase

import (
	"context"
	"strings"

	"github.com/desadigital/bumdeskas/internal/domain"
)

// LedgerUseCase derives the ledger (Buku Besar) from the journal. The
// ledger is never stored; it is rebuilt from scratch on every call.
type LedgerUseCase struct {
	journalRepo JournalRepository
	tbRepo      TrialBalanceRepository
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(journalRepo JournalRepository, tbRepo TrialBalanceRepository) *LedgerUseCase {
	return &LedgerUseCase{
		journalRepo: journalRepo,
		tbRepo:      tbRepo,
	}
}

// Build folds the journal into per-account aggregates, optionally restricted
// to a period, with trial-balance account naming overlaid.
func (uc *LedgerUseCase) Build(ctx context.Context, period *domain.Period) (domain.Ledger, error) {
	entries, err := uc.journalRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if period != nil {
		entries = domain.FilterByPeriod(entries, *period)
	}

	ledger := domain.BuildLedger(entries)

	rows, err := uc.tbRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	ledger.OverlayNames(rows)

	return ledger, nil
}

// AccountView is the per-account ledger page with running balances.
type AccountView struct {
	Account *domain.Account
	Rows    []domain.BalanceRow
}

// Account returns one account's view, sorted by date with a running signed
// balance presented in normal-balance columns.
func (uc *LedgerUseCase) Account(ctx context.Context, ref string, period *domain.Period) (*AccountView, error) {
	ledger, err := uc.Build(ctx, period)
	if err != nil {
		return nil, err
	}

	acc, ok := ledger[strings.TrimSpace(ref)]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}

	return &AccountView{
		Account: acc,
		Rows:    domain.RunningBalance(acc.Transactions),
	}, nil
}
