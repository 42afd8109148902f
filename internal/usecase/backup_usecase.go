package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/desadigital/bumdeskas/internal/domain"
)

// Snapshot is the JSON shape of the whole session, as pushed to the backup
// repository. It mirrors the in-memory state closely enough that restoring
// a snapshot reproduces the same (date, description, account, debit, credit)
// tuples in the same order.
type Snapshot struct {
	TakenAt      time.Time             `json:"taken_at"`
	Journal      []SnapshotEntry       `json:"journal"`
	TrialBalance []SnapshotBalanceRow  `json:"neraca_saldo"`
	Statements   SnapshotStatementData `json:"laporan"`
}

// SnapshotEntry is one journal row in backup form.
type SnapshotEntry struct {
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Ref         string          `json:"ref,omitempty"`
	Account     string          `json:"account"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// SnapshotBalanceRow is one trial balance row in backup form.
type SnapshotBalanceRow struct {
	Ref     string          `json:"ref,omitempty"`
	Account string          `json:"account"`
	Debit   decimal.Decimal `json:"debit"`
	Credit  decimal.Decimal `json:"credit"`
}

// SnapshotLineItem is one statement line item in backup form.
type SnapshotLineItem struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// SnapshotStatementData carries the statement tables in backup form.
type SnapshotStatementData struct {
	Revenues       []SnapshotLineItem `json:"pendapatan"`
	Expenses       []SnapshotLineItem `json:"beban"`
	CurrentAssets  []SnapshotLineItem `json:"aktiva_lancar"`
	FixedAssets    []SnapshotLineItem `json:"aktiva_tetap"`
	Liabilities    []SnapshotLineItem `json:"kewajiban"`
	Operating      []SnapshotLineItem `json:"arus_kas_operasi"`
	Investing      []SnapshotLineItem `json:"arus_kas_investasi"`
	Financing      []SnapshotLineItem `json:"arus_kas_pendanaan"`
	OpeningCapital decimal.Decimal    `json:"modal_awal"`
	Withdrawals    decimal.Decimal    `json:"prive"`
	Seeded         bool               `json:"seeded"`
}

// BackupUseCase serializes the session and pushes it to the remote backup
// store. Push failure is reported to the caller; local state is unaffected.
type BackupUseCase struct {
	journalRepo JournalRepository
	tbRepo      TrialBalanceRepository
	stmtRepo    StatementRepository
	idGen       IDGenerator
	store       BackupStore
}

// NewBackupUseCase creates a new BackupUseCase.
func NewBackupUseCase(
	journalRepo JournalRepository,
	tbRepo TrialBalanceRepository,
	stmtRepo StatementRepository,
	idGen IDGenerator,
	store BackupStore,
) *BackupUseCase {
	return &BackupUseCase{
		journalRepo: journalRepo,
		tbRepo:      tbRepo,
		stmtRepo:    stmtRepo,
		idGen:       idGen,
		store:       store,
	}
}

// Snapshot captures the current session state.
func (uc *BackupUseCase) Snapshot(ctx context.Context) (*Snapshot, error) {
	entries, err := uc.journalRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := uc.tbRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	stmt, err := uc.stmtRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{
		TakenAt:      time.Now().UTC(),
		Journal:      make([]SnapshotEntry, 0, len(entries)),
		TrialBalance: make([]SnapshotBalanceRow, 0, len(rows)),
		Statements: SnapshotStatementData{
			Revenues:       itemsToSnapshot(stmt.Revenues),
			Expenses:       itemsToSnapshot(stmt.Expenses),
			CurrentAssets:  itemsToSnapshot(stmt.CurrentAssets),
			FixedAssets:    itemsToSnapshot(stmt.FixedAssets),
			Liabilities:    itemsToSnapshot(stmt.Liabilities),
			Operating:      itemsToSnapshot(stmt.Operating),
			Investing:      itemsToSnapshot(stmt.Investing),
			Financing:      itemsToSnapshot(stmt.Financing),
			OpeningCapital: stmt.OpeningCapital,
			Withdrawals:    stmt.Withdrawals,
			Seeded:         stmt.Seeded,
		},
	}

	for _, e := range entries {
		snap.Journal = append(snap.Journal, SnapshotEntry{
			Date:        e.Date,
			Description: e.Description,
			Ref:         e.Ref,
			Account:     e.Account,
			Debit:       e.Debit,
			Credit:      e.Kredit,
		})
	}
	for _, row := range rows {
		snap.TrialBalance = append(snap.TrialBalance, SnapshotBalanceRow{
			Ref:     row.Ref,
			Account: row.Account,
			Debit:   row.Debit,
			Credit:  row.Kredit,
		})
	}

	return snap, nil
}

// Backup pushes the current snapshot to the backup store.
func (uc *BackupUseCase) Backup(ctx context.Context) error {
	snap, err := uc.Snapshot(ctx)
	if err != nil {
		return err
	}

	content, err := json.MarshalIndent(snap, "", "    ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	if err := uc.store.Push(ctx, content); err != nil {
		return fmt.Errorf("push backup: %w", err)
	}
	return nil
}

// Restore replaces the whole session with a snapshot's contents. Journal
// rows get fresh IDs; everything else round-trips unchanged.
func (uc *BackupUseCase) Restore(ctx context.Context, snap *Snapshot) error {
	entries := make([]*domain.JournalEntry, 0, len(snap.Journal))
	for _, e := range snap.Journal {
		entries = append(entries, &domain.JournalEntry{
			ID:          uc.idGen.NewID(),
			Date:        e.Date,
			Description: e.Description,
			Ref:         e.Ref,
			Account:     e.Account,
			Debit:       e.Debit,
			Kredit:      e.Credit,
			CreatedAt:   time.Now().UTC(),
		})
	}
	if err := uc.journalRepo.Replace(ctx, entries); err != nil {
		return fmt.Errorf("restore journal: %w", err)
	}

	rows := make([]domain.TrialBalanceRow, 0, len(snap.TrialBalance))
	for _, row := range snap.TrialBalance {
		rows = append(rows, domain.TrialBalanceRow{
			Ref:     row.Ref,
			Account: row.Account,
			Debit:   row.Debit,
			Kredit:  row.Credit,
		})
	}
	if err := uc.tbRepo.Replace(ctx, rows); err != nil {
		return fmt.Errorf("restore trial balance: %w", err)
	}

	data := &domain.StatementData{
		Revenues:       itemsFromSnapshot(snap.Statements.Revenues),
		Expenses:       itemsFromSnapshot(snap.Statements.Expenses),
		CurrentAssets:  itemsFromSnapshot(snap.Statements.CurrentAssets),
		FixedAssets:    itemsFromSnapshot(snap.Statements.FixedAssets),
		Liabilities:    itemsFromSnapshot(snap.Statements.Liabilities),
		Operating:      itemsFromSnapshot(snap.Statements.Operating),
		Investing:      itemsFromSnapshot(snap.Statements.Investing),
		Financing:      itemsFromSnapshot(snap.Statements.Financing),
		OpeningCapital: snap.Statements.OpeningCapital,
		Withdrawals:    snap.Statements.Withdrawals,
		Seeded:         snap.Statements.Seeded,
	}
	if err := uc.stmtRepo.Save(ctx, data); err != nil {
		return fmt.Errorf("restore statements: %w", err)
	}

	return nil
}

func itemsToSnapshot(items []domain.LineItem) []SnapshotLineItem {
	out := make([]SnapshotLineItem, 0, len(items))
	for _, it := range items {
		out = append(out, SnapshotLineItem{Label: it.Label, Amount: it.Amount})
	}
	return out
}

func itemsFromSnapshot(items []SnapshotLineItem) []domain.LineItem {
	out := make([]domain.LineItem, 0, len(items))
	for _, it := range items {
		out = append(out, domain.LineItem{Label: it.Label, Amount: it.Amount})
	}
	return out
}
