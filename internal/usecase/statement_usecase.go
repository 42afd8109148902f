package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/desadigital/bumdeskas/internal/classify"
	"github.com/desadigital/bumdeskas/internal/domain"
)

// Statement sections addressable by line-item commands.
const (
	SectionRevenue       = "revenue"
	SectionExpense       = "expense"
	SectionCurrentAssets = "current-assets"
	SectionFixedAssets   = "fixed-assets"
	SectionLiabilities   = "liabilities"
	SectionOperating     = "operating"
	SectionInvesting     = "investing"
	SectionFinancing     = "financing"
)

// StatementUseCase derives the financial statements and manages their
// user-curated line-item tables.
type StatementUseCase struct {
	stmtRepo StatementRepository
	tbRepo   TrialBalanceRepository
	rules    []classify.Rule
}

// NewStatementUseCase creates a new StatementUseCase with the given keyword
// rule table.
func NewStatementUseCase(stmtRepo StatementRepository, tbRepo TrialBalanceRepository, rules []classify.Rule) *StatementUseCase {
	return &StatementUseCase{
		stmtRepo: stmtRepo,
		tbRepo:   tbRepo,
		rules:    rules,
	}
}

// Income derives the Laba/Rugi statement.
func (uc *StatementUseCase) Income(ctx context.Context) (domain.IncomeStatement, error) {
	data, err := uc.stmtRepo.Get(ctx)
	if err != nil {
		return domain.IncomeStatement{}, err
	}
	return data.Income(), nil
}

// BalanceSheet derives the Neraca statement.
func (uc *StatementUseCase) BalanceSheet(ctx context.Context) (domain.BalanceSheet, error) {
	data, err := uc.stmtRepo.Get(ctx)
	if err != nil {
		return domain.BalanceSheet{}, err
	}
	return data.Balance(), nil
}

// CashFlow derives the Arus Kas statement.
func (uc *StatementUseCase) CashFlow(ctx context.Context) (domain.CashFlowStatement, error) {
	data, err := uc.stmtRepo.Get(ctx)
	if err != nil {
		return domain.CashFlowStatement{}, err
	}
	return data.CashFlow(), nil
}

// Seed bulk-loads the statement tables from the trial balance by keyword
// classification. It runs once per session; later ledger changes never
// re-trigger it. force resets the guard and reloads, discarding manual edits
// to the seeded tables. Cash-flow tables are never touched: they have no
// trial-balance derivation. Returns whether seeding ran.
func (uc *StatementUseCase) Seed(ctx context.Context, force bool) (bool, error) {
	data, err := uc.stmtRepo.Get(ctx)
	if err != nil {
		return false, err
	}
	if data.Seeded && !force {
		return false, nil
	}

	rows, err := uc.tbRepo.List(ctx)
	if err != nil {
		return false, err
	}

	seed := classify.BuildSeed(rows, uc.rules)
	data.Revenues = seed.Revenues
	data.Expenses = seed.Expenses
	data.CurrentAssets = seed.CurrentAssets
	data.FixedAssets = seed.FixedAssets
	data.Liabilities = seed.Liabilities
	data.OpeningCapital = seed.OpeningCapital
	data.Seeded = true

	if err := uc.stmtRepo.Save(ctx, data); err != nil {
		return false, fmt.Errorf("save seeded statements: %w", err)
	}
	return true, nil
}

// AddItem appends a line item to a statement section.
func (uc *StatementUseCase) AddItem(ctx context.Context, section string, item domain.LineItem) error {
	data, err := uc.stmtRepo.Get(ctx)
	if err != nil {
		return err
	}

	items, err := sectionItems(data, section)
	if err != nil {
		return err
	}
	*items = append(*items, item)

	return uc.stmtRepo.Save(ctx, data)
}

// RemoveItem deletes the first line item in a section whose label matches.
func (uc *StatementUseCase) RemoveItem(ctx context.Context, section, label string) error {
	data, err := uc.stmtRepo.Get(ctx)
	if err != nil {
		return err
	}

	items, err := sectionItems(data, section)
	if err != nil {
		return err
	}

	label = strings.TrimSpace(label)
	for i, it := range *items {
		if strings.TrimSpace(it.Label) == label {
			*items = append((*items)[:i], (*items)[i+1:]...)
			return uc.stmtRepo.Save(ctx, data)
		}
	}
	return domain.ErrItemNotFound
}

// SetEquity sets the opening capital and owner withdrawals (prive) figures.
func (uc *StatementUseCase) SetEquity(ctx context.Context, openingCapital, withdrawals decimal.Decimal) error {
	data, err := uc.stmtRepo.Get(ctx)
	if err != nil {
		return err
	}
	data.OpeningCapital = openingCapital
	data.Withdrawals = withdrawals
	return uc.stmtRepo.Save(ctx, data)
}

func sectionItems(data *domain.StatementData, section string) (*[]domain.LineItem, error) {
	switch section {
	case SectionRevenue:
		return &data.Revenues, nil
	case SectionExpense:
		return &data.Expenses, nil
	case SectionCurrentAssets:
		return &data.CurrentAssets, nil
	case SectionFixedAssets:
		return &data.FixedAssets, nil
	case SectionLiabilities:
		return &data.Liabilities, nil
	case SectionOperating:
		return &data.Operating, nil
	case SectionInvesting:
		return &data.Investing, nil
	case SectionFinancing:
		return &data.Financing, nil
	default:
		return nil, domain.ErrUnknownSection
	}
}
