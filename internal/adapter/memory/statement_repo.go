package memory

import (
	"context"

	"github.com/desadigital/bumdeskas/internal/domain"
)

// StatementRepository implements usecase.StatementRepository over the
// session store.
type StatementRepository struct {
	store *Store
}

// NewStatementRepository creates a new StatementRepository.
func NewStatementRepository(store *Store) *StatementRepository {
	return &StatementRepository{store: store}
}

// Get returns a deep copy of the statement state.
func (r *StatementRepository) Get(_ context.Context) (*domain.StatementData, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	src := r.store.statements
	clone := &domain.StatementData{
		Revenues:       cloneItems(src.Revenues),
		Expenses:       cloneItems(src.Expenses),
		CurrentAssets:  cloneItems(src.CurrentAssets),
		FixedAssets:    cloneItems(src.FixedAssets),
		Liabilities:    cloneItems(src.Liabilities),
		Operating:      cloneItems(src.Operating),
		Investing:      cloneItems(src.Investing),
		Financing:      cloneItems(src.Financing),
		OpeningCapital: src.OpeningCapital,
		Withdrawals:    src.Withdrawals,
		Seeded:         src.Seeded,
	}
	return clone, nil
}

// Save replaces the statement state.
func (r *StatementRepository) Save(_ context.Context, data *domain.StatementData) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.statements = &domain.StatementData{
		Revenues:       cloneItems(data.Revenues),
		Expenses:       cloneItems(data.Expenses),
		CurrentAssets:  cloneItems(data.CurrentAssets),
		FixedAssets:    cloneItems(data.FixedAssets),
		Liabilities:    cloneItems(data.Liabilities),
		Operating:      cloneItems(data.Operating),
		Investing:      cloneItems(data.Investing),
		Financing:      cloneItems(data.Financing),
		OpeningCapital: data.OpeningCapital,
		Withdrawals:    data.Withdrawals,
		Seeded:         data.Seeded,
	}
	return nil
}

func cloneItems(items []domain.LineItem) []domain.LineItem {
	out := make([]domain.LineItem, len(items))
	copy(out, items)
	return out
}
