package memory

import (
	"context"

	"github.com/desadigital/bumdeskas/internal/domain"
)

// TrialBalanceRepository implements usecase.TrialBalanceRepository over the
// session store.
type TrialBalanceRepository struct {
	store *Store
}

// NewTrialBalanceRepository creates a new TrialBalanceRepository.
func NewTrialBalanceRepository(store *Store) *TrialBalanceRepository {
	return &TrialBalanceRepository{store: store}
}

// List returns a copy of the rows in stored order.
func (r *TrialBalanceRepository) List(_ context.Context) ([]domain.TrialBalanceRow, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]domain.TrialBalanceRow, len(r.store.balance))
	copy(out, r.store.balance)
	return out, nil
}

// Replace swaps the whole table.
func (r *TrialBalanceRepository) Replace(_ context.Context, rows []domain.TrialBalanceRow) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	replaced := make([]domain.TrialBalanceRow, len(rows))
	copy(replaced, rows)
	r.store.balance = replaced
	return nil
}
