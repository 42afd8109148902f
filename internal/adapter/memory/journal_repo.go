package memory

import (
	"context"

	"github.com/desadigital/bumdeskas/internal/domain"
)

// JournalRepository implements usecase.JournalRepository over the session
// store, preserving insertion order.
type JournalRepository struct {
	store *Store
}

// NewJournalRepository creates a new JournalRepository.
func NewJournalRepository(store *Store) *JournalRepository {
	return &JournalRepository{store: store}
}

// List returns copies of all entries in insertion order.
func (r *JournalRepository) List(_ context.Context) ([]*domain.JournalEntry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*domain.JournalEntry, 0, len(r.store.entries))
	for _, e := range r.store.entries {
		clone := *e
		out = append(out, &clone)
	}
	return out, nil
}

// GetByID returns a copy of one entry.
func (r *JournalRepository) GetByID(_ context.Context, id string) (*domain.JournalEntry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, e := range r.store.entries {
		if e.ID == id {
			clone := *e
			return &clone, nil
		}
	}
	return nil, domain.ErrEntryNotFound
}

// Add appends an entry.
func (r *JournalRepository) Add(_ context.Context, entry *domain.JournalEntry) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	clone := *entry
	r.store.entries = append(r.store.entries, &clone)
	return nil
}

// Update replaces an entry in place, keeping its journal position.
func (r *JournalRepository) Update(_ context.Context, entry *domain.JournalEntry) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, e := range r.store.entries {
		if e.ID == entry.ID {
			clone := *entry
			r.store.entries[i] = &clone
			return nil
		}
	}
	return domain.ErrEntryNotFound
}

// Delete removes an entry by ID.
func (r *JournalRepository) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, e := range r.store.entries {
		if e.ID == id {
			r.store.entries = append(r.store.entries[:i], r.store.entries[i+1:]...)
			return nil
		}
	}
	return domain.ErrEntryNotFound
}

// Replace swaps the whole journal, used by snapshot restore.
func (r *JournalRepository) Replace(_ context.Context, entries []*domain.JournalEntry) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	replaced := make([]*domain.JournalEntry, 0, len(entries))
	for _, e := range entries {
		clone := *e
		replaced = append(replaced, &clone)
	}
	r.store.entries = replaced
	return nil
}
