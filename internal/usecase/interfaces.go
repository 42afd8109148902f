package usecase

import (
	"context"

	"github.com/desadigital/bumdeskas/internal/domain"
)

// JournalRepository is the session store for journal entries. Order of
// insertion is preserved; it is the order every derived view sees.
type JournalRepository interface {
	List(ctx context.Context) ([]*domain.JournalEntry, error)
	GetByID(ctx context.Context, id string) (*domain.JournalEntry, error)
	Add(ctx context.Context, entry *domain.JournalEntry) error
	Update(ctx context.Context, entry *domain.JournalEntry) error
	Delete(ctx context.Context, id string) error
	Replace(ctx context.Context, entries []*domain.JournalEntry) error
}

// TrialBalanceRepository is the session store for trial balance rows.
type TrialBalanceRepository interface {
	List(ctx context.Context) ([]domain.TrialBalanceRow, error)
	Replace(ctx context.Context, rows []domain.TrialBalanceRow) error
}

// StatementRepository is the session store for the statement tables.
type StatementRepository interface {
	Get(ctx context.Context) (*domain.StatementData, error)
	Save(ctx context.Context, data *domain.StatementData) error
}

// IDGenerator generates unique IDs for journal rows.
type IDGenerator interface {
	NewID() string
}

// BackupStore pushes a serialized snapshot to the remote backup location.
type BackupStore interface {
	Push(ctx context.Context, content []byte) error
}
