// Package memory implements the session store: every collection the
// operator works with lives in process memory for the lifetime of the
// session, and the only durable copy is the optional remote backup.
package memory

import (
	"sync"

	"github.com/oklog/ulid/v2"

	"github.com/desadigital/bumdeskas/internal/domain"
)

// Store holds one operator session. A single mutex guards all collections;
// the workload is one interactive request at a time, contention is not a
// concern.
type Store struct {
	mu         sync.RWMutex
	entries    []*domain.JournalEntry
	balance    []domain.TrialBalanceRow
	statements *domain.StatementData
}

// NewStore creates an empty session.
func NewStore() *Store {
	return &Store{
		statements: domain.NewStatementData(),
	}
}

// ULIDGenerator generates ULID row IDs, sortable by creation time.
type ULIDGenerator struct{}

// NewULIDGenerator creates a new ULIDGenerator.
func NewULIDGenerator() *ULIDGenerator {
	return &ULIDGenerator{}
}

// NewID generates a new ULID.
func (g *ULIDGenerator) NewID() string {
	return ulid.Make().String()
}
