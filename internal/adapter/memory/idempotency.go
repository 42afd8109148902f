package memory

import (
	"context"
	"sync"
	"time"
)

type idempotencyRecord struct {
	value     []byte
	expiresAt time.Time
}

// IdempotencyStore caches idempotent responses in memory with a TTL.
type IdempotencyStore struct {
	mu      sync.Mutex
	records map[string]idempotencyRecord
}

// NewIdempotencyStore creates an empty IdempotencyStore.
func NewIdempotencyStore() *IdempotencyStore {
	return &IdempotencyStore{records: make(map[string]idempotencyRecord)}
}

// CheckAndSet marks the key as in flight, returning any cached response a
// completed request already stored under it.
func (s *IdempotencyStore) CheckAndSet(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, []byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if rec, ok := s.records[key]; ok && now.Before(rec.expiresAt) {
		return true, rec.value, nil
	}

	s.records[key] = idempotencyRecord{value: value, expiresAt: now.Add(ttl)}
	return false, nil, nil
}

// Update stores the finished response under the key.
func (s *IdempotencyStore) Update(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[key] = idempotencyRecord{value: value, expiresAt: time.Now().Add(ttl)}
	s.sweepLocked()
	return nil
}

// sweepLocked drops expired records so the map does not grow unbounded.
func (s *IdempotencyStore) sweepLocked() {
	now := time.Now()
	for key, rec := range s.records {
		if now.After(rec.expiresAt) {
			delete(s.records, key)
		}
	}
}
