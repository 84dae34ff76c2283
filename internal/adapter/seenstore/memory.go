// Package seenstore provides the deduplicating seen-set stores backing the
// generation retry loop.
package seenstore

import (
	"context"
	"sync"
	"time"

	"quizcraft/internal/domain"
)

type memoryEntry struct {
	seen        map[string]struct{}
	lastUpdated time.Time
}

// MemoryStore implements domain.SeenStore with a mutex-guarded in-process map.
// Entries expire lazily: Sweep runs on the request path before reads, there is
// no background timer. Forgetting seen questions after the TTL is deliberate;
// it bounds memory and lets question pools recycle over time.
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]memoryEntry
}

// NewMemoryStore creates a MemoryStore whose entries expire ttl after their
// last write.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]memoryEntry),
	}
}

// GetSeen returns a copy of the seen-set so callers can grow it without
// holding the store's lock across external calls.
func (s *MemoryStore) GetSeen(_ context.Context, fingerprint string) (map[string]struct{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{})
	entry, ok := s.entries[fingerprint]
	if !ok || s.expired(entry) {
		return seen, nil
	}
	for q := range entry.seen {
		seen[q] = struct{}{}
	}
	return seen, nil
}

// Commit replaces the fingerprint's seen-set and restarts its TTL.
func (s *MemoryStore) Commit(_ context.Context, fingerprint string, seen map[string]struct{}) error {
	copied := make(map[string]struct{}, len(seen))
	for q := range seen {
		copied[q] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[fingerprint] = memoryEntry{seen: copied, lastUpdated: s.now()}
	return nil
}

// Sweep removes every entry whose age exceeds the TTL.
func (s *MemoryStore) Sweep(_ context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for fingerprint, entry := range s.entries {
		if s.expired(entry) {
			delete(s.entries, fingerprint)
		}
	}
}

// Ping implements domain.SeenStore. The in-process store is always healthy.
func (s *MemoryStore) Ping(_ context.Context) error {
	return nil
}

func (s *MemoryStore) expired(entry memoryEntry) bool {
	return s.now().Sub(entry.lastUpdated) > s.ttl
}

var _ domain.SeenStore = (*MemoryStore)(nil)
