package store

import (
	"context"
	"sync"
	"time"

	"github.com/hashgate/hashgate/core"
	"github.com/hashgate/hashgate/ports"
)

type entry struct {
	challenge string
	expiresAt time.Time
}

// MemoryStore is an in-memory implementation of the ChallengeStore
// interface. Expiry is checked lazily on read; no background sweep.
type MemoryStore struct {
	entries map[string]entry
	mu      sync.RWMutex
}

// NewMemoryStore creates a new in-memory challenge store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]entry),
	}
}

// Put stores or overwrites the challenge for accountID
func (s *MemoryStore) Put(ctx context.Context, accountID, challenge string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[accountID] = entry{
		challenge: challenge,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

// Get returns the pending challenge if one exists and has not expired
func (s *MemoryStore) Get(ctx context.Context, accountID string) (string, error) {
	s.mu.RLock()
	e, ok := s.entries[accountID]
	s.mu.RUnlock()

	if !ok || time.Now().After(e.expiresAt) {
		return "", core.ErrChallengeNotFound
	}
	return e.challenge, nil
}

// Take removes and returns the pending challenge in one step, so two
// racing verifications cannot both consume the same challenge.
func (s *MemoryStore) Take(ctx context.Context, accountID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[accountID]
	if !ok {
		return "", core.ErrChallengeNotFound
	}
	delete(s.entries, accountID)

	if time.Now().After(e.expiresAt) {
		return "", core.ErrChallengeNotFound
	}
	return e.challenge, nil
}

// Delete removes the challenge for accountID; absent is not an error
func (s *MemoryStore) Delete(ctx context.Context, accountID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, accountID)
	return nil
}

var _ ports.ChallengeStore = (*MemoryStore)(nil)
