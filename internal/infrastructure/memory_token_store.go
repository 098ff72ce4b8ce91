package infrastructure

import (
	"context"
	"sync"
	"time"
)

// MemoryTokenStore keeps refresh JTIs in process memory. Used for local
// development and tests, and as the fallback when Redis is not configured.
type MemoryTokenStore struct {
	mutex   sync.Mutex
	entries map[string]time.Time
}

func NewMemoryTokenStore() *MemoryTokenStore {
	s := &MemoryTokenStore{
		entries: make(map[string]time.Time),
	}

	// Expired entries that are never consumed would otherwise accumulate.
	go s.cleanupStaleEntries()
	return s
}

func (s *MemoryTokenStore) Save(ctx context.Context, jti, userId string, ttl time.Duration) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.entries[jti] = time.Now().Add(ttl)
	return nil
}

func (s *MemoryTokenStore) Consume(ctx context.Context, jti string) (bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	expiry, exists := s.entries[jti]
	if !exists {
		return false, nil
	}
	delete(s.entries, jti)

	if time.Now().After(expiry) {
		return false, nil
	}
	return true, nil
}

func (s *MemoryTokenStore) cleanupStaleEntries() {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		s.mutex.Lock()
		now := time.Now()
		for jti, expiry := range s.entries {
			if now.After(expiry) {
				delete(s.entries, jti)
			}
		}
		s.mutex.Unlock()
	}
}
