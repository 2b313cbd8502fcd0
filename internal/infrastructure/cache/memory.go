package cache

import (
	"context"
	"sync"
	"time"

	"github.com/dishcovery/backend/internal/domain"
)

// cacheItem represents a single item in the cache with expiration
type cacheItem struct {
	value      []byte
	expiration time.Time
}

// MemoryStore is a thread-safe in-memory cache with TTL support. It holds
// serialized values so it behaves like the redis backend.
type MemoryStore struct {
	data  map[string]cacheItem
	mutex sync.RWMutex
}

// NewMemoryStore creates a new in-memory cache and starts its cleanup
// goroutine.
func NewMemoryStore() *MemoryStore {
	store := &MemoryStore{
		data: make(map[string]cacheItem),
	}
	go store.cleanupExpired()
	return store
}

// Get retrieves a value from the cache.
func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	item, exists := s.data[key]
	if !exists {
		return nil, domain.ErrCacheMiss
	}
	if time.Now().After(item.expiration) {
		return nil, domain.ErrCacheMiss
	}
	return item.value, nil
}

// Set stores a value in the cache with TTL.
func (s *MemoryStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.data[key] = cacheItem{
		value:      value,
		expiration: time.Now().Add(ttl),
	}
	return nil
}

// Delete removes a value from the cache.
func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.data, key)
	return nil
}

// Size returns the current number of items in the cache (for debugging).
func (s *MemoryStore) Size() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.data)
}

// cleanupExpired removes expired entries from the cache periodically.
func (s *MemoryStore) cleanupExpired() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.mutex.Lock()
		now := time.Now()
		for key, item := range s.data {
			if now.After(item.expiration) {
				delete(s.data, key)
			}
		}
		s.mutex.Unlock()
	}
}
