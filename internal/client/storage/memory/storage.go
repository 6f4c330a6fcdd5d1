// Package memory provides an in-process KeyValueStore.
// Contents are lost when the process exits.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/iudanet/bodykeeper/internal/client/storage"
)

var _ storage.KeyValueStore = (*Storage)(nil)

// Storage is a mutex-guarded map with optional byte quota
type Storage struct {
	items map[string]string
	quota int64
	used  int64
	mu    sync.RWMutex
}

// New creates an empty store. quota <= 0 means unlimited.
func New(quota int64) *Storage {
	return &Storage{
		items: make(map[string]string),
		quota: quota,
	}
}

// Get returns the value stored under key
func (s *Storage) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.items[key]
	return value, ok, nil
}

// Set stores value under key
func (s *Storage) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	used := s.used + int64(len(key)+len(value))
	if old, ok := s.items[key]; ok {
		used -= int64(len(key) + len(old))
	}
	if s.quota > 0 && used > s.quota {
		return fmt.Errorf("failed to set %q: %w", key, storage.ErrQuotaExceeded)
	}

	s.items[key] = value
	s.used = used
	return nil
}

// Remove deletes key; a missing key is not an error
func (s *Storage) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.items[key]; ok {
		s.used -= int64(len(key) + len(old))
		delete(s.items, key)
	}
	return nil
}

// Keys returns every key in the store
func (s *Storage) Keys(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.items))
	for k := range s.items {
		keys = append(keys, k)
	}
	return keys, nil
}
