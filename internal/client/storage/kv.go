package storage

import "context"

//go:generate moq -out kv_mock.go . KeyValueStore

// KeyValueStore defines a synchronous string key-value store shared by
// unrelated components. It is the lowest storage layer: values are stored
// as-is and the store knows nothing about namespaces or encryption.
type KeyValueStore interface {
	// Get returns the value stored under key.
	// ok is false if the key does not exist.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores value under key, replacing any previous value.
	// Returns ErrQuotaExceeded if the store is full.
	Set(ctx context.Context, key, value string) error

	// Remove deletes key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error

	// Keys returns every key in the store, in no particular order
	Keys(ctx context.Context) ([]string, error)
}
