package boltdb

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/bodykeeper/internal/client/storage"
)

var (
	// bucketLocal - единственный bucket для строкового key-value хранилища
	bucketLocal = []byte("local_storage")
)

// Storage represents BoltDB key-value storage implementation for client
type Storage struct {
	db    *bbolt.DB
	quota int64
	mu    sync.RWMutex // защищает db от гонки с Close
}

// Option configures Storage
type Option func(*Storage)

// WithQuota limits the summed size of all keys and values in bytes.
// Zero or negative means unlimited.
func WithQuota(bytes int64) Option {
	return func(s *Storage) { s.quota = bytes }
}

// New creates a new BoltDB storage instance
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string, opts ...Option) (*Storage, error) {
	// Открываем BoltDB
	db, err := bbolt.Open(dbPath, 0600, &bbolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	storage := &Storage{db: db}
	for _, opt := range opts {
		opt(storage)
	}

	// Инициализируем buckets
	if err := storage.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return storage, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// view runs fn in a read transaction unless the storage is closed
func (s *Storage) view(fn func(tx *bbolt.Tx) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return storage.ErrStorageClosed
	}
	return s.db.View(fn)
}

// update runs fn in a write transaction unless the storage is closed
func (s *Storage) update(fn func(tx *bbolt.Tx) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return storage.ErrStorageClosed
	}
	return s.db.Update(fn)
}

// initBuckets создает необходимые buckets если они не существуют
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketLocal); err != nil {
			return fmt.Errorf("failed to create local storage bucket: %w", err)
		}
		return nil
	})
}
