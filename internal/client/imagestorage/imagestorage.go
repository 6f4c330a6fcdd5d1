// Package imagestorage stores progress photos and their measurements in a
// transactional object store keyed by record ID.
//
// The underlying store is opened lazily on first use, so callers never have
// to sequence initialisation. Unlike securestorage, every failure is returned
// to the caller: image records are large and hard to recreate, so a failed
// read or write must be visible.
package imagestorage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/iudanet/bodykeeper/internal/client/storage"
)

// Opener opens the underlying image store
type Opener func(ctx context.Context) (storage.ImageStore, error)

// Info describes the image store contents
type Info struct {
	Count int   `json:"count"`
	Size  int64 `json:"size"` // summed length of image payloads
}

// Storage is the image store facade used by the rest of the client
type Storage struct {
	open   Opener
	store  storage.ImageStore
	logger *slog.Logger
	mu     sync.Mutex
	closed bool
}

// Option configures Storage
type Option func(*Storage)

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Storage) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a Storage that opens its backend with open on first use
func New(open Opener, opts ...Option) *Storage {
	s := &Storage{
		open:   open,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Init opens the backend if it is not open yet.
// It is safe to call any number of times; a failed open is retried on the
// next call.
func (s *Storage) Init(ctx context.Context) error {
	_, err := s.backend(ctx)
	return err
}

func (s *Storage) backend(ctx context.Context) (storage.ImageStore, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, storage.ErrStorageClosed
	}
	if s.store != nil {
		return s.store, nil
	}
	if s.open == nil {
		return nil, errors.New("image storage has no opener")
	}

	store, err := s.open(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open image storage: %w", err)
	}

	s.store = store
	s.logger.Debug("image storage opened")
	return store, nil
}

// SaveImage inserts img or fully replaces the record with the same ID
func (s *Storage) SaveImage(ctx context.Context, img *storage.StoredImage) error {
	if img == nil || img.ID == "" {
		return storage.ErrEmptyID
	}

	store, err := s.backend(ctx)
	if err != nil {
		return err
	}

	if err := store.SaveImage(ctx, img); err != nil {
		return fmt.Errorf("failed to save image %s: %w", img.ID, err)
	}
	return nil
}

// GetImage returns the record with id. found is false if there is none.
func (s *Storage) GetImage(ctx context.Context, id string) (img *storage.StoredImage, found bool, err error) {
	store, err := s.backend(ctx)
	if err != nil {
		return nil, false, err
	}

	img, err = store.GetImage(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrImageNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get image %s: %w", id, err)
	}
	return img, true, nil
}

// GetAllImages returns every record in no particular order
func (s *Storage) GetAllImages(ctx context.Context) ([]*storage.StoredImage, error) {
	store, err := s.backend(ctx)
	if err != nil {
		return nil, err
	}

	images, err := store.GetAllImages(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get images: %w", err)
	}
	return images, nil
}

// DeleteImage removes the record with id; a missing record is not an error
func (s *Storage) DeleteImage(ctx context.Context, id string) error {
	store, err := s.backend(ctx)
	if err != nil {
		return err
	}

	if err := store.DeleteImage(ctx, id); err != nil {
		return fmt.Errorf("failed to delete image %s: %w", id, err)
	}
	return nil
}

// ClearAll removes every record
func (s *Storage) ClearAll(ctx context.Context) error {
	store, err := s.backend(ctx)
	if err != nil {
		return err
	}

	if err := store.ClearImages(ctx); err != nil {
		return fmt.Errorf("failed to clear images: %w", err)
	}
	return nil
}

// StorageInfo returns the record count and approximate payload size
func (s *Storage) StorageInfo(ctx context.Context) (Info, error) {
	store, err := s.backend(ctx)
	if err != nil {
		return Info{}, err
	}

	count, size, err := store.ImageStats(ctx)
	if err != nil {
		return Info{}, fmt.Errorf("failed to get image storage info: %w", err)
	}
	return Info{Count: count, Size: size}, nil
}

// Close closes the backend if it was opened. Later calls fail with
// storage.ErrStorageClosed.
func (s *Storage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	if s.store == nil {
		return nil
	}

	err := s.store.Close()
	s.store = nil
	return err
}
