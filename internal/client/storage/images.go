package storage

import "context"

//go:generate moq -out images_mock.go . ImageStore

// StoredImage represents a progress photo together with its measurements
type StoredImage struct {
	Analysis     map[string]any `json:"analysis,omitempty"`
	Measurements map[string]any `json:"measurements,omitempty"`
	ID           string         `json:"id"`
	Date         string         `json:"date"`
	Image        string         `json:"image"` // data URI
	Overlay      string         `json:"overlay,omitempty"`
	Length       float64        `json:"length"`
	Girth        float64        `json:"girth"`
}

// ImageStore defines a transactional object store for image records keyed by ID
type ImageStore interface {
	// SaveImage inserts or fully replaces the record with the same ID
	SaveImage(ctx context.Context, img *StoredImage) error

	// GetImage retrieves a record by ID
	// Returns ErrImageNotFound if record doesn't exist
	GetImage(ctx context.Context, id string) (*StoredImage, error)

	// GetAllImages returns every record, in no particular order
	GetAllImages(ctx context.Context) ([]*StoredImage, error)

	// DeleteImage removes a record. Deleting a missing ID is not an error.
	DeleteImage(ctx context.Context, id string) error

	// ClearImages removes every record
	ClearImages(ctx context.Context) error

	// ImageStats returns the number of records and the summed length of
	// their image payloads
	ImageStats(ctx context.Context) (count int, imageBytes int64, err error)

	// Close releases the underlying database
	Close() error
}
