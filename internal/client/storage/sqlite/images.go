package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/bodykeeper/internal/client/storage"
)

var _ storage.ImageStore = (*Storage)(nil)

// SaveImage inserts the record or fully replaces the one with the same ID
func (s *Storage) SaveImage(ctx context.Context, img *storage.StoredImage) error {
	if img == nil || img.ID == "" {
		return storage.ErrEmptyID
	}

	payload, err := json.Marshal(img)
	if err != nil {
		return fmt.Errorf("failed to marshal image: %w", err)
	}

	query := `
		INSERT INTO images (id, date, image_size, payload, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			date = excluded.date,
			image_size = excluded.image_size,
			payload = excluded.payload,
			updated_at = excluded.updated_at
	`

	_, err = s.db.ExecContext(ctx, query,
		img.ID,
		img.Date,
		len(img.Image),
		payload,
		time.Now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}

	return nil
}

// GetImage retrieves a record by ID
// Returns ErrImageNotFound if record doesn't exist
func (s *Storage) GetImage(ctx context.Context, id string) (*storage.StoredImage, error) {
	query := `SELECT payload FROM images WHERE id = ?`

	var payload []byte
	err := s.db.QueryRowContext(ctx, query, id).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrImageNotFound
		}
		return nil, fmt.Errorf("failed to get image: %w", err)
	}

	img := &storage.StoredImage{}
	if err := json.Unmarshal(payload, img); err != nil {
		return nil, fmt.Errorf("failed to unmarshal image %s: %w", id, err)
	}

	return img, nil
}

// GetAllImages returns every record
func (s *Storage) GetAllImages(ctx context.Context) ([]*storage.StoredImage, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, payload FROM images`)
	if err != nil {
		return nil, fmt.Errorf("failed to query images: %w", err)
	}
	defer rows.Close()

	var images []*storage.StoredImage
	for rows.Next() {
		var (
			id      string
			payload []byte
		)
		if err := rows.Scan(&id, &payload); err != nil {
			return nil, fmt.Errorf("failed to scan image: %w", err)
		}

		img := &storage.StoredImage{}
		if err := json.Unmarshal(payload, img); err != nil {
			return nil, fmt.Errorf("failed to unmarshal image %s: %w", id, err)
		}
		images = append(images, img)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate images: %w", err)
	}

	return images, nil
}

// DeleteImage removes a record; a missing ID is not an error
func (s *Storage) DeleteImage(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM images WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	return nil
}

// ClearImages removes every record
func (s *Storage) ClearImages(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM images`); err != nil {
		return fmt.Errorf("failed to clear images: %w", err)
	}
	return nil
}

// ImageStats returns the record count and the summed image payload length
func (s *Storage) ImageStats(ctx context.Context) (int, int64, error) {
	var (
		count int
		size  int64
	)

	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(image_size), 0) FROM images`,
	).Scan(&count, &size)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get image stats: %w", err)
	}

	return count, size, nil
}
