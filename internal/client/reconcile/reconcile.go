// Package reconcile merges records read from the image store with the
// legacy list kept in secure storage.
//
// Records were originally written only to secure storage. Newer records go
// to the image store, and nothing migrates the old ones, so every reader
// has to look in both places.
package reconcile

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/iudanet/bodykeeper/internal/client/storage"
)

// ImageLister is the read side of the image store
type ImageLister interface {
	GetAllImages(ctx context.Context) ([]*storage.StoredImage, error)
}

// ItemReader is the read side of secure storage
type ItemReader interface {
	GetItem(ctx context.Context, key string, out any) bool
}

// Merge returns primary followed by the legacy entries whose id does not
// appear in primary. Only primary ids suppress legacy entries; legacy
// entries sharing an id with each other are all kept.
func Merge[T any](primary, legacy []T, id func(T) string) []T {
	seen := make(map[string]struct{}, len(primary))
	merged := make([]T, 0, len(primary)+len(legacy))

	for _, item := range primary {
		seen[id(item)] = struct{}{}
		merged = append(merged, item)
	}

	for _, item := range legacy {
		if _, ok := seen[id(item)]; ok {
			continue
		}
		merged = append(merged, item)
	}

	return merged
}

// LoadImages reads all image records and the legacy list stored under
// listKey and merges them, the image store winning on equal ids.
// A missing or unreadable legacy list counts as empty.
func LoadImages(ctx context.Context, images ImageLister, secure ItemReader, listKey string) ([]storage.StoredImage, error) {
	stored, err := images.GetAllImages(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load images: %w", err)
	}

	primary := make([]storage.StoredImage, 0, len(stored))
	for _, img := range stored {
		if img != nil {
			primary = append(primary, *img)
		}
	}

	var legacy []storage.StoredImage
	if secure != nil && listKey != "" {
		if !secure.GetItem(ctx, listKey, &legacy) {
			legacy = nil
		}
	}

	return Merge(primary, legacy, imageID), nil
}

// SortByDateDesc orders records newest first, ties broken by id
func SortByDateDesc(images []storage.StoredImage) {
	slices.SortStableFunc(images, func(a, b storage.StoredImage) int {
		if c := strings.Compare(b.Date, a.Date); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
}

func imageID(img storage.StoredImage) string {
	return img.ID
}
