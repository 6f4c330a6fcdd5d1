package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/bodykeeper/internal/client/storage"
)

var _ storage.KeyValueStore = (*Storage)(nil)

// Get returns the value stored under key
func (s *Storage) Get(ctx context.Context, key string) (string, bool, error) {
	var (
		value string
		found bool
	)

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketLocal)
		if bucket == nil {
			return fmt.Errorf("local storage bucket not found")
		}

		data := bucket.Get([]byte(key))
		if data == nil {
			return nil
		}

		// data валиден только внутри транзакции - копируем
		value = string(data)
		found = true
		return nil
	})

	if err != nil {
		return "", false, err
	}

	return value, found, nil
}

// Set stores value under key, enforcing the quota if one is configured
func (s *Storage) Set(ctx context.Context, key, value string) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketLocal)
		if bucket == nil {
			return fmt.Errorf("local storage bucket not found")
		}

		if s.quota > 0 {
			used, err := usageExcluding(bucket, key)
			if err != nil {
				return err
			}
			if used+int64(len(key)+len(value)) > s.quota {
				return fmt.Errorf("failed to set %q: %w", key, storage.ErrQuotaExceeded)
			}
		}

		if err := bucket.Put([]byte(key), []byte(value)); err != nil {
			return fmt.Errorf("failed to set %q: %w", key, err)
		}

		return nil
	})
}

// Remove deletes key; a missing key is not an error
func (s *Storage) Remove(ctx context.Context, key string) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketLocal)
		if bucket == nil {
			return fmt.Errorf("local storage bucket not found")
		}

		if err := bucket.Delete([]byte(key)); err != nil {
			return fmt.Errorf("failed to remove %q: %w", key, err)
		}

		return nil
	})
}

// Keys returns every key in the bucket
func (s *Storage) Keys(ctx context.Context) ([]string, error) {
	var keys []string

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketLocal)
		if bucket == nil {
			return fmt.Errorf("local storage bucket not found")
		}

		return bucket.ForEach(func(k, _ []byte) error {
			keys = append(keys, string(k))
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}

	return keys, nil
}

// usageExcluding sums key and value lengths of every entry except key
func usageExcluding(bucket *bbolt.Bucket, key string) (int64, error) {
	var used int64
	err := bucket.ForEach(func(k, v []byte) error {
		if string(k) != key {
			used += int64(len(k) + len(v))
		}
		return nil
	})
	return used, err
}
