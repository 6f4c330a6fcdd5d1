// Package securestorage is a namespaced key-value store that encrypts every
// value before handing it to the underlying KeyValueStore.
//
// Reads never fail: a missing, corrupted or undecryptable entry is reported
// as absent and logged. Writes always return the failure.
//
// When the runtime cannot produce random nonces the store degrades to plain
// mode for its whole lifetime. The decision is made once in New.
package securestorage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/iudanet/bodykeeper/internal/client/storage"
	"github.com/iudanet/bodykeeper/internal/codec"
	"github.com/iudanet/bodykeeper/internal/crypto"
)

const (
	// DefaultPrefix is prepended to every key written by Storage
	DefaultPrefix = "secure_"
	// DefaultQuota is the assumed capacity of the underlying store
	DefaultQuota int64 = 5 * 1024 * 1024
)

// Info is a best-effort estimate of namespace usage
type Info struct {
	Used       int64   `json:"used"`
	Total      int64   `json:"total"`
	Percentage float64 `json:"percentage"`
}

// Storage is the encrypted key-value store
type Storage struct {
	kv         storage.KeyValueStore
	keys       *crypto.KeyProvider
	backend    backend
	logger     *slog.Logger
	random     io.Reader
	now        func() time.Time
	prefix     string
	quota      int64
	forcePlain bool
}

// Option configures Storage
type Option func(*Storage)

// WithPrefix sets the namespace prefix
func WithPrefix(prefix string) Option {
	return func(s *Storage) {
		if prefix != "" {
			s.prefix = prefix
		}
	}
}

// WithQuota sets the capacity reported by StorageInfo
func WithQuota(quota int64) Option {
	return func(s *Storage) {
		if quota > 0 {
			s.quota = quota
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Storage) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRandom sets the nonce source. nil means crypto/rand.
func WithRandom(random io.Reader) Option {
	return func(s *Storage) { s.random = random }
}

// WithPlainMode disables encryption regardless of runtime capability
func WithPlainMode() Option {
	return func(s *Storage) { s.forcePlain = true }
}

// WithClock sets the time source for envelope timestamps
func WithClock(now func() time.Time) Option {
	return func(s *Storage) {
		if now != nil {
			s.now = now
		}
	}
}

// New creates a Storage over kv. keys may be nil, in which case the
// fallback key is used. keys is not used in plain mode.
func New(kv storage.KeyValueStore, keys *crypto.KeyProvider, opts ...Option) *Storage {
	s := &Storage{
		kv:     kv,
		keys:   keys,
		logger: slog.Default(),
		now:    time.Now,
		prefix: DefaultPrefix,
		quota:  DefaultQuota,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.forcePlain || !crypto.Available(s.random) {
		// В открытом режиме ключ не нужен
		s.keys = nil
		s.backend = plainBackend{}
		s.logger.Warn("secure storage running in plain mode, values are not encrypted")
		return s
	}

	if s.keys == nil {
		s.keys = crypto.NewKeyProvider("", "", crypto.WithProviderLogger(s.logger))
	}
	s.backend = &encryptedBackend{keys: s.keys, random: s.random}

	return s
}

// Mode reports how values are written
func (s *Storage) Mode() codec.Mode {
	return s.backend.mode()
}

func (s *Storage) key(key string) string {
	return s.prefix + key
}

// SetItem stores value under key, replacing any previous value
func (s *Storage) SetItem(ctx context.Context, key string, value any) error {
	env, err := codec.NewEnvelope(value, s.now())
	if err != nil {
		return err
	}

	raw, err := s.backend.seal(ctx, env)
	if err != nil {
		return fmt.Errorf("failed to seal %q: %w", key, err)
	}

	if err := s.kv.Set(ctx, s.key(key), raw); err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	return nil
}

// GetItem decodes the value under key into out and reports whether it was
// found. Unreadable entries are logged and reported as absent, and out is
// left untouched. out must be a pointer, or nil to only check that the
// entry is readable.
func (s *Storage) GetItem(ctx context.Context, key string, out any) bool {
	raw, ok, err := s.kv.Get(ctx, s.key(key))
	if err != nil {
		s.logger.Warn("failed to read secure item", "key", key, "error", err)
		return false
	}
	if !ok {
		return false
	}

	stored, err := codec.Decode(raw)
	if err != nil {
		s.logger.Warn("corrupted secure item", "key", key, "error", err)
		return false
	}

	env, err := s.backend.open(ctx, stored)
	if err != nil {
		s.logger.Warn("failed to open secure item", "key", key, "mode", stored.Mode.String(), "error", err)
		return false
	}

	if out == nil {
		return true
	}

	target := reflect.ValueOf(out)
	if target.Kind() != reflect.Pointer || target.IsNil() {
		s.logger.Warn("secure item target must be a non-nil pointer", "key", key, "type", fmt.Sprintf("%T", out))
		return false
	}

	// Декодируем в новое значение: при ошибке out остается нетронутым
	decoded := reflect.New(target.Type().Elem())
	if err := json.Unmarshal(env.Data, decoded.Interface()); err != nil {
		s.logger.Warn("failed to decode secure item", "key", key, "error", err)
		return false
	}

	target.Elem().Set(decoded.Elem())
	return true
}

// Get is a typed form of GetItem
func Get[T any](ctx context.Context, s *Storage, key string) (T, bool) {
	var value T
	if !s.GetItem(ctx, key, &value) {
		var zero T
		return zero, false
	}
	return value, true
}

// RemoveItem deletes key. A missing key is not an error.
func (s *Storage) RemoveItem(ctx context.Context, key string) error {
	if err := s.kv.Remove(ctx, s.key(key)); err != nil {
		return fmt.Errorf("failed to remove %q: %w", key, err)
	}
	return nil
}

// Clear deletes every key in the namespace and nothing else
func (s *Storage) Clear(ctx context.Context) error {
	all, err := s.kv.Keys(ctx)
	if err != nil {
		return fmt.Errorf("failed to list keys: %w", err)
	}

	for _, k := range all {
		if !strings.HasPrefix(k, s.prefix) {
			continue
		}
		if err := s.kv.Remove(ctx, k); err != nil {
			return fmt.Errorf("failed to remove %q: %w", k, err)
		}
	}
	return nil
}

// HasItem reports whether key exists without decrypting it
func (s *Storage) HasItem(ctx context.Context, key string) bool {
	_, ok, err := s.kv.Get(ctx, s.key(key))
	if err != nil {
		s.logger.Warn("failed to check secure item", "key", key, "error", err)
		return false
	}
	return ok
}

// Keys returns the caller keys in the namespace, sorted
func (s *Storage) Keys(ctx context.Context) ([]string, error) {
	all, err := s.kv.Keys(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}

	keys := make([]string, 0, len(all))
	for _, k := range all {
		if rest, ok := strings.CutPrefix(k, s.prefix); ok {
			keys = append(keys, rest)
		}
	}
	slices.Sort(keys)
	return keys, nil
}

// StorageInfo estimates bytes used by the namespace against the quota
func (s *Storage) StorageInfo(ctx context.Context) (Info, error) {
	all, err := s.kv.Keys(ctx)
	if err != nil {
		return Info{}, fmt.Errorf("failed to list keys: %w", err)
	}

	var used int64
	for _, k := range all {
		if !strings.HasPrefix(k, s.prefix) {
			continue
		}
		value, ok, err := s.kv.Get(ctx, k)
		if err != nil {
			return Info{}, fmt.Errorf("failed to read %q: %w", k, err)
		}
		if ok {
			used += int64(len(k) + len(value))
		}
	}

	info := Info{Used: used, Total: s.quota}
	if s.quota > 0 {
		info.Percentage = float64(used) / float64(s.quota) * 100
	}
	return info, nil
}
