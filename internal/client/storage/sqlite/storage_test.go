package sqlite

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStorage(t *testing.T) *Storage {
	t.Helper()

	// Используем in-memory database для тестов
	s, err := New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.Close()
	})

	return s
}

func TestNew_RunsMigrations(t *testing.T) {
	s := setupTestStorage(t)

	var name string
	err := s.DB().QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'images'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "images", name)
}

func TestNew_FileReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "images.db")

	s, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	// Повторное открытие не должно применять миграции заново
	s, err = New(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, s.Close())
}

func TestOpener(t *testing.T) {
	ctx := context.Background()
	open := Opener(filepath.Join(t.TempDir(), "opener.db"))

	store, err := open(ctx)
	require.NoError(t, err)
	require.NotNil(t, store)
	assert.NoError(t, store.Close())
}

func TestNew_InvalidPath(t *testing.T) {
	// Каталог нельзя открыть как файл БД
	_, err := New(context.Background(), t.TempDir())
	assert.Error(t, err)
}

func TestNew_Concurrent(t *testing.T) {
	ctx := context.Background()

	const workers = 4
	errs := make([]error, workers)
	stores := make([]*Storage, workers)

	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			stores[i], errs[i] = New(ctx, ":memory:")
		}()
	}
	wg.Wait()

	for i := range workers {
		require.NoError(t, errs[i])
		_, _, err := stores[i].ImageStats(ctx)
		require.NoError(t, err)
		require.NoError(t, stores[i].Close())
	}
}
