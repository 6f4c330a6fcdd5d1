package crypto

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyProvider_ConfiguredSecret(t *testing.T) {
	ctx := context.Background()
	p := NewKeyProvider("configured-secret", "https://app.example.com")
	assert.False(t, p.Fallback())
	assert.Equal(t, KDFPBKDF2, p.KDF())

	key, err := p.Key(ctx)
	require.NoError(t, err)

	want, err := DeriveKey("configured-secret", []byte(DefaultSalt), KDFPBKDF2)
	require.NoError(t, err)
	assert.Equal(t, want, key)
}

func TestKeyProvider_Fallback(t *testing.T) {
	ctx := context.Background()
	p := NewKeyProvider("", "")
	assert.True(t, p.Fallback())

	key, err := p.Key(ctx)
	require.NoError(t, err)

	want, err := DeriveKey(FallbackOrigin+DevKeyMarker, []byte(DefaultSalt), KDFPBKDF2)
	require.NoError(t, err)
	assert.Equal(t, want, key)
}

func TestKeyProvider_ConcurrentCallersShareKey(t *testing.T) {
	ctx := context.Background()
	p := NewKeyProvider("secret", "")

	const workers = 8
	keys := make([][]byte, workers)
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			key, err := p.Key(ctx)
			assert.NoError(t, err)
			keys[i] = key
		}()
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		require.NotNil(t, keys[i])
		// Один и тот же slice: деривация выполнена один раз
		assert.Same(t, &keys[0][0], &keys[i][0])
	}
}

func TestKeyProvider_Options(t *testing.T) {
	ctx := context.Background()
	p := NewKeyProvider("secret", "", WithSalt([]byte("custom-salt")), WithKDF(KDFArgon2id))

	key, err := p.Key(ctx)
	require.NoError(t, err)

	want, err := DeriveKey("secret", []byte("custom-salt"), KDFArgon2id)
	require.NoError(t, err)
	assert.Equal(t, want, key)
}

func TestKeyProvider_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewKeyProvider("secret", "")
	_, err := p.Key(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestKeyProvider_InvalidKDF(t *testing.T) {
	p := NewKeyProvider("secret", "", WithKDF("bogus"))
	_, err := p.Key(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to derive storage key")
}
