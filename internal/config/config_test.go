package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"SECURE_STORAGE_KEY", "APP_ORIGIN", "BODYKEEPER_DB", "BODYKEEPER_IMAGE_DB",
		"BODYKEEPER_NAMESPACE", "BODYKEEPER_QUOTA_BYTES", "BODYKEEPER_KDF", "LOG_LEVEL", "LOG_FORMAT",
	} {
		// Setenv восстановит значение после теста
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.SecureStorageKey)
	assert.Equal(t, "bodykeeper.db", cfg.DBPath)
	assert.Equal(t, "bodykeeper-images.db", cfg.ImageDBPath)
	assert.Equal(t, "secure_", cfg.Namespace)
	assert.Equal(t, int64(5242880), cfg.QuotaBytes)
	assert.Equal(t, "pbkdf2", cfg.KDF)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("SECURE_STORAGE_KEY", "s3cret")
	t.Setenv("APP_ORIGIN", "https://bodykeeper.example")
	t.Setenv("BODYKEEPER_DB", "/tmp/kv.db")
	t.Setenv("BODYKEEPER_IMAGE_DB", "/tmp/images.db")
	t.Setenv("BODYKEEPER_NAMESPACE", "bk_")
	t.Setenv("BODYKEEPER_QUOTA_BYTES", "1024")
	t.Setenv("BODYKEEPER_KDF", "argon2id")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, &Config{
		SecureStorageKey: "s3cret",
		Origin:           "https://bodykeeper.example",
		DBPath:           "/tmp/kv.db",
		ImageDBPath:      "/tmp/images.db",
		Namespace:        "bk_",
		KDF:              "argon2id",
		LogLevel:         "debug",
		LogFormat:        "json",
		QuotaBytes:       1024,
	}, cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_ParseError(t *testing.T) {
	t.Setenv("BODYKEEPER_QUOTA_BYTES", "lots")

	_, err := Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParsingConfig)
}

func TestValidate(t *testing.T) {
	valid := Config{
		Namespace:  "secure_",
		KDF:        "pbkdf2",
		LogFormat:  "text",
		QuotaBytes: 100,
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "unknown kdf", mutate: func(c *Config) { c.KDF = "md5" }},
		{name: "unknown log format", mutate: func(c *Config) { c.LogFormat = "xml" }},
		{name: "zero quota", mutate: func(c *Config) { c.QuotaBytes = 0 }},
		{name: "negative quota", mutate: func(c *Config) { c.QuotaBytes = -1 }},
		{name: "empty namespace", mutate: func(c *Config) { c.Namespace = "" }},
	}

	require.NoError(t, valid.Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}
