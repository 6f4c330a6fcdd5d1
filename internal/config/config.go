// Package config loads client settings from the environment
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/iudanet/bodykeeper/internal/crypto"
)

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into Config
	ErrParsingConfig = errors.New("failed to parse environment variables into config")
	// ErrInvalidConfig is returned by Validate
	ErrInvalidConfig = errors.New("invalid config")
)

// Config holds client settings
type Config struct {
	// SecureStorageKey is the secret the storage key is derived from.
	// Empty selects the origin-based fallback.
	SecureStorageKey string `env:"SECURE_STORAGE_KEY"`
	Origin           string `env:"APP_ORIGIN"`
	DBPath           string `env:"BODYKEEPER_DB" envDefault:"bodykeeper.db"`
	ImageDBPath      string `env:"BODYKEEPER_IMAGE_DB" envDefault:"bodykeeper-images.db"`
	Namespace        string `env:"BODYKEEPER_NAMESPACE" envDefault:"secure_"`
	KDF              string `env:"BODYKEEPER_KDF" envDefault:"pbkdf2"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat        string `env:"LOG_FORMAT" envDefault:"text"`
	QuotaBytes       int64  `env:"BODYKEEPER_QUOTA_BYTES" envDefault:"5242880"`
}

// Load reads a .env file if present and parses the environment
func Load() (*Config, error) {
	// .env может отсутствовать
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.Join(ErrParsingConfig, err)
	}
	return &cfg, nil
}

// Validate checks values that env tags cannot express
func (c *Config) Validate() error {
	if _, err := crypto.ParseKDF(c.KDF); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, c.LogFormat)
	}

	if c.QuotaBytes <= 0 {
		return fmt.Errorf("%w: quota must be positive", ErrInvalidConfig)
	}
	if c.Namespace == "" {
		return fmt.Errorf("%w: namespace cannot be empty", ErrInvalidConfig)
	}
	return nil
}
