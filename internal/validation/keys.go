package validation

import (
	"fmt"
	"regexp"
	"unicode"
)

// ImageIDPattern определяет допустимый формат id записи изображения
// Латинские буквы, цифры, дефис, подчеркивание и точка; длина 1-128
var ImageIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_.\-]{1,128}$`)

const (
	// MaxKeyLen максимальная длина ключа в байтах
	MaxKeyLen = 256
	// MaxImageIDLen максимальная длина id изображения
	MaxImageIDLen = 128
)

// ValidateKey checks a caller key passed on the command line.
// Keys are opaque to the store; this only rejects values that cannot be
// typed back reliably.
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("key cannot be empty")
	}

	if len(key) > MaxKeyLen {
		return fmt.Errorf("key must not exceed %d bytes", MaxKeyLen)
	}

	for _, r := range key {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return fmt.Errorf("key cannot contain whitespace or control characters")
		}
	}

	return nil
}

// ValidateImageID checks an image record id
func ValidateImageID(id string) error {
	if id == "" {
		return fmt.Errorf("image id cannot be empty")
	}

	if len(id) > MaxImageIDLen {
		return fmt.Errorf("image id must not exceed %d characters", MaxImageIDLen)
	}

	if !ImageIDPattern.MatchString(id) {
		return fmt.Errorf("image id can only contain letters, numbers, '-', '_' and '.'")
	}

	return nil
}
