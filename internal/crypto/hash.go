package crypto

import (
	"crypto/sha256"
	"encoding/hex"
)

// fingerprintLen - количество hex-символов в отпечатке ключа
const fingerprintLen = 12

// Fingerprint returns a short SHA-256 fingerprint of key for log correlation.
// It is safe to log; the key itself never is.
func Fingerprint(key []byte) string {
	if len(key) == 0 {
		return ""
	}

	hash := sha256.Sum256(key)
	return hex.EncodeToString(hash[:])[:fingerprintLen]
}
