// Package codec converts values to and from the string representation kept
// in the synchronous key-value store.
//
// A stored value is one of two JSON shapes:
//
//	{"version":1,"iv":"<base64>","ciphertext":"<base64>"}   // encrypted
//	{"version":1,"data":<value>,"writtenAt":<ms>,"plain":true} // plain fallback
//
// The encrypted shape carries the sealed Envelope; the plain shape is the
// Envelope itself tagged with plain.
package codec

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// RecordVersion is the schema version written into every record
const RecordVersion = 1

// ErrMalformedRecord is returned when a stored value matches neither shape
var ErrMalformedRecord = errors.New("malformed storage record")

// Mode is the storage shape of a record
type Mode int

const (
	// ModeEncrypted - запись зашифрована (iv + ciphertext)
	ModeEncrypted Mode = iota + 1
	// ModePlain - запись хранится открыто (plain: true)
	ModePlain
)

// String implements fmt.Stringer
func (m Mode) String() string {
	switch m {
	case ModeEncrypted:
		return "encrypted"
	case ModePlain:
		return "plain"
	default:
		return "unknown"
	}
}

// Envelope is the plaintext wrapper around a caller value
type Envelope struct {
	Data      json.RawMessage `json:"data"`
	Version   int             `json:"version"`
	WrittenAt int64           `json:"writtenAt"`
}

// EncryptedRecord is the persisted shape of an encrypted value
type EncryptedRecord struct {
	IV         string `json:"iv"`
	Ciphertext string `json:"ciphertext"`
	Version    int    `json:"version"`
}

// PlainRecord is the persisted shape of a value written without encryption
type PlainRecord struct {
	Data      json.RawMessage `json:"data"`
	Version   int             `json:"version"`
	WrittenAt int64           `json:"writtenAt,omitempty"`
	Plain     bool            `json:"plain"`
}

// Stored is a decoded record of either shape
type Stored struct {
	Envelope   *Envelope // only for ModePlain
	IV         []byte    // only for ModeEncrypted
	Ciphertext []byte    // only for ModeEncrypted
	Mode       Mode
	Version    int
}

// rawRecord accepts both shapes for detection
type rawRecord struct {
	Data       json.RawMessage `json:"data"`
	IV         *string         `json:"iv"`
	Ciphertext *string         `json:"ciphertext"`
	Version    int             `json:"version"`
	WrittenAt  int64           `json:"writtenAt"`
	Plain      bool            `json:"plain"`
}

// NewEnvelope serialises value into a fresh envelope stamped with now
func NewEnvelope(value any, now time.Time) (Envelope, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return Envelope{}, fmt.Errorf("failed to marshal value: %w", err)
	}

	return Envelope{
		Version:   RecordVersion,
		Data:      data,
		WrittenAt: now.UnixMilli(),
	}, nil
}

// MarshalEnvelope returns the JSON form of env, used as encryption input
func MarshalEnvelope(env Envelope) ([]byte, error) {
	data, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal envelope: %w", err)
	}
	return data, nil
}

// DecodeEnvelope parses a decrypted envelope
func DecodeEnvelope(plaintext []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(plaintext, &env); err != nil {
		return Envelope{}, errors.Join(ErrMalformedRecord, err)
	}
	if len(env.Data) == 0 {
		return Envelope{}, fmt.Errorf("%w: envelope has no data", ErrMalformedRecord)
	}
	return env, nil
}

// EncodeEncrypted returns the stored string for an encrypted envelope
func EncodeEncrypted(iv, ciphertext []byte) (string, error) {
	record := EncryptedRecord{
		Version:    RecordVersion,
		IV:         base64.StdEncoding.EncodeToString(iv),
		Ciphertext: base64.StdEncoding.EncodeToString(ciphertext),
	}

	data, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("failed to marshal encrypted record: %w", err)
	}
	return string(data), nil
}

// EncodePlain returns the stored string for an unencrypted envelope
func EncodePlain(env Envelope) (string, error) {
	if len(env.Data) == 0 {
		return "", fmt.Errorf("envelope has no data")
	}

	record := PlainRecord{
		Version:   RecordVersion,
		Data:      env.Data,
		WrittenAt: env.WrittenAt,
		Plain:     true,
	}

	data, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("failed to marshal plain record: %w", err)
	}
	return string(data), nil
}

// Decode detects the shape of a stored string and decodes it
func Decode(raw string) (Stored, error) {
	var rec rawRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return Stored{}, errors.Join(ErrMalformedRecord, err)
	}

	switch {
	case rec.Plain:
		if len(rec.Data) == 0 {
			return Stored{}, fmt.Errorf("%w: plain record has no data", ErrMalformedRecord)
		}
		env := &Envelope{Version: rec.Version, Data: rec.Data, WrittenAt: rec.WrittenAt}
		return Stored{Mode: ModePlain, Version: rec.Version, Envelope: env}, nil

	case rec.IV != nil && rec.Ciphertext != nil:
		iv, err := base64.StdEncoding.DecodeString(*rec.IV)
		if err != nil {
			return Stored{}, fmt.Errorf("%w: bad iv encoding: %v", ErrMalformedRecord, err)
		}
		ciphertext, err := base64.StdEncoding.DecodeString(*rec.Ciphertext)
		if err != nil {
			return Stored{}, fmt.Errorf("%w: bad ciphertext encoding: %v", ErrMalformedRecord, err)
		}
		return Stored{Mode: ModeEncrypted, Version: rec.Version, IV: iv, Ciphertext: ciphertext}, nil

	default:
		return Stored{}, fmt.Errorf("%w: unknown record shape", ErrMalformedRecord)
	}
}
