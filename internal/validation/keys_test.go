package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid key - simple",
			key:  "goals",
		},
		{
			name: "valid key - with punctuation",
			key:  "measurements:2024-01",
		},
		{
			name: "valid key - unicode",
			key:  "замеры",
		},
		{
			name: "valid key - max length",
			key:  strings.Repeat("k", MaxKeyLen),
		},
		{
			name:    "invalid - empty",
			key:     "",
			wantErr: true,
			errMsg:  "key cannot be empty",
		},
		{
			name:    "invalid - too long",
			key:     strings.Repeat("k", MaxKeyLen+1),
			wantErr: true,
			errMsg:  "must not exceed",
		},
		{
			name:    "invalid - space",
			key:     "my goals",
			wantErr: true,
			errMsg:  "whitespace",
		},
		{
			name:    "invalid - newline",
			key:     "goals\n",
			wantErr: true,
			errMsg:  "control characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateKey(tt.key)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateImageID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid id - simple",
			id:   "img-1",
		},
		{
			name: "valid id - uuid",
			id:   "b692f5c0-2d88-4aa1-a9e1-13aa6e4976d5",
		},
		{
			name: "valid id - dots and underscores",
			id:   "photo_2024.01.01",
		},
		{
			name:    "invalid - empty",
			id:      "",
			wantErr: true,
			errMsg:  "image id cannot be empty",
		},
		{
			name:    "invalid - too long",
			id:      strings.Repeat("a", MaxImageIDLen+1),
			wantErr: true,
			errMsg:  "must not exceed",
		},
		{
			name:    "invalid - slash",
			id:      "img/1",
			wantErr: true,
			errMsg:  "can only contain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateImageID(tt.id)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
