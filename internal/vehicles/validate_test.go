package vehicles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidID(t *testing.T) {
	tests := []struct {
		name  string
		id    string
		valid bool
	}{
		{"mixed letters and digits", "A1B2C3D4", true},
		{"all lowercase", "abcdefgh", true},
		{"all digits", "12345678", true},
		{"too short", "A1B2C3D", false},
		{"too long", "A1B2C3D45", false},
		{"empty", "", false},
		{"hyphen not allowed", "A1B2-3D4", false},
		{"whitespace not allowed", "A1B2 3D4", false},
		{"non-ascii letter", "Ä1B2C3D4", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidID(tt.id))
		})
	}
}

func TestIsValidLicense(t *testing.T) {
	tests := []struct {
		name  string
		plate string
		valid bool
	}{
		{"letters digits hyphen", "ABC-123", true},
		{"letters only", "ABCDEF", true},
		{"digits only", "123456", true},
		{"single character", "A", true},
		{"empty", "", false},
		{"lowercase rejected", "abc-123", false},
		{"space rejected", "ABC 123", false},
		{"punctuation rejected", "ABC!123", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidLicense(tt.plate))
		})
	}
}

func TestNormalizeLicense(t *testing.T) {
	assert.Equal(t, "ABC-123", NormalizeLicense("  abc-123 "))
	assert.Equal(t, "ABC123", NormalizeLicense("abc123"))
	assert.Equal(t, "", NormalizeLicense("   "))
}

func TestGenerateID_FormatValid(t *testing.T) {
	for i := 0; i < 100; i++ {
		id := GenerateID()
		assert.True(t, IsValidID(id), "generated id %q must be 8 alphanumeric chars", id)
	}
}
