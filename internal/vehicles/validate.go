package vehicles

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	idPattern      = regexp.MustCompile(`^[A-Za-z0-9]{8}$`)
	licensePattern = regexp.MustCompile(`^[A-Z0-9-]+$`)
)

// IsValidID reports whether id is exactly 8 ASCII letters or digits.
func IsValidID(id string) bool {
	return idPattern.MatchString(id)
}

// IsValidLicense reports whether plate contains only uppercase letters,
// digits and hyphen. Callers trim and uppercase before calling; the
// predicate itself does not normalize.
func IsValidLicense(plate string) bool {
	return licensePattern.MatchString(plate)
}

// NormalizeLicense trims and uppercases a raw plate for validation/storage.
func NormalizeLicense(plate string) string {
	return strings.ToUpper(strings.TrimSpace(plate))
}

// GenerateID returns a fresh 8-character alphanumeric id. Format-valid by
// construction but not checked for uniqueness; the engine re-checks
// against the fleet before using it.
func GenerateID() string {
	u := strings.ReplaceAll(uuid.New().String(), "-", "")
	return u[:8]
}
