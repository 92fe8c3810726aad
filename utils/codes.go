package utils

import (
	"os"
	"strings"

	"github.com/google/uuid"
)

// EnvOrDefault returns ENV value or fallback default.
func EnvOrDefault(key, def string) string {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// GenerateReferenceCode builds a short booking reference like "RSV-9F3A21C4"
// shown to guests and staff. Uniqueness is backed by the unique index on
// reservations.reference_code; collisions on the 8-hex prefix are rare
// enough that the insert simply fails and surfaces as a storage error.
func GenerateReferenceCode() string {
	id := uuid.New()
	hexPart := strings.ToUpper(strings.ReplaceAll(id.String(), "-", ""))
	return "RSV-" + hexPart[:8]
}
