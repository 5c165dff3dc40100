package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// maxPlanetNameLength bounds planet labels; real inputs are short names like
// "Jupiter" or abbreviations like "Ju".
const maxPlanetNameLength = 64

// ValidatePlanetName validates a placement's planet name.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - Maximum length of 64 characters
func ValidatePlanetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidPlacement, "planet name cannot be empty")
	}

	if len(name) > maxPlanetNameLength {
		return New(ErrCodeInvalidPlacement, "planet name too long (max %d characters)", maxPlanetNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPlacement, "planet name contains invalid control characters")
		}
	}

	return nil
}

// profileIDRegex matches stored profile identifiers (UUIDs or simple slugs).
var profileIDRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]{0,63}$`)

// ValidateProfileID validates a saved chart profile identifier.
func ValidateProfileID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "profile id cannot be empty")
	}
	if !profileIDRegex.MatchString(id) {
		return New(ErrCodeInvalidInput, "invalid profile id: %q", id)
	}
	return nil
}

// ValidatePath validates a user supplied file path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}
