package errors

import (
	"strings"
	"unicode"
)

// ValidateSurfaceID validates a drawing-surface identifier.
// Identifiers name surfaces in a registry and end up as SVG element ids,
// so they are restricted to a conservative character set.
func ValidateSurfaceID(id string) error {
	if id == "" {
		return New(ErrCodeSurfaceUnavailable, "surface identifier cannot be empty")
	}
	if len(id) > 128 {
		return New(ErrCodeSurfaceUnavailable, "surface identifier too long (max 128 characters)")
	}
	for _, r := range id {
		if r == '-' || r == '_' || r == '.' {
			continue
		}
		if r > unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return New(ErrCodeSurfaceUnavailable, "surface identifier contains invalid character %q", r)
		}
	}
	return nil
}

// ValidatePath validates an output file path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	for _, part := range strings.FieldsFunc(path, func(r rune) bool { return r == '/' || r == '\\' }) {
		if part == ".." {
			return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
		}
	}

	return nil
}
