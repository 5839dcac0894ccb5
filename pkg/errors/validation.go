package errors

import (
	"strings"
	"unicode"
)

// maxPathLength bounds input file paths accepted on the command line.
const maxPathLength = 4096

// ValidateInputPath validates a path to an input file before it is opened.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidateInputPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidInput, "input path cannot be empty")
	}

	if len(path) > maxPathLength {
		return New(ErrCodeInvalidInput, "input path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "input path contains invalid characters")
		}
	}

	return nil
}

// ValidateItem reports whether n is a usable item identifier.
// Items are opaque positive integers.
func ValidateItem(n int) error {
	if n <= 0 {
		return New(ErrCodeInvalidInput, "item must be a positive integer, got %d", n)
	}
	return nil
}
