package errors

import (
	"strings"
	"unicode"
)

// ValidateCounts checks the vertex and edge counts a caller asks for
// before any storage is allocated.
//
// The rules mirror the command-line contract:
//   - vertices must be at least 1
//   - edges must not be negative
//   - edges must not exceed vertices (ErrCodeUnsatisfiable)
func ValidateCounts(vertices, edges int) error {
	if vertices < 1 {
		return New(ErrCodeInvalidInput, "vertex count must be positive, got %d", vertices)
	}
	if edges < 0 {
		return New(ErrCodeInvalidInput, "edge count cannot be negative, got %d", edges)
	}
	if vertices < edges {
		return New(ErrCodeUnsatisfiable, "Cannot generate graph with %d vertices and %d edges", vertices, edges)
	}
	return nil
}

// ValidateFormat checks that format is one of the allowed output formats.
func ValidateFormat(format string, allowed []string) error {
	for _, f := range allowed {
		if format == f {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "invalid format: %s (must be one of %s)", format, strings.Join(allowed, ", "))
}

// ValidatePath validates an output or config file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidInput, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "path contains invalid characters")
		}
	}

	return nil
}
