package errors

import (
	"strings"
	"unicode"
)

// Output formats accepted across the CLI and API.
var validFormats = map[string]bool{
	"text": true,
	"dot":  true,
	"svg":  true,
	"png":  true,
	"pdf":  true,
	"json": true,
	"nwk":  true,
}

// ValidateFormat validates an output format name.
func ValidateFormat(format string) error {
	if format == "" {
		return New(ErrCodeInvalidFormat, "format cannot be empty")
	}
	if !validFormats[format] {
		return New(ErrCodeInvalidFormat, "unknown format %q (valid: text, dot, svg, png, pdf, json, nwk)", format)
	}
	return nil
}

// ValidateWidth validates a render width. Widths below 2 cannot hold both a
// root column and a tip column.
func ValidateWidth(width int) error {
	if width < 2 {
		return New(ErrCodeInvalidWidth, "width must be at least 2, got %d", width)
	}
	const maxWidth = 10000
	if width > maxWidth {
		return New(ErrCodeInvalidWidth, "width too large (max %d), got %d", maxWidth, width)
	}
	return nil
}

// ValidateNewickText validates raw Newick input before parsing.
// It rejects inputs that are empty, oversized, or contain control
// characters that could corrupt terminal output or logs. Grammar errors
// are left to the parser, which reports precise offsets.
func ValidateNewickText(text string) error {
	if strings.TrimSpace(text) == "" {
		return New(ErrCodeInvalidNewick, "input cannot be empty")
	}

	const maxLength = 10 << 20 // 10 MiB
	if len(text) > maxLength {
		return New(ErrCodeInvalidNewick, "input too large (max %d bytes)", maxLength)
	}

	for _, r := range text {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return New(ErrCodeInvalidNewick, "input contains control characters")
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
