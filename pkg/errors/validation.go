package errors

import (
	"math"
	"strings"
	"unicode"
)

// ValidateDatasetName validates a dataset name for safety and correctness.
// Dataset names are used as file stems and cache key components, so they
// must not contain path separators or traversal sequences.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path separators or traversal sequences
//   - Maximum length of 128 characters
func ValidateDatasetName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidDataset, "dataset name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidDataset, "dataset name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidDataset, "dataset name contains invalid control characters")
		}
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidDataset, "dataset name cannot contain path separators")
	}
	if strings.Contains(name, "..") {
		return New(ErrCodeInvalidDataset, "dataset name cannot contain traversal sequences (..)")
	}
	if strings.HasPrefix(name, ".") {
		return New(ErrCodeInvalidDataset, "dataset name cannot be a hidden file")
	}

	return nil
}

// ValidateViewport checks that viewport dimensions are positive finite numbers.
// Non-finite or non-positive dimensions would produce NaN/Infinity geometry,
// so layout computation must fail up front.
func ValidateViewport(width, height float64) error {
	if math.IsNaN(width) || math.IsInf(width, 0) || math.IsNaN(height) || math.IsInf(height, 0) {
		return New(ErrCodeInvalidViewport, "viewport dimensions must be finite")
	}
	if width <= 0 || height <= 0 {
		return New(ErrCodeInvalidViewport, "viewport %gx%g is not drawable", width, height)
	}
	return nil
}

// ValidatePartyCode validates a party code (e.g., "DPP", "KMT", "IND").
// Codes are short ASCII identifiers used in cache keys and SVG element IDs.
func ValidatePartyCode(code string) error {
	if code == "" {
		return New(ErrCodeInvalidInput, "party code cannot be empty")
	}
	if len(code) > 16 {
		return New(ErrCodeInvalidInput, "party code too long (max 16 characters)")
	}
	for _, r := range code {
		if !unicode.IsUpper(r) && !unicode.IsDigit(r) {
			return New(ErrCodeInvalidInput, "invalid party code: %q (must be uppercase alphanumeric)", code)
		}
	}
	return nil
}
