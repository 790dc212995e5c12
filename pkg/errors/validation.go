package errors

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ParseValue parses the textual form of an ordinal value.
// Only base-10 integers are accepted; fractions, exponents and
// negative numbers are rejected with ErrCodeInvalidArgument.
func ParseValue(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, New(ErrCodeInvalidArgument, "value cannot be empty")
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, New(ErrCodeInvalidArgument, "value must be a non-negative integer, got %q", s)
	}
	if err := ValidateValue(n); err != nil {
		return 0, err
	}
	return n, nil
}

// ValidateValue checks that n is a natural number.
func ValidateValue(n int) error {
	if n < 0 {
		return New(ErrCodeInvalidArgument, "value must be non-negative, got %d", n)
	}
	return nil
}

// ValidateValueLimit checks n against an upper bound.
// Drawing n produces 2^n circles, so values past the limit are reported as
// resource exhaustion instead of being truncated. A limit <= 0 disables the check.
func ValidateValueLimit(n, limit int) error {
	if limit > 0 && n > limit {
		return New(ErrCodeResourceExhausted, "value %d exceeds limit %d (would draw %s circles)", n, limit, circleCountString(n))
	}
	return nil
}

func circleCountString(n int) string {
	if n < 63 {
		return strconv.FormatUint(uint64(1)<<uint(n), 10)
	}
	return "2^" + strconv.Itoa(n)
}

// ValidateRadius checks that r is a positive, finite length.
func ValidateRadius(r float64) error {
	if math.IsNaN(r) || math.IsInf(r, 0) || r <= 0 {
		return New(ErrCodeInvalidArgument, "radius must be positive and finite, got %v", r)
	}
	return nil
}

// ValidateOutputDir validates a directory path used for exported files.
//
// Validation rules:
//   - Empty means the current directory and is accepted
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidateOutputDir(dir string) error {
	const maxPathLength = 500
	if len(dir) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}
	for _, r := range dir {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid control characters")
		}
	}
	return nil
}
