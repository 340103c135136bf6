package validation

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// DefaultMaxDataLength bounds a task description when no limit is configured.
const DefaultMaxDataLength = 1024

// Validator provides the low-level checks used by TaskValidator.
type Validator struct {
	maxDataLength int
}

// NewValidator creates a validator; a non-positive limit selects the default.
func NewValidator(maxDataLength int) *Validator {
	if maxDataLength <= 0 {
		maxDataLength = DefaultMaxDataLength
	}
	return &Validator{maxDataLength: maxDataLength}
}

// MaxDataLength returns the configured description limit in characters.
func (v *Validator) MaxDataLength() int {
	return v.maxDataLength
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsWithinMaxLength counts characters, not bytes.
func (v *Validator) IsWithinMaxLength(s string) bool {
	return utf8.RuneCountInString(s) <= v.maxDataLength
}

// HasLineBreak reports whether s would split a record line.
func (v *Validator) HasLineBreak(s string) bool {
	return strings.ContainsAny(s, "\r\n")
}

// ParsePositiveInt parses s as a base-10 integer greater than zero.
func (v *Validator) ParsePositiveInt(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
