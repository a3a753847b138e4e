package validation

import (
	"strings"
)

// Validator provides common validation utilities
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// IsPresent reports whether s has any non-whitespace content
func (v *Validator) IsPresent(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidID checks if an ID is valid (positive)
func (v *Validator) IsValidID(id int64) bool {
	return id > 0
}
