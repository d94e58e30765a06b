// Package schema declares, for every section tag, its value shape, default
// value and validation rules.
package schema

import (
	"fmt"
	"strings"
)

// FieldError is a single validation error at a specific field path, e.g.
// "experience[2].company".
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates field-level errors. It is recoverable and
// field-local: one failing field never blocks sibling sections.
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}
