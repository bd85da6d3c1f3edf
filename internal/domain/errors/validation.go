package errors

import "strings"

// ValidationError carries per-field messages, rendered at the HTTP boundary
// as {"field": ["message", ...]}.
type ValidationError struct {
	Fields map[string][]string
}

// NewValidationError builds a single-field validation error.
func NewValidationError(field string, messages ...string) *ValidationError {
	return &ValidationError{Fields: map[string][]string{field: messages}}
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("validation failed:")
	for field, msgs := range e.Fields {
		b.WriteString(" " + field + ": " + strings.Join(msgs, "; "))
	}
	return b.String()
}
