package domain

import "strings"

const (
	ErrNotFound          = errString("not found")
	ErrConflict          = errString("conflict")
	ErrInvalidTransition = errString("invalid transition")
	ErrForbidden         = errString("forbidden")
	ErrUnauthenticated   = errString("unauthenticated")
)

type errString string

func (e errString) Error() string { return string(e) }

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError reports malformed input. It is recoverable by the caller
// and rendered as a form error.
type ValidationError struct {
	Fields []FieldError
}

func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: msg}}}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// TransitionError carries the state a rejected transition was attempted from.
type TransitionError struct {
	CaseID string
	From   Status
	To     Status
}

func (e *TransitionError) Error() string {
	return "case " + e.CaseID + ": cannot move from " + string(e.From) + " to " + string(e.To)
}

func (e *TransitionError) Is(target error) bool { return target == ErrInvalidTransition }
