package entity

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for domain layer operations.
var (
	// ErrNotFound indicates that a requested entity was not found
	ErrNotFound = errors.New("entity not found")

	// ErrValidationFailed indicates that validation checks have failed.
	// Every *ValidationError matches it via errors.Is.
	ErrValidationFailed = errors.New("validation failed")
)

// Field error types reported to clients.
const (
	ErrTypeMissing          = "missing"
	ErrTypeGreaterThan      = "greater_than"
	ErrTypeIntParsing       = "int_parsing"
	ErrTypeStringType       = "string_type"
	ErrTypeURLType          = "url_type"
	ErrTypeURLParsing       = "url_parsing"
	ErrTypeURLScheme        = "url_scheme"
	ErrTypeURLTooLong       = "url_too_long"
	ErrTypeJSONInvalid      = "json_invalid"
	ErrTypeModelAttributes  = "model_attributes_type"
	msgFieldRequired        = "Field required"
	msgModelAttributesInput = "Input should be a valid dictionary or object to extract fields from"
)

// Location roots for FieldError.Loc.
const (
	LocBody = "body"
	LocPath = "path"
)

// FieldError describes a single violated constraint.
// Loc is the path to the offending value, e.g. ["body", "url"] or ["path", "id"].
type FieldError struct {
	Type  string         `json:"type"`
	Loc   []any          `json:"loc"`
	Msg   string         `json:"msg"`
	Input any            `json:"input"`
	Ctx   map[string]any `json:"ctx,omitempty"`
}

// ValidationError collects every field error found in one request.
type ValidationError struct {
	Errors []FieldError
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", joinLoc(fe.Loc), fe.Msg))
	}
	return fmt.Sprintf("validation error: %s", strings.Join(parts, "; "))
}

// Is reports whether target is ErrValidationFailed.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// Add appends a field error.
func (e *ValidationError) Add(fe FieldError) {
	e.Errors = append(e.Errors, fe)
}

// Merge appends every field error held by other.
func (e *ValidationError) Merge(other *ValidationError) {
	if other == nil {
		return
	}
	e.Errors = append(e.Errors, other.Errors...)
}

// OrNil returns e as an error when it holds at least one field error, nil otherwise.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Errors) == 0 {
		return nil
	}
	return e
}

// MissingField reports a required field absent from input.
func MissingField(input any, loc ...any) FieldError {
	return FieldError{Type: ErrTypeMissing, Loc: loc, Msg: msgFieldRequired, Input: input}
}

// NotAnObject reports a body that is not a JSON object.
func NotAnObject(input any) FieldError {
	return FieldError{Type: ErrTypeModelAttributes, Loc: []any{LocBody}, Msg: msgModelAttributesInput, Input: input}
}

// StringType reports a field that must be a string.
func StringType(input any, loc ...any) FieldError {
	return FieldError{Type: ErrTypeStringType, Loc: loc, Msg: "Input should be a valid string", Input: input}
}

func joinLoc(loc []any) string {
	parts := make([]string, 0, len(loc))
	for _, l := range loc {
		parts = append(parts, fmt.Sprint(l))
	}
	return strings.Join(parts, ".")
}
