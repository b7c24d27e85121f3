package entity

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		errs     []FieldError
		expected string
	}{
		{
			name:     "single missing field",
			errs:     []FieldError{MissingField(map[string]any{}, LocBody, "url")},
			expected: "validation error: body.url: Field required",
		},
		{
			name: "multiple fields",
			errs: []FieldError{
				MissingField(map[string]any{}, LocBody, "url"),
				MissingField(map[string]any{}, LocBody, "summary"),
			},
			expected: "validation error: body.url: Field required; body.summary: Field required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &ValidationError{Errors: tt.errs}
			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestValidationError_IsValidationFailed(t *testing.T) {
	var err error = &ValidationError{Errors: []FieldError{StringType(1, LocBody, "summary")}}
	wrapped := fmt.Errorf("update summary: %w", err)

	assert.True(t, errors.Is(wrapped, ErrValidationFailed))
	assert.False(t, errors.Is(wrapped, ErrNotFound))

	var ve *ValidationError
	require.True(t, errors.As(wrapped, &ve))
	assert.Len(t, ve.Errors, 1)
}

func TestValidationError_OrNil(t *testing.T) {
	var empty ValidationError
	assert.NoError(t, empty.OrNil())

	var nilErr *ValidationError
	assert.NoError(t, nilErr.OrNil())

	empty.Add(NotAnObject("[]"))
	assert.Error(t, empty.OrNil())
}

func TestValidationError_Merge(t *testing.T) {
	path := &ValidationError{}
	path.Add(FieldError{Type: ErrTypeGreaterThan, Loc: []any{LocPath, "id"}})

	body := &ValidationError{}
	body.Add(MissingField(map[string]any{}, LocBody, "url"))

	path.Merge(body)
	path.Merge(nil)

	require.Len(t, path.Errors, 2)
	assert.Equal(t, ErrTypeGreaterThan, path.Errors[0].Type)
	assert.Equal(t, ErrTypeMissing, path.Errors[1].Type)
}
