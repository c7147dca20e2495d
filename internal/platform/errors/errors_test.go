package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	err := ValidationError("Text must be at least 3 characters")

	assert.Equal(t, TypeValidation, err.Type)
	assert.Equal(t, "Text must be at least 3 characters", err.Message)
	assert.Nil(t, err.Cause)
	assert.NotNil(t, err.Context)
	assert.Equal(t, http.StatusBadRequest, err.HTTPStatus())
	assert.Contains(t, err.Error(), "validation")
}

func TestNotFoundError(t *testing.T) {
	err := NotFoundError("route not found")

	assert.Equal(t, TypeNotFound, err.Type)
	assert.Equal(t, http.StatusNotFound, err.HTTPStatus())
	assert.Contains(t, err.Error(), "not_found")
}

func TestRateLimitedError(t *testing.T) {
	err := RateLimitedError("rate limit exceeded")

	assert.Equal(t, TypeRateLimited, err.Type)
	assert.Equal(t, http.StatusTooManyRequests, err.HTTPStatus())
}

func TestInternalError(t *testing.T) {
	cause := fmt.Errorf("scorer exploded")
	err := InternalError("failed to analyze text", cause)

	assert.Equal(t, TypeInternal, err.Type)
	assert.Equal(t, cause, err.Cause)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPStatus())
	assert.Contains(t, err.Error(), "failed to analyze text")
	assert.Contains(t, err.Error(), "scorer exploded")
}

func TestInternalErrorWithoutCause(t *testing.T) {
	err := InternalError("something went wrong", nil)

	assert.Nil(t, err.Cause)
	assert.NotContains(t, err.Error(), "<nil>")
}

func TestWithField(t *testing.T) {
	err := ValidationError("too short").
		WithField("field", "iphone_review").
		WithField("min_length", 3)

	assert.Equal(t, "iphone_review", err.Context["field"])
	assert.Equal(t, 3, err.Context["min_length"])

	var bare Error
	bare.WithField("k", "v")
	assert.Equal(t, "v", bare.Context["k"])
}

func TestToResponse(t *testing.T) {
	resp := ValidationError("bad").WithField("field", "text").ToResponse()

	assert.Equal(t, "bad", resp.Error)
	assert.Equal(t, TypeValidation, resp.Type)
	assert.Equal(t, map[string]any{"field": "text"}, resp.Context)
}

func TestUnwrap(t *testing.T) {
	sentinel := errors.New("sentinel")
	err := InternalError("wrapped", sentinel)

	assert.True(t, errors.Is(err, sentinel))
}

func TestAsStructuredError(t *testing.T) {
	assert.Nil(t, AsStructuredError(nil))

	original := ValidationError("bad input")
	wrapped := fmt.Errorf("handler: %w", original)
	got := AsStructuredError(wrapped)
	require.NotNil(t, got)
	assert.Same(t, original, got)

	plain := errors.New("boom")
	got = AsStructuredError(plain)
	assert.Equal(t, TypeInternal, got.Type)
	assert.Equal(t, "internal server error", got.Message)
	assert.Equal(t, plain, got.Cause)
}
