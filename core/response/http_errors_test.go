package response_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cascade/core/response"
)

func TestHTTPError_Error(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Not Found", response.ErrNotFound.Error())
	assert.Equal(t, http.StatusNotFound, response.ErrNotFound.StatusCode())
	assert.Equal(t, "not_found", response.ErrNotFound.Code)
}

func TestHTTPError_WithMessage(t *testing.T) {
	t.Parallel()

	custom := response.ErrBadRequest.WithMessage("missing field")

	assert.Equal(t, "missing field", custom.Error())
	// The predefined value keeps its original message.
	assert.Equal(t, "Bad Request", response.ErrBadRequest.Message)
}

func TestHTTPError_WithDetails(t *testing.T) {
	t.Parallel()

	custom := response.ErrUnprocessableEntity.WithDetails(map[string]any{"field": "email"})

	assert.Equal(t, "email", custom.Details["field"])
	assert.Nil(t, response.ErrUnprocessableEntity.Details)
}

func TestHTTPError_WithError(t *testing.T) {
	t.Parallel()

	cause := errors.New("db down")
	custom := response.ErrInternalServerError.WithError(cause)

	assert.Equal(t, "db down", custom.Details["cause"])
	assert.Nil(t, response.ErrInternalServerError.Details)
}

func TestHTTPError_WithHeader(t *testing.T) {
	t.Parallel()

	custom := response.ErrTooManyRequests.
		WithHeader("Retry-After", "30").
		WithHeader("X-RateLimit-Remaining", "0")

	require.Len(t, custom.Headers, 2)
	assert.Equal(t, response.Header{Key: "Retry-After", Value: "30"}, custom.Headers[0])
	assert.Empty(t, response.ErrTooManyRequests.Headers)
}

func TestAsHTTPError(t *testing.T) {
	t.Parallel()

	t.Run("direct_value", func(t *testing.T) {
		t.Parallel()

		httpErr, ok := response.AsHTTPError(response.ErrForbidden)
		require.True(t, ok)
		assert.Equal(t, http.StatusForbidden, httpErr.Status)
	})

	t.Run("wrapped_value", func(t *testing.T) {
		t.Parallel()

		wrapped := fmt.Errorf("handler: %w", response.ErrConflict)
		httpErr, ok := response.AsHTTPError(wrapped)
		require.True(t, ok)
		assert.Equal(t, http.StatusConflict, httpErr.Status)
	})

	t.Run("plain_error", func(t *testing.T) {
		t.Parallel()

		_, ok := response.AsHTTPError(errors.New("plain"))
		assert.False(t, ok)
	})

	t.Run("nil_error", func(t *testing.T) {
		t.Parallel()

		_, ok := response.AsHTTPError(nil)
		assert.False(t, ok)
	})
}
