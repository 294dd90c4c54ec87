package response_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cascade/core/response"
)

func TestResponse_StatusDefaultsToOK(t *testing.T) {
	t.Parallel()

	resp := &response.Response{}
	assert.Equal(t, http.StatusOK, resp.Status())

	resp.StatusCode = http.StatusTeapot
	assert.Equal(t, http.StatusTeapot, resp.Status())
}

func TestResponse_AddHeaderKeepsDuplicates(t *testing.T) {
	t.Parallel()

	resp := &response.Response{}
	resp.AddHeader("Set-Cookie", "a=1")
	resp.AddHeader("Set-Cookie", "b=2")

	require.Len(t, resp.Headers, 2)
	assert.Equal(t, response.Header{Key: "Set-Cookie", Value: "a=1"}, resp.Headers[0])
	assert.Equal(t, response.Header{Key: "Set-Cookie", Value: "b=2"}, resp.Headers[1])
}

func TestText(t *testing.T) {
	t.Parallel()

	resp := response.Text("hello")
	assert.Equal(t, http.StatusOK, resp.Status())
	assert.Equal(t, "text/plain; charset=utf-8", resp.ContentType)
	assert.Equal(t, "hello", string(resp.Content))
}

func TestHTML(t *testing.T) {
	t.Parallel()

	resp := response.HTML("<h1>hi</h1>")
	assert.Equal(t, http.StatusOK, resp.Status())
	assert.Equal(t, "text/html; charset=utf-8", resp.ContentType)
	assert.Equal(t, "<h1>hi</h1>", string(resp.Content))

	resp = response.HTMLWithStatus("gone", http.StatusGone)
	assert.Equal(t, http.StatusGone, resp.Status())
}

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("encodes_value", func(t *testing.T) {
		t.Parallel()

		resp, err := response.JSON(map[string]bool{"ok": true})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.Status())
		assert.Equal(t, "application/json; charset=utf-8", resp.ContentType)
		assert.JSONEq(t, `{"ok":true}`, string(resp.Content))
	})

	t.Run("custom_status", func(t *testing.T) {
		t.Parallel()

		resp, err := response.JSONWithStatus([]int{1, 2}, http.StatusCreated)
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.Status())
	})

	t.Run("encode_failure_propagates", func(t *testing.T) {
		t.Parallel()

		_, err := response.JSON(func() {})
		require.Error(t, err)
	})
}
