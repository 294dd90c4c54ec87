package hooks_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cascade/core/inject"
	"github.com/dmitrymomot/cascade/core/pipeline"
	"github.com/dmitrymomot/cascade/core/response"
	"github.com/dmitrymomot/cascade/hooks"
)

func TestLogging_RequestAndResponse(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	h := hooks.Logging(log)

	s := inject.NewState()
	s.Set(pipeline.SlotRequest, httptest.NewRequest("GET", "/ping", nil))
	s.Set(pipeline.SlotResponse, response.Text("pong"))
	ctx := context.Background()

	require.NoError(t, h.OnRequest(ctx, s))
	require.NoError(t, h.OnResponse(ctx, s))

	out := buf.String()
	assert.Contains(t, out, "request started")
	assert.Contains(t, out, "request completed")
	assert.Contains(t, out, "method=GET")
	assert.Contains(t, out, "path=/ping")
	assert.Contains(t, out, "status=200")
	assert.Contains(t, out, "duration=")
}

func TestLogging_ErrorStatusesRaiseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{name: "success_logs_info", status: http.StatusOK, wantLevel: "level=INFO"},
		{name: "client_error_logs_warn", status: http.StatusNotFound, wantLevel: "level=WARN"},
		{name: "server_error_logs_error", status: http.StatusInternalServerError, wantLevel: "level=ERROR"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			h := hooks.Logging(slog.New(slog.NewTextHandler(&buf, nil)))

			s := inject.NewState()
			s.Set(pipeline.SlotRequest, httptest.NewRequest("GET", "/ping", nil))
			s.Set(pipeline.SlotResponse, &response.Response{StatusCode: tt.status})

			require.NoError(t, h.OnResponse(context.Background(), s))
			assert.Contains(t, buf.String(), tt.wantLevel)
		})
	}
}

func TestLogging_OnErrorReportsFailure(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := hooks.Logging(slog.New(slog.NewTextHandler(&buf, nil)))

	s := inject.NewState()
	s.Set(pipeline.SlotRequest, httptest.NewRequest("GET", "/broken", nil))
	s.Set(pipeline.SlotErr, errors.New("db down"))

	require.NoError(t, h.OnError(context.Background(), s))

	out := buf.String()
	assert.Contains(t, out, "request failed")
	assert.Contains(t, out, "db down")
}

func TestLogging_SkipSuppressesOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := hooks.LoggingWithConfig(hooks.LoggingConfig{
		Logger: slog.New(slog.NewTextHandler(&buf, nil)),
		Skip:   func(s *inject.State) bool { return true },
	})

	s := inject.NewState()
	s.Set(pipeline.SlotRequest, httptest.NewRequest("GET", "/health", nil))
	s.Set(pipeline.SlotResponse, response.Text("ok"))
	ctx := context.Background()

	require.NoError(t, h.OnRequest(ctx, s))
	require.NoError(t, h.OnResponse(ctx, s))

	assert.Empty(t, buf.String())
}
