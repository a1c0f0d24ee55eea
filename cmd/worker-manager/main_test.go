// cmd/worker-manager/main_test.go

package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// ==========================
// Retry
// ==========================

func TestRetryWithBackoff_SucceedsAfterFailures(t *testing.T) {
	calls := 0
	err := retryWithBackoff(func() error {
		calls++
		if calls < 3 {
			return errors.New("not yet")
		}
		return nil
	}, 5, time.Millisecond, zaptest.NewLogger(t), "test operation")

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetryWithBackoff_GivesUp(t *testing.T) {
	calls := 0
	err := retryWithBackoff(func() error {
		calls++
		return errors.New("down")
	}, 3, time.Millisecond, zaptest.NewLogger(t), "test operation")

	require.Error(t, err)
	assert.Equal(t, 3, calls)
	assert.Contains(t, err.Error(), "test operation failed after 3 attempts")
	assert.Contains(t, err.Error(), "down")
}

// ==========================
// Status endpoints
// ==========================

func TestStatusMux_Health(t *testing.T) {
	mux := newStatusMux(nil)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestStatusMux_Ready(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	tests := []struct {
		name       string
		checks     map[string]func(context.Context) error
		wantCode   int
		wantStatus string
		wantFailed []string
	}{
		{
			name:       "all checks pass",
			checks:     map[string]func(context.Context) error{"postgres": ok, "redis": ok},
			wantCode:   http.StatusOK,
			wantStatus: "ready",
		},
		{
			name:       "one dependency down",
			checks:     map[string]func(context.Context) error{"postgres": ok, "redis": down},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "not_ready",
			wantFailed: []string{"redis"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := newStatusMux(tt.checks)

			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

			assert.Equal(t, tt.wantCode, rec.Code)

			var body struct {
				Status string            `json:"status"`
				Failed map[string]string `json:"failed"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantStatus, body.Status)
			for _, name := range tt.wantFailed {
				assert.Contains(t, body.Failed, name)
			}
			if len(tt.wantFailed) == 0 {
				assert.Empty(t, body.Failed)
			}
		})
	}
}

func TestStatusMux_Metrics(t *testing.T) {
	mux := newStatusMux(nil)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
