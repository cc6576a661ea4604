package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corpomate/cesimdash/internal/api/handler"
)

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(_ context.Context) error {
	return m.err
}

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name          string
		pinger        handler.DBPinger
		wantStatus    string
		wantConnected bool
	}{
		{name: "healthy", pinger: &mockPinger{}, wantStatus: "healthy", wantConnected: true},
		{name: "database down", pinger: &mockPinger{err: errors.New("dial tcp: refused")}, wantStatus: "degraded"},
		{name: "no database", pinger: nil, wantStatus: "degraded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			h := handler.NewHealthHandler(tt.pinger, "0.4.0")
			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			w := httptest.NewRecorder()

			// Act
			h.ServeHTTP(w, req)

			// Assert
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			env := parseEnvelope(t, w)
			data := env["data"].(map[string]interface{})
			assert.Equal(t, tt.wantStatus, data["status"])
			assert.Equal(t, "0.4.0", data["version"])
			assert.Equal(t, tt.wantConnected, data["database"].(map[string]interface{})["connected"])
			assert.Nil(t, env["error"])
		})
	}
}
