package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laborcli/internal/shared/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	logger, _ := testutil.NewTestLogger(t)
	handler := NewHealthHandler("1.2.3",
		func() int { return 45 },
		func() int { return 2 },
		logger)

	r := chi.NewRouter()
	r.Mount("/api/health", handler.Routes())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "1.2.3", body["version"])
	assert.Equal(t, float64(45), body["record_count"])
	assert.Equal(t, float64(2), body["websocket_clients"])
	assert.NotEmpty(t, body["timestamp"])
}
