package errors

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laborcli/internal/shared/testutil"
)

func newTestHandler(t *testing.T) *ErrorHandler {
	t.Helper()
	logger, _ := testutil.NewTestLogger(t)
	return NewErrorHandler(logger, false)
}

func decodeProblem(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHandleErrorIngest(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantType string
	}{
		{name: "parse", err: NewParseError([]string{"bad"}), wantType: TypeIngestParse},
		{name: "empty", err: NewEmptyFileError(), wantType: TypeIngestEmptyFile},
		{name: "missing column", err: NewMissingColumnError([]string{"state"}), wantType: TypeIngestMissingColumn},
		{name: "no rate", err: NewNoRateDataError(), wantType: TypeIngestNoRateData},
		{name: "no rows", err: NewNoValidRowsError(), wantType: TypeIngestNoValidRows},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t)
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/data/import", nil)

			h.HandleError(rec, req, tt.err)

			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

			body := decodeProblem(t, rec)
			assert.Equal(t, tt.wantType, body["type"])
			assert.Equal(t, "/api/data/import", body["instance"])
			assert.NotEmpty(t, body["error_code"])
		})
	}
}

func TestHandleErrorAPIError(t *testing.T) {
	h := newTestHandler(t)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/data/import", nil)

	h.HandleError(rec, req, ErrPayloadTooLarge)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	body := decodeProblem(t, rec)
	assert.Equal(t, TypePayloadTooLarge, body["type"])
	assert.Equal(t, "PAYLOAD_TOO_LARGE", body["error_code"])
}

func TestHandleErrorValidationDetails(t *testing.T) {
	h := newTestHandler(t)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/data/records", nil)

	h.HandleError(rec, req, ErrValidation("from", "must be YYYY-MM"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeProblem(t, rec)
	assert.Equal(t, TypeValidation, body["type"])
	assert.NotNil(t, body["details"])
}

func TestHandleErrorContextCancelled(t *testing.T) {
	h := newTestHandler(t)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/data/records", nil)

	h.HandleError(rec, req, context.DeadlineExceeded)

	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
	body := decodeProblem(t, rec)
	assert.Equal(t, TypeTimeout, body["type"])
}

func TestHandleErrorUnknownError(t *testing.T) {
	h := newTestHandler(t)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/data/records", nil)

	h.HandleError(rec, req, assert.AnError)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeProblem(t, rec)
	assert.Equal(t, TypeInternal, body["type"])
	// Internals never leak the raw error message
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}

func TestHandleErrorNil(t *testing.T) {
	h := newTestHandler(t)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	h.HandleError(rec, req, nil)

	assert.Empty(t, rec.Body.String())
}

func TestNotFoundAndMethodNotAllowed(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.NotFound(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, TypeNotFound, decodeProblem(t, rec)["type"])

	rec = httptest.NewRecorder()
	h.MethodNotAllowed(rec, httptest.NewRequest(http.MethodDelete, "/api/data/records", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestIncludeStackExtension(t *testing.T) {
	logger, _ := testutil.NewTestLogger(t)
	h := NewErrorHandler(logger, true)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	h.HandleError(rec, req, assert.AnError)

	body := decodeProblem(t, rec)
	assert.NotEmpty(t, body["stack"])
}

func TestProblemDetailsMarshalIncludesExtensions(t *testing.T) {
	pd := NewProblemDetails(422, TypeIngestEmptyFile, "File Is Empty", "no rows", "/api/data/import").
		WithExtension("error_code", "EMPTY_FILE")

	raw, err := json.Marshal(pd)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "EMPTY_FILE", body["error_code"])
	assert.Equal(t, float64(422), body["status"])
}
