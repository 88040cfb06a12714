package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laborcli/internal/config"
	apierrors "laborcli/internal/errors"
	"laborcli/internal/services"
	"laborcli/internal/shared/testutil"
	v1 "laborcli/pkg/contracts/api/v1"
	"laborcli/pkg/contracts/domain"
)

// stubDataService is a canned-response DataServiceInterface implementation
type stubDataService struct {
	importCount    int
	importErr      error
	importedName   string
	importedBytes  []byte
	records        []domain.LaborRecord
	recordsQuery   v1.RecordsQuery
	timeSeries     []domain.TimeSeriesPoint
	geographies    []string
	summaries      []domain.GeographySummary
	summary        domain.SummaryMetrics
	exportErr      error
	exportedFormat string
}

func (s *stubDataService) Import(_ context.Context, filename string, content []byte) (int, error) {
	s.importedName = filename
	s.importedBytes = content
	return s.importCount, s.importErr
}

func (s *stubDataService) Records(_ context.Context, query v1.RecordsQuery) []domain.LaborRecord {
	s.recordsQuery = query
	return s.records
}

func (s *stubDataService) TimeSeries(_ context.Context) []domain.TimeSeriesPoint {
	return s.timeSeries
}

func (s *stubDataService) GeographySummaries(_ context.Context) []domain.GeographySummary {
	return s.summaries
}

func (s *stubDataService) Summary(_ context.Context) domain.SummaryMetrics {
	return s.summary
}

func (s *stubDataService) Geographies(_ context.Context) []string {
	return s.geographies
}

func (s *stubDataService) Export(_ context.Context, format string, w io.Writer) error {
	s.exportedFormat = format
	if s.exportErr != nil {
		return s.exportErr
	}
	_, err := w.Write([]byte("exported"))
	return err
}

func newTestRouter(t *testing.T, svc DataServiceInterface) chi.Router {
	t.Helper()
	logger, _ := testutil.NewTestLogger(t)
	upload := config.Default().Upload
	handler := NewDataHandler(svc, upload, logger, apierrors.NewErrorHandler(logger, false))

	r := chi.NewRouter()
	r.Mount("/api/data", handler.Routes())
	return r
}

func multipartBody(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestImportSuccess(t *testing.T) {
	svc := &stubDataService{importCount: 7}
	router := newTestRouter(t, svc)

	content := testutil.CSV(
		[]string{"date", "unemployment_rate"},
		[]string{"2024-01", "5.2"},
	)
	body, contentType := multipartBody(t, "labor.csv", content)

	req := httptest.NewRequest(http.MethodPost, "/api/data/import", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp v1.ImportResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, 7, resp.RecordCount)
	assert.Equal(t, "labor.csv", resp.Filename)

	assert.Equal(t, "labor.csv", svc.importedName)
	assert.Equal(t, content, svc.importedBytes)
}

func TestImportMissingFile(t *testing.T) {
	router := newTestRouter(t, &stubDataService{})

	req := httptest.NewRequest(http.MethodPost, "/api/data/import", bytes.NewReader(nil))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=x")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), apierrors.TypeValidation)
}

func TestImportRejectsExtension(t *testing.T) {
	svc := &stubDataService{}
	router := newTestRouter(t, svc)

	body, contentType := multipartBody(t, "report.pdf", []byte("data"))
	req := httptest.NewRequest(http.MethodPost, "/api/data/import", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	assert.Empty(t, svc.importedName, "service must not be called")
}

func TestImportRejectsMismatchedContent(t *testing.T) {
	// A csv named .xlsx without the zip signature fails the content check
	svc := &stubDataService{}
	router := newTestRouter(t, svc)

	body, contentType := multipartBody(t, "data.xlsx", []byte("date,rate\n2024-01,5\n"))
	req := httptest.NewRequest(http.MethodPost, "/api/data/import", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	assert.Empty(t, svc.importedName)
}

func TestImportIngestFailureRendersProblem(t *testing.T) {
	svc := &stubDataService{importErr: apierrors.NewNoValidRowsError()}
	router := newTestRouter(t, svc)

	body, contentType := multipartBody(t, "labor.csv", []byte("date,rate\n2024-01,0\n"))
	req := httptest.NewRequest(http.MethodPost, "/api/data/import", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), apierrors.TypeIngestNoValidRows)
}

func TestGetRecords(t *testing.T) {
	svc := &stubDataService{records: []domain.LaborRecord{testutil.Record()}}
	router := newTestRouter(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/api/data/records?geography=Delhi&from=2023-01&to=2024-01", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, v1.RecordsQuery{Geography: "Delhi", From: "2023-01", To: "2024-01"}, svc.recordsQuery)

	var resp struct {
		Status string               `json:"status"`
		Data   []domain.LaborRecord `json:"data"`
		Count  int                  `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, 1, resp.Count)
}

func TestGetRecordsRejectsBadDateFilter(t *testing.T) {
	router := newTestRouter(t, &stubDataService{})

	req := httptest.NewRequest(http.MethodGet, "/api/data/records?from=January+2024", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), apierrors.TypeValidation)
}

func TestReadEndpoints(t *testing.T) {
	svc := &stubDataService{
		timeSeries:  []domain.TimeSeriesPoint{{Date: "2024-01", OverallRate: 5}},
		geographies: []string{"Delhi", "Mumbai"},
		summaries:   []domain.GeographySummary{{Geography: "Delhi", AvgRate: 5}},
		summary:     domain.SummaryMetrics{TotalDataPoints: 45},
	}
	router := newTestRouter(t, svc)

	tests := []struct {
		path string
		want string
	}{
		{path: "/api/data/timeseries", want: "2024-01"},
		{path: "/api/data/geographies", want: "Mumbai"},
		{path: "/api/data/geographies/summary", want: "Delhi"},
		{path: "/api/data/summary", want: "45"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.want)
		})
	}
}

func TestExportCSV(t *testing.T) {
	svc := &stubDataService{}
	router := newTestRouter(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/api/data/export/csv", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "csv", svc.exportedFormat)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	assert.Equal(t, "exported", rec.Body.String())
}

func TestExportXLSXContentType(t *testing.T) {
	svc := &stubDataService{}
	router := newTestRouter(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/api/data/export/xlsx", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		rec.Header().Get("Content-Type"))
}

func TestExportUnsupportedFormat(t *testing.T) {
	svc := &stubDataService{exportErr: services.ErrUnsupportedExportFormat}
	router := newTestRouter(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/api/data/export/pdf", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "pdf")
}
