package http

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"laborcli/internal/config"
	apierrors "laborcli/internal/errors"
	"laborcli/internal/services"
	"laborcli/internal/validation"
	v1 "laborcli/pkg/contracts/api/v1"
)

// uploadFieldName is the multipart form field carrying the data file
const uploadFieldName = "file"

// DataHandler handles data-related HTTP requests with RFC 7807 compliance
type DataHandler struct {
	service      DataServiceInterface
	upload       config.UploadConfig
	uploads      *validation.UploadValidator
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
	validate     *validator.Validate
}

// NewDataHandler creates a new data handler with RFC 7807 error handling
func NewDataHandler(service DataServiceInterface, upload config.UploadConfig, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *DataHandler {
	return &DataHandler{
		service:      service,
		upload:       upload,
		uploads:      validation.NewUploadValidator(upload, logger),
		logger:       logger.With(slog.String("component", "data_handler")),
		errorHandler: errorHandler,
		validate:     validator.New(),
	}
}

// Routes returns the data routes with proper Chi patterns
func (h *DataHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))

		r.Post("/import", h.Import)

		r.Get("/records", h.GetRecords)
		r.Get("/timeseries", h.GetTimeSeries)
		r.Get("/geographies", h.GetGeographies)
		r.Get("/geographies/summary", h.GetGeographySummaries)
		r.Get("/summary", h.GetSummary)
	})

	// Export streams a file; content type is set per format
	r.Get("/export/{format}", h.Export)

	return r
}

// Import handles POST /api/data/import. The uploaded file replaces the
// current record set wholesale when ingestion succeeds; any pipeline
// failure leaves the previous data intact and renders a typed problem
// document.
func (h *DataHandler) Import(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Hard cap the body before multipart parsing touches it
	r.Body = http.MaxBytesReader(w, r.Body, h.upload.MaxSizeBytes)

	file, header, err := r.FormFile(uploadFieldName)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.errorHandler.HandleError(w, r, apierrors.ErrPayloadTooLarge)
			return
		}
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation(uploadFieldName, "A data file is required"))
		return
	}
	defer file.Close()

	if err := h.uploads.ValidateFilename(header.Filename); err != nil {
		h.errorHandler.HandleError(w, r, apierrors.NewWithDetails(
			http.StatusUnsupportedMediaType,
			"UNSUPPORTED_FILE_TYPE",
			"Uploaded file type is not supported",
			err.Error(),
		))
		return
	}

	if err := h.uploads.ValidateSize(header.Size); err != nil {
		h.errorHandler.HandleError(w, r, apierrors.ErrPayloadTooLarge)
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.errorHandler.HandleError(w, r, apierrors.ErrPayloadTooLarge)
			return
		}
		h.logger.ErrorContext(ctx, "failed to read upload",
			slog.String("filename", header.Filename),
			slog.String("error", err.Error()))
		h.errorHandler.HandleError(w, r, apierrors.ErrInternalServer)
		return
	}

	if err := h.uploads.ValidateContent(header.Filename, content); err != nil {
		h.errorHandler.HandleError(w, r, apierrors.NewWithDetails(
			http.StatusUnsupportedMediaType,
			"UNSUPPORTED_FILE_TYPE",
			"Uploaded file content does not match its extension",
			err.Error(),
		))
		return
	}

	count, err := h.service.Import(ctx, header.Filename, content)
	if err != nil {
		// Typed ingest errors carry their own problem mapping
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, v1.ImportResponse{
		Status:      "success",
		RecordCount: count,
		Filename:    header.Filename,
	})
}

// GetRecords handles GET /api/data/records with optional geography and
// YYYY-MM date-range filters.
func (h *DataHandler) GetRecords(w http.ResponseWriter, r *http.Request) {
	query := v1.RecordsQuery{
		Geography: r.URL.Query().Get("geography"),
		From:      r.URL.Query().Get("from"),
		To:        r.URL.Query().Get("to"),
	}

	if err := h.validate.Struct(query); err != nil {
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("from/to", "Date filters must use the YYYY-MM format"))
		return
	}

	records := h.service.Records(r.Context(), query)

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   records,
		"count":  len(records),
	})
}

// GetTimeSeries handles GET /api/data/timeseries
func (h *DataHandler) GetTimeSeries(w http.ResponseWriter, r *http.Request) {
	points := h.service.TimeSeries(r.Context())

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   points,
		"count":  len(points),
	})
}

// GetGeographies handles GET /api/data/geographies
func (h *DataHandler) GetGeographies(w http.ResponseWriter, r *http.Request) {
	geographies := h.service.Geographies(r.Context())

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   geographies,
		"count":  len(geographies),
	})
}

// GetGeographySummaries handles GET /api/data/geographies/summary
func (h *DataHandler) GetGeographySummaries(w http.ResponseWriter, r *http.Request) {
	summaries := h.service.GeographySummaries(r.Context())

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   summaries,
		"count":  len(summaries),
	})
}

// GetSummary handles GET /api/data/summary
func (h *DataHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary := h.service.Summary(r.Context())

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   summary,
	})
}

// Export handles GET /api/data/export/{format}. The report is rendered into
// a buffer first so a mid-stream failure can still produce a problem
// document instead of a truncated download.
func (h *DataHandler) Export(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")

	var buf bytes.Buffer
	if err := h.service.Export(r.Context(), format, &buf); err != nil {
		if errors.Is(err, services.ErrUnsupportedExportFormat) {
			h.errorHandler.HandleError(w, r, apierrors.ErrValidation("format",
				fmt.Sprintf("Unsupported export format %q, expected csv or xlsx", format)))
			return
		}
		h.logger.ErrorContext(r.Context(), "export failed",
			slog.String("format", format),
			slog.String("error", err.Error()))
		h.errorHandler.HandleError(w, r, apierrors.ErrInternalServer)
		return
	}

	filename := fmt.Sprintf("labor-data-%s.%s", time.Now().Format("2006-01-02"), format)
	contentType := "text/csv"
	if format == v1.ExportFormatXLSX {
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
