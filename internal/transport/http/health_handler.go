package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// HealthHandler reports liveness plus a few cheap runtime facts
type HealthHandler struct {
	version     string
	startedAt   time.Time
	logger      *slog.Logger
	recordCount func() int
	clientCount func() int
}

// NewHealthHandler creates a health handler. recordCount and clientCount are
// sampled on every request.
func NewHealthHandler(version string, recordCount, clientCount func() int, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		version:     version,
		startedAt:   time.Now(),
		logger:      logger.With(slog.String("component", "health_handler")),
		recordCount: recordCount,
		clientCount: clientCount,
	}
}

// Routes returns the health routes
func (h *HealthHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))
	r.Get("/", h.Get)
	return r
}

// Get handles GET /api/health
func (h *HealthHandler) Get(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]interface{}{
		"status":            "healthy",
		"version":           h.version,
		"uptime_seconds":    int64(time.Since(h.startedAt).Seconds()),
		"record_count":      h.recordCount(),
		"websocket_clients": h.clientCount(),
		"timestamp":         time.Now().UTC().Format(time.RFC3339),
	})
}
