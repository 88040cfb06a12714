package http

import (
	"log/slog"
	"net/http"

	ws "laborcli/internal/websocket"
)

// WebSocketHandler upgrades /ws connections and hands them to the hub
type WebSocketHandler struct {
	hub    *ws.Hub
	logger *slog.Logger
}

// NewWebSocketHandler creates a websocket handler bound to hub
func NewWebSocketHandler(hub *ws.Hub, logger *slog.Logger) *WebSocketHandler {
	return &WebSocketHandler{
		hub:    hub,
		logger: logger.With(slog.String("component", "websocket_handler")),
	}
}

// ServeHTTP handles GET /ws
func (h *WebSocketHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrader already wrote the HTTP error response
		h.logger.WarnContext(r.Context(), "websocket upgrade failed",
			slog.String("remote", r.RemoteAddr),
			slog.String("error", err.Error()))
		return
	}
	ws.ServeWS(h.hub, conn)
}
