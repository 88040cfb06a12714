// Package websocket pushes refresh notifications to connected dashboards.
// The only interesting traffic is server→client: after a successful import
// the hub broadcasts a data:update message so every open dashboard reloads
// its derived views.
package websocket

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"laborcli/internal/infrastructure"
	"laborcli/pkg/contracts/events"
)

// Hub maintains the set of active clients and broadcasts messages to them
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client

	mu     sync.RWMutex
	logger *slog.Logger

	quit    chan struct{}
	running bool
}

// NewHub creates a new Hub instance
func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = infrastructure.GetLogger()
	}

	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 16),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		logger:     logger.With(slog.String("component", "websocket.hub")),
		quit:       make(chan struct{}),
	}
}

// Run processes register/unregister/broadcast events until Stop is called.
// Intended to run in its own goroutine.
func (h *Hub) Run() {
	h.mu.Lock()
	h.running = true
	h.mu.Unlock()

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			count := len(h.clients)
			h.mu.Unlock()
			h.logger.Info("client registered", slog.Int("clients", count))

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			count := len(h.clients)
			h.mu.Unlock()
			h.logger.Info("client unregistered", slog.Int("clients", count))

		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Slow client; drop it rather than block the hub
					delete(h.clients, client)
					close(client.send)
				}
			}
			h.mu.Unlock()

		case <-h.quit:
			h.mu.Lock()
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			h.running = false
			h.mu.Unlock()
			return
		}
	}
}

// Stop shuts the hub down and disconnects all clients
func (h *Hub) Stop() {
	h.mu.RLock()
	running := h.running
	h.mu.RUnlock()
	if running {
		close(h.quit)
	}
}

// drop hands a client back to the hub for unregistration. A stopped hub no
// longer services the unregister channel, so quit unblocks the caller and
// the pump goroutine cannot outlive shutdown.
func (h *Hub) drop(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.quit:
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// BroadcastDataUpdate tells every connected dashboard to reload its views.
func (h *Hub) BroadcastDataUpdate(ctx context.Context, recordCount int, source string) {
	msg := events.WebSocketMessage{
		ID:        infrastructure.GenerateTraceID(),
		Type:      events.MessageTypeDataUpdate,
		Action:    events.ActionRefresh,
		Timestamp: time.Now().UTC(),
		TraceID:   infrastructure.GetTraceID(ctx),
		Data: events.DataUpdate{
			RecordCount: recordCount,
			Source:      source,
		},
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to marshal broadcast", slog.String("error", err.Error()))
		return
	}

	select {
	case h.broadcast <- payload:
	default:
		h.logger.WarnContext(ctx, "broadcast channel full, dropping data update")
	}
}
