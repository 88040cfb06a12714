// Package events contains the event contract definitions for WebSocket
// communication between the Labor Pulse backend and the dashboard frontend.
package events

import (
	"time"
)

// MessageType defines the type of WebSocket message
type MessageType string

const (
	// MessageTypeDataUpdate tells the dashboard to reload its derived views
	MessageTypeDataUpdate MessageType = "data:update"

	// Connection messages
	MessageTypeConnect    MessageType = "connect"
	MessageTypeDisconnect MessageType = "disconnect"
	MessageTypeError      MessageType = "error"
)

// ActionRefresh is the data:update action emitted after a successful import
const ActionRefresh = "refresh"

// WebSocketMessage represents a complete WebSocket message
type WebSocketMessage struct {
	ID        string      `json:"id,omitempty"`
	Type      MessageType `json:"type"`
	Action    string      `json:"action,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	TraceID   string      `json:"trace_id,omitempty"`
	Data      interface{} `json:"data,omitempty"`
}

// DataUpdate is the payload of a data:update message
type DataUpdate struct {
	RecordCount int    `json:"record_count"`
	Source      string `json:"source,omitempty"`
}
