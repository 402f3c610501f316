// Package stream pushes dashboard views to websocket subscribers.
package stream

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"go.uber.org/zap"
	"liyu1981.xyz/factory-monitor/pkg/common"
	"liyu1981.xyz/factory-monitor/pkg/models"
)

const (
	FrameTypeSnapshot = "snapshot"
	FrameTypeAlert    = "alert"
)

var ErrHubStopped = errors.New("websocket hub stopped")

// Frame is the envelope of every websocket message.
type Frame struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// Hub keeps the set of connected clients and fans broadcasts out to them.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	mu         sync.RWMutex
	logger     *zap.Logger
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		logger:     common.GetLoggerWith(common.LoggerNamePublisher, zap.String("publisher", "websocket")),
	}
}

// Run serves registrations and broadcasts until ctx ends, then drops every client.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			h.mu.Lock()
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.logger.Info("WebSocket client registered", zap.String("remote", client.remote))

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.logger.Info("WebSocket client unregistered", zap.String("remote", client.remote))
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// slow consumer, drop it rather than stall everyone
					h.logger.Warn("WebSocket client send buffer full, removing", zap.String("remote", client.remote))
					close(client.send)
					delete(h.clients, client)
				}
			}
			h.mu.Unlock()
		}
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func encodeFrame(frameType string, payload any) ([]byte, error) {
	return json.Marshal(Frame{Type: frameType, Payload: payload})
}

func (h *Hub) send(ctx context.Context, message []byte) error {
	select {
	case h.broadcast <- message:
		return nil
	case <-h.done:
		return ErrHubStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Publish broadcasts the view, then each displayed alert as its own frame.
func (h *Hub) Publish(ctx context.Context, view *models.DashboardView) error {
	message, err := encodeFrame(FrameTypeSnapshot, view)
	if err != nil {
		return err
	}
	if err := h.send(ctx, message); err != nil {
		return err
	}

	for _, alert := range view.Alerts {
		message, err := encodeFrame(FrameTypeAlert, alert)
		if err != nil {
			return err
		}
		if err := h.send(ctx, message); err != nil {
			return err
		}
	}
	return nil
}
