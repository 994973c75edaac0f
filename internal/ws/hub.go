package ws

import (
	"context"
	"sync"
	"time"

	"github.com/coder/websocket"
)

// Hub fans labyrinth patches out to every connected viewer.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
	last    []byte
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]struct{})}
}

// Add registers conn and replays the most recent retained message to it.
func (h *Hub) Add(ctx context.Context, conn *websocket.Conn) error {
	h.mu.Lock()
	h.clients[conn] = struct{}{}
	last := h.last
	h.mu.Unlock()

	if last == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return conn.Write(ctx, websocket.MessageText, last)
}

func (h *Hub) Remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
}

func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Retain keeps message for replay to clients that connect later.
func (h *Hub) Retain(message []byte) {
	h.mu.Lock()
	h.last = message
	h.mu.Unlock()
}

// Broadcast writes message to every client, dropping any that fail.
func (h *Hub) Broadcast(message []byte) {
	h.mu.Lock()
	for conn := range h.clients {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		err := conn.Write(ctx, websocket.MessageText, message)
		cancel()
		if err != nil {
			_ = conn.Close(websocket.StatusNormalClosure, "")
			delete(h.clients, conn)
		}
	}
	h.mu.Unlock()
}
