package push

import (
	"context"
	"sync"

	"github.com/gorilla/websocket"
)

// Hub fans one stream of messages out to every connected websocket client.
// Broadcast never blocks the producer: when the channel is full the message
// is dropped.
type Hub[T any] struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
	ch      chan T
}

func NewHub[T any]() *Hub[T] {
	return &Hub[T]{
		clients: map[*websocket.Conn]bool{},
		ch:      make(chan T, 16),
	}
}

func (h *Hub[T]) Run(ctx context.Context) {
	for {
		select {
		case msg := <-h.ch:
			h.mu.Lock()
			for conn := range h.clients {
				_ = conn.WriteJSON(msg)
			}
			h.mu.Unlock()
		case <-ctx.Done():
			return
		}
	}
}

func (h *Hub[T]) Broadcast(msg T) {
	select {
	case h.ch <- msg:
	default:
	}
}

func (h *Hub[T]) Add(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()
}

func (h *Hub[T]) Remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
}
