// Package stream pushes the game state view to browser clients over
// WebSocket once per second, the UI's refresh cadence. It runs on its own
// listener, separate from the JSON API.
package stream

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"
)

// Hub maintains the set of connected clients and fans state frames out to
// them.
type Hub struct {
	clients    map[*client]bool
	broadcast  chan []byte
	register   chan *client
	unregister chan *client
	mu         sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*client]bool),
		broadcast:  make(chan []byte),
		register:   make(chan *client),
		unregister: make(chan *client),
	}
}

// Run handles registration and broadcast until ctx is done.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = true
			h.mu.Unlock()
		case c := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
			h.mu.Unlock()
		case frame := <-h.broadcast:
			h.mu.Lock()
			for c := range h.clients {
				select {
				case c.send <- frame:
				default:
					close(c.send)
					delete(h.clients, c)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast serializes payload and queues it for every client.
func (h *Hub) Broadcast(payload any) {
	frame, err := json.Marshal(payload)
	if err != nil {
		log.Printf("stream: marshal state frame: %v", err)
		return
	}
	h.broadcast <- frame
}

// StartStatePusher broadcasts view() at the given interval until ctx is
// done.
func (h *Hub) StartStatePusher(ctx context.Context, interval time.Duration, view func() any) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				h.Broadcast(view())
			}
		}
	}()
}
