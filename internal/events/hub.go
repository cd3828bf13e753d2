package events

import (
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
)

// GalleryUpdated is broadcast after any successful gallery mutation so open
// views re-fetch. Views may also poll on a fixed interval to tolerate missed
// notifications; the broadcast is a liveness optimization, not a correctness
// guarantee.
const GalleryUpdated = "gallery-updated"

type message struct {
	Event string `json:"event"`
}

// Hub fans a same-process signal out to every connected gallery view.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]bool)}
}

// Broadcast pushes an event to every connected client. Dead connections are
// dropped on write failure.
func (h *Hub) Broadcast(event string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		if err := conn.WriteJSON(message{Event: event}); err != nil {
			log.Printf("Dropping gallery subscriber: %v", err)
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

// Handler returns the websocket handler that keeps a connection subscribed
// until the client goes away.
func (h *Hub) Handler() func(*websocket.Conn) {
	return func(conn *websocket.Conn) {
		h.mu.Lock()
		h.clients[conn] = true
		h.mu.Unlock()

		defer func() {
			h.mu.Lock()
			delete(h.clients, conn)
			h.mu.Unlock()
			conn.Close()
		}()

		// Drain the connection; clients only listen.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}
}
