package ws

import (
	"encoding/json"
	"log"
	"sync"
)

// MessageType defines the type of WebSocket message
type MessageType string

const (
	// MsgSnapshot carries a whole-collection snapshot. Every change pushes a
	// full snapshot; clients replace their local copy rather than merging.
	MsgSnapshot MessageType = "snapshot"
	MsgError    MessageType = "error"
)

// Message is the WebSocket envelope format
type Message struct {
	Type       MessageType     `json:"type"`
	Collection string          `json:"collection,omitempty"`
	Payload    json.RawMessage `json:"payload"`
}

// Hub manages WebSocket subscriptions keyed by collection name. Delivery is
// at-least-once per connected client; ordering across clients is not
// guaranteed when other writers are active.
type Hub struct {
	// collection -> set of connections
	subscribers map[string]map[*Connection]struct{}

	mu sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *Message
}

// Connection represents one subscribed client
type Connection struct {
	Collection string
	UserID     string
	Send       chan []byte
	Hub        *Hub
}

// NewHub creates a new hub and starts its event loop
func NewHub() *Hub {
	h := &Hub{
		subscribers: make(map[string]map[*Connection]struct{}),
		register:    make(chan *Connection),
		unregister:  make(chan *Connection),
		broadcast:   make(chan *Message, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			if h.subscribers[conn.Collection] == nil {
				h.subscribers[conn.Collection] = make(map[*Connection]struct{})
			}
			h.subscribers[conn.Collection][conn] = struct{}{}
			h.mu.Unlock()
			log.Printf("client %s subscribed to %s", conn.UserID, conn.Collection)

		case conn := <-h.unregister:
			h.mu.Lock()
			if conns, ok := h.subscribers[conn.Collection]; ok {
				if _, ok := conns[conn]; ok {
					delete(conns, conn)
					close(conn.Send)
					log.Printf("client %s unsubscribed from %s", conn.UserID, conn.Collection)
				}
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			data, _ := json.Marshal(msg)
			for conn := range h.subscribers[msg.Collection] {
				select {
				case conn.Send <- data:
				default:
					// Slow consumer; drop rather than block the loop.
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a subscription
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a subscription
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// BroadcastSnapshot pushes a full-collection snapshot to every subscriber of
// that collection (implements service.Broadcaster).
func (h *Hub) BroadcastSnapshot(collection string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("snapshot marshal failed for %s: %v", collection, err)
		return
	}
	h.broadcast <- &Message{
		Type:       MsgSnapshot,
		Collection: collection,
		Payload:    data,
	}
}
