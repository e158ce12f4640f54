package realtime

import (
	"encoding/json"
	"log"
	"sync"
)

// Emitter pushes an event to every open connection in a user's room.
// Delivery is best-effort and at-most-once: if the user is offline the
// event is dropped, and the persisted record remains the source of truth.
type Emitter interface {
	EmitToUser(userID uint, event string, payload interface{})
}

type envelope struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub tracks connected clients by the user id of the room they joined.
// It is constructed once in main and injected into everything that
// pushes events; there is no package-level instance.
type Hub struct {
	mu    sync.RWMutex
	rooms map[uint]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{rooms: make(map[uint]map[*Client]struct{})}
}

func (h *Hub) join(userID uint, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.rooms[userID] == nil {
		h.rooms[userID] = make(map[*Client]struct{})
	}
	h.rooms[userID][c] = struct{}{}
}

func (h *Hub) leave(userID uint, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if clients, ok := h.rooms[userID]; ok {
		delete(clients, c)
		if len(clients) == 0 {
			delete(h.rooms, userID)
		}
	}
}

// Connected reports whether the user has at least one open connection.
func (h *Hub) Connected(userID uint) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[userID]) > 0
}

// EmitToUser sends the event to every connection in the user's room.
// A connection whose send buffer is full is dropped rather than blocking
// the caller.
func (h *Hub) EmitToUser(userID uint, event string, payload interface{}) {
	data, err := json.Marshal(envelope{Event: event, Data: payload})
	if err != nil {
		log.Printf("realtime: marshal %s event: %v", event, err)
		return
	}

	h.mu.RLock()
	var slow []*Client
	for c := range h.rooms[userID] {
		select {
		case c.send <- data:
		default:
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	// close takes the write lock through leave, so it must run after the
	// read lock is released.
	for _, c := range slow {
		c.close()
	}
}
