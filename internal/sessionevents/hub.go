// internal/sessionevents/hub.go
package sessionevents

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Event types pushed to connected tabs.
const (
	EventConnected      = "session:connected"
	EventSessionRevoked = "session:revoked"
	EventProfileUpdated = "profile:updated"
)

// Event is the wire shape of a session signal.
type Event struct {
	Type string                 `json:"type"`
	Data map[string]interface{} `json:"data,omitempty"`
}

// Hub fans session events out to every open tab of a user. This is a
// best-effort, eventually-consistent signal: a tab without a live connection
// keeps its stale view until its next session query. Nothing here is a
// synchronization primitive.
type Hub struct {
	clients map[string]map[*Client]bool
	mu      sync.RWMutex

	register   chan *Client
	unregister chan *Client
	events     chan targetedEvent

	logger *zap.Logger
}

type targetedEvent struct {
	userName string
	event    Event
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		events:     make(chan targetedEvent, 256),
		logger:     logger,
	}
}

func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.shutdown()
			return

		case client := <-h.register:
			h.addClient(client)

		case client := <-h.unregister:
			h.removeClient(client)

		case te := <-h.events:
			h.deliver(te)
		}
	}
}

// NotifySessionRevoked tells every open tab of userName that the session is
// gone so it can re-query and drop to the logged-out experience.
func (h *Hub) NotifySessionRevoked(userName, reason string) {
	h.send(userName, Event{
		Type: EventSessionRevoked,
		Data: map[string]interface{}{"reason": reason},
	})
}

// NotifyProfileUpdated tells open tabs that cached display fields changed.
func (h *Hub) NotifyProfileUpdated(userName string) {
	h.send(userName, Event{Type: EventProfileUpdated})
}

// ConnectedTabs returns how many connections a user currently holds.
func (h *Hub) ConnectedTabs(userName string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userName])
}

func (h *Hub) send(userName string, event Event) {
	select {
	case h.events <- targetedEvent{userName: userName, event: event}:
	default:
		// Dropping is acceptable; the signal is best-effort.
		h.logger.Warn("session event queue full, dropping event",
			zap.String("type", event.Type),
			zap.String("user", userName),
		)
	}
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.clients[client.userName] == nil {
		h.clients[client.userName] = make(map[*Client]bool)
	}
	h.clients[client.userName][client] = true

	client.sendEvent(Event{
		Type: EventConnected,
		Data: map[string]interface{}{"userName": client.userName},
	})
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if clients, ok := h.clients[client.userName]; ok {
		if _, exists := clients[client]; exists {
			delete(clients, client)
			client.close()
			if len(clients) == 0 {
				delete(h.clients, client.userName)
			}
		}
	}
}

func (h *Hub) deliver(te targetedEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients[te.userName] {
		client.sendEvent(te.event)
	}
}

func (h *Hub) shutdown() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, clients := range h.clients {
		for client := range clients {
			client.close()
		}
	}
	h.clients = make(map[string]map[*Client]bool)
}
