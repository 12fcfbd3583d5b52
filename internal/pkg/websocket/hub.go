package websocket

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/sandiphembram2021/seswa-fullstack-sub002/internal/app/models"
)

// SessionState is the part of the shared store the hub keeps in step with
// viewer connections
type SessionState interface {
	ViewerConnected() models.Analytics
	ViewerDisconnected() models.Analytics
	Snapshot() models.DashboardSnapshot
}

// Envelope is the JSON frame written to viewers, one per WebSocket message
type Envelope struct {
	Event     string      `json:"event"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// Hub maintains the set of connected viewers and fans events out to them.
//
// Registration, publication and removal all run under mu, so every viewer
// sees events in the same order and the initial snapshot a viewer receives
// is exactly the state left by the events published before it joined.
type Hub struct {
	mu      sync.Mutex
	clients map[*Client]struct{}
	closed  bool

	state  SessionState
	logger zerolog.Logger
	now    func() time.Time
}

// NewHub creates a new Hub instance
func NewHub(state SessionState, logger zerolog.Logger) *Hub {
	return &Hub{
		clients: make(map[*Client]struct{}),
		state:   state,
		logger:  logger,
		now:     time.Now,
	}
}

// Publish delivers events, in order, to every connected viewer
func (h *Hub) Publish(events ...models.BroadcastEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.fanOutLocked(events)
}

// Commit runs fn and publishes the events it returns without letting any
// other publication, connection or disconnection interleave. Mutations of the
// shared store that must be broadcast go through here.
func (h *Hub) Commit(fn func() []models.BroadcastEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.fanOutLocked(fn())
}

// Register adds a viewer, counts it as online and queues the initial
// snapshot as its first frame. It returns false once the hub is closed.
func (h *Hub) Register(client *Client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return false
	}

	h.state.ViewerConnected()
	snapshot, err := h.encode(models.BroadcastEvent{Name: models.EventInitialData, Data: h.state.Snapshot()})
	if err != nil {
		h.state.ViewerDisconnected()
		h.logger.Error().Err(err).Str("viewerID", client.ID()).Msg("Failed to encode initial snapshot")
		return false
	}

	client.enqueue(snapshot)
	h.clients[client] = struct{}{}

	h.logger.Info().
		Str("viewerID", client.ID()).
		Int("clients", len(h.clients)).
		Msg("Viewer registered")
	return true
}

// Unregister removes a viewer after its transport is gone. Calling it for a
// viewer that was already dropped is a no-op.
func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; !ok {
		return
	}
	h.fanOutLocked(h.removeLocked(client))

	h.logger.Info().
		Str("viewerID", client.ID()).
		Int("clients", len(h.clients)).
		Msg("Viewer unregistered")
}

// Identify attaches identity metadata to a viewer and announces it. Only the
// first announcement counts; it returns false for later ones and for
// viewers that are no longer registered.
func (h *Hub) Identify(client *Client, identity models.ViewerIdentity) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; !ok || client.identity != nil {
		return false
	}
	client.identity = &identity

	h.fanOutLocked([]models.BroadcastEvent{{
		Name: models.EventUserJoined,
		Data: models.PresenceNotice{User: identity, Timestamp: h.now()},
	}})
	return true
}

// Identity returns the metadata a viewer announced, if any
func (h *Hub) Identity(client *Client) (models.ViewerIdentity, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if client.identity == nil {
		return models.ViewerIdentity{}, false
	}
	return *client.identity, true
}

// ClientCount returns the number of connected viewers
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects every viewer and refuses new ones
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true

	count := len(h.clients)
	for client := range h.clients {
		delete(h.clients, client)
		close(client.send)
		h.state.ViewerDisconnected()
	}
	h.logger.Info().Int("clients", count).Msg("Hub closed")
}

// fanOutLocked writes each event to every viewer. A viewer whose buffer is
// full is dropped; its departure notice is queued behind the current events
// so all remaining viewers still observe one order. Callers must hold mu.
func (h *Hub) fanOutLocked(events []models.BroadcastEvent) {
	for len(events) > 0 {
		event := events[0]
		events = events[1:]

		payload, err := h.encode(event)
		if err != nil {
			h.logger.Error().Err(err).Str("event", event.Name).Msg("Failed to marshal event for broadcast")
			continue
		}

		for client := range h.clients {
			if client.enqueue(payload) {
				continue
			}
			h.logger.Warn().
				Str("viewerID", client.ID()).
				Str("event", event.Name).
				Msg("Viewer send buffer full, dropping connection")
			events = append(events, h.removeLocked(client)...)
		}

		h.logger.Debug().
			Str("event", event.Name).
			Int("clients", len(h.clients)).
			Msg("Event broadcasted")
	}
}

// removeLocked forgets a viewer and returns the notices its departure causes.
// Callers must hold mu.
func (h *Hub) removeLocked(client *Client) []models.BroadcastEvent {
	delete(h.clients, client)
	close(client.send)
	h.state.ViewerDisconnected()

	if client.identity == nil {
		return nil
	}
	return []models.BroadcastEvent{{
		Name: models.EventUserLeft,
		Data: models.PresenceNotice{User: *client.identity, Timestamp: h.now()},
	}}
}

func (h *Hub) encode(event models.BroadcastEvent) ([]byte, error) {
	return json.Marshal(Envelope{
		Event:     event.Name,
		Data:      event.Data,
		Timestamp: h.now(),
	})
}
