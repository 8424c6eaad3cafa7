package hub

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/roci-emry/sports-betting/pkg/models"
)

// MessageTypePicksUpdate tags outbound snapshot pushes
const MessageTypePicksUpdate = "picks_update"

// ServerMessage is the envelope sent to connected clients
type ServerMessage struct {
	Type      string           `json:"type"`
	Payload   *models.Snapshot `json:"payload"`
	Timestamp time.Time        `json:"timestamp"`
}

// Hub maintains the set of connected clients and pushes each freshly stored
// snapshot to all of them
type Hub struct {
	clients   map[*Client]bool
	clientsMu sync.RWMutex

	broadcast  chan *models.Snapshot
	register   chan *Client
	unregister chan *Client

	// done is closed when Run exits, so late registrations never block a
	// handler goroutine during server shutdown
	done chan struct{}
}

// New creates a hub
func New() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan *models.Snapshot, 16),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

// Run drives the hub's main loop until the context is cancelled
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.shutdown()
			return

		case c := <-h.register:
			h.registerClient(c)

		case c := <-h.unregister:
			h.unregisterClient(c)

		case snapshot := <-h.broadcast:
			h.broadcastSnapshot(snapshot)
		}
	}
}

// Register adds a client to the hub. After shutdown it is a no-op.
func (h *Hub) Register(c *Client) {
	select {
	case h.register <- c:
	case <-h.done:
	}
}

// Unregister removes a client from the hub. After shutdown it is a no-op.
func (h *Hub) Unregister(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Broadcast queues a snapshot for delivery to every connected client. If the
// buffer is full the snapshot is dropped; clients will catch up on the next
// cycle.
func (h *Hub) Broadcast(snapshot *models.Snapshot) {
	select {
	case h.broadcast <- snapshot:
	default:
		log.Println("broadcast buffer full, dropping snapshot")
	}
}

func (h *Hub) registerClient(c *Client) {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()

	h.clients[c] = true
	log.Printf("client %s connected (total: %d)", c.ID, len(h.clients))
}

func (h *Hub) unregisterClient(c *Client) {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()

	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.Send)
		log.Printf("client %s disconnected (total: %d)", c.ID, len(h.clients))
	}
}

func (h *Hub) broadcastSnapshot(snapshot *models.Snapshot) {
	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()

	message := ServerMessage{
		Type:      MessageTypePicksUpdate,
		Payload:   snapshot,
		Timestamp: time.Now(),
	}

	for c := range h.clients {
		select {
		case c.Send <- message:
		default:
			// Slow client: skip rather than block the hub
		}
	}
}

func (h *Hub) shutdown() {
	close(h.done)

	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()

	for c := range h.clients {
		close(c.Send)
		delete(h.clients, c)
	}
}
