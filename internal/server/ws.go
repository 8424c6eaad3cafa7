package server

import (
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/roci-emry/sports-betting/internal/hub"
)

// WSHandler upgrades connections onto the picks feed
type WSHandler struct {
	hub      *hub.Hub
	upgrader websocket.Upgrader
}

// NewWSHandler creates a WebSocket handler over the given hub
func NewWSHandler(h *hub.Hub) *WSHandler {
	return &WSHandler{
		hub: h,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// CORS is enforced at the router; the feed is read-only
				return true
			},
		},
	}
}

// ServeWS handles a WebSocket upgrade request
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written its own error response
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	client := hub.NewClient(uuid.NewString(), conn, h.hub)
	h.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}
