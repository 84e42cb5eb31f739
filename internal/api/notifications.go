package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"sacco-backend/internal/models"
)

// Notification is a message pushed to connected UI clients
type Notification struct {
	Type      string      `json:"type"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

type wsClient struct {
	conn *websocket.Conn
	send chan Notification
}

// NotificationHub maintains the set of connected clients and broadcasts
// ledger activity and persistence failures to them. Browser clients render
// these as transient toasts.
type NotificationHub struct {
	clients    map[*wsClient]bool
	broadcast  chan Notification
	register   chan *wsClient
	unregister chan *wsClient
	upgrader   websocket.Upgrader
}

// NewNotificationHub creates a hub; call Run in a goroutine to start it
func NewNotificationHub() *NotificationHub {
	return &NotificationHub{
		clients:    make(map[*wsClient]bool),
		broadcast:  make(chan Notification, 64),
		register:   make(chan *wsClient),
		unregister: make(chan *wsClient),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// Run dispatches registrations and broadcasts until the process exits
func (h *NotificationHub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
		case notification := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- notification:
				default:
					// Slow consumer, drop the connection
					delete(h.clients, client)
					close(client.send)
				}
			}
		}
	}
}

// ActivityLogged implements ledger.Notifier
func (h *NotificationHub) ActivityLogged(entry *models.ActivityLogEntry) {
	h.publish(Notification{
		Type:      "activity",
		Message:   entry.Action,
		Data:      entry,
		Timestamp: time.Now(),
	})
}

// PersistFailed implements ledger.Notifier
func (h *NotificationHub) PersistFailed(err error) {
	h.publish(Notification{
		Type:      "error",
		Message:   "Failed to save data: " + err.Error(),
		Timestamp: time.Now(),
	})
}

// publish never blocks the ledger's mutation path
func (h *NotificationHub) publish(notification Notification) {
	select {
	case h.broadcast <- notification:
	default:
	}
}

// HandleWS upgrades the connection and streams notifications until the
// client disconnects
func (h *NotificationHub) HandleWS(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		respondBadRequest(c, "Failed to upgrade connection")
		return
	}

	client := &wsClient{
		conn: conn,
		send: make(chan Notification, 16),
	}
	h.register <- client

	go client.writePump()
	go client.readPump(h)
}

func (c *wsClient) writePump() {
	defer c.conn.Close()
	for notification := range c.send {
		if err := c.conn.WriteJSON(notification); err != nil {
			return
		}
	}
}

// readPump discards inbound messages; its job is to notice the disconnect
func (c *wsClient) readPump(h *NotificationHub) {
	defer func() {
		h.unregister <- c
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
