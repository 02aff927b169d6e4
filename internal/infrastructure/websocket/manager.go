package websocket

import (
	"context"
	"encoding/json"
	"log"
	gosync "sync"

	"github.com/gorilla/websocket"

	"piramida/internal/infrastructure/sync"
)

// Client represents one open page connected for live property updates
type Client struct {
	ClientID string
	Conn     *websocket.Conn
	Send     chan []byte
}

// Manager manages all active WebSocket connections
type Manager struct {
	clients    map[string]*Client
	Register   chan *Client
	Unregister chan *Client
	broadcast  chan []byte
	mutex      gosync.RWMutex
}

// NewManager creates a new WebSocket connection manager
func NewManager() *Manager {
	return &Manager{
		clients:    make(map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		broadcast:  make(chan []byte),
	}
}

// Start runs the manager's main loop in a goroutine
func (m *Manager) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-m.Register:
				m.mutex.Lock()
				m.clients[client.ClientID] = client
				m.mutex.Unlock()
				log.Printf("Page connected: %s", client.ClientID)

			case client := <-m.Unregister:
				m.mutex.Lock()
				if _, ok := m.clients[client.ClientID]; ok {
					delete(m.clients, client.ClientID)
					close(client.Send)
				}
				m.mutex.Unlock()
				log.Printf("Page disconnected: %s", client.ClientID)

			case message := <-m.broadcast:
				for _, client := range m.clients {
					select {
					case client.Send <- message:
					default:
						close(client.Send)
						m.mutex.Lock()
						delete(m.clients, client.ClientID)
						m.mutex.Unlock()
					}
				}

			case <-ctx.Done():
				return
			}
		}
	}()
}

// Relay forwards collection-change events to every connected page until the
// subscription channel closes.
func (m *Manager) Relay(events <-chan sync.Event) {
	go func() {
		for event := range events {
			payload, err := json.Marshal(event)
			if err != nil {
				log.Printf("error encoding change event: %v", err)
				continue
			}
			m.broadcast <- payload
		}
	}()
}

// ReadPump reads messages from the WebSocket connection
func (c *Client) ReadPump(m *Manager) {
	defer func() {
		m.Unregister <- c
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("error: %v", err)
			}
			break
		}
		// Pages only listen; inbound messages are ignored.
	}
}

// WritePump sends messages to the WebSocket connection
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for {
		message, ok := <-c.Send
		if !ok {
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			log.Printf("error: %v", err)
			return
		}
	}
}
