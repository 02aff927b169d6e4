package handler

import (
	"net/http"

	"github.com/google/uuid"
	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	ws "piramida/internal/infrastructure/websocket"
	"piramida/pkg/errors"
)

type WebSocketHandler struct {
	wsManager *ws.Manager
}

var webSocketHandler *WebSocketHandler

var upgrader = gorillaws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // You should restrict this in production
	},
}

func NewWebSocketHandler(wsManager *ws.Manager) *WebSocketHandler {
	return &WebSocketHandler{
		wsManager: wsManager,
	}
}

func SetupWebSocketHandler(wsManager *ws.Manager) {
	webSocketHandler = NewWebSocketHandler(wsManager)
}

func GetWebSocketHandler() *WebSocketHandler {
	return webSocketHandler
}

// HandleWebSocket upgrades the connection and registers the page for live
// collection-change events. Connections are anonymous; every open page gets
// the same change feed.
func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return errors.Internal("Failed to upgrade connection", err)
	}

	client := &ws.Client{
		ClientID: uuid.New().String(),
		Conn:     conn,
		Send:     make(chan []byte, 256),
	}

	h.wsManager.Register <- client

	go client.ReadPump(h.wsManager)
	go client.WritePump()

	return nil
}
