package router

import (
	"github.com/labstack/echo/v4"

	"piramida/internal/adapter/api/handler"
)

func SetupWebSocketRouter(e *echo.Echo) {
	webSocketHandler := handler.GetWebSocketHandler()

	e.GET("/ws", webSocketHandler.HandleWebSocket)
}
