package routes

import (
	"go_trustedbot_backend/handlers"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

func SetupWebSocketRoutes(app *fiber.App, wsHandler *handlers.WSHandler) {
	ws := app.Group("/ws")

	ws.Use("/chat/:session_id", wsHandler.WebSocketUpgrade)
	ws.Get("/chat/:session_id", websocket.New(wsHandler.HandleChatEvents))
}
