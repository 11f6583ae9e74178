package routes

import (
	"go_trustedbot_backend/handlers"

	"github.com/gofiber/fiber/v2"
)

func RegisterChatRoutes(app *fiber.App, chatHandler *handlers.ChatHandler) {
	chats := app.Group("api/chat")
	chats.Post("/:session_id/ask", chatHandler.AskQuestion)
	chats.Get("/:session_id/history", chatHandler.GetHistory)
	chats.Post("/:session_id/reset", chatHandler.ResetMemory)
}
