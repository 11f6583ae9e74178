package handlers

import (
	"context"
	"encoding/json"

	"go_trustedbot_backend/pkg/logging"
	"go_trustedbot_backend/platform/events"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

type WSHandler struct {
	eventPublisher *events.EventPublisher
}

func NewWSHandler(eventPublisher *events.EventPublisher) *WSHandler {
	return &WSHandler{eventPublisher: eventPublisher}
}

func (h *WSHandler) WebSocketUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return c.Status(400).JSON(fiber.Map{"error": "Not a websocket request"})
}

// HandleChatEvents streams answer/reset events for one session to the socket.
func (h *WSHandler) HandleChatEvents(c *websocket.Conn) {
	sessionID := c.Params("session_id")

	logging.Logger.Info("WebSocket connected", "sessionID", sessionID)

	// cancelable context, cancels when the function ends
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eventChan, err := h.eventPublisher.SubscribeChatEvents(ctx)
	if err != nil {
		logging.Logger.Error("Failed to subscribe to events", "error", err)
		err := c.WriteMessage(websocket.TextMessage, []byte(`{"error":"Failed to subscribe"}`))
		if err != nil {
			return
		}
		return
	}
	// confirm to frontend
	err = c.WriteJSON(fiber.Map{
		"type":       "connected",
		"message":    "WebSocket connected successfully",
		"session_id": sessionID,
	})
	if err != nil {
		return
	}

	for {
		select {
		case event := <-eventChan:
			if event == nil {
				return
			}
			if event.SessionID != sessionID {
				continue
			}
			data, _ := json.Marshal(event)
			if err := c.WriteMessage(websocket.TextMessage, data); err != nil {
				logging.Logger.Error("Failed to send WebSocket message", "error", err)
				return
			}

			logging.Logger.Info("Event sent to client",
				"type", event.Type,
				"sessionID", event.SessionID,
			)

		case <-ctx.Done():
			return
		}
	}
}
