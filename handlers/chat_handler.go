package handlers

import (
	"errors"
	"strings"

	"go_trustedbot_backend/models"
	"go_trustedbot_backend/services"

	"github.com/gofiber/fiber/v2"
)

const emptyQuestionMessage = "Oops! I didn't get that. Could you please type something?"

type ChatHandler struct {
	chatService *services.ChatService
}

func NewChatHandler(chatService *services.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

func (h *ChatHandler) AskQuestion(c *fiber.Ctx) error {
	sessionID := c.Params("session_id")

	var req models.AskQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if strings.TrimSpace(req.Question) == "" {
		return fiber.NewError(fiber.StatusBadRequest, emptyQuestionMessage)
	}

	res, err := h.chatService.AskQuestion(c.Context(), models.ChatReq{
		SessionID: sessionID,
		Question:  strings.TrimSpace(req.Question),
		Provider:  req.Provider,
		Model:     req.Model,
		APIKey:    req.APIKey,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUpstreamUnavailable):
			return fiber.NewError(fiber.StatusBadGateway, "Sorry, something went wrong. Please try again.")
		case errors.Is(err, services.ErrNoConsensus):
			return fiber.NewError(fiber.StatusUnprocessableEntity, "I couldn't settle on an answer. Could you rephrase the question?")
		default:
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(res)
}

func (h *ChatHandler) GetHistory(c *fiber.Ctx) error {
	sessionID := c.Params("session_id")

	transcript, err := h.chatService.GetTranscript(c.Context(), sessionID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if len(transcript) == 0 {
		return c.JSON(fiber.Map{
			"greeting": services.Greeting,
			"turns":    transcript,
		})
	}
	return c.JSON(fiber.Map{"turns": transcript})
}

func (h *ChatHandler) ResetMemory(c *fiber.Ctx) error {
	sessionID := c.Params("session_id")

	if err := h.chatService.ResetMemory(c.Context(), sessionID); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to reset memory")
	}
	return c.JSON(fiber.Map{
		"message": services.Greeting,
	})
}
