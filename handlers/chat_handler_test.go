package handlers

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(h *ChatHandler) *fiber.App {
	app := fiber.New()
	app.Post("/api/chat/:session_id/ask", h.AskQuestion)
	return app
}

func TestAskQuestion_EmptyQuestion(t *testing.T) {
	app := newTestApp(NewChatHandler(nil))

	req := httptest.NewRequest("POST", "/api/chat/s1/ask", strings.NewReader(`{"question":"   "}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "didn't get that")
}

func TestAskQuestion_MalformedBody(t *testing.T) {
	app := newTestApp(NewChatHandler(nil))

	req := httptest.NewRequest("POST", "/api/chat/s1/ask", strings.NewReader(`{oops`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
