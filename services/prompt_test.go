package services

import (
	"strings"
	"testing"

	"go_trustedbot_backend/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt_EmptyHistory(t *testing.T) {
	prompt := BuildPrompt(nil, "What is 6 times 7?")

	assert.Contains(t, prompt, SystemPrompt)
	assert.Contains(t, prompt, "Q: What is 6 times 7?")
	assert.NotContains(t, prompt, "Previous conversation:")
}

func TestBuildPrompt_EmbedsHistoryAsQAPairs(t *testing.T) {
	history := []*models.ChatTurn{
		{Role: models.RoleUser, Content: "What is the capital of France?"},
		{Role: models.RoleAssistant, Content: "Paris"},
		{Role: models.RoleUser, Content: "And of Spain?"},
		{Role: models.RoleAssistant, Content: "Madrid"},
	}
	prompt := BuildPrompt(history, "Which is bigger?")

	assert.Contains(t, prompt, "Previous conversation:")
	assert.Contains(t, prompt, "Q1: What is the capital of France?")
	assert.Contains(t, prompt, "A1: Paris")
	assert.Contains(t, prompt, "Q2: And of Spain?")
	assert.Contains(t, prompt, "A2: Madrid")
	assert.Contains(t, prompt, "Q: Which is bigger?")

	// history comes before the new question
	assert.Less(t, strings.Index(prompt, "A2: Madrid"), strings.Index(prompt, "Q: Which is bigger?"))
}

func TestSystemPromptMentionsAnswerMarker(t *testing.T) {
	// the extractor and the prompt must agree on the marker convention
	assert.Contains(t, SystemPrompt, DefaultAnswerMarker)
}
