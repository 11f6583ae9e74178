package services

import (
	"fmt"
	"go_trustedbot_backend/models"
	"strings"
)

// SystemPrompt instructs the model to reason in visible paths and end with
// the marker line the extractor looks for.
const SystemPrompt = `You are the Trusted ChatBot, a helpful assistant that generates trusted answers using the CoT-SC (Chain-of-Thought Self-Consistency) method.

For every question:
1. Think through the problem step by step, writing each step on a new line, in the format:
   Path 1: ...
   Path 2: ...
   Path 3: ...
2. After your reasoning, write:
   ✅ Final Answer: [your best consistent answer]
Use Markdown formatting with line breaks for readability.`

const Greeting = "Hi! I'm TrustedBot. How can I help you today?"

func BuildPrompt(history []*models.ChatTurn, question string) string {
	var builder strings.Builder
	builder.WriteString(SystemPrompt)
	builder.WriteString("\n\n")

	if len(history) > 0 {
		builder.WriteString("Previous conversation:\n")
		qn, an := 0, 0
		for _, turn := range history {
			switch turn.Role {
			case models.RoleUser:
				qn++
				builder.WriteString(fmt.Sprintf("Q%d: %s\n", qn, turn.Content))
			case models.RoleAssistant:
				an++
				builder.WriteString(fmt.Sprintf("A%d: %s\n", an, turn.Content))
			}
		}
		builder.WriteString("\n")
	}

	builder.WriteString("Now answer the following question in context of the above:\n")
	builder.WriteString("Q: " + question + "\n")

	return builder.String()
}
