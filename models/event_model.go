package models

import "time"

type ChatEventType string

const (
	EventAnswer ChatEventType = "answer"
	EventReset  ChatEventType = "reset"
	EventError  ChatEventType = "error"
)

type ChatEvent struct {
	Type      ChatEventType `json:"type"`
	SessionID string        `json:"session_id"`
	Question  string        `json:"question,omitempty"`
	Answer    string        `json:"answer,omitempty"`
	Support   int           `json:"support,omitempty"`
	Message   string        `json:"message,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}
