package models

type AskQuestionRequest struct {
	Question string `json:"question"`
	Provider string `json:"provider,omitempty"`
	Model    string `json:"model,omitempty"`
	APIKey   string `json:"api_key,omitempty"`
}

type ChatReq struct {
	SessionID string
	Question  string
	Provider  string
	Model     string
	APIKey    string
}

type ChatRes struct {
	TurnID   string `json:"turn_id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Support  int    `json:"support"`
	Paths    int    `json:"paths"`
}
