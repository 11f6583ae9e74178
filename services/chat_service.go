package services

import (
	"context"
	"go_trustedbot_backend/config"
	"go_trustedbot_backend/models"
	"go_trustedbot_backend/pkg/logging"
	"go_trustedbot_backend/platform/events"
)

type ChatService struct {
	memory           *MemoryService
	llmService       *LLMService
	llmConfigService *LLMConfigService
	selector         *ConsensusSelector
	eventPublisher   *events.EventPublisher
}

func NewChatService(cfg *config.Config, memory *MemoryService, llmService *LLMService, llmConfigService *LLMConfigService, eventPublisher *events.EventPublisher) *ChatService {
	return &ChatService{
		memory:           memory,
		llmService:       llmService,
		llmConfigService: llmConfigService,
		selector:         NewConsensusSelector(cfg.PathCount, cfg.Temperature, MarkerExtractor(DefaultAnswerMarker)),
		eventPublisher:   eventPublisher,
	}
}

// AskQuestion runs the self-consistency vote for one question and, on
// success, appends the exchange to the session's memory. Memory stays
// untouched when the vote fails.
func (s *ChatService) AskQuestion(ctx context.Context, req models.ChatReq) (*models.ChatRes, error) {
	history, err := s.memory.History(ctx, req.SessionID)
	if err != nil {
		logging.Logger.Error("fail AskQuestion", "error", err)
		return nil, err
	}

	llmConfig, err := s.llmConfigService.GetOrUseDefault(ctx, req.SessionID, req.APIKey, req.Model, req.Provider)
	if err != nil {
		logging.Logger.Error("fail to get LLM config", "error", err, "sessionID", req.SessionID)
		return nil, err
	}

	logging.Logger.Info("AskQuestion",
		"sessionID", req.SessionID,
		"provider", llmConfig.Provider,
		"model", llmConfig.Model,
		"apiKey", MaskAPIKey(llmConfig.APIKey),
	)

	prompt := BuildPrompt(history, req.Question)
	complete := func(ctx context.Context, _ int, prompt string, temperature float64) (string, error) {
		return s.llmService.Complete(ctx, prompt, llmConfig, temperature)
	}

	selected, err := s.selector.Select(ctx, prompt, complete)
	if err != nil {
		logging.Logger.Error("fail AskQuestion", "error", err, "sessionID", req.SessionID)
		return nil, err
	}

	if _, err := s.memory.Append(ctx, req.SessionID, models.RoleUser, req.Question); err != nil {
		return nil, err
	}
	answerTurn, err := s.memory.Append(ctx, req.SessionID, models.RoleAssistant, selected.Answer)
	if err != nil {
		return nil, err
	}

	go func() {
		err := s.eventPublisher.PublishChatEvent(&models.ChatEvent{
			Type:      models.EventAnswer,
			SessionID: req.SessionID,
			Question:  req.Question,
			Answer:    selected.Answer,
			Support:   selected.Support,
		})
		if err != nil {
			logging.Logger.Error("fail to publish answer event", "error", err)
		}
	}()

	return &models.ChatRes{
		TurnID:   answerTurn.ID,
		Question: req.Question,
		Answer:   selected.Answer,
		Support:  selected.Support,
		Paths:    selected.Paths,
	}, nil
}

func (s *ChatService) GetTranscript(ctx context.Context, sessionID string) ([]models.TranscriptTurn, error) {
	history, err := s.memory.History(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	transcript := make([]models.TranscriptTurn, 0, len(history))
	for _, turn := range history {
		transcript = append(transcript, models.TranscriptTurn{
			ID:        turn.ID,
			Role:      turn.Role,
			Content:   turn.Content,
			CreatedAt: turn.CreatedAt,
		})
	}
	return transcript, nil
}

func (s *ChatService) ResetMemory(ctx context.Context, sessionID string) error {
	if err := s.memory.Reset(ctx, sessionID); err != nil {
		logging.Logger.Error("fail ResetMemory", "error", err, "sessionID", sessionID)
		return err
	}

	go func() {
		err := s.eventPublisher.PublishChatEvent(&models.ChatEvent{
			Type:      models.EventReset,
			SessionID: sessionID,
			Message:   Greeting,
		})
		if err != nil {
			logging.Logger.Error("fail to publish reset event", "error", err)
		}
	}()

	return nil
}
