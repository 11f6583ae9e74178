package bootstrap

import (
	"go_trustedbot_backend/config"
	"go_trustedbot_backend/services"
)

type Services struct {
	MemoryService    *services.MemoryService
	LLMService       *services.LLMService
	LLMConfigService *services.LLMConfigService
	ChatService      *services.ChatService
}

func NewServices(cfg *config.Config, repos *Repositories, infra *Infrastructure) *Services {
	res := &Services{}

	llmConfigService := services.NewLLMConfigService(infra.Cache, cfg)
	res.LLMConfigService = llmConfigService

	memoryService := services.NewMemoryService(repos.TurnRepository, infra.Cache, cfg.HistoryCacheTTL)
	res.MemoryService = memoryService

	llmService := services.NewLLMService(cfg)
	res.LLMService = llmService

	chatService := services.NewChatService(cfg, memoryService, llmService, llmConfigService, infra.EventPublisher)
	res.ChatService = chatService

	return res
}
