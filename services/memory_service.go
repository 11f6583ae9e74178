package services

import (
	"context"
	"fmt"
	"time"

	"go_trustedbot_backend/models"
	"go_trustedbot_backend/pkg/logging"
	"go_trustedbot_backend/platform/cache"
	"go_trustedbot_backend/repository"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// MemoryService is the append-only conversation memory for chat sessions,
// persisted in Postgres with a two-level cache in front.
type MemoryService struct {
	turnRepo   repository.TurnRepository
	histCache  *cache.TypedCache[[]*models.ChatTurn]
	historyTTL time.Duration
	sf         singleflight.Group
}

func NewMemoryService(turnRepo repository.TurnRepository, cacheService cache.CacheService, historyTTL time.Duration) *MemoryService {
	return &MemoryService{
		turnRepo:   turnRepo,
		histCache:  cache.NewTypedCache[[]*models.ChatTurn](cacheService),
		historyTTL: historyTTL,
	}
}

func (s *MemoryService) History(ctx context.Context, sessionID string) ([]*models.ChatTurn, error) {
	cacheKey := s.historyKey(sessionID)

	if history, ok, err := s.histCache.Get(cacheKey); err == nil && ok {
		return history, nil
	}

	// singleflight so concurrent asks on one session hit the DB once
	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		history, err := s.turnRepo.ListBySession(ctx, sessionID)
		if err != nil {
			return nil, err
		}
		go func() {
			if err := s.histCache.Set(cacheKey, history, s.historyTTL); err != nil {
				logging.Logger.Error("fail to set history cache", "error", err)
			}
		}()
		return history, nil
	})
	if err != nil {
		logging.Logger.Error("fail History", "error", err)
		return nil, err
	}
	return v.([]*models.ChatTurn), nil
}

// Append adds one turn to the session. The cached history is dropped so the
// next read rebuilds it from the database.
func (s *MemoryService) Append(ctx context.Context, sessionID, role, content string) (*models.ChatTurn, error) {
	turn := &models.ChatTurn{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Role:      role,
		Content:   content,
		CreatedAt: time.Now(),
	}
	if err := s.turnRepo.Create(ctx, turn); err != nil {
		logging.Logger.Error("fail Append", "error", err)
		return nil, err
	}
	if err := s.histCache.Delete(s.historyKey(sessionID)); err != nil {
		logging.Logger.Error("fail to drop history cache", "error", err)
	}
	return turn, nil
}

// Reset clears the session's memory regardless of its prior contents.
func (s *MemoryService) Reset(ctx context.Context, sessionID string) error {
	if err := s.turnRepo.DeleteBySession(ctx, sessionID); err != nil {
		return err
	}
	return s.histCache.Delete(s.historyKey(sessionID))
}

func (s *MemoryService) historyKey(sessionID string) string {
	return fmt.Sprintf("chat_history:%s", sessionID)
}
