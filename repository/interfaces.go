package repository

import (
	"context"
	"go_trustedbot_backend/models"
)

type TurnRepository interface {
	Create(ctx context.Context, turn *models.ChatTurn) error
	ListBySession(ctx context.Context, sessionID string) ([]*models.ChatTurn, error)
	DeleteBySession(ctx context.Context, sessionID string) error
	CountBySession(ctx context.Context, sessionID string) (int64, error)
}
