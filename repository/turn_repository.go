package repository

import (
	"context"
	"go_trustedbot_backend/models"
	"go_trustedbot_backend/pkg/logging"

	"gorm.io/gorm"
)

type turnRepository struct {
	db *gorm.DB
}

func NewTurnRepository(db *gorm.DB) TurnRepository {
	return &turnRepository{db: db}
}

func (r *turnRepository) Create(ctx context.Context, turn *models.ChatTurn) error {
	return r.db.WithContext(ctx).Create(turn).Error
}

func (r *turnRepository) ListBySession(ctx context.Context, sessionID string) ([]*models.ChatTurn, error) {
	var res []*models.ChatTurn
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&res).Error
	if err != nil {
		logging.Logger.Error("fail ListBySession", "error", err)
		return nil, err
	}
	return res, nil
}

func (r *turnRepository) DeleteBySession(ctx context.Context, sessionID string) error {
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Delete(&models.ChatTurn{}).Error
	if err != nil {
		logging.Logger.Error("fail DeleteBySession", "error", err)
		return err
	}
	return nil
}

func (r *turnRepository) CountBySession(ctx context.Context, sessionID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.ChatTurn{}).
		Where("session_id = ?", sessionID).
		Count(&count).Error
	if err != nil {
		logging.Logger.Error("fail CountBySession", "error", err)
		return 0, err
	}
	return count, nil
}
