package bootstrap

import (
	"go_trustedbot_backend/platform/database"
	"go_trustedbot_backend/repository"
)

type Repositories struct {
	TurnRepository repository.TurnRepository
}

func NewRepositories(db *database.DB) *Repositories {
	sqlDB := db.GetDatabase()
	return &Repositories{
		TurnRepository: repository.NewTurnRepository(sqlDB),
	}
}
