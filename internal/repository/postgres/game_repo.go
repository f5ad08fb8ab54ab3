package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/adnet-api/internal/domain/entity"
	apperrors "github.com/yourusername/adnet-api/internal/pkg/errors"
)

// GameRepo реализует repository.GameRepository
type GameRepo struct {
	db *gorm.DB
}

// NewGameRepo создаёт новый репозиторий игр
func NewGameRepo(db *gorm.DB) *GameRepo {
	return &GameRepo{db: db}
}

// Create создаёт новую игру
func (r *GameRepo) Create(ctx context.Context, game *entity.Game) error {
	return translateError(r.db.WithContext(ctx).Create(game).Error)
}

// GetByID возвращает игру по ID
func (r *GameRepo) GetByID(ctx context.Context, id uint) (*entity.Game, error) {
	var game entity.Game
	err := r.db.WithContext(ctx).First(&game, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, translateError(err)
	}
	return &game, nil
}
