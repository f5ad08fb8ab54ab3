package repository

import (
	"context"

	"github.com/yourusername/adnet-api/internal/domain/entity"
)

// GameRepository определяет методы для работы с играми партнёров.
// Ядро планировщика игры не изменяет; запись нужна только для
// первоначального заведения игры.
type GameRepository interface {
	// Create создаёт новую игру
	Create(ctx context.Context, game *entity.Game) error

	// GetByID возвращает игру по ID
	GetByID(ctx context.Context, id uint) (*entity.Game, error)
}
