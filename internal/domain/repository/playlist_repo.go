package repository

import (
	"context"

	"github.com/yourusername/adnet-api/internal/domain/entity"
)

// PlaylistRepository определяет методы для работы с плейлистами
type PlaylistRepository interface {
	// Create создаёт новый плейлист
	Create(ctx context.Context, playlist *entity.Playlist) error

	// GetByID возвращает плейлист по ID
	GetByID(ctx context.Context, id uint) (*entity.Playlist, error)
}
