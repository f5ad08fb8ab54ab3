package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/adnet-api/internal/domain/entity"
	apperrors "github.com/yourusername/adnet-api/internal/pkg/errors"
)

// PlaylistRepo реализует repository.PlaylistRepository
type PlaylistRepo struct {
	db *gorm.DB
}

// NewPlaylistRepo создаёт новый репозиторий плейлистов
func NewPlaylistRepo(db *gorm.DB) *PlaylistRepo {
	return &PlaylistRepo{db: db}
}

// Create создаёт новый плейлист
func (r *PlaylistRepo) Create(ctx context.Context, playlist *entity.Playlist) error {
	return translateError(r.db.WithContext(ctx).Create(playlist).Error)
}

// GetByID возвращает плейлист по ID
func (r *PlaylistRepo) GetByID(ctx context.Context, id uint) (*entity.Playlist, error) {
	var playlist entity.Playlist
	err := r.db.WithContext(ctx).First(&playlist, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, translateError(err)
	}
	return &playlist, nil
}
