package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/adnet-api/internal/domain/entity"
	apperrors "github.com/yourusername/adnet-api/internal/pkg/errors"
)

// ContainerRepo реализует repository.ContainerRepository
type ContainerRepo struct {
	db *gorm.DB
}

// NewContainerRepo создаёт новый репозиторий контейнеров
func NewContainerRepo(db *gorm.DB) *ContainerRepo {
	return &ContainerRepo{db: db}
}

// Create создаёт новый контейнер
func (r *ContainerRepo) Create(ctx context.Context, container *entity.AdContainer) error {
	return translateError(r.db.WithContext(ctx).Create(container).Error)
}

// GetByID возвращает контейнер по ID с подгруженными Game и CurrentAd
func (r *ContainerRepo) GetByID(ctx context.Context, id uint) (*entity.AdContainer, error) {
	var container entity.AdContainer
	err := r.db.WithContext(ctx).
		Preload("Game").
		Preload("CurrentAd").
		First(&container, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, translateError(err)
	}
	return &container, nil
}

// ListByGame возвращает контейнеры игры, самые свежие первыми
func (r *ContainerRepo) ListByGame(ctx context.Context, gameID uint) ([]entity.AdContainer, error) {
	var containers []entity.AdContainer
	err := r.db.WithContext(ctx).
		Where("game_id = ?", gameID).
		Order("updated_at DESC").
		Find(&containers).Error
	if err != nil {
		return nil, translateError(err)
	}
	return containers, nil
}

// SetCurrentAd назначает контейнеру текущую рекламу
func (r *ContainerRepo) SetCurrentAd(ctx context.Context, id uint, adID uint) error {
	result := r.db.WithContext(ctx).Model(&entity.AdContainer{}).
		Where("id = ?", id).
		Update("current_ad_id", adID)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdatePosition сохраняет новую позицию контейнера
func (r *ContainerRepo) UpdatePosition(ctx context.Context, id uint, x, y, z float64) error {
	result := r.db.WithContext(ctx).Model(&entity.AdContainer{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"position_x": x,
			"position_y": y,
			"position_z": z,
		})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
