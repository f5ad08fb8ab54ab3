package postgres

import (
	"context"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yourusername/adnet-api/internal/domain/entity"
	"github.com/yourusername/adnet-api/internal/domain/repository"
	apperrors "github.com/yourusername/adnet-api/internal/pkg/errors"
)

// AssetRepo реализует repository.AssetRepository
type AssetRepo struct {
	db *gorm.DB
}

// NewAssetRepo создаёт новый репозиторий ассетов
func NewAssetRepo(db *gorm.DB) *AssetRepo {
	return &AssetRepo{db: db}
}

// Create создаёт новый ассет
func (r *AssetRepo) Create(ctx context.Context, asset *entity.Asset) error {
	return translateError(r.db.WithContext(ctx).Create(asset).Error)
}

// GetByID возвращает ассет по ID
func (r *AssetRepo) GetByID(ctx context.Context, id uint) (*entity.Asset, error) {
	var asset entity.Asset
	err := r.db.WithContext(ctx).First(&asset, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, translateError(err)
	}
	return &asset, nil
}

// ListByGameAd возвращает все ассеты рекламы
func (r *AssetRepo) ListByGameAd(ctx context.Context, gameAdID uint) ([]entity.Asset, error) {
	var assets []entity.Asset
	err := r.db.WithContext(ctx).
		Where("game_ad_id = ?", gameAdID).
		Order("id ASC").
		Find(&assets).Error
	if err != nil {
		return nil, translateError(err)
	}
	return assets, nil
}

// UpdateTyping перезаписывает только поля типизации: явный список колонок
// гарантирует, что введённые человеком поля не затрагиваются.
func (r *AssetRepo) UpdateTyping(ctx context.Context, id uint, typing repository.AssetTyping) error {
	updates := map[string]interface{}{
		"platform_type":    typing.PlatformType,
		"platform_subtype": typing.PlatformSubtype,
		"platform_type_id": typing.PlatformTypeID,
		"canonical_type":   typing.CanonicalType,
		"capabilities":     datatypes.JSONMap(typing.Capabilities),
	}
	result := r.db.WithContext(ctx).Model(&entity.Asset{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ListBatch возвращает очередную порцию ассетов для backfill-прохода
func (r *AssetRepo) ListBatch(ctx context.Context, afterID uint, limit int) ([]entity.Asset, error) {
	var assets []entity.Asset
	err := r.db.WithContext(ctx).
		Where("id > ?", afterID).
		Order("id ASC").
		Limit(limit).
		Find(&assets).Error
	if err != nil {
		return nil, translateError(err)
	}
	return assets, nil
}
