package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yourusername/adnet-api/internal/domain/entity"
	apperrors "github.com/yourusername/adnet-api/internal/pkg/errors"
)

// gameAdGameLink — строка join-таблицы привязки рекламы к играм.
// Отношение many-to-many управляется только через методы этого репозитория.
type gameAdGameLink struct {
	GameAdID uint `gorm:"primaryKey"`
	GameID   uint `gorm:"primaryKey"`
}

func (gameAdGameLink) TableName() string {
	return "game_ad_games"
}

// GameAdRepo реализует repository.GameAdRepository
type GameAdRepo struct {
	db *gorm.DB
}

// NewGameAdRepo создаёт новый репозиторий рекламы
func NewGameAdRepo(db *gorm.DB) *GameAdRepo {
	return &GameAdRepo{db: db}
}

// Create создаёт новую рекламу
func (r *GameAdRepo) Create(ctx context.Context, ad *entity.GameAd) error {
	return translateError(r.db.WithContext(ctx).Create(ad).Error)
}

// GetByID возвращает рекламу по ID
func (r *GameAdRepo) GetByID(ctx context.Context, id uint) (*entity.GameAd, error) {
	var ad entity.GameAd
	err := r.db.WithContext(ctx).First(&ad, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, translateError(err)
	}
	return &ad, nil
}

// List возвращает все рекламные кампании
func (r *GameAdRepo) List(ctx context.Context) ([]entity.GameAd, error) {
	var ads []entity.GameAd
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&ads).Error; err != nil {
		return nil, translateError(err)
	}
	return ads, nil
}

// LinkGame привязывает рекламу к игре. Повторная привязка идемпотентна:
// при конфликте по первичному ключу вставка пропускается.
func (r *GameAdRepo) LinkGame(ctx context.Context, adID, gameID uint) error {
	link := gameAdGameLink{GameAdID: adID, GameID: gameID}
	return translateError(r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&link).Error)
}

// UnlinkGame снимает привязку рекламы к игре
func (r *GameAdRepo) UnlinkGame(ctx context.Context, adID, gameID uint) error {
	return translateError(r.db.WithContext(ctx).
		Where("game_ad_id = ? AND game_id = ?", adID, gameID).
		Delete(&gameAdGameLink{}).Error)
}

// IsLinked проверяет наличие привязки рекламы к игре
func (r *GameAdRepo) IsLinked(ctx context.Context, adID, gameID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&gameAdGameLink{}).
		Where("game_ad_id = ? AND game_id = ?", adID, gameID).
		Count(&count).Error
	if err != nil {
		return false, translateError(err)
	}
	return count > 0, nil
}

// ListByLinkedGame возвращает все рекламные кампании, привязанные к игре
func (r *GameAdRepo) ListByLinkedGame(ctx context.Context, gameID uint) ([]entity.GameAd, error) {
	var ads []entity.GameAd
	err := r.db.WithContext(ctx).
		Joins("JOIN game_ad_games ON game_ad_games.game_ad_id = game_ads.id").
		Where("game_ad_games.game_id = ?", gameID).
		Find(&ads).Error
	if err != nil {
		return nil, translateError(err)
	}
	return ads, nil
}
