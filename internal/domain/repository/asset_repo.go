package repository

import (
	"context"

	"github.com/yourusername/adnet-api/internal/domain/entity"
)

// AssetTyping — поля ассета, принадлежащие резолверу типов.
// UpdateTyping перезаписывает только их.
type AssetTyping struct {
	PlatformType    string
	PlatformSubtype string
	PlatformTypeID  *int
	CanonicalType   string
	Capabilities    map[string]interface{}
}

// AssetRepository определяет методы для работы с ассетами рекламы
type AssetRepository interface {
	// Create создаёт новый ассет
	Create(ctx context.Context, asset *entity.Asset) error

	// GetByID возвращает ассет по ID
	GetByID(ctx context.Context, id uint) (*entity.Asset, error)

	// ListByGameAd возвращает все ассеты рекламы
	ListByGameAd(ctx context.Context, gameAdID uint) ([]entity.Asset, error)

	// UpdateTyping перезаписывает поля типизации ассета, не затрагивая
	// остальные поля (имя, описание и исходные данные остаются как есть).
	UpdateTyping(ctx context.Context, id uint, typing AssetTyping) error

	// ListBatch возвращает ассеты с ID больше afterID, упорядоченные по ID,
	// не более limit штук. Используется backfill-проходом повторной типизации.
	ListBatch(ctx context.Context, afterID uint, limit int) ([]entity.Asset, error)
}
