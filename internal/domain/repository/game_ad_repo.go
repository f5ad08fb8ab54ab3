package repository

import (
	"context"

	"github.com/yourusername/adnet-api/internal/domain/entity"
)

// GameAdRepository определяет методы для работы с рекламой и её привязкой
// к играм. Привязка — полноценная абстракция отношения: идемпотентность
// и уникальность пары (ad, game) обеспечиваются внутри реализации, а не
// в местах вызова.
type GameAdRepository interface {
	// Create создаёт новую рекламу
	Create(ctx context.Context, ad *entity.GameAd) error

	// GetByID возвращает рекламу по ID
	GetByID(ctx context.Context, id uint) (*entity.GameAd, error)

	// List возвращает все рекламные кампании
	List(ctx context.Context) ([]entity.GameAd, error)

	// LinkGame привязывает рекламу к игре. Повторная привязка — no-op.
	LinkGame(ctx context.Context, adID, gameID uint) error

	// UnlinkGame снимает привязку рекламы к игре. Отсутствующая привязка — no-op.
	UnlinkGame(ctx context.Context, adID, gameID uint) error

	// IsLinked проверяет наличие привязки рекламы к игре
	IsLinked(ctx context.Context, adID, gameID uint) (bool, error)

	// ListByLinkedGame возвращает все рекламные кампании, привязанные к игре
	ListByLinkedGame(ctx context.Context, gameID uint) ([]entity.GameAd, error)
}
