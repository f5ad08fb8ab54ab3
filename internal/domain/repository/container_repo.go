package repository

import (
	"context"

	"github.com/yourusername/adnet-api/internal/domain/entity"
)

// ContainerRepository определяет методы для работы с рекламными контейнерами
type ContainerRepository interface {
	// Create создаёт новый контейнер
	Create(ctx context.Context, container *entity.AdContainer) error

	// GetByID возвращает контейнер по ID с подгруженными Game и CurrentAd
	GetByID(ctx context.Context, id uint) (*entity.AdContainer, error)

	// ListByGame возвращает контейнеры игры, отсортированные по времени
	// последнего обновления (самые свежие первыми)
	ListByGame(ctx context.Context, gameID uint) ([]entity.AdContainer, error)

	// SetCurrentAd назначает контейнеру текущую рекламу
	SetCurrentAd(ctx context.Context, id uint, adID uint) error

	// UpdatePosition сохраняет новую позицию контейнера
	UpdatePosition(ctx context.Context, id uint, x, y, z float64) error
}

// EngagementRepository определяет методы для записи событий вовлечённости.
// Таблица append-only: другие операции не предусмотрены.
type EngagementRepository interface {
	// Append записывает событие. Ошибка записи всегда возвращается
	// вызывающему — на событиях строится биллинг.
	Append(ctx context.Context, event *entity.EngagementEvent) error
}
