package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/yourusername/adnet-api/internal/domain/entity"
)

// EngagementRepo реализует repository.EngagementRepository
type EngagementRepo struct {
	db *gorm.DB
}

// NewEngagementRepo создаёт новый репозиторий событий вовлечённости
func NewEngagementRepo(db *gorm.DB) *EngagementRepo {
	return &EngagementRepo{db: db}
}

// Append записывает событие. Ошибка не замалчивается: вызывающий решает,
// что делать с неудавшейся записью.
func (r *EngagementRepo) Append(ctx context.Context, event *entity.EngagementEvent) error {
	return translateError(r.db.WithContext(ctx).Create(event).Error)
}
