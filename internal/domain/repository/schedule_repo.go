package repository

import (
	"context"

	"github.com/yourusername/adnet-api/internal/domain/entity"
)

// ScheduleFilter определяет параметры выборки расписаний.
// GameID фильтрует через join с таблицей деплоев.
type ScheduleFilter struct {
	GameAdID *uint
	GameID   *uint
}

// ScheduleRepository определяет методы для работы с расписаниями плейлистов
type ScheduleRepository interface {
	// CreateWithDeployments создаёт расписание и его деплои в одной
	// транзакции: либо записывается всё, либо ничего.
	CreateWithDeployments(ctx context.Context, schedule *entity.PlaylistSchedule, deployments []entity.GameDeployment) error

	// GetByID возвращает расписание по ID
	GetByID(ctx context.Context, id uint) (*entity.PlaylistSchedule, error)

	// List возвращает расписания по фильтру
	List(ctx context.Context, filter ScheduleFilter) ([]entity.PlaylistSchedule, error)

	// ListByGameAd возвращает расписания рекламы
	ListByGameAd(ctx context.Context, gameAdID uint) ([]entity.PlaylistSchedule, error)

	// UpdateStatus изменяет статус расписания. Статус — единственное
	// изменяемое поле; прочие правки выполняются созданием нового расписания.
	UpdateStatus(ctx context.Context, id uint, status string) error
}
