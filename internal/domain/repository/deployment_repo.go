package repository

import (
	"context"

	"github.com/yourusername/adnet-api/internal/domain/entity"
)

// DeploymentRepository определяет методы для работы с деплоями расписаний.
// Уникальность пары (schedule_id, game_id) обеспечивает constraint в БД;
// Upsert при конфликте обновляет статус существующей записи.
type DeploymentRepository interface {
	// Upsert создаёт деплой или, если пара (schedule_id, game_id) уже
	// существует, обновляет статус существующей записи.
	Upsert(ctx context.Context, deployment *entity.GameDeployment) error

	// GetByID возвращает деплой по ID
	GetByID(ctx context.Context, id uint) (*entity.GameDeployment, error)

	// GetByScheduleAndGame возвращает деплой пары (schedule, game)
	GetByScheduleAndGame(ctx context.Context, scheduleID, gameID uint) (*entity.GameDeployment, error)

	// ListByScheduleID возвращает все деплои расписания
	ListByScheduleID(ctx context.Context, scheduleID uint) ([]entity.GameDeployment, error)

	// UpdateStatus изменяет статус деплоя
	UpdateStatus(ctx context.Context, id uint, status string) error

	// ListBatch возвращает деплои с ID больше afterID, упорядоченные по ID,
	// не более limit штук. Используется batch-проходами обслуживания.
	ListBatch(ctx context.Context, afterID uint, limit int) ([]entity.GameDeployment, error)

	// DeleteByIDs удаляет деплои с перечисленными ID
	DeleteByIDs(ctx context.Context, ids []uint) error
}
