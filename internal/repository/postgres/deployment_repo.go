package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yourusername/adnet-api/internal/domain/entity"
	apperrors "github.com/yourusername/adnet-api/internal/pkg/errors"
)

// DeploymentRepo реализует repository.DeploymentRepository
type DeploymentRepo struct {
	db *gorm.DB
}

// NewDeploymentRepo создаёт новый репозиторий деплоев
func NewDeploymentRepo(db *gorm.DB) *DeploymentRepo {
	return &DeploymentRepo{db: db}
}

// Upsert создаёт деплой. Гонка двух одновременных созданий одной пары
// (schedule_id, game_id) разрешается constraint-ом БД: проигравшая вставка
// превращается в обновление статуса существующей записи, лишняя строка
// не появляется.
func (r *DeploymentRepo) Upsert(ctx context.Context, deployment *entity.GameDeployment) error {
	return translateError(r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "schedule_id"}, {Name: "game_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
		}).
		Create(deployment).Error)
}

// GetByID возвращает деплой по ID
func (r *DeploymentRepo) GetByID(ctx context.Context, id uint) (*entity.GameDeployment, error) {
	var deployment entity.GameDeployment
	err := r.db.WithContext(ctx).First(&deployment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, translateError(err)
	}
	return &deployment, nil
}

// GetByScheduleAndGame возвращает деплой пары (schedule, game).
// Отсутствие записи означает, что расписание ещё не развёрнуто на игру.
func (r *DeploymentRepo) GetByScheduleAndGame(ctx context.Context, scheduleID, gameID uint) (*entity.GameDeployment, error) {
	var deployment entity.GameDeployment
	err := r.db.WithContext(ctx).
		Where("schedule_id = ? AND game_id = ?", scheduleID, gameID).
		First(&deployment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, translateError(err)
	}
	return &deployment, nil
}

// ListByScheduleID возвращает все деплои расписания
func (r *DeploymentRepo) ListByScheduleID(ctx context.Context, scheduleID uint) ([]entity.GameDeployment, error) {
	var deployments []entity.GameDeployment
	err := r.db.WithContext(ctx).
		Where("schedule_id = ?", scheduleID).
		Order("id ASC").
		Find(&deployments).Error
	if err != nil {
		return nil, translateError(err)
	}
	return deployments, nil
}

// UpdateStatus изменяет статус деплоя
func (r *DeploymentRepo) UpdateStatus(ctx context.Context, id uint, status string) error {
	result := r.db.WithContext(ctx).Model(&entity.GameDeployment{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ListBatch возвращает очередную порцию деплоев для batch-проходов.
// Порядок по ID стабилен: это порядок создания записей.
func (r *DeploymentRepo) ListBatch(ctx context.Context, afterID uint, limit int) ([]entity.GameDeployment, error) {
	var deployments []entity.GameDeployment
	err := r.db.WithContext(ctx).
		Where("id > ?", afterID).
		Order("id ASC").
		Limit(limit).
		Find(&deployments).Error
	if err != nil {
		return nil, translateError(err)
	}
	return deployments, nil
}

// DeleteByIDs удаляет деплои с перечисленными ID
func (r *DeploymentRepo) DeleteByIDs(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return translateError(r.db.WithContext(ctx).
		Delete(&entity.GameDeployment{}, ids).Error)
}
