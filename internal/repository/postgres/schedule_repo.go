package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/adnet-api/internal/domain/entity"
	"github.com/yourusername/adnet-api/internal/domain/repository"
	apperrors "github.com/yourusername/adnet-api/internal/pkg/errors"
)

// ScheduleRepo реализует repository.ScheduleRepository
type ScheduleRepo struct {
	db *gorm.DB
}

// NewScheduleRepo создаёт новый репозиторий расписаний
func NewScheduleRepo(db *gorm.DB) *ScheduleRepo {
	return &ScheduleRepo{db: db}
}

// CreateWithDeployments создаёт расписание вместе с деплоями в одной
// транзакции. Частичный сбой откатывает всё: осиротевшее расписание
// с неполным набором деплоев невозможно.
func (r *ScheduleRepo) CreateWithDeployments(ctx context.Context, schedule *entity.PlaylistSchedule, deployments []entity.GameDeployment) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(schedule).Error; err != nil {
			return err
		}
		for i := range deployments {
			deployments[i].ScheduleID = schedule.ID
			if err := tx.Create(&deployments[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return translateError(err)
}

// GetByID возвращает расписание по ID
func (r *ScheduleRepo) GetByID(ctx context.Context, id uint) (*entity.PlaylistSchedule, error) {
	var schedule entity.PlaylistSchedule
	err := r.db.WithContext(ctx).First(&schedule, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, translateError(err)
	}
	return &schedule, nil
}

// List возвращает расписания по фильтру. Фильтр по игре выполняется через
// join с таблицей деплоев.
func (r *ScheduleRepo) List(ctx context.Context, filter repository.ScheduleFilter) ([]entity.PlaylistSchedule, error) {
	query := r.db.WithContext(ctx).Model(&entity.PlaylistSchedule{})

	if filter.GameAdID != nil {
		query = query.Where("playlist_schedules.game_ad_id = ?", *filter.GameAdID)
	}
	if filter.GameID != nil {
		query = query.
			Joins("JOIN game_deployments ON game_deployments.schedule_id = playlist_schedules.id").
			Where("game_deployments.game_id = ?", *filter.GameID).
			Distinct("playlist_schedules.*")
	}

	var schedules []entity.PlaylistSchedule
	if err := query.Order("playlist_schedules.start_date DESC").Find(&schedules).Error; err != nil {
		return nil, translateError(err)
	}
	return schedules, nil
}

// ListByGameAd возвращает расписания рекламы
func (r *ScheduleRepo) ListByGameAd(ctx context.Context, gameAdID uint) ([]entity.PlaylistSchedule, error) {
	var schedules []entity.PlaylistSchedule
	err := r.db.WithContext(ctx).
		Where("game_ad_id = ?", gameAdID).
		Find(&schedules).Error
	if err != nil {
		return nil, translateError(err)
	}
	return schedules, nil
}

// UpdateStatus изменяет статус расписания
func (r *ScheduleRepo) UpdateStatus(ctx context.Context, id uint, status string) error {
	result := r.db.WithContext(ctx).Model(&entity.PlaylistSchedule{}).
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
