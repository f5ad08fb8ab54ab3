package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/yourusername/adnet-api/internal/domain/entity"
	"github.com/yourusername/adnet-api/internal/domain/repository"
)

// ScheduleService управляет расписаниями плейлистов и их деплоями на игры
type ScheduleService struct {
	scheduleRepo   repository.ScheduleRepository
	deploymentRepo repository.DeploymentRepository
	playlistRepo   repository.PlaylistRepository
	gameAdRepo     repository.GameAdRepository
	gameRepo       repository.GameRepository
	invalidator    AvailabilityInvalidator
}

// NewScheduleService создаёт новый сервис расписаний
func NewScheduleService(
	scheduleRepo repository.ScheduleRepository,
	deploymentRepo repository.DeploymentRepository,
	playlistRepo repository.PlaylistRepository,
	gameAdRepo repository.GameAdRepository,
	gameRepo repository.GameRepository,
	invalidator AvailabilityInvalidator,
) *ScheduleService {
	return &ScheduleService{
		scheduleRepo:   scheduleRepo,
		deploymentRepo: deploymentRepo,
		playlistRepo:   playlistRepo,
		gameAdRepo:     gameAdRepo,
		gameRepo:       gameRepo,
		invalidator:    invalidator,
	}
}

// InlineDeploymentRequest DTO для деплоя, создаваемого вместе с расписанием
type InlineDeploymentRequest struct {
	GameID uint   `json:"game_id" binding:"required"`
	Status string `json:"status"`
}

// CreateScheduleRequest DTO для создания расписания
type CreateScheduleRequest struct {
	PlaylistID   uint                      `json:"playlist_id" binding:"required"`
	GameAdID     uint                      `json:"game_ad_id" binding:"required"`
	StartDate    time.Time                 `json:"start_date" binding:"required"`
	DurationDays int                       `json:"duration_days" binding:"min=0"`
	Status       string                    `json:"status"`
	Deployments  []InlineDeploymentRequest `json:"deployments"`
}

// CreateSchedule создаёт расписание и, если они заданы, деплои к нему —
// всё в одной транзакции. Статусы нормализуются на границе записи;
// дальше внутри ядра сравниваются только канонические значения.
func (s *ScheduleService) CreateSchedule(ctx context.Context, req CreateScheduleRequest) (*entity.PlaylistSchedule, error) {
	if _, err := s.playlistRepo.GetByID(ctx, req.PlaylistID); err != nil {
		return nil, fmt.Errorf("плейлист не найден: %w", err)
	}
	if _, err := s.gameAdRepo.GetByID(ctx, req.GameAdID); err != nil {
		return nil, fmt.Errorf("реклама не найдена: %w", err)
	}

	deployments := make([]entity.GameDeployment, 0, len(req.Deployments))
	for _, d := range req.Deployments {
		if _, err := s.gameRepo.GetByID(ctx, d.GameID); err != nil {
			return nil, fmt.Errorf("игра #%d не найдена: %w", d.GameID, err)
		}
		deployments = append(deployments, entity.GameDeployment{
			GameID: d.GameID,
			Status: entity.ParseStatus(d.Status),
		})
	}

	schedule := &entity.PlaylistSchedule{
		PlaylistID:   req.PlaylistID,
		GameAdID:     req.GameAdID,
		StartDate:    req.StartDate,
		DurationDays: req.DurationDays,
		Status:       entity.ParseStatus(req.Status),
	}

	if err := s.scheduleRepo.CreateWithDeployments(ctx, schedule, deployments); err != nil {
		return nil, fmt.Errorf("не удалось создать расписание: %w", err)
	}

	for _, d := range deployments {
		s.invalidator.InvalidateGame(ctx, d.GameID)
	}

	schedule.Deployments = deployments
	log.Printf("[ScheduleService] Создано расписание #%d (реклама #%d, плейлист #%d, %d дней, деплоев: %d)",
		schedule.ID, req.GameAdID, req.PlaylistID, req.DurationDays, len(deployments))
	return schedule, nil
}

// ListSchedules возвращает расписания по фильтру
func (s *ScheduleService) ListSchedules(ctx context.Context, gameAdID, gameID *uint) ([]entity.PlaylistSchedule, error) {
	return s.scheduleRepo.List(ctx, repository.ScheduleFilter{GameAdID: gameAdID, GameID: gameID})
}

// UpdateScheduleStatus изменяет статус расписания
func (s *ScheduleService) UpdateScheduleStatus(ctx context.Context, scheduleID uint, status string) (*entity.PlaylistSchedule, error) {
	normalized := entity.ParseStatus(status)
	if err := s.scheduleRepo.UpdateStatus(ctx, scheduleID, normalized); err != nil {
		return nil, fmt.Errorf("не удалось обновить статус расписания: %w", err)
	}

	schedule, err := s.scheduleRepo.GetByID(ctx, scheduleID)
	if err != nil {
		return nil, err
	}

	// Изменение статуса влияет на доступность во всех играх расписания
	deployments, err := s.deploymentRepo.ListByScheduleID(ctx, scheduleID)
	if err == nil {
		for _, d := range deployments {
			s.invalidator.InvalidateGame(ctx, d.GameID)
		}
	}

	log.Printf("[ScheduleService] Обновлён статус расписания #%d: %s", scheduleID, normalized)
	return schedule, nil
}

// CreateDeploymentRequest DTO для деплоя расписания на игру
type CreateDeploymentRequest struct {
	GameID uint   `json:"game_id" binding:"required"`
	Status string `json:"status"`
}

// CreateDeployment разворачивает расписание на игру. Пара (schedule, game)
// уникальна: повторное создание обновляет статус существующего деплоя,
// лишних записей не появляется.
func (s *ScheduleService) CreateDeployment(ctx context.Context, scheduleID uint, req CreateDeploymentRequest) (*entity.GameDeployment, error) {
	if _, err := s.scheduleRepo.GetByID(ctx, scheduleID); err != nil {
		return nil, fmt.Errorf("расписание не найдено: %w", err)
	}
	if _, err := s.gameRepo.GetByID(ctx, req.GameID); err != nil {
		return nil, fmt.Errorf("игра не найдена: %w", err)
	}

	deployment := &entity.GameDeployment{
		ScheduleID: scheduleID,
		GameID:     req.GameID,
		Status:     entity.ParseStatus(req.Status),
	}
	if err := s.deploymentRepo.Upsert(ctx, deployment); err != nil {
		return nil, fmt.Errorf("не удалось создать деплой: %w", err)
	}

	s.invalidator.InvalidateGame(ctx, req.GameID)
	log.Printf("[ScheduleService] Деплой расписания #%d на игру #%d: %s", scheduleID, req.GameID, deployment.Status)
	return deployment, nil
}

// ListDeployments возвращает все деплои расписания
func (s *ScheduleService) ListDeployments(ctx context.Context, scheduleID uint) ([]entity.GameDeployment, error) {
	if _, err := s.scheduleRepo.GetByID(ctx, scheduleID); err != nil {
		return nil, fmt.Errorf("расписание не найдено: %w", err)
	}
	return s.deploymentRepo.ListByScheduleID(ctx, scheduleID)
}

// UpdateDeploymentStatus изменяет статус деплоя
func (s *ScheduleService) UpdateDeploymentStatus(ctx context.Context, deploymentID uint, status string) (*entity.GameDeployment, error) {
	normalized := entity.ParseStatus(status)
	if err := s.deploymentRepo.UpdateStatus(ctx, deploymentID, normalized); err != nil {
		return nil, fmt.Errorf("не удалось обновить статус деплоя: %w", err)
	}

	deployment, err := s.deploymentRepo.GetByID(ctx, deploymentID)
	if err != nil {
		return nil, err
	}

	s.invalidator.InvalidateGame(ctx, deployment.GameID)
	log.Printf("[ScheduleService] Обновлён статус деплоя #%d: %s", deploymentID, normalized)
	return deployment, nil
}
