package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/yourusername/adnet-api/internal/domain/entity"
	"github.com/yourusername/adnet-api/internal/domain/repository"
	"github.com/yourusername/adnet-api/internal/metrics"
	apperrors "github.com/yourusername/adnet-api/internal/pkg/errors"
)

// AvailabilityInvalidator сбрасывает кешированный результат доступности
// для игры. Реализуется AvailabilityService; сервисы, изменяющие привязки,
// расписания или деплои, зависят только от этого интерфейса.
type AvailabilityInvalidator interface {
	InvalidateGame(ctx context.Context, gameID uint)
}

// AvailabilityService отвечает на вопрос "какая реклама сейчас доступна
// игре". Реклама доступна, если она привязана к игре, имеет хотя бы одно
// расписание со статусом ACTIVE, чьё окно показа содержит текущий момент,
// и для этого расписания существует деплой на игру со статусом ACTIVE.
// Деплой-фильтр применяется всегда: расписание без деплоя на игру считается
// ещё не развёрнутым, даже если окно времени подходит.
type AvailabilityService struct {
	gameAdRepo     repository.GameAdRepository
	scheduleRepo   repository.ScheduleRepository
	deploymentRepo repository.DeploymentRepository
	cache          repository.CacheRepository
	cacheTTL       time.Duration
}

// NewAvailabilityService создаёт новый сервис доступности.
// cache может быть nil — тогда каждый запрос вычисляется заново.
func NewAvailabilityService(
	gameAdRepo repository.GameAdRepository,
	scheduleRepo repository.ScheduleRepository,
	deploymentRepo repository.DeploymentRepository,
	cache repository.CacheRepository,
	cacheTTL time.Duration,
) *AvailabilityService {
	return &AvailabilityService{
		gameAdRepo:     gameAdRepo,
		scheduleRepo:   scheduleRepo,
		deploymentRepo: deploymentRepo,
		cache:          cache,
		cacheTTL:       cacheTTL,
	}
}

// availabilityCacheKey формирует ключ кеша для игры
func availabilityCacheKey(gameID uint) string {
	return fmt.Sprintf("availability:game:%d", gameID)
}

// AvailableAds возвращает рекламу, доступную игре в данный момент.
// Результат дедуплицирован по ID рекламы; порядок не гарантируется.
// Короткоживущий кеш допустим: вызывающие терпят устаревание не более
// одного цикла записи.
func (s *AvailabilityService) AvailableAds(ctx context.Context, gameID uint) ([]entity.GameAd, error) {
	if s.cache != nil {
		var cached []entity.GameAd
		err := s.cache.GetJSON(ctx, availabilityCacheKey(gameID), &cached)
		if err == nil {
			metrics.AvailabilityRequests.WithLabelValues("hit").Inc()
			return cached, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			// Проблемы кеша не должны ронять запрос — считаем заново
			log.Printf("[AvailabilityService] Ошибка чтения кеша для игры #%d: %v", gameID, err)
		}
	}
	metrics.AvailabilityRequests.WithLabelValues("miss").Inc()

	ads, err := s.ResolveAt(ctx, gameID, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, availabilityCacheKey(gameID), ads, s.cacheTTL); err != nil {
			log.Printf("[AvailabilityService] Ошибка записи кеша для игры #%d: %v", gameID, err)
		}
	}
	return ads, nil
}

// ResolveAt вычисляет доступность на заданный момент времени без кеша.
// Отдельный метод нужен обслуживающим проверкам и тестам, которым важен
// детерминированный момент "сейчас".
func (s *AvailabilityService) ResolveAt(ctx context.Context, gameID uint, now time.Time) ([]entity.GameAd, error) {
	linked, err := s.gameAdRepo.ListByLinkedGame(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("не удалось получить привязанную рекламу: %w", err)
	}

	available := make([]entity.GameAd, 0, len(linked))
	seen := make(map[uint]bool, len(linked))

	for i := range linked {
		ad := linked[i]
		if seen[ad.ID] {
			continue
		}

		eligible, err := s.adEligible(ctx, ad.ID, gameID, now)
		if err != nil {
			return nil, err
		}
		if eligible {
			seen[ad.ID] = true
			available = append(available, ad)
		}
	}
	return available, nil
}

// adEligible проверяет, есть ли у рекламы хотя бы одно расписание,
// проходящее все три фильтра: статус, окно времени, деплой на игру.
func (s *AvailabilityService) adEligible(ctx context.Context, adID, gameID uint, now time.Time) (bool, error) {
	schedules, err := s.scheduleRepo.ListByGameAd(ctx, adID)
	if err != nil {
		return false, fmt.Errorf("не удалось получить расписания рекламы #%d: %w", adID, err)
	}

	for i := range schedules {
		schedule := schedules[i]
		if !schedule.IsActive() {
			continue
		}
		if !schedule.WindowContains(now) {
			continue
		}

		deployment, err := s.deploymentRepo.GetByScheduleAndGame(ctx, schedule.ID, gameID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				// Нет деплоя — расписание ещё не развёрнуто на эту игру
				continue
			}
			return false, fmt.Errorf("не удалось проверить деплой расписания #%d: %w", schedule.ID, err)
		}
		if deployment.IsActive() {
			return true, nil
		}
	}
	return false, nil
}

// InvalidateGame сбрасывает кеш доступности игры. Вызывается при изменении
// привязок, расписаний и деплоев, затрагивающих игру.
func (s *AvailabilityService) InvalidateGame(ctx context.Context, gameID uint) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, availabilityCacheKey(gameID)); err != nil {
		log.Printf("[AvailabilityService] Ошибка инвалидации кеша для игры #%d: %v", gameID, err)
	}
}
