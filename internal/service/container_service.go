package service

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/yourusername/adnet-api/internal/domain/entity"
	"github.com/yourusername/adnet-api/internal/domain/repository"
	"github.com/yourusername/adnet-api/internal/metrics"
	apperrors "github.com/yourusername/adnet-api/internal/pkg/errors"
)

// PlaceholderAd — детерминированная заглушка, которую контейнер показывает,
// пока ему не назначена реклама. У каждого типа контейнера своя заглушка.
type PlaceholderAd struct {
	AssetRef   string                 `json:"asset_ref"`
	Properties map[string]interface{} `json:"properties"`
}

// placeholders — фиксированные заглушки по типам контейнеров
var placeholders = map[string]PlaceholderAd{
	entity.AdTypeDisplay: {
		AssetRef: "rbxassetid://default_display_banner",
		Properties: map[string]interface{}{
			"width":  1024,
			"height": 512,
			"label":  "Your ad here",
		},
	},
	entity.AdTypeNPC: {
		AssetRef: "rbxassetid://default_npc_character",
		Properties: map[string]interface{}{
			"animation": "idle",
			"label":     "Advertiser NPC",
		},
	},
	entity.AdTypeMinigame: {
		AssetRef: "rbxassetid://default_minigame_portal",
		Properties: map[string]interface{}{
			"trigger_radius": 8,
			"label":          "Minigame coming soon",
		},
	},
}

// ContainerAdResponse — ответ контейнера: либо ассеты назначенной рекламы,
// либо заглушка
type ContainerAdResponse struct {
	ContainerID   uint           `json:"container_id"`
	ContainerType string         `json:"container_type"`
	HasAd         bool           `json:"has_ad"`
	Ad            *entity.GameAd `json:"ad,omitempty"`
	Assets        []entity.Asset `json:"assets,omitempty"`
	Placeholder   *PlaceholderAd `json:"placeholder,omitempty"`
}

// Position — координаты контейнера в пространстве игры.
// Нечисловой JSON отбрасывается ещё при анмаршалинге; Valid дополнительно
// отсекает NaN и бесконечности.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Valid проверяет, что все три координаты — конечные числа
func (p Position) Valid() bool {
	for _, v := range []float64{p.X, p.Y, p.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// ContainerService отвечает за выдачу рекламы контейнерам, назначение
// рекламы, обновление позиции и запись событий вовлечённости
type ContainerService struct {
	containerRepo  repository.ContainerRepository
	gameAdRepo     repository.GameAdRepository
	assetRepo      repository.AssetRepository
	engagementRepo repository.EngagementRepository
}

// NewContainerService создаёт новый сервис контейнеров
func NewContainerService(
	containerRepo repository.ContainerRepository,
	gameAdRepo repository.GameAdRepository,
	assetRepo repository.AssetRepository,
	engagementRepo repository.EngagementRepository,
) *ContainerService {
	return &ContainerService{
		containerRepo:  containerRepo,
		gameAdRepo:     gameAdRepo,
		assetRepo:      assetRepo,
		engagementRepo: engagementRepo,
	}
}

// GetContainerAd возвращает рекламу, которую должен показать контейнер.
// Каждый успешный вызов записывает событие "view" — в том числе когда
// возвращается заглушка. Запись события обязательна: её ошибка делает
// весь вызов неуспешным.
func (s *ContainerService) GetContainerAd(ctx context.Context, containerID uint) (*ContainerAdResponse, error) {
	container, err := s.containerRepo.GetByID(ctx, containerID)
	if err != nil {
		return nil, err
	}
	if !container.IsActive() {
		return nil, fmt.Errorf("%w: контейнер #%d в статусе %s", ErrContainerInactive, containerID, container.Status)
	}

	resp := &ContainerAdResponse{
		ContainerID:   container.ID,
		ContainerType: container.Type,
	}

	if container.CurrentAdID == nil {
		placeholder := placeholders[container.Type]
		resp.Placeholder = &placeholder
	} else {
		assets, err := s.assetRepo.ListByGameAd(ctx, *container.CurrentAdID)
		if err != nil {
			return nil, fmt.Errorf("не удалось получить ассеты рекламы #%d: %w", *container.CurrentAdID, err)
		}
		resp.HasAd = true
		resp.Ad = container.CurrentAd
		resp.Assets = assets
	}

	if err := s.appendEvent(ctx, container, entity.EngagementTypeView, nil); err != nil {
		return nil, fmt.Errorf("не удалось записать событие показа: %w", err)
	}
	return resp, nil
}

// AssignAd назначает контейнеру рекламу. Реклама обязана быть привязана
// к игре контейнера — это проверяется здесь, до записи.
func (s *ContainerService) AssignAd(ctx context.Context, containerID, adID uint) (*entity.AdContainer, error) {
	container, err := s.containerRepo.GetByID(ctx, containerID)
	if err != nil {
		return nil, err
	}
	if _, err := s.gameAdRepo.GetByID(ctx, adID); err != nil {
		return nil, fmt.Errorf("реклама не найдена: %w", err)
	}

	linked, err := s.gameAdRepo.IsLinked(ctx, adID, container.GameID)
	if err != nil {
		return nil, fmt.Errorf("не удалось проверить привязку рекламы: %w", err)
	}
	if !linked {
		return nil, fmt.Errorf("%w: реклама #%d, игра #%d", ErrAdNotLinked, adID, container.GameID)
	}

	if err := s.containerRepo.SetCurrentAd(ctx, containerID, adID); err != nil {
		return nil, fmt.Errorf("не удалось назначить рекламу: %w", err)
	}

	// Перечитываем контейнер, чтобы вернуть его с денормализованными
	// Game и CurrentAd
	updated, err := s.containerRepo.GetByID(ctx, containerID)
	if err != nil {
		return nil, err
	}

	log.Printf("[ContainerService] Контейнеру #%d назначена реклама #%d", containerID, adID)
	return updated, nil
}

// UpdatePosition сохраняет новую позицию контейнера и записывает событие
// "position_update" с прежней и новой позицией. Невалидные координаты
// отклоняются до любой записи.
func (s *ContainerService) UpdatePosition(ctx context.Context, containerID, callerGameID uint, pos Position) (*entity.AdContainer, error) {
	if !pos.Valid() {
		return nil, fmt.Errorf("%w: координаты должны быть конечными числами", apperrors.ErrValidation)
	}

	container, err := s.containerRepo.GetByID(ctx, containerID)
	if err != nil {
		return nil, err
	}
	if container.GameID != callerGameID {
		return nil, fmt.Errorf("%w: контейнер принадлежит другой игре", apperrors.ErrForbidden)
	}

	previous := Position{X: container.PositionX, Y: container.PositionY, Z: container.PositionZ}

	if err := s.containerRepo.UpdatePosition(ctx, containerID, pos.X, pos.Y, pos.Z); err != nil {
		return nil, fmt.Errorf("не удалось обновить позицию: %w", err)
	}

	data := map[string]interface{}{
		"previous": map[string]interface{}{"x": previous.X, "y": previous.Y, "z": previous.Z},
		"new":      map[string]interface{}{"x": pos.X, "y": pos.Y, "z": pos.Z},
	}
	if err := s.appendEvent(ctx, container, entity.EngagementTypePositionUpdate, data); err != nil {
		return nil, fmt.Errorf("не удалось записать событие перемещения: %w", err)
	}

	container.PositionX, container.PositionY, container.PositionZ = pos.X, pos.Y, pos.Z
	return container, nil
}

// RecordEngagement записывает произвольное событие вовлечённости.
// Кроме существования контейнера и принадлежности игре ничего не
// проверяется; ошибка записи всегда возвращается вызывающему.
func (s *ContainerService) RecordEngagement(ctx context.Context, containerID, callerGameID uint, eventType string, data map[string]interface{}) (*entity.EngagementEvent, error) {
	if eventType == "" {
		return nil, fmt.Errorf("%w: event_type обязателен", apperrors.ErrValidation)
	}

	container, err := s.containerRepo.GetByID(ctx, containerID)
	if err != nil {
		return nil, err
	}
	if container.GameID != callerGameID {
		return nil, fmt.Errorf("%w: контейнер принадлежит другой игре", apperrors.ErrForbidden)
	}

	event := s.newEvent(container, eventType, data)
	if err := s.engagementRepo.Append(ctx, event); err != nil {
		return nil, fmt.Errorf("не удалось записать событие: %w", err)
	}
	metrics.EngagementEvents.WithLabelValues(eventType).Inc()
	return event, nil
}

// ListContainers возвращает контейнеры игры, самые свежие первыми
func (s *ContainerService) ListContainers(ctx context.Context, gameID uint) ([]entity.AdContainer, error) {
	return s.containerRepo.ListByGame(ctx, gameID)
}

func (s *ContainerService) newEvent(container *entity.AdContainer, eventType string, data map[string]interface{}) *entity.EngagementEvent {
	return &entity.EngagementEvent{
		ID:            uuid.NewString(),
		ContainerID:   container.ID,
		GameID:        container.GameID,
		EventType:     eventType,
		ContainerType: container.Type,
		Data:          datatypes.JSONMap(data),
		CreatedAt:     time.Now().UTC(),
	}
}

func (s *ContainerService) appendEvent(ctx context.Context, container *entity.AdContainer, eventType string, data map[string]interface{}) error {
	if err := s.engagementRepo.Append(ctx, s.newEvent(container, eventType, data)); err != nil {
		return err
	}
	metrics.EngagementEvents.WithLabelValues(eventType).Inc()
	return nil
}
