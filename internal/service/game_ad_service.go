package service

import (
	"context"
	"fmt"
	"log"

	"gorm.io/datatypes"

	"github.com/yourusername/adnet-api/internal/domain/entity"
	"github.com/yourusername/adnet-api/internal/domain/repository"
	"github.com/yourusername/adnet-api/internal/typing"
)

// GameAdService управляет рекламными кампаниями, их ассетами и привязкой
// к играм
type GameAdService struct {
	gameAdRepo  repository.GameAdRepository
	gameRepo    repository.GameRepository
	assetRepo   repository.AssetRepository
	invalidator AvailabilityInvalidator
}

// NewGameAdService создаёт новый сервис рекламы
func NewGameAdService(
	gameAdRepo repository.GameAdRepository,
	gameRepo repository.GameRepository,
	assetRepo repository.AssetRepository,
	invalidator AvailabilityInvalidator,
) *GameAdService {
	return &GameAdService{
		gameAdRepo:  gameAdRepo,
		gameRepo:    gameRepo,
		assetRepo:   assetRepo,
		invalidator: invalidator,
	}
}

// CreateGameAdRequest DTO для создания рекламы. AdType принимает и устаревшие
// обозначения — он нормализуется при записи.
type CreateGameAdRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"max=500"`
	AdType      string `json:"ad_type" binding:"required"`
}

// CreateGameAd создаёт рекламу с каноническим типом
func (s *GameAdService) CreateGameAd(ctx context.Context, req CreateGameAdRequest) (*entity.GameAd, error) {
	ad := &entity.GameAd{
		Name:        req.Name,
		Description: req.Description,
		AdType:      typing.NormalizeAdType(req.AdType),
	}
	if err := s.gameAdRepo.Create(ctx, ad); err != nil {
		return nil, fmt.Errorf("не удалось создать рекламу: %w", err)
	}
	log.Printf("[GameAdService] Создана реклама #%d: %s (%s)", ad.ID, ad.Name, ad.AdType)
	return ad, nil
}

// GetGameAd возвращает рекламу по ID
func (s *GameAdService) GetGameAd(ctx context.Context, id uint) (*entity.GameAd, error) {
	return s.gameAdRepo.GetByID(ctx, id)
}

// ListGameAds возвращает все рекламные кампании
func (s *GameAdService) ListGameAds(ctx context.Context) ([]entity.GameAd, error) {
	return s.gameAdRepo.List(ctx)
}

// LinkGames привязывает рекламу к перечисленным играм. Операция
// идемпотентна: уже существующая привязка — no-op. Все игры проверяются
// до первой записи, чтобы частично применённый запрос не оставлял
// неожиданных привязок.
func (s *GameAdService) LinkGames(ctx context.Context, adID uint, gameIDs []uint) error {
	if _, err := s.gameAdRepo.GetByID(ctx, adID); err != nil {
		return fmt.Errorf("реклама не найдена: %w", err)
	}
	for _, gameID := range gameIDs {
		if _, err := s.gameRepo.GetByID(ctx, gameID); err != nil {
			return fmt.Errorf("игра #%d не найдена: %w", gameID, err)
		}
	}

	for _, gameID := range gameIDs {
		if err := s.gameAdRepo.LinkGame(ctx, adID, gameID); err != nil {
			return fmt.Errorf("не удалось привязать рекламу #%d к игре #%d: %w", adID, gameID, err)
		}
		s.invalidator.InvalidateGame(ctx, gameID)
	}

	log.Printf("[GameAdService] Реклама #%d привязана к играм %v", adID, gameIDs)
	return nil
}

// UnlinkGame снимает привязку рекламы к игре
func (s *GameAdService) UnlinkGame(ctx context.Context, adID, gameID uint) error {
	if err := s.gameAdRepo.UnlinkGame(ctx, adID, gameID); err != nil {
		return fmt.Errorf("не удалось отвязать рекламу: %w", err)
	}
	s.invalidator.InvalidateGame(ctx, gameID)
	log.Printf("[GameAdService] Реклама #%d отвязана от игры #%d", adID, gameID)
	return nil
}

// AddAssetRequest DTO для добавления ассета к рекламе. Загрузка и хранение
// самих медиа-файлов выполняются вне этого ядра; здесь сохраняются
// метаданные и результат типизации.
type AddAssetRequest struct {
	Name            string `json:"name" binding:"required,min=1,max=100"`
	Source          string `json:"source" binding:"required,oneof=LOCAL_UPLOAD ROBLOX_ID"`
	DeclaredType    string `json:"declared_type" binding:"required"`
	ExternalAssetID string `json:"external_asset_id"`
	Filename        string `json:"filename"`
	MimeType        string `json:"mime_type"`
}

// AddAsset добавляет к рекламе ассет, прогоняя заявленный тип через
// канонический резолвер
func (s *GameAdService) AddAsset(ctx context.Context, adID uint, req AddAssetRequest) (*entity.Asset, error) {
	if _, err := s.gameAdRepo.GetByID(ctx, adID); err != nil {
		return nil, fmt.Errorf("реклама не найдена: %w", err)
	}

	resolved := typing.ResolveAssetType(req.Source, req.DeclaredType, req.ExternalAssetID, req.Filename, req.MimeType)

	asset := &entity.Asset{
		GameAdID:        adID,
		Name:            req.Name,
		Source:          req.Source,
		DeclaredType:    req.DeclaredType,
		ExternalAssetID: req.ExternalAssetID,
		Filename:        req.Filename,
		MimeType:        req.MimeType,
		PlatformType:    resolved.PlatformType,
		PlatformSubtype: resolved.PlatformSubtype,
		PlatformTypeID:  resolved.PlatformTypeID,
		CanonicalType:   resolved.CanonicalType,
		Capabilities:    datatypes.JSONMap(resolved.Capabilities),
	}
	if err := s.assetRepo.Create(ctx, asset); err != nil {
		return nil, fmt.Errorf("не удалось сохранить ассет: %w", err)
	}

	log.Printf("[GameAdService] Добавлен ассет #%d к рекламе #%d: %s -> %s", asset.ID, adID, req.DeclaredType, asset.CanonicalType)
	return asset, nil
}

// ListAssets возвращает ассеты рекламы
func (s *GameAdService) ListAssets(ctx context.Context, adID uint) ([]entity.Asset, error) {
	return s.assetRepo.ListByGameAd(ctx, adID)
}
