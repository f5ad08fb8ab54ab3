package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/yourusername/adnet-api/internal/domain/entity"
	"github.com/yourusername/adnet-api/internal/domain/repository"
	apperrors "github.com/yourusername/adnet-api/internal/pkg/errors"
	"github.com/yourusername/adnet-api/pkg/auth"
)

// GameService регистрирует игры и выпускает им учетные данные
type GameService struct {
	gameRepo      repository.GameRepository
	containerRepo repository.ContainerRepository
	tokenService  *auth.GameTokenService
}

// NewGameService создаёт новый сервис игр
func NewGameService(
	gameRepo repository.GameRepository,
	containerRepo repository.ContainerRepository,
	tokenService *auth.GameTokenService,
) *GameService {
	return &GameService{
		gameRepo:      gameRepo,
		containerRepo: containerRepo,
		tokenService:  tokenService,
	}
}

// RegisterGameRequest DTO для регистрации игры
type RegisterGameRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"max=500"`
	OwnerID     uint   `json:"owner_id" binding:"required"`
}

// GameCredentials содержит учетные данные, выданные игре при регистрации.
// APIKey возвращается один раз: хранится только bcrypt-хеш его секретной части.
type GameCredentials struct {
	Game   *entity.Game `json:"game"`
	APIKey string       `json:"api_key"`
	Token  string       `json:"token"`
}

// RegisterGame создаёт игру и выпускает ей API-ключ и токен.
// Секретная часть ключа генерируется на сервере и никогда не хранится
// в открытом виде.
func (s *GameService) RegisterGame(ctx context.Context, req RegisterGameRequest) (*GameCredentials, error) {
	secret := uuid.NewString()
	hash, err := auth.HashAPIKeySecret(secret)
	if err != nil {
		return nil, fmt.Errorf("не удалось захешировать секрет API-ключа: %w", err)
	}

	game := &entity.Game{
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     req.OwnerID,
		APIKeyHash:  hash,
	}
	if err := s.gameRepo.Create(ctx, game); err != nil {
		return nil, fmt.Errorf("не удалось создать игру: %w", err)
	}

	token, err := s.tokenService.GenerateGameToken(game.ID)
	if err != nil {
		return nil, fmt.Errorf("не удалось выпустить токен игры: %w", err)
	}

	log.Printf("[GameService] Зарегистрирована игра #%d: %s", game.ID, game.Name)

	return &GameCredentials{
		Game:   game,
		APIKey: fmt.Sprintf("g%d.%s", game.ID, secret),
		Token:  token,
	}, nil
}

// IssueToken выпускает новый токен для существующей игры
func (s *GameService) IssueToken(ctx context.Context, gameID uint) (string, error) {
	if _, err := s.gameRepo.GetByID(ctx, gameID); err != nil {
		return "", err
	}
	return s.tokenService.GenerateGameToken(gameID)
}

// CreateContainerRequest DTO для создания контейнера в игре
type CreateContainerRequest struct {
	Name string  `json:"name" binding:"required,min=1,max=100"`
	Type string  `json:"type" binding:"required"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Z    float64 `json:"z"`
}

// CreateContainer создаёт контейнер в игре
func (s *GameService) CreateContainer(ctx context.Context, gameID uint, req CreateContainerRequest) (*entity.AdContainer, error) {
	if !entity.IsValidContainerType(req.Type) {
		return nil, fmt.Errorf("%w: неизвестный тип контейнера '%s'", apperrors.ErrValidation, req.Type)
	}
	if _, err := s.gameRepo.GetByID(ctx, gameID); err != nil {
		return nil, err
	}

	container := &entity.AdContainer{
		GameID:    gameID,
		Name:      req.Name,
		Type:      req.Type,
		Status:    entity.ContainerStatusActive,
		PositionX: req.X,
		PositionY: req.Y,
		PositionZ: req.Z,
	}
	if err := s.containerRepo.Create(ctx, container); err != nil {
		return nil, fmt.Errorf("не удалось создать контейнер: %w", err)
	}

	log.Printf("[GameService] Создан контейнер #%d (%s) в игре #%d", container.ID, container.Type, gameID)
	return container, nil
}
