package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/adnet-api/internal/service"
)

// GameHandler обрабатывает регистрацию игр и запросы игровых серверов:
// доступная реклама и контейнеры игры
type GameHandler struct {
	gameService         *service.GameService
	availabilityService *service.AvailabilityService
	containerService    *service.ContainerService
}

// NewGameHandler создаёт новый обработчик игровых запросов
func NewGameHandler(
	gameService *service.GameService,
	availabilityService *service.AvailabilityService,
	containerService *service.ContainerService,
) *GameHandler {
	return &GameHandler{
		gameService:         gameService,
		availabilityService: availabilityService,
		containerService:    containerService,
	}
}

// RegisterGame регистрирует игру и выдаёт ей учетные данные.
// API-ключ возвращается только в этом ответе
// POST /api/games
func (h *GameHandler) RegisterGame(c *gin.Context) {
	var req service.RegisterGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "error_type": "validation"})
		return
	}

	creds, err := h.gameService.RegisterGame(c.Request.Context(), req)
	if err != nil {
		respondError(c, "[GameHandler]", err)
		return
	}

	c.JSON(http.StatusCreated, creds)
}

// CreateContainer создаёт контейнер в игре вызывающего
// POST /api/games/:gameId/containers
func (h *GameHandler) CreateContainer(c *gin.Context) {
	gameID := c.GetUint("gameID")

	var req service.CreateContainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "error_type": "validation"})
		return
	}

	container, err := h.gameService.CreateContainer(c.Request.Context(), gameID, req)
	if err != nil {
		respondError(c, "[GameHandler]", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"container": container})
}

// IssueToken выпускает игре свежий токен. Игра аутентифицируется
// API-ключом и получает токен для последующих запросов
// POST /api/games/:gameId/token
func (h *GameHandler) IssueToken(c *gin.Context) {
	gameID := c.GetUint("gameID")

	token, err := h.gameService.IssueToken(c.Request.Context(), gameID)
	if err != nil {
		respondError(c, "[GameHandler]", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// AvailableAds возвращает рекламу, доступную игре прямо сейчас
// GET /api/games/:gameId/ads/available
func (h *GameHandler) AvailableAds(c *gin.Context) {
	gameID := c.GetUint("gameID")

	ads, err := h.availabilityService.AvailableAds(c.Request.Context(), gameID)
	if err != nil {
		respondError(c, "[GameHandler]", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ads":       ads,
		"total":     len(ads),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// ListContainers возвращает контейнеры игры, самые свежие первыми
// GET /api/games/:gameId/containers
func (h *GameHandler) ListContainers(c *gin.Context) {
	gameID := c.GetUint("gameID")

	containers, err := h.containerService.ListContainers(c.Request.Context(), gameID)
	if err != nil {
		respondError(c, "[GameHandler]", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"containers": containers, "total": len(containers)})
}
