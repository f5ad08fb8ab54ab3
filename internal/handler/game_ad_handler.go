package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/adnet-api/internal/service"
)

// GameAdHandler обрабатывает HTTP запросы для управления рекламой,
// её ассетами и привязкой к играм
type GameAdHandler struct {
	gameAdService *service.GameAdService
}

// NewGameAdHandler создаёт новый обработчик рекламы
func NewGameAdHandler(gameAdService *service.GameAdService) *GameAdHandler {
	return &GameAdHandler{gameAdService: gameAdService}
}

// CreateGameAd создаёт рекламу
// POST /api/game-ads
func (h *GameAdHandler) CreateGameAd(c *gin.Context) {
	var req service.CreateGameAdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "error_type": "validation"})
		return
	}

	ad, err := h.gameAdService.CreateGameAd(c.Request.Context(), req)
	if err != nil {
		respondError(c, "[GameAdHandler]", err)
		return
	}

	c.JSON(http.StatusCreated, ad)
}

// GetGameAd возвращает рекламу по ID
// GET /api/game-ads/:id
func (h *GameAdHandler) GetGameAd(c *gin.Context) {
	adID := c.GetUint("adID")

	ad, err := h.gameAdService.GetGameAd(c.Request.Context(), adID)
	if err != nil {
		respondError(c, "[GameAdHandler]", err)
		return
	}

	c.JSON(http.StatusOK, ad)
}

// ListGameAds возвращает все рекламные кампании
// GET /api/game-ads
func (h *GameAdHandler) ListGameAds(c *gin.Context) {
	ads, err := h.gameAdService.ListGameAds(c.Request.Context())
	if err != nil {
		respondError(c, "[GameAdHandler]", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": ads, "total": len(ads)})
}

// LinkGames привязывает рекламу к играм (идемпотентно)
// POST /api/game-ads/:id/link-games
func (h *GameAdHandler) LinkGames(c *gin.Context) {
	adID := c.GetUint("adID")

	var req struct {
		GameIDs []uint `json:"game_ids" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "error_type": "validation"})
		return
	}

	if err := h.gameAdService.LinkGames(c.Request.Context(), adID, req.GameIDs); err != nil {
		respondError(c, "[GameAdHandler]", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "games linked", "game_ids": req.GameIDs})
}

// AddAsset добавляет ассет к рекламе
// POST /api/game-ads/:id/assets
func (h *GameAdHandler) AddAsset(c *gin.Context) {
	adID := c.GetUint("adID")

	var req service.AddAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "error_type": "validation"})
		return
	}

	asset, err := h.gameAdService.AddAsset(c.Request.Context(), adID, req)
	if err != nil {
		respondError(c, "[GameAdHandler]", err)
		return
	}

	c.JSON(http.StatusCreated, asset)
}

// ListAssets возвращает ассеты рекламы
// GET /api/game-ads/:id/assets
func (h *GameAdHandler) ListAssets(c *gin.Context) {
	adID := c.GetUint("adID")

	assets, err := h.gameAdService.ListAssets(c.Request.Context(), adID)
	if err != nil {
		respondError(c, "[GameAdHandler]", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": assets, "total": len(assets)})
}
