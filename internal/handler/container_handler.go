package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/adnet-api/internal/middleware"
	"github.com/yourusername/adnet-api/internal/service"
)

// ContainerHandler обрабатывает запросы к рекламным контейнерам
type ContainerHandler struct {
	containerService *service.ContainerService
}

// NewContainerHandler создаёт новый обработчик контейнеров
func NewContainerHandler(containerService *service.ContainerService) *ContainerHandler {
	return &ContainerHandler{containerService: containerService}
}

// GetAd возвращает текущую рекламу контейнера или заглушку
// GET /api/containers/:id/ad
func (h *ContainerHandler) GetAd(c *gin.Context) {
	containerID := c.GetUint("containerID")

	resp, err := h.containerService.GetContainerAd(c.Request.Context(), containerID)
	if err != nil {
		respondError(c, "[ContainerHandler]", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// AssignAdRequest представляет запрос на назначение рекламы контейнеру
type AssignAdRequest struct {
	AdID uint `json:"ad_id" binding:"required"`
}

// AssignAd назначает рекламу контейнеру (админский маршрут)
// PUT /api/containers/:id/ad
func (h *ContainerHandler) AssignAd(c *gin.Context) {
	containerID := c.GetUint("containerID")

	var req AssignAdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "error_type": "validation"})
		return
	}

	container, err := h.containerService.AssignAd(c.Request.Context(), containerID, req.AdID)
	if err != nil {
		respondError(c, "[ContainerHandler]", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"container": container})
}

// UpdatePositionRequest представляет запрос на обновление позиции контейнера.
// Указатели различают отсутствующую координату и нулевую
type UpdatePositionRequest struct {
	X *float64 `json:"x" binding:"required"`
	Y *float64 `json:"y" binding:"required"`
	Z *float64 `json:"z" binding:"required"`
}

// UpdatePosition обновляет позицию контейнера в мире игры
// PUT /api/containers/:id/position
func (h *ContainerHandler) UpdatePosition(c *gin.Context) {
	containerID := c.GetUint("containerID")
	gameID := c.GetUint(middleware.ContextGameID)

	var req UpdatePositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "error_type": "validation"})
		return
	}

	pos := service.Position{X: *req.X, Y: *req.Y, Z: *req.Z}
	container, err := h.containerService.UpdatePosition(c.Request.Context(), containerID, gameID, pos)
	if err != nil {
		respondError(c, "[ContainerHandler]", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"container": container})
}

// EngagementRequest представляет событие взаимодействия от игрового сервера
type EngagementRequest struct {
	EventType string                 `json:"event_type" binding:"required"`
	Data      map[string]interface{} `json:"data"`
}

// RecordEngagement записывает событие взаимодействия с контейнером
// POST /api/containers/:id/engagement
func (h *ContainerHandler) RecordEngagement(c *gin.Context) {
	containerID := c.GetUint("containerID")
	gameID := c.GetUint(middleware.ContextGameID)

	var req EngagementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "error_type": "validation"})
		return
	}

	event, err := h.containerService.RecordEngagement(c.Request.Context(), containerID, gameID, req.EventType, req.Data)
	if err != nil {
		respondError(c, "[ContainerHandler]", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"event": event})
}
