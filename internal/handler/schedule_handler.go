package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/adnet-api/internal/service"
)

// ScheduleHandler обрабатывает HTTP запросы для управления расписаниями
// и их деплоями
type ScheduleHandler struct {
	scheduleService *service.ScheduleService
}

// NewScheduleHandler создаёт новый обработчик расписаний
func NewScheduleHandler(scheduleService *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

// ListSchedules возвращает расписания по фильтрам game_ad_id и game_id
// GET /api/schedules?game_ad_id=&game_id=
func (h *ScheduleHandler) ListSchedules(c *gin.Context) {
	gameAdID, ok := optionalUintQuery(c, "game_ad_id")
	if !ok {
		return
	}
	gameID, ok := optionalUintQuery(c, "game_id")
	if !ok {
		return
	}

	schedules, err := h.scheduleService.ListSchedules(c.Request.Context(), gameAdID, gameID)
	if err != nil {
		respondError(c, "[ScheduleHandler]", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total":     len(schedules),
		"schedules": schedules,
	})
}

// CreateSchedule создаёт расписание (и деплои, если заданы)
// POST /api/schedules
func (h *ScheduleHandler) CreateSchedule(c *gin.Context) {
	var req service.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "error_type": "validation"})
		return
	}

	schedule, err := h.scheduleService.CreateSchedule(c.Request.Context(), req)
	if err != nil {
		respondError(c, "[ScheduleHandler]", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"schedule": schedule})
}

// UpdateScheduleStatus изменяет статус расписания
// PUT /api/schedules/:id/status
func (h *ScheduleHandler) UpdateScheduleStatus(c *gin.Context) {
	scheduleID := c.GetUint("scheduleID")

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "error_type": "validation"})
		return
	}

	schedule, err := h.scheduleService.UpdateScheduleStatus(c.Request.Context(), scheduleID, req.Status)
	if err != nil {
		respondError(c, "[ScheduleHandler]", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"schedule": schedule})
}

// ListDeployments возвращает все деплои расписания
// GET /api/schedules/:id/deployments
func (h *ScheduleHandler) ListDeployments(c *gin.Context) {
	scheduleID := c.GetUint("scheduleID")

	deployments, err := h.scheduleService.ListDeployments(c.Request.Context(), scheduleID)
	if err != nil {
		respondError(c, "[ScheduleHandler]", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total":       len(deployments),
		"deployments": deployments,
	})
}

// CreateDeployment разворачивает расписание на игру
// POST /api/schedules/:id/deployments
func (h *ScheduleHandler) CreateDeployment(c *gin.Context) {
	scheduleID := c.GetUint("scheduleID")

	var req service.CreateDeploymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "error_type": "validation"})
		return
	}

	deployment, err := h.scheduleService.CreateDeployment(c.Request.Context(), scheduleID, req)
	if err != nil {
		respondError(c, "[ScheduleHandler]", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"deployment": deployment})
}

// UpdateDeployment изменяет статус деплоя
// PUT /api/schedules/:id/deployments
func (h *ScheduleHandler) UpdateDeployment(c *gin.Context) {
	var req struct {
		ID     uint   `json:"id" binding:"required"`
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "error_type": "validation"})
		return
	}

	deployment, err := h.scheduleService.UpdateDeploymentStatus(c.Request.Context(), req.ID, req.Status)
	if err != nil {
		respondError(c, "[ScheduleHandler]", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deployment": deployment})
}

// optionalUintQuery извлекает необязательный числовой query-параметр.
// Невалидное значение — 400 и false вторым результатом.
func optionalUintQuery(c *gin.Context, name string) (*uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name, "error_type": "validation"})
		return nil, false
	}
	val := uint(parsed)
	return &val, true
}
