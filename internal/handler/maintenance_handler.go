package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/adnet-api/internal/service"
)

// MaintenanceHandler запускает обслуживающие задачи по HTTP
type MaintenanceHandler struct {
	maintenanceService *service.MaintenanceService
}

// NewMaintenanceHandler создаёт новый обработчик обслуживающих задач
func NewMaintenanceHandler(maintenanceService *service.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{maintenanceService: maintenanceService}
}

// DedupDeployments удаляет дубликаты деплойментов
// POST /api/admin/maintenance/dedup-deployments
func (h *MaintenanceHandler) DedupDeployments(c *gin.Context) {
	summary, err := h.maintenanceService.DedupDeployments(c.Request.Context())
	if err != nil {
		respondError(c, "[MaintenanceHandler]", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"job": "dedup_deployments", "summary": summary})
}

// RetypeAssets пересчитывает типизацию всех ассетов
// POST /api/admin/maintenance/retype-assets
func (h *MaintenanceHandler) RetypeAssets(c *gin.Context) {
	summary, err := h.maintenanceService.RetypeAssets(c.Request.Context())
	if err != nil {
		respondError(c, "[MaintenanceHandler]", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"job": "retype_assets", "summary": summary})
}
