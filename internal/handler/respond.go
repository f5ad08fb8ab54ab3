package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/yourusername/adnet-api/internal/pkg/errors"
	"github.com/yourusername/adnet-api/internal/service"
)

// respondError переводит ошибку сервиса в HTTP-ответ по общей таксономии.
// Внутренние ошибки логируются с контекстом, но наружу уходит только
// общий текст — детали хранилища и учетные данные не раскрываются.
func respondError(c *gin.Context, logPrefix string, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "error_type": "validation"})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found", "error_type": "not_found"})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized", "error_type": "unauthorized"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden", "error_type": "forbidden"})
	case errors.Is(err, service.ErrAdNotLinked):
		c.JSON(http.StatusForbidden, gin.H{"error": "ad not assigned to this game", "error_type": "ad_not_linked"})
	case errors.Is(err, service.ErrContainerInactive):
		c.JSON(http.StatusConflict, gin.H{"error": "container is not active", "error_type": "container_inactive"})
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "resource state conflict", "error_type": "conflict"})
	case errors.Is(err, apperrors.ErrUnavailable):
		log.Printf("%s Хранилище недоступно: %v", logPrefix, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "dependency unavailable, retry later", "error_type": "unavailable"})
	default:
		log.Printf("%s Внутренняя ошибка: %v", logPrefix, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error", "error_type": "internal"})
	}
}
