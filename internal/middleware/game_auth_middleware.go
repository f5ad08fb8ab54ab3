package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/adnet-api/internal/domain/repository"
	"github.com/yourusername/adnet-api/pkg/auth"
)

// Ключ контекста Gin, под которым хранится ID аутентифицированной игры
const ContextGameID = "game_id"

// GameAuthMiddleware разрешает предъявленные учетные данные в ID игры.
// Поддерживаются два способа: Bearer-токен игры и заголовок X-API-Key
// формата "g<gameID>.<secret>". Сырые учетные данные никогда не логируются.
type GameAuthMiddleware struct {
	tokenService *auth.GameTokenService
	gameRepo     repository.GameRepository
}

// NewGameAuthMiddleware создаёт новый middleware аутентификации игр
func NewGameAuthMiddleware(tokenService *auth.GameTokenService, gameRepo repository.GameRepository) *GameAuthMiddleware {
	return &GameAuthMiddleware{
		tokenService: tokenService,
		gameRepo:     gameRepo,
	}
}

// RequireGame проверяет учетные данные игры и кладёт её ID в контекст
func (m *GameAuthMiddleware) RequireGame() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Сначала проверяем Bearer-токен
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}", "error_type": "token_format"})
				c.Abort()
				return
			}
			claims, err := m.tokenService.ParseGameToken(parts[1])
			if err != nil {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired game token", "error_type": "token_invalid"})
				c.Abort()
				return
			}
			c.Set(ContextGameID, claims.GameID)
			c.Next()
			return
		}

		// Затем — API-ключ
		apiKey := c.GetHeader("X-API-Key")
		if apiKey == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Game credential is required", "error_type": "credential_missing"})
			c.Abort()
			return
		}

		gameID, secret, err := auth.ParseAPIKey(apiKey)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Malformed API key", "error_type": "credential_malformed"})
			c.Abort()
			return
		}

		game, err := m.gameRepo.GetByID(c.Request.Context(), gameID)
		if err != nil {
			// Не раскрываем, существует ли игра
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key", "error_type": "credential_invalid"})
			c.Abort()
			return
		}
		if err := auth.CheckAPIKeySecret(game.APIKeyHash, secret); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key", "error_type": "credential_invalid"})
			c.Abort()
			return
		}

		c.Set(ContextGameID, gameID)
		c.Next()
	}
}

// RequireGameOwner проверяет, что аутентифицированная игра совпадает
// с игрой из URL. Должен применяться ПОСЛЕ RequireGame и ExtractUintParam.
func (m *GameAuthMiddleware) RequireGameOwner(paramContextKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authedID, exists := c.Get(ContextGameID)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized", "error_type": "credential_missing"})
			c.Abort()
			return
		}
		targetID, exists := c.Get(paramContextKey)
		if !exists || authedID.(uint) != targetID.(uint) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Credential does not own this game", "error_type": "wrong_game"})
			c.Abort()
			return
		}
		c.Next()
	}
}
