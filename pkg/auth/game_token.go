// Пакет auth содержит пограничную обвязку учетных данных игр.
// Полноценная аутентификация и выдача ключей живут вне этого ядра;
// здесь только проверка предъявленных данных и разрешение их в ID игры.
package auth

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

// GameClaims — клеймы токена игры
type GameClaims struct {
	GameID uint `json:"game_id"`
	jwt.RegisteredClaims
}

// GameTokenService выпускает и проверяет HS256-токены, привязанные к игре
type GameTokenService struct {
	secret []byte
	expiry time.Duration
}

// NewGameTokenService создаёт новый сервис токенов игр
func NewGameTokenService(secret string, expiry time.Duration) (*GameTokenService, error) {
	if secret == "" {
		return nil, fmt.Errorf("game token secret cannot be empty")
	}
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}
	return &GameTokenService{secret: []byte(secret), expiry: expiry}, nil
}

// GenerateGameToken выпускает токен для игры
func (s *GameTokenService) GenerateGameToken(gameID uint) (string, error) {
	now := time.Now()
	claims := GameClaims{
		GameID: gameID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(gameID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ParseGameToken проверяет токен и возвращает его клеймы
func (s *GameTokenService) ParseGameToken(tokenString string) (*GameClaims, error) {
	claims := &GameClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.GameID == 0 {
		return nil, fmt.Errorf("invalid game token")
	}
	return claims, nil
}

// ParseAPIKey разбирает API-ключ формата "g<gameID>.<secret>" на ID игры
// и секретную часть. Сам секрет никогда не хранится — сравнение идёт с
// bcrypt-хешем игры.
func ParseAPIKey(key string) (uint, string, error) {
	idPart, secret, found := strings.Cut(key, ".")
	if !found || !strings.HasPrefix(idPart, "g") || secret == "" {
		return 0, "", fmt.Errorf("malformed API key")
	}
	id, err := strconv.ParseUint(strings.TrimPrefix(idPart, "g"), 10, 32)
	if err != nil || id == 0 {
		return 0, "", fmt.Errorf("malformed API key")
	}
	return uint(id), secret, nil
}

// HashAPIKeySecret хеширует секретную часть API-ключа для хранения
func HashAPIKeySecret(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckAPIKeySecret сверяет секретную часть ключа с хешем игры
func CheckAPIKeySecret(hash, secret string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret))
}
