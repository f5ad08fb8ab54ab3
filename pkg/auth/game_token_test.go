package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameTokenService_GenerateAndParse(t *testing.T) {
	// Arrange
	svc, err := NewGameTokenService("test-secret", time.Hour)
	require.NoError(t, err)

	// Act
	token, err := svc.GenerateGameToken(42)
	require.NoError(t, err)

	claims, err := svc.ParseGameToken(token)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.GameID)
}

func TestGameTokenService_RejectsWrongSecret(t *testing.T) {
	// Arrange
	issuer, err := NewGameTokenService("secret-a", time.Hour)
	require.NoError(t, err)
	verifier, err := NewGameTokenService("secret-b", time.Hour)
	require.NoError(t, err)

	token, err := issuer.GenerateGameToken(42)
	require.NoError(t, err)

	// Act
	claims, err := verifier.ParseGameToken(token)

	// Assert
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestGameTokenService_RejectsExpired(t *testing.T) {
	// Arrange: отрицательный expiry даёт уже истёкший токен
	svc := &GameTokenService{secret: []byte("test-secret"), expiry: -time.Hour}

	token, err := svc.GenerateGameToken(42)
	require.NoError(t, err)

	// Act
	claims, err := svc.ParseGameToken(token)

	// Assert
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestGameTokenService_EmptySecret(t *testing.T) {
	svc, err := NewGameTokenService("", time.Hour)
	assert.Error(t, err)
	assert.Nil(t, svc)
}

func TestParseAPIKey_Valid(t *testing.T) {
	// Act
	gameID, secret, err := ParseAPIKey("g42.super-secret-value")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, uint(42), gameID)
	assert.Equal(t, "super-secret-value", secret)
}

func TestParseAPIKey_Malformed(t *testing.T) {
	cases := []string{
		"",
		"g42",         // нет секрета
		"42.secret",   // нет префикса
		"g.secret",    // нет ID
		"gabc.secret", // нечисловой ID
		"g0.secret",   // нулевой ID
		"g42.",        // пустой секрет
	}
	for _, key := range cases {
		_, _, err := ParseAPIKey(key)
		assert.Error(t, err, "ключ %q должен быть отвергнут", key)
	}
}

func TestAPIKeySecret_HashAndCheck(t *testing.T) {
	// Arrange
	hash, err := HashAPIKeySecret("super-secret")
	require.NoError(t, err)
	assert.NotEqual(t, "super-secret", hash, "Секрет не хранится в открытом виде")

	// Act & Assert
	assert.NoError(t, CheckAPIKeySecret(hash, "super-secret"))
	assert.Error(t, CheckAPIKeySecret(hash, "wrong-secret"))
}
