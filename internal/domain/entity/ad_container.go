package entity

import "time"

// Статусы рекламных контейнеров
const (
	ContainerStatusActive      = "ACTIVE"
	ContainerStatusInactive    = "INACTIVE"
	ContainerStatusMaintenance = "MAINTENANCE"
)

// AdContainer представляет именованный слот внутри игры (рекламный экран,
// NPC или триггер мини-игры), который может показывать одну рекламу
// одновременно. Контейнер живёт столько же, сколько игра; мутируется только
// обновлением позиции и (пере)назначением рекламы.
type AdContainer struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	GameID uint   `gorm:"not null;index" json:"game_id"`
	Name   string `gorm:"size:100;not null;default:''" json:"name"`

	// Type — канонический тип рекламы, которую может показывать контейнер
	// (DISPLAY, NPC или MINIGAME).
	Type   string `gorm:"size:20;not null" json:"type"`
	Status string `gorm:"size:20;not null;default:'ACTIVE'" json:"status"`

	PositionX float64 `gorm:"not null;default:0" json:"position_x"`
	PositionY float64 `gorm:"not null;default:0" json:"position_y"`
	PositionZ float64 `gorm:"not null;default:0" json:"position_z"`

	// CurrentAdID — назначенная реклама. Должна быть привязана к игре
	// контейнера; это мягкий инвариант, который проверяет сервис назначения
	// перед записью, а не хранилище.
	CurrentAdID *uint   `gorm:"index" json:"current_ad_id,omitempty"`
	CurrentAd   *GameAd `gorm:"foreignKey:CurrentAdID" json:"current_ad,omitempty"`
	Game        *Game   `gorm:"foreignKey:GameID" json:"game,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (AdContainer) TableName() string {
	return "ad_containers"
}

// IsActive проверяет, что контейнер активен и может отдавать рекламу
func (c *AdContainer) IsActive() bool {
	return c.Status == ContainerStatusActive
}

// IsValidContainerType проверяет, что тип контейнера входит в канонический перечень
func IsValidContainerType(t string) bool {
	return t == AdTypeDisplay || t == AdTypeNPC || t == AdTypeMinigame
}
