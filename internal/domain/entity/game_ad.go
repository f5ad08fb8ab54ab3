package entity

import "time"

// Канонические типы рекламы. Любой "сырой" тип из внешних систем
// приводится к одному из этих трёх значений (см. пакет typing).
const (
	AdTypeDisplay  = "DISPLAY"
	AdTypeNPC      = "NPC"
	AdTypeMinigame = "MINIGAME"
)

// GameAd представляет рекламную кампанию, размещаемую в играх партнёров
type GameAd struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:500;not null;default:''" json:"description"`
	AdType      string `gorm:"size:20;not null;default:'DISPLAY';index" json:"ad_type"`

	// LinkedGames — игры, к которым привязана реклама. Привязка является
	// границей авторизации: реклама без привязки к игре никогда не может
	// быть доступна этой игре.
	LinkedGames []Game `gorm:"many2many:game_ad_games" json:"linked_games,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (GameAd) TableName() string {
	return "game_ads"
}

// IsDisplay проверяет, является ли реклама баннерной
func (a *GameAd) IsDisplay() bool {
	return a.AdType == AdTypeDisplay
}

// IsNPC проверяет, является ли реклама NPC-персонажем
func (a *GameAd) IsNPC() bool {
	return a.AdType == AdTypeNPC
}

// IsMinigame проверяет, является ли реклама мини-игрой
func (a *GameAd) IsMinigame() bool {
	return a.AdType == AdTypeMinigame
}
