package entity

import "time"

// Game представляет игру партнёра, в которой показывается реклама.
// Ядро планировщика не изменяет игры — они служат целью внешних ключей
// и источником учетных данных (API-ключ игры).
type Game struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:500;not null;default:''" json:"description"`
	OwnerID     uint   `gorm:"not null;index" json:"owner_id"`

	// APIKeyHash — bcrypt-хеш секретной части API-ключа игры.
	// Сам ключ никогда не хранится и не логируется.
	APIKeyHash string `gorm:"size:100;not null;default:''" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (Game) TableName() string {
	return "games"
}
