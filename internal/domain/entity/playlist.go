package entity

import "time"

// Playlist представляет плейлист рекламодателя, внутри которого планируются
// запуски рекламы. Здесь плейлист нужен только как цель внешнего ключа
// для расписаний.
type Playlist struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	OwnerID   uint      `gorm:"not null;index" json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (Playlist) TableName() string {
	return "playlists"
}
