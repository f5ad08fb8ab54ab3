package entity

import (
	"time"

	"gorm.io/datatypes"
)

// Виды событий вовлечённости, которые пишет ядро
const (
	EngagementTypeView           = "view"
	EngagementTypePositionUpdate = "position_update"
)

// EngagementEvent представляет событие вовлечённости контейнера.
// Таблица append-only: события никогда не изменяются и не удаляются —
// на их основе строится биллинг за пределами этого ядра, поэтому ошибка
// записи не может замалчиваться.
type EngagementEvent struct {
	ID            string            `gorm:"primaryKey;size:36" json:"id"`
	ContainerID   uint              `gorm:"not null;index" json:"container_id"`
	GameID        uint              `gorm:"not null;index" json:"game_id"`
	EventType     string            `gorm:"size:32;not null" json:"event_type"`
	ContainerType string            `gorm:"size:20;not null" json:"container_type"`
	Data          datatypes.JSONMap `json:"data,omitempty"`
	CreatedAt     time.Time         `gorm:"index" json:"created_at"`
}

// TableName определяет имя таблицы для GORM
func (EngagementEvent) TableName() string {
	return "engagement_events"
}
