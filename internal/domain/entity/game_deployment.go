package entity

import "time"

// GameDeployment представляет развёртывание одного расписания на одну игру.
// Пара (schedule_id, game_id) уникальна: на расписание и игру может
// существовать не более одной записи. Уникальность обеспечивается
// constraint-ом в БД, а не проверкой перед вставкой.
type GameDeployment struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	ScheduleID uint   `gorm:"not null;uniqueIndex:idx_deployments_schedule_game" json:"schedule_id"`
	GameID     uint   `gorm:"not null;uniqueIndex:idx_deployments_schedule_game;index" json:"game_id"`
	Status     string `gorm:"size:20;not null;default:'ACTIVE'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (GameDeployment) TableName() string {
	return "game_deployments"
}

// IsActive проверяет, что деплой имеет канонический статус ACTIVE
func (d *GameDeployment) IsActive() bool {
	return ParseStatus(d.Status) == StatusActive
}
