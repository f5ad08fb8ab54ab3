package entity

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Статусы расписаний и деплоев. Статус парсится в эти значения на границе
// записи (см. ParseStatus) и дальше сравнивается только как константа —
// сырые строки внутри ядра не сравниваются.
const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
	StatusPending  = "PENDING"
)

// ParseStatus приводит произвольную строку статуса к одному из трёх
// канонических значений. Сравнение регистронезависимое, пробелы по краям
// отбрасываются. Нераспознанное значение (включая пустое) считается ACTIVE.
func ParseStatus(raw string) string {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case StatusInactive:
		return StatusInactive
	case StatusPending:
		return StatusPending
	default:
		return StatusActive
	}
}

// PlaylistSchedule представляет запланированный запуск рекламы внутри плейлиста
// на фиксированный диапазон дат. Длительность всегда задаётся в целых днях.
type PlaylistSchedule struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	PlaylistID   uint      `gorm:"not null;index" json:"playlist_id"`
	GameAdID     uint      `gorm:"not null;index" json:"game_ad_id"`
	StartDate    time.Time `gorm:"not null;index" json:"start_date"`
	DurationDays int       `gorm:"not null;default:0" json:"duration_days"`
	Status       string    `gorm:"size:20;not null;default:'ACTIVE';index" json:"status"`

	// EndDate — производное поле: всегда StartDate + DurationDays суток.
	// Хранится для удобства выборок, но никогда не задаётся независимо:
	// BeforeSave пересчитывает его при каждой записи.
	EndDate time.Time `gorm:"not null" json:"end_date"`

	Deployments []GameDeployment `gorm:"foreignKey:ScheduleID" json:"deployments,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (PlaylistSchedule) TableName() string {
	return "playlist_schedules"
}

// ComputedEndDate возвращает конец окна показа: StartDate + DurationDays суток
func (s *PlaylistSchedule) ComputedEndDate() time.Time {
	return s.StartDate.Add(time.Duration(s.DurationDays) * 24 * time.Hour)
}

// BeforeSave пересчитывает EndDate перед любой записью, чтобы инвариант
// EndDate == StartDate + DurationDays суток не мог быть нарушен правкой
// длительности.
func (s *PlaylistSchedule) BeforeSave(tx *gorm.DB) error {
	s.EndDate = s.ComputedEndDate()
	return nil
}

// IsActive проверяет, что расписание имеет канонический статус ACTIVE
func (s *PlaylistSchedule) IsActive() bool {
	return ParseStatus(s.Status) == StatusActive
}

// WindowContains проверяет попадание момента времени в окно показа.
// Интервал полуоткрытый: начало включается, конец исключается.
func (s *PlaylistSchedule) WindowContains(now time.Time) bool {
	return !now.Before(s.StartDate) && now.Before(s.ComputedEndDate())
}
