package entity

import (
	"time"

	"gorm.io/datatypes"
)

// Источники происхождения ассета
const (
	AssetSourceLocalUpload = "LOCAL_UPLOAD"
	AssetSourceRobloxID    = "ROBLOX_ID"
)

// Asset представляет медиа-ресурс рекламы вместе с результатом канонической
// типизации (см. typing.ResolveAssetType). Поля типизации принадлежат
// резолверу и перезаписываются при повторной типизации; имя и описание
// вводятся человеком и резолвером не затрагиваются.
type Asset struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	GameAdID uint   `gorm:"not null;index" json:"game_ad_id"`
	Name     string `gorm:"size:100;not null" json:"name"`

	// Исходные данные, по которым выполнялась типизация. Хранятся, чтобы
	// backfill мог повторить резолвинг при изменении правил.
	Source          string `gorm:"size:20;not null" json:"source"`
	DeclaredType    string `gorm:"size:100;not null" json:"declared_type"`
	ExternalAssetID string `gorm:"size:100;not null;default:''" json:"external_asset_id,omitempty"`
	Filename        string `gorm:"size:255;not null;default:''" json:"filename,omitempty"`
	MimeType        string `gorm:"size:100;not null;default:''" json:"mime_type,omitempty"`

	// Результат типизации.
	PlatformType    string            `gorm:"size:50;not null" json:"platform_type"`
	PlatformSubtype string            `gorm:"size:50;not null;default:''" json:"platform_subtype,omitempty"`
	PlatformTypeID  *int              `json:"platform_type_id,omitempty"`
	CanonicalType   string            `gorm:"size:50;not null;index" json:"canonical_type"`
	Capabilities    datatypes.JSONMap `json:"capabilities,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (Asset) TableName() string {
	return "ad_assets"
}
