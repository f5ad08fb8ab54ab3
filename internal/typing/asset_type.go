package typing

import (
	"strings"

	"github.com/yourusername/adnet-api/internal/domain/entity"
	"github.com/yourusername/adnet-api/internal/metrics"
)

// Канонические типы ассетов вида "<тип рекламы>.<подтип>"
const (
	CanonicalDisplayImage  = "DISPLAY.image"
	CanonicalDisplayVideo  = "DISPLAY.video"
	CanonicalDisplayAudio  = "DISPLAY.audio"
	CanonicalNPCCharacter  = "NPC.character_model"
	CanonicalNPCAnimation  = "NPC.animation"
	CanonicalMinigameModel = "MINIGAME.minigame_model"
	PlatformTypeUnknown    = "Unknown"
	PlatformSubtypeSignage = "signage"
)

// Числовые идентификаторы типов ассетов платформы Roblox
const (
	robloxTypeImage     = 1
	robloxTypeTShirt    = 2
	robloxTypeAudio     = 3
	robloxTypeMesh      = 4
	robloxTypeHat       = 8
	robloxTypePlace     = 9
	robloxTypeModel     = 10
	robloxTypeShirt     = 11
	robloxTypePants     = 12
	robloxTypeDecal     = 13
	robloxTypeAnimation = 24
	robloxTypeVideo     = 62
)

// ResolvedAssetType — результат канонической типизации ассета
type ResolvedAssetType struct {
	// PlatformType — тип ассета в терминах платформы ("Image", "Video", ...)
	PlatformType string
	// PlatformSubtype — уточнение платформенного типа, если оно есть
	PlatformSubtype string
	// PlatformTypeID — числовой идентификатор типа на платформе, если определён
	PlatformTypeID *int
	// CanonicalType — внутренняя классификация вида "<AdType>.<subtype>"
	CanonicalType string
	// Source — источник происхождения ассета (передаётся без изменений)
	Source string
	// Capabilities — метаданные (mime-тип, имя файла, внешний id), переданные
	// без какой-либо дополнительной валидации
	Capabilities map[string]interface{}
}

// ResolveAssetType приводит заявленный тип ассета к канонической таксономии.
// Заявленный тип приводится к нижнему регистру и очищается от всех
// не-алфавитно-цифровых символов, после чего сначала проверяются составные
// псевдонимы (варианты "multimedia signage" должны разрешиться в видео до
// попадания в общий switch), затем — фиксированная таблица типов.
// Нераспознанный тип — {Unknown, DISPLAY.image}; каждое такое срабатывание
// учитывается в metrics.TypeFallbacks.
//
// Функция детерминирована и без побочных эффектов (кроме счётчика), поэтому
// её безопасно повторно запускать при изменении правил типизации — на этом
// построен batch-проход RetypeAssets.
func ResolveAssetType(source, declaredType, externalAssetID, filename, mimeType string) ResolvedAssetType {
	key := normalizeTypeKey(declaredType)

	resolved := ResolvedAssetType{
		Source:       source,
		Capabilities: buildCapabilities(externalAssetID, filename, mimeType),
	}

	// Составные псевдонимы проверяются до общего switch: "multimedia signage"
	// содержит и "multimedia", и "signage", и без этой проверки мог бы
	// попасть в ветку изображений.
	if strings.Contains(key, "signage") || strings.Contains(key, "multimedia") {
		resolved.PlatformType = "Video"
		resolved.PlatformSubtype = PlatformSubtypeSignage
		resolved.PlatformTypeID = intPtr(robloxTypeVideo)
		resolved.CanonicalType = CanonicalDisplayVideo
		return resolved
	}

	switch key {
	// DISPLAY.*
	case "image", "texture", "sticker", "poster":
		resolved.PlatformType = "Image"
		resolved.PlatformTypeID = intPtr(robloxTypeImage)
		resolved.CanonicalType = CanonicalDisplayImage
	case "decal":
		resolved.PlatformType = "Image"
		resolved.PlatformSubtype = "decal"
		resolved.PlatformTypeID = intPtr(robloxTypeDecal)
		resolved.CanonicalType = CanonicalDisplayImage
	case "video":
		resolved.PlatformType = "Video"
		resolved.PlatformTypeID = intPtr(robloxTypeVideo)
		resolved.CanonicalType = CanonicalDisplayVideo
	case "audio", "sound", "music":
		resolved.PlatformType = "Audio"
		resolved.PlatformTypeID = intPtr(robloxTypeAudio)
		resolved.CanonicalType = CanonicalDisplayAudio

	// NPC.*
	case "shirt":
		resolved.PlatformType = "Shirt"
		resolved.PlatformTypeID = intPtr(robloxTypeShirt)
		resolved.CanonicalType = CanonicalNPCCharacter
	case "pants":
		resolved.PlatformType = "Pants"
		resolved.PlatformTypeID = intPtr(robloxTypePants)
		resolved.CanonicalType = CanonicalNPCCharacter
	case "tshirt":
		resolved.PlatformType = "TShirt"
		resolved.PlatformTypeID = intPtr(robloxTypeTShirt)
		resolved.CanonicalType = CanonicalNPCCharacter
	case "hat", "accessory", "wearable":
		resolved.PlatformType = "Hat"
		resolved.PlatformTypeID = intPtr(robloxTypeHat)
		resolved.CanonicalType = CanonicalNPCCharacter
	case "character", "charactermodel", "avatar", "npc", "rig":
		resolved.PlatformType = "Model"
		resolved.PlatformSubtype = "character"
		resolved.PlatformTypeID = intPtr(robloxTypeModel)
		resolved.CanonicalType = CanonicalNPCCharacter
	case "animation", "emote", "dance":
		resolved.PlatformType = "Animation"
		resolved.PlatformTypeID = intPtr(robloxTypeAnimation)
		resolved.CanonicalType = CanonicalNPCAnimation

	// MINIGAME.*
	case "minigame", "minigamemodel":
		resolved.PlatformType = "Model"
		resolved.PlatformSubtype = "minigame"
		resolved.PlatformTypeID = intPtr(robloxTypeModel)
		resolved.CanonicalType = CanonicalMinigameModel
	case "place":
		resolved.PlatformType = "Place"
		resolved.PlatformTypeID = intPtr(robloxTypePlace)
		resolved.CanonicalType = CanonicalMinigameModel
	case "model", "mesh", "meshpart":
		resolved.PlatformType = "Model"
		resolved.PlatformTypeID = intPtr(robloxTypeModel)
		resolved.CanonicalType = CanonicalMinigameModel

	default:
		// Документированный fallback: нераспознанный тип считается
		// изображением. Может маскировать ошибки ввода выше по потоку,
		// поэтому каждое срабатывание видно в метрике.
		resolved.PlatformType = PlatformTypeUnknown
		resolved.CanonicalType = CanonicalDisplayImage
		metrics.TypeFallbacks.WithLabelValues("asset_type").Inc()
	}

	return resolved
}

// AdTypeOf возвращает канонический тип рекламы для канонического типа ассета
// ("DISPLAY.image" -> "DISPLAY").
func AdTypeOf(canonicalType string) string {
	if i := strings.IndexByte(canonicalType, '.'); i > 0 {
		return canonicalType[:i]
	}
	return entity.AdTypeDisplay
}

// normalizeTypeKey приводит заявленный тип к ключу таблицы: нижний регистр,
// только буквы и цифры.
func normalizeTypeKey(declaredType string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(declaredType) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func buildCapabilities(externalAssetID, filename, mimeType string) map[string]interface{} {
	caps := map[string]interface{}{}
	if mimeType != "" {
		caps["mime_type"] = mimeType
	}
	if filename != "" {
		caps["filename"] = filename
	}
	if externalAssetID != "" {
		caps["source_asset_id"] = externalAssetID
	}
	return caps
}

func intPtr(v int) *int {
	return &v
}
