// Пакет typing приводит разнородные строки типов рекламы и ассетов
// к канонической таксономии системы. Обе функции чистые и тотальные:
// они никогда не возвращают ошибку, а нераспознанный вход отображают
// в документированное значение по умолчанию, увеличивая счётчик
// metrics.TypeFallbacks. Вызывающим, которым нужна строгость, следует
// отдельно валидировать вход по списку принимаемых псевдонимов.
package typing

import (
	"strings"

	"github.com/yourusername/adnet-api/internal/domain/entity"
	"github.com/yourusername/adnet-api/internal/metrics"
)

// adTypeAliases — фиксированная таблица соответствия устаревших и свободных
// обозначений типов рекламы каноническим значениям. Канонические значения
// включены в таблицу, поэтому нормализация идемпотентна.
var adTypeAliases = map[string]string{
	// баннерная реклама
	"multimedia_display": entity.AdTypeDisplay,
	"display_ad":         entity.AdTypeDisplay,
	"billboard":          entity.AdTypeDisplay,

	// NPC-персонажи
	"dancing_npc": entity.AdTypeNPC,
	"kol":         entity.AdTypeNPC,
	"npc_ad":      entity.AdTypeNPC,

	// мини-игры
	"minigame_ad": entity.AdTypeMinigame,
	"minigame":    entity.AdTypeMinigame,

	// канонические значения (идемпотентность)
	entity.AdTypeDisplay:  entity.AdTypeDisplay,
	entity.AdTypeNPC:      entity.AdTypeNPC,
	entity.AdTypeMinigame: entity.AdTypeMinigame,
}

// NormalizeAdType приводит строку типа рекламы к каноническому значению.
// Вход очищается от пробелов по краям и сопоставляется с таблицей
// псевдонимов с учётом регистра. Отсутствие совпадения — DISPLAY.
func NormalizeAdType(raw string) string {
	if canonical, ok := adTypeAliases[strings.TrimSpace(raw)]; ok {
		return canonical
	}
	metrics.TypeFallbacks.WithLabelValues("ad_type").Inc()
	return entity.AdTypeDisplay
}

// KnownAdTypeAliases возвращает список принимаемых псевдонимов для строгой
// валидации на границе ввода.
func KnownAdTypeAliases() []string {
	aliases := make([]string, 0, len(adTypeAliases))
	for alias := range adTypeAliases {
		aliases = append(aliases, alias)
	}
	return aliases
}
