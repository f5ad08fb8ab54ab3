package service

import (
	"context"
	"fmt"
	"log"

	"github.com/yourusername/adnet-api/internal/domain/repository"
	"github.com/yourusername/adnet-api/internal/typing"
)

// JobSummary — итог batch-прохода обслуживания. Ошибки отдельных записей
// накапливаются и не прерывают проход: одна плохая строка не должна
// останавливать весь проход.
type JobSummary struct {
	Processed int      `json:"processed"`
	Affected  int      `json:"affected"`
	Failed    int      `json:"failed"`
	Errors    []string `json:"errors,omitempty"`
}

func (s *JobSummary) recordError(err error) {
	s.Failed++
	// Хвост ошибок не копим бесконечно — для разбора достаточно первых
	if len(s.Errors) < 20 {
		s.Errors = append(s.Errors, err.Error())
	}
}

// MaintenanceService выполняет batch-процедуры обслуживания. Оба прохода
// идемпотентны и обрабатывают данные ограниченными порциями, без одной
// длинной транзакции на весь набор: упавший на середине проход достаточно
// просто перезапустить.
type MaintenanceService struct {
	deploymentRepo repository.DeploymentRepository
	assetRepo      repository.AssetRepository
	batchSize      int
}

// NewMaintenanceService создаёт новый сервис обслуживания
func NewMaintenanceService(deploymentRepo repository.DeploymentRepository, assetRepo repository.AssetRepository, batchSize int) *MaintenanceService {
	if batchSize <= 0 {
		batchSize = 500
	}
	return &MaintenanceService{
		deploymentRepo: deploymentRepo,
		assetRepo:      assetRepo,
		batchSize:      batchSize,
	}
}

// DedupDeployments удаляет дубликаты деплоев, оставляя по одной записи на
// пару (schedule_id, game_id) — первую созданную (с наименьшим ID; порции
// читаются по возрастанию ID, поэтому первая встреченная запись пары и есть
// первая созданная). Последняя оставшаяся запись пары не удаляется никогда.
// Повторный запуск на уже очищенном наборе — no-op.
func (s *MaintenanceService) DedupDeployments(ctx context.Context) (*JobSummary, error) {
	summary := &JobSummary{}
	seen := make(map[[2]uint]bool)

	var afterID uint
	for {
		batch, err := s.deploymentRepo.ListBatch(ctx, afterID, s.batchSize)
		if err != nil {
			return summary, fmt.Errorf("не удалось прочитать порцию деплоев: %w", err)
		}
		if len(batch) == 0 {
			break
		}

		var duplicates []uint
		for i := range batch {
			d := batch[i]
			afterID = d.ID
			summary.Processed++

			pair := [2]uint{d.ScheduleID, d.GameID}
			if seen[pair] {
				duplicates = append(duplicates, d.ID)
			} else {
				seen[pair] = true
			}
		}

		if len(duplicates) > 0 {
			if err := s.deploymentRepo.DeleteByIDs(ctx, duplicates); err != nil {
				summary.recordError(fmt.Errorf("удаление дубликатов %v: %w", duplicates, err))
			} else {
				summary.Affected += len(duplicates)
			}
		}

		if len(batch) < s.batchSize {
			break
		}
	}

	log.Printf("[MaintenanceService] Дедупликация деплоев: просмотрено %d, удалено %d, ошибок %d",
		summary.Processed, summary.Affected, summary.Failed)
	return summary, nil
}

// RetypeAssets повторно прогоняет каждый ассет через резолвер типов по
// сохранённым исходным данным и перезаписывает поля типизации. Поля, не
// принадлежащие резолверу (имя, описание), не затрагиваются. Повторный
// запуск даёт тот же результат.
func (s *MaintenanceService) RetypeAssets(ctx context.Context) (*JobSummary, error) {
	summary := &JobSummary{}

	var afterID uint
	for {
		batch, err := s.assetRepo.ListBatch(ctx, afterID, s.batchSize)
		if err != nil {
			return summary, fmt.Errorf("не удалось прочитать порцию ассетов: %w", err)
		}
		if len(batch) == 0 {
			break
		}

		for i := range batch {
			asset := batch[i]
			afterID = asset.ID
			summary.Processed++

			resolved := typing.ResolveAssetType(asset.Source, asset.DeclaredType, asset.ExternalAssetID, asset.Filename, asset.MimeType)
			err := s.assetRepo.UpdateTyping(ctx, asset.ID, repository.AssetTyping{
				PlatformType:    resolved.PlatformType,
				PlatformSubtype: resolved.PlatformSubtype,
				PlatformTypeID:  resolved.PlatformTypeID,
				CanonicalType:   resolved.CanonicalType,
				Capabilities:    resolved.Capabilities,
			})
			if err != nil {
				summary.recordError(fmt.Errorf("ассет #%d: %w", asset.ID, err))
				continue
			}
			summary.Affected++
		}

		if len(batch) < s.batchSize {
			break
		}
	}

	log.Printf("[MaintenanceService] Повторная типизация ассетов: просмотрено %d, обновлено %d, ошибок %d",
		summary.Processed, summary.Affected, summary.Failed)
	return summary, nil
}
