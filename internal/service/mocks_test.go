package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/yourusername/adnet-api/internal/domain/entity"
	"github.com/yourusername/adnet-api/internal/domain/repository"
)

// ============================================================================
// Общие моки репозиториев для тестов сервисов
// ============================================================================

// MockGameAdRepository реализует repository.GameAdRepository
type MockGameAdRepository struct {
	mock.Mock
}

func (m *MockGameAdRepository) Create(ctx context.Context, ad *entity.GameAd) error {
	args := m.Called(ctx, ad)
	return args.Error(0)
}

func (m *MockGameAdRepository) GetByID(ctx context.Context, id uint) (*entity.GameAd, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.GameAd), args.Error(1)
}

func (m *MockGameAdRepository) List(ctx context.Context) ([]entity.GameAd, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.GameAd), args.Error(1)
}

func (m *MockGameAdRepository) LinkGame(ctx context.Context, adID, gameID uint) error {
	args := m.Called(ctx, adID, gameID)
	return args.Error(0)
}

func (m *MockGameAdRepository) UnlinkGame(ctx context.Context, adID, gameID uint) error {
	args := m.Called(ctx, adID, gameID)
	return args.Error(0)
}

func (m *MockGameAdRepository) IsLinked(ctx context.Context, adID, gameID uint) (bool, error) {
	args := m.Called(ctx, adID, gameID)
	return args.Bool(0), args.Error(1)
}

func (m *MockGameAdRepository) ListByLinkedGame(ctx context.Context, gameID uint) ([]entity.GameAd, error) {
	args := m.Called(ctx, gameID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.GameAd), args.Error(1)
}

// MockGameRepository реализует repository.GameRepository
type MockGameRepository struct {
	mock.Mock
}

func (m *MockGameRepository) Create(ctx context.Context, game *entity.Game) error {
	args := m.Called(ctx, game)
	return args.Error(0)
}

func (m *MockGameRepository) GetByID(ctx context.Context, id uint) (*entity.Game, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Game), args.Error(1)
}

// MockPlaylistRepository реализует repository.PlaylistRepository
type MockPlaylistRepository struct {
	mock.Mock
}

func (m *MockPlaylistRepository) Create(ctx context.Context, playlist *entity.Playlist) error {
	args := m.Called(ctx, playlist)
	return args.Error(0)
}

func (m *MockPlaylistRepository) GetByID(ctx context.Context, id uint) (*entity.Playlist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Playlist), args.Error(1)
}

// MockScheduleRepository реализует repository.ScheduleRepository
type MockScheduleRepository struct {
	mock.Mock
}

func (m *MockScheduleRepository) CreateWithDeployments(ctx context.Context, schedule *entity.PlaylistSchedule, deployments []entity.GameDeployment) error {
	args := m.Called(ctx, schedule, deployments)
	return args.Error(0)
}

func (m *MockScheduleRepository) GetByID(ctx context.Context, id uint) (*entity.PlaylistSchedule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PlaylistSchedule), args.Error(1)
}

func (m *MockScheduleRepository) List(ctx context.Context, filter repository.ScheduleFilter) ([]entity.PlaylistSchedule, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.PlaylistSchedule), args.Error(1)
}

func (m *MockScheduleRepository) ListByGameAd(ctx context.Context, gameAdID uint) ([]entity.PlaylistSchedule, error) {
	args := m.Called(ctx, gameAdID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.PlaylistSchedule), args.Error(1)
}

func (m *MockScheduleRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// MockDeploymentRepository реализует repository.DeploymentRepository
type MockDeploymentRepository struct {
	mock.Mock
}

func (m *MockDeploymentRepository) Upsert(ctx context.Context, deployment *entity.GameDeployment) error {
	args := m.Called(ctx, deployment)
	return args.Error(0)
}

func (m *MockDeploymentRepository) GetByID(ctx context.Context, id uint) (*entity.GameDeployment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.GameDeployment), args.Error(1)
}

func (m *MockDeploymentRepository) GetByScheduleAndGame(ctx context.Context, scheduleID, gameID uint) (*entity.GameDeployment, error) {
	args := m.Called(ctx, scheduleID, gameID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.GameDeployment), args.Error(1)
}

func (m *MockDeploymentRepository) ListByScheduleID(ctx context.Context, scheduleID uint) ([]entity.GameDeployment, error) {
	args := m.Called(ctx, scheduleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.GameDeployment), args.Error(1)
}

func (m *MockDeploymentRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockDeploymentRepository) ListBatch(ctx context.Context, afterID uint, limit int) ([]entity.GameDeployment, error) {
	args := m.Called(ctx, afterID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.GameDeployment), args.Error(1)
}

func (m *MockDeploymentRepository) DeleteByIDs(ctx context.Context, ids []uint) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

// MockAssetRepository реализует repository.AssetRepository
type MockAssetRepository struct {
	mock.Mock
}

func (m *MockAssetRepository) Create(ctx context.Context, asset *entity.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *MockAssetRepository) GetByID(ctx context.Context, id uint) (*entity.Asset, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Asset), args.Error(1)
}

func (m *MockAssetRepository) ListByGameAd(ctx context.Context, gameAdID uint) ([]entity.Asset, error) {
	args := m.Called(ctx, gameAdID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Asset), args.Error(1)
}

func (m *MockAssetRepository) UpdateTyping(ctx context.Context, id uint, typing repository.AssetTyping) error {
	args := m.Called(ctx, id, typing)
	return args.Error(0)
}

func (m *MockAssetRepository) ListBatch(ctx context.Context, afterID uint, limit int) ([]entity.Asset, error) {
	args := m.Called(ctx, afterID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Asset), args.Error(1)
}

// MockContainerRepository реализует repository.ContainerRepository
type MockContainerRepository struct {
	mock.Mock
}

func (m *MockContainerRepository) Create(ctx context.Context, container *entity.AdContainer) error {
	args := m.Called(ctx, container)
	return args.Error(0)
}

func (m *MockContainerRepository) GetByID(ctx context.Context, id uint) (*entity.AdContainer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AdContainer), args.Error(1)
}

func (m *MockContainerRepository) ListByGame(ctx context.Context, gameID uint) ([]entity.AdContainer, error) {
	args := m.Called(ctx, gameID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.AdContainer), args.Error(1)
}

func (m *MockContainerRepository) SetCurrentAd(ctx context.Context, id uint, adID uint) error {
	args := m.Called(ctx, id, adID)
	return args.Error(0)
}

func (m *MockContainerRepository) UpdatePosition(ctx context.Context, id uint, x, y, z float64) error {
	args := m.Called(ctx, id, x, y, z)
	return args.Error(0)
}

// MockEngagementRepository реализует repository.EngagementRepository
type MockEngagementRepository struct {
	mock.Mock
}

func (m *MockEngagementRepository) Append(ctx context.Context, event *entity.EngagementEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MockCacheRepository реализует repository.CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCacheRepository) GetJSON(ctx context.Context, key string, dest interface{}) error {
	args := m.Called(ctx, key, dest)
	return args.Error(0)
}

// noopInvalidator — инвалидатор-заглушка для тестов, где кеш не важен
type noopInvalidator struct{}

func (noopInvalidator) InvalidateGame(ctx context.Context, gameID uint) {}

// recordingInvalidator запоминает, какие игры были инвалидированы
type recordingInvalidator struct {
	gameIDs []uint
}

func (r *recordingInvalidator) InvalidateGame(ctx context.Context, gameID uint) {
	r.gameIDs = append(r.gameIDs, gameID)
}
