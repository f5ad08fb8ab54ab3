package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/adnet-api/internal/domain/entity"
	apperrors "github.com/yourusername/adnet-api/internal/pkg/errors"
)

// ============================================================================
// Тесты для ScheduleService
// ============================================================================

func createTestScheduleService(
	schedules *MockScheduleRepository,
	deployments *MockDeploymentRepository,
	playlists *MockPlaylistRepository,
	ads *MockGameAdRepository,
	games *MockGameRepository,
	invalidator AvailabilityInvalidator,
) *ScheduleService {
	if invalidator == nil {
		invalidator = noopInvalidator{}
	}
	return NewScheduleService(schedules, deployments, playlists, ads, games, invalidator)
}

func TestScheduleService_CreateSchedule_WithInlineDeployments(t *testing.T) {
	// Arrange
	mockSchedules := new(MockScheduleRepository)
	mockDeployments := new(MockDeploymentRepository)
	mockPlaylists := new(MockPlaylistRepository)
	mockAds := new(MockGameAdRepository)
	mockGames := new(MockGameRepository)
	invalidator := &recordingInvalidator{}

	mockPlaylists.On("GetByID", mock.Anything, uint(5)).Return(&entity.Playlist{ID: 5}, nil)
	mockAds.On("GetByID", mock.Anything, uint(10)).Return(&entity.GameAd{ID: 10}, nil)
	mockGames.On("GetByID", mock.Anything, uint(7)).Return(&entity.Game{ID: 7}, nil)
	mockGames.On("GetByID", mock.Anything, uint(8)).Return(&entity.Game{ID: 8}, nil)
	mockSchedules.On("CreateWithDeployments", mock.Anything,
		mock.AnythingOfType("*entity.PlaylistSchedule"),
		mock.AnythingOfType("[]entity.GameDeployment")).Return(nil)

	svc := createTestScheduleService(mockSchedules, mockDeployments, mockPlaylists, mockAds, mockGames, invalidator)

	req := CreateScheduleRequest{
		PlaylistID:   5,
		GameAdID:     10,
		StartDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		DurationDays: 5,
		Status:       "active", // нормализуется к ACTIVE
		Deployments: []InlineDeploymentRequest{
			{GameID: 7},
			{GameID: 8, Status: "pending"},
		},
	}

	// Act
	schedule, err := svc.CreateSchedule(context.Background(), req)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, entity.StatusActive, schedule.Status, "Статус расписания нормализуется на границе записи")
	require.Len(t, schedule.Deployments, 2)
	assert.Equal(t, entity.StatusActive, schedule.Deployments[0].Status, "Пустой статус деплоя по умолчанию ACTIVE")
	assert.Equal(t, entity.StatusPending, schedule.Deployments[1].Status)
	assert.ElementsMatch(t, []uint{7, 8}, invalidator.gameIDs, "Кеш доступности сброшен для обеих игр")
	mockSchedules.AssertExpectations(t)
}

func TestScheduleService_CreateSchedule_UnknownGame(t *testing.T) {
	// Arrange: все игры валидируются до первой записи
	mockSchedules := new(MockScheduleRepository)
	mockPlaylists := new(MockPlaylistRepository)
	mockAds := new(MockGameAdRepository)
	mockGames := new(MockGameRepository)

	mockPlaylists.On("GetByID", mock.Anything, uint(5)).Return(&entity.Playlist{ID: 5}, nil)
	mockAds.On("GetByID", mock.Anything, uint(10)).Return(&entity.GameAd{ID: 10}, nil)
	mockGames.On("GetByID", mock.Anything, uint(999)).Return(nil, apperrors.ErrNotFound)

	svc := createTestScheduleService(mockSchedules, nil, mockPlaylists, mockAds, mockGames, nil)

	req := CreateScheduleRequest{
		PlaylistID:  5,
		GameAdID:    10,
		StartDate:   time.Now(),
		Deployments: []InlineDeploymentRequest{{GameID: 999}},
	}

	// Act
	schedule, err := svc.CreateSchedule(context.Background(), req)

	// Assert
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.Nil(t, schedule)
	mockSchedules.AssertNotCalled(t, "CreateWithDeployments")
}

func TestScheduleService_CreateSchedule_ZeroDuration(t *testing.T) {
	// Arrange: нулевая длительность допустима — окно пустое
	mockSchedules := new(MockScheduleRepository)
	mockPlaylists := new(MockPlaylistRepository)
	mockAds := new(MockGameAdRepository)
	mockGames := new(MockGameRepository)

	mockPlaylists.On("GetByID", mock.Anything, uint(5)).Return(&entity.Playlist{ID: 5}, nil)
	mockAds.On("GetByID", mock.Anything, uint(10)).Return(&entity.GameAd{ID: 10}, nil)
	mockSchedules.On("CreateWithDeployments", mock.Anything,
		mock.AnythingOfType("*entity.PlaylistSchedule"),
		mock.AnythingOfType("[]entity.GameDeployment")).Return(nil)

	svc := createTestScheduleService(mockSchedules, nil, mockPlaylists, mockAds, mockGames, nil)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	// Act
	schedule, err := svc.CreateSchedule(context.Background(), CreateScheduleRequest{
		PlaylistID: 5, GameAdID: 10, StartDate: start, DurationDays: 0,
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, start, schedule.ComputedEndDate(), "При нулевой длительности конец окна совпадает с началом")
	assert.False(t, schedule.WindowContains(start), "Пустое окно не содержит даже свой старт")
}

func TestScheduleService_UpdateScheduleStatus_InvalidatesDeployedGames(t *testing.T) {
	// Arrange
	mockSchedules := new(MockScheduleRepository)
	mockDeployments := new(MockDeploymentRepository)
	invalidator := &recordingInvalidator{}

	mockSchedules.On("UpdateStatus", mock.Anything, uint(1), entity.StatusInactive).Return(nil)
	mockSchedules.On("GetByID", mock.Anything, uint(1)).
		Return(&entity.PlaylistSchedule{ID: 1, Status: entity.StatusInactive}, nil)
	mockDeployments.On("ListByScheduleID", mock.Anything, uint(1)).
		Return([]entity.GameDeployment{{ID: 2, ScheduleID: 1, GameID: 7}, {ID: 3, ScheduleID: 1, GameID: 8}}, nil)

	svc := createTestScheduleService(mockSchedules, mockDeployments, nil, nil, nil, invalidator)

	// Act
	schedule, err := svc.UpdateScheduleStatus(context.Background(), 1, "inactive")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, entity.StatusInactive, schedule.Status)
	assert.ElementsMatch(t, []uint{7, 8}, invalidator.gameIDs)
}

func TestScheduleService_CreateDeployment_UpsertsStatus(t *testing.T) {
	// Arrange: повторный деплой той же пары — upsert, а не вторая запись
	mockSchedules := new(MockScheduleRepository)
	mockDeployments := new(MockDeploymentRepository)
	mockGames := new(MockGameRepository)
	invalidator := &recordingInvalidator{}

	mockSchedules.On("GetByID", mock.Anything, uint(1)).
		Return(&entity.PlaylistSchedule{ID: 1}, nil)
	mockGames.On("GetByID", mock.Anything, uint(7)).Return(&entity.Game{ID: 7}, nil)
	mockDeployments.On("Upsert", mock.Anything, mock.MatchedBy(func(d *entity.GameDeployment) bool {
		return d.ScheduleID == 1 && d.GameID == 7 && d.Status == entity.StatusInactive
	})).Return(nil)

	svc := createTestScheduleService(mockSchedules, mockDeployments, nil, nil, mockGames, invalidator)

	// Act
	deployment, err := svc.CreateDeployment(context.Background(), 1, CreateDeploymentRequest{
		GameID: 7,
		Status: " inactive ", // пробелы и регистр не важны
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, entity.StatusInactive, deployment.Status)
	assert.Equal(t, []uint{7}, invalidator.gameIDs)
	mockDeployments.AssertExpectations(t)
}

func TestScheduleService_ListDeployments_ScheduleNotFound(t *testing.T) {
	// Arrange
	mockSchedules := new(MockScheduleRepository)
	mockSchedules.On("GetByID", mock.Anything, uint(42)).Return(nil, apperrors.ErrNotFound)

	svc := createTestScheduleService(mockSchedules, nil, nil, nil, nil, nil)

	// Act
	deployments, err := svc.ListDeployments(context.Background(), 42)

	// Assert
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.Nil(t, deployments)
}
