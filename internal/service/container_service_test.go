package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/adnet-api/internal/domain/entity"
	apperrors "github.com/yourusername/adnet-api/internal/pkg/errors"
)

// ============================================================================
// Тесты для ContainerService
// ============================================================================

func uintPtr(v uint) *uint { return &v }

func activeContainer(id, gameID uint) *entity.AdContainer {
	return &entity.AdContainer{
		ID:     id,
		GameID: gameID,
		Type:   entity.AdTypeDisplay,
		Status: entity.ContainerStatusActive,
	}
}

func TestContainerService_GetContainerAd_Placeholder(t *testing.T) {
	// Arrange: контейнер без назначенной рекламы
	mockContainers := new(MockContainerRepository)
	mockEngagement := new(MockEngagementRepository)

	container := activeContainer(1, 7)
	mockContainers.On("GetByID", mock.Anything, uint(1)).Return(container, nil)
	mockEngagement.On("Append", mock.Anything, mock.AnythingOfType("*entity.EngagementEvent")).Return(nil)

	svc := NewContainerService(mockContainers, nil, nil, mockEngagement)

	// Act
	resp, err := svc.GetContainerAd(context.Background(), 1)

	// Assert: заглушка по типу контейнера + записанное событие показа
	require.NoError(t, err)
	assert.False(t, resp.HasAd)
	require.NotNil(t, resp.Placeholder)
	assert.Equal(t, "rbxassetid://default_display_banner", resp.Placeholder.AssetRef)

	mockEngagement.AssertCalled(t, "Append", mock.Anything, mock.MatchedBy(func(e *entity.EngagementEvent) bool {
		return e.EventType == entity.EngagementTypeView &&
			e.ContainerID == 1 && e.GameID == 7 &&
			e.ContainerType == entity.AdTypeDisplay
	}))
}

func TestContainerService_GetContainerAd_WithAd(t *testing.T) {
	// Arrange
	mockContainers := new(MockContainerRepository)
	mockAssets := new(MockAssetRepository)
	mockEngagement := new(MockEngagementRepository)

	container := activeContainer(1, 7)
	container.CurrentAdID = uintPtr(10)
	container.CurrentAd = &entity.GameAd{ID: 10, Name: "Баннер"}

	assets := []entity.Asset{{ID: 100, GameAdID: 10, CanonicalType: "DISPLAY.image"}}

	mockContainers.On("GetByID", mock.Anything, uint(1)).Return(container, nil)
	mockAssets.On("ListByGameAd", mock.Anything, uint(10)).Return(assets, nil)
	mockEngagement.On("Append", mock.Anything, mock.AnythingOfType("*entity.EngagementEvent")).Return(nil)

	svc := NewContainerService(mockContainers, nil, mockAssets, mockEngagement)

	// Act
	resp, err := svc.GetContainerAd(context.Background(), 1)

	// Assert
	require.NoError(t, err)
	assert.True(t, resp.HasAd)
	assert.Nil(t, resp.Placeholder)
	require.NotNil(t, resp.Ad)
	assert.Equal(t, uint(10), resp.Ad.ID)
	assert.Len(t, resp.Assets, 1)
	mockEngagement.AssertExpectations(t)
}

func TestContainerService_GetContainerAd_InactiveContainer(t *testing.T) {
	// Arrange
	mockContainers := new(MockContainerRepository)
	mockEngagement := new(MockEngagementRepository)

	container := activeContainer(1, 7)
	container.Status = entity.ContainerStatusMaintenance
	mockContainers.On("GetByID", mock.Anything, uint(1)).Return(container, nil)

	svc := NewContainerService(mockContainers, nil, nil, mockEngagement)

	// Act
	resp, err := svc.GetContainerAd(context.Background(), 1)

	// Assert: событие показа не пишется
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrContainerInactive))
	assert.Nil(t, resp)
	mockEngagement.AssertNotCalled(t, "Append")
}

func TestContainerService_GetContainerAd_EventWriteFails(t *testing.T) {
	// Arrange: запись события показа падает — весь вызов неуспешен
	mockContainers := new(MockContainerRepository)
	mockEngagement := new(MockEngagementRepository)

	mockContainers.On("GetByID", mock.Anything, uint(1)).Return(activeContainer(1, 7), nil)
	mockEngagement.On("Append", mock.Anything, mock.AnythingOfType("*entity.EngagementEvent")).
		Return(errors.New("insert failed"))

	svc := NewContainerService(mockContainers, nil, nil, mockEngagement)

	// Act
	resp, err := svc.GetContainerAd(context.Background(), 1)

	// Assert
	require.Error(t, err)
	assert.Nil(t, resp)
}

func TestContainerService_AssignAd_NotLinked(t *testing.T) {
	// Arrange: реклама существует, но не привязана к игре контейнера
	mockContainers := new(MockContainerRepository)
	mockAds := new(MockGameAdRepository)

	mockContainers.On("GetByID", mock.Anything, uint(1)).Return(activeContainer(1, 7), nil)
	mockAds.On("GetByID", mock.Anything, uint(10)).Return(&entity.GameAd{ID: 10}, nil)
	mockAds.On("IsLinked", mock.Anything, uint(10), uint(7)).Return(false, nil)

	svc := NewContainerService(mockContainers, mockAds, nil, nil)

	// Act
	container, err := svc.AssignAd(context.Background(), 1, 10)

	// Assert
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAdNotLinked))
	assert.Nil(t, container)
	mockContainers.AssertNotCalled(t, "SetCurrentAd")
}

func TestContainerService_AssignAd_Success(t *testing.T) {
	// Arrange
	mockContainers := new(MockContainerRepository)
	mockAds := new(MockGameAdRepository)

	before := activeContainer(1, 7)
	after := activeContainer(1, 7)
	after.CurrentAdID = uintPtr(10)
	after.CurrentAd = &entity.GameAd{ID: 10}

	mockContainers.On("GetByID", mock.Anything, uint(1)).Return(before, nil).Once()
	mockAds.On("GetByID", mock.Anything, uint(10)).Return(&entity.GameAd{ID: 10}, nil)
	mockAds.On("IsLinked", mock.Anything, uint(10), uint(7)).Return(true, nil)
	mockContainers.On("SetCurrentAd", mock.Anything, uint(1), uint(10)).Return(nil)
	mockContainers.On("GetByID", mock.Anything, uint(1)).Return(after, nil).Once()

	svc := NewContainerService(mockContainers, mockAds, nil, nil)

	// Act
	container, err := svc.AssignAd(context.Background(), 1, 10)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, container.CurrentAdID)
	assert.Equal(t, uint(10), *container.CurrentAdID)
	mockContainers.AssertExpectations(t)
}

func TestContainerService_UpdatePosition_RejectsNaN(t *testing.T) {
	// Arrange
	mockContainers := new(MockContainerRepository)
	svc := NewContainerService(mockContainers, nil, nil, nil)

	// Act
	container, err := svc.UpdatePosition(context.Background(), 1, 7, Position{X: math.NaN(), Y: 0, Z: 0})

	// Assert: отклонено до любого чтения или записи
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
	assert.Nil(t, container)
	mockContainers.AssertNotCalled(t, "GetByID")
	mockContainers.AssertNotCalled(t, "UpdatePosition")
}

func TestContainerService_UpdatePosition_RejectsInf(t *testing.T) {
	// Arrange
	mockContainers := new(MockContainerRepository)
	svc := NewContainerService(mockContainers, nil, nil, nil)

	// Act
	_, err := svc.UpdatePosition(context.Background(), 1, 7, Position{X: 0, Y: math.Inf(1), Z: 0})

	// Assert
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestContainerService_UpdatePosition_ForeignGame(t *testing.T) {
	// Arrange: контейнер принадлежит другой игре
	mockContainers := new(MockContainerRepository)

	mockContainers.On("GetByID", mock.Anything, uint(1)).Return(activeContainer(1, 7), nil)

	svc := NewContainerService(mockContainers, nil, nil, nil)

	// Act
	_, err := svc.UpdatePosition(context.Background(), 1, 99, Position{X: 1, Y: 2, Z: 3})

	// Assert
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrForbidden))
	mockContainers.AssertNotCalled(t, "UpdatePosition")
}

func TestContainerService_UpdatePosition_Success(t *testing.T) {
	// Arrange
	mockContainers := new(MockContainerRepository)
	mockEngagement := new(MockEngagementRepository)

	container := activeContainer(1, 7)
	container.PositionX, container.PositionY, container.PositionZ = 1, 2, 3

	mockContainers.On("GetByID", mock.Anything, uint(1)).Return(container, nil)
	mockContainers.On("UpdatePosition", mock.Anything, uint(1), 4.0, 5.0, 6.0).Return(nil)
	mockEngagement.On("Append", mock.Anything, mock.AnythingOfType("*entity.EngagementEvent")).Return(nil)

	svc := NewContainerService(mockContainers, nil, nil, mockEngagement)

	// Act
	updated, err := svc.UpdatePosition(context.Background(), 1, 7, Position{X: 4, Y: 5, Z: 6})

	// Assert: событие несёт прежнюю и новую позицию
	require.NoError(t, err)
	assert.Equal(t, 4.0, updated.PositionX)

	mockEngagement.AssertCalled(t, "Append", mock.Anything, mock.MatchedBy(func(e *entity.EngagementEvent) bool {
		if e.EventType != entity.EngagementTypePositionUpdate {
			return false
		}
		previous, ok := e.Data["previous"].(map[string]interface{})
		if !ok || previous["x"] != 1.0 {
			return false
		}
		next, ok := e.Data["new"].(map[string]interface{})
		return ok && next["x"] == 4.0
	}))
}

func TestContainerService_RecordEngagement_EmptyEventType(t *testing.T) {
	// Arrange
	svc := NewContainerService(nil, nil, nil, nil)

	// Act
	event, err := svc.RecordEngagement(context.Background(), 1, 7, "", nil)

	// Assert
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
	assert.Nil(t, event)
}

func TestContainerService_RecordEngagement_WriteErrorPropagates(t *testing.T) {
	// Arrange
	mockContainers := new(MockContainerRepository)
	mockEngagement := new(MockEngagementRepository)

	mockContainers.On("GetByID", mock.Anything, uint(1)).Return(activeContainer(1, 7), nil)
	mockEngagement.On("Append", mock.Anything, mock.AnythingOfType("*entity.EngagementEvent")).
		Return(errors.New("disk full"))

	svc := NewContainerService(mockContainers, nil, nil, mockEngagement)

	// Act
	event, err := svc.RecordEngagement(context.Background(), 1, 7, "click", map[string]interface{}{"button": "cta"})

	// Assert: ошибка записи не замалчивается
	require.Error(t, err)
	assert.Nil(t, event)
}

func TestContainerService_RecordEngagement_Success(t *testing.T) {
	// Arrange
	mockContainers := new(MockContainerRepository)
	mockEngagement := new(MockEngagementRepository)

	mockContainers.On("GetByID", mock.Anything, uint(1)).Return(activeContainer(1, 7), nil)
	mockEngagement.On("Append", mock.Anything, mock.AnythingOfType("*entity.EngagementEvent")).Return(nil)

	svc := NewContainerService(mockContainers, nil, nil, mockEngagement)

	// Act
	event, err := svc.RecordEngagement(context.Background(), 1, 7, "click", map[string]interface{}{"button": "cta"})

	// Assert
	require.NoError(t, err)
	require.NotNil(t, event)
	assert.Equal(t, "click", event.EventType)
	assert.Equal(t, uint(7), event.GameID)
	assert.NotEmpty(t, event.ID)
}
