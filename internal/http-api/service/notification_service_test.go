package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"notifyhub/internal/http-api/models"
)

// MockNotificationRepository mocks the repository.NotificationRepository interface
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) List(ctx context.Context, page, pageSize int) ([]models.Notification, int64, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Notification), args.Get(1).(int64), args.Error(2)
}

func (m *MockNotificationRepository) FindByID(ctx context.Context, id int64) (*models.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Notification), args.Error(1)
}

func (m *MockNotificationRepository) CreateWithCategory(ctx context.Context, notification *models.Notification, categoryName string) error {
	args := m.Called(ctx, notification, categoryName)
	return args.Error(0)
}

func (m *MockNotificationRepository) Save(ctx context.Context, notification *models.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func (m *MockNotificationRepository) Delete(ctx context.Context, notification *models.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func (m *MockNotificationRepository) IsMessageUnique(ctx context.Context, message string, excludeID *int64) (bool, error) {
	args := m.Called(ctx, message, excludeID)
	return args.Bool(0), args.Error(1)
}

func TestNotificationCreate_ResolvesCategoryByName(t *testing.T) {
	repo := new(MockNotificationRepository)
	svc := NewNotificationService(repo)

	repo.On("IsMessageUnique", mock.Anything, "backup completed", (*int64)(nil)).Return(true, nil)
	repo.On("CreateWithCategory", mock.Anything, mock.AnythingOfType("*models.Notification"), "alerts").
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.Notification).ID = 5
		}).Return(nil)
	repo.On("FindByID", mock.Anything, int64(5)).Return(&models.Notification{
		ID:      5,
		Message: "backup completed",
		TTL:     60,
	}, nil)

	notification, err := svc.Create(context.Background(), "backup completed", 60, "alerts")
	assert.NoError(t, err)
	assert.Equal(t, int64(5), notification.ID)

	repo.AssertExpectations(t)
}

func TestNotificationCreate_DuplicateMessage(t *testing.T) {
	repo := new(MockNotificationRepository)
	svc := NewNotificationService(repo)

	repo.On("IsMessageUnique", mock.Anything, "backup completed", (*int64)(nil)).Return(false, nil)

	_, err := svc.Create(context.Background(), "backup completed", 60, "alerts")
	assert.ErrorIs(t, err, ErrMessageInUse)

	repo.AssertNotCalled(t, "CreateWithCategory")
}

func TestNotificationUpdate_MergesOnlyProvidedFields(t *testing.T) {
	repo := new(MockNotificationRepository)
	svc := NewNotificationService(repo)

	current := &models.Notification{ID: 5, Message: "backup completed", TTL: 60, DisplayedTimes: 1}
	repo.On("FindByID", mock.Anything, int64(5)).Return(current, nil)
	repo.On("Save", mock.Anything, mock.MatchedBy(func(n *models.Notification) bool {
		return n.Message == "backup completed" && n.TTL == 60 && n.DisplayedTimes == 4
	})).Return(nil)

	times := 4
	_, err := svc.Update(context.Background(), 5, NotificationPatch{DisplayedTimes: &times})
	assert.NoError(t, err)

	repo.AssertExpectations(t)
	repo.AssertNotCalled(t, "IsMessageUnique")
}

func TestNotificationUpdate_MessageChangeExcludesOwnRow(t *testing.T) {
	repo := new(MockNotificationRepository)
	svc := NewNotificationService(repo)

	current := &models.Notification{ID: 5, Message: "backup completed", TTL: 60}
	repo.On("FindByID", mock.Anything, int64(5)).Return(current, nil)
	repo.On("IsMessageUnique", mock.Anything, "backup finished", mock.MatchedBy(func(excludeID *int64) bool {
		return excludeID != nil && *excludeID == 5
	})).Return(true, nil)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*models.Notification")).Return(nil)

	message := "backup finished"
	_, err := svc.Update(context.Background(), 5, NotificationPatch{Message: &message})
	assert.NoError(t, err)

	repo.AssertExpectations(t)
}

func TestNotificationUpdate_DuplicateMessage(t *testing.T) {
	repo := new(MockNotificationRepository)
	svc := NewNotificationService(repo)

	current := &models.Notification{ID: 5, Message: "backup completed", TTL: 60}
	repo.On("FindByID", mock.Anything, int64(5)).Return(current, nil)
	repo.On("IsMessageUnique", mock.Anything, "other message", mock.Anything).Return(false, nil)

	message := "other message"
	_, err := svc.Update(context.Background(), 5, NotificationPatch{Message: &message})
	assert.ErrorIs(t, err, ErrMessageInUse)

	repo.AssertNotCalled(t, "Save")
}

func TestNotificationDelete_NotFound(t *testing.T) {
	repo := new(MockNotificationRepository)
	svc := NewNotificationService(repo)

	repo.On("FindByID", mock.Anything, int64(42)).Return(nil, gorm.ErrRecordNotFound)

	err := svc.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotificationNotFound)

	repo.AssertNotCalled(t, "Delete")
}
