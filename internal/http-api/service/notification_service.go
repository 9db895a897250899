package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"notifyhub/internal/http-api/models"
	"notifyhub/internal/http-api/repository"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrMessageInUse         = errors.New("notification message already in use")
)

// NotificationPatch carries the fields of a partial update; nil fields are
// left untouched.
type NotificationPatch struct {
	Message        *string
	TTL            *int
	DisplayedTimes *int
	DisplayedOnce  *bool
}

type NotificationService interface {
	List(ctx context.Context, page, pageSize int) ([]models.Notification, int64, error)
	Get(ctx context.Context, id int64) (*models.Notification, error)
	// Create resolves the category by name, creating it when absent, and
	// inserts the notification in the same transaction.
	Create(ctx context.Context, message string, ttl int, categoryName string) (*models.Notification, error)
	Update(ctx context.Context, id int64, patch NotificationPatch) (*models.Notification, error)
	Delete(ctx context.Context, id int64) error
}

type notificationService struct {
	notificationRepo repository.NotificationRepository
}

func NewNotificationService(notificationRepo repository.NotificationRepository) NotificationService {
	return &notificationService{notificationRepo: notificationRepo}
}

func (s *notificationService) List(ctx context.Context, page, pageSize int) ([]models.Notification, int64, error) {
	return s.notificationRepo.List(ctx, page, pageSize)
}

func (s *notificationService) Get(ctx context.Context, id int64) (*models.Notification, error) {
	notification, err := s.notificationRepo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotificationNotFound
	}
	if err != nil {
		return nil, err
	}
	return notification, nil
}

func (s *notificationService) Create(ctx context.Context, message string, ttl int, categoryName string) (*models.Notification, error) {
	unique, err := s.notificationRepo.IsMessageUnique(ctx, message, nil)
	if err != nil {
		return nil, err
	}
	if !unique {
		return nil, ErrMessageInUse
	}

	notification := &models.Notification{Message: message, TTL: ttl}
	if err := s.notificationRepo.CreateWithCategory(ctx, notification, categoryName); err != nil {
		return nil, err
	}

	return s.Get(ctx, notification.ID)
}

func (s *notificationService) Update(ctx context.Context, id int64, patch NotificationPatch) (*models.Notification, error) {
	notification, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Message != nil {
		unique, err := s.notificationRepo.IsMessageUnique(ctx, *patch.Message, &notification.ID)
		if err != nil {
			return nil, err
		}
		if !unique {
			return nil, ErrMessageInUse
		}
		notification.Message = *patch.Message
	}
	if patch.TTL != nil {
		notification.TTL = *patch.TTL
	}
	if patch.DisplayedTimes != nil {
		notification.DisplayedTimes = *patch.DisplayedTimes
	}
	if patch.DisplayedOnce != nil {
		notification.DisplayedOnce = *patch.DisplayedOnce
	}

	if err := s.notificationRepo.Save(ctx, notification); err != nil {
		return nil, err
	}

	return s.Get(ctx, id)
}

func (s *notificationService) Delete(ctx context.Context, id int64) error {
	notification, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	return s.notificationRepo.Delete(ctx, notification)
}
