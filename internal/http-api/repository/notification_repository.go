package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"notifyhub/internal/http-api/models"
)

type NotificationRepository interface {
	List(ctx context.Context, page, pageSize int) ([]models.Notification, int64, error)
	FindByID(ctx context.Context, id int64) (*models.Notification, error)
	// CreateWithCategory inserts the notification, resolving the category by
	// name and creating it when absent, all inside one transaction.
	CreateWithCategory(ctx context.Context, notification *models.Notification, categoryName string) error
	Save(ctx context.Context, notification *models.Notification) error
	Delete(ctx context.Context, notification *models.Notification) error
	IsMessageUnique(ctx context.Context, message string, excludeID *int64) (bool, error)
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) List(ctx context.Context, page, pageSize int) ([]models.Notification, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Notification{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize

	var notifications []models.Notification
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Order("id").
		Limit(pageSize).
		Offset(offset).
		Find(&notifications).Error; err != nil {
		return nil, 0, err
	}

	return notifications, total, nil
}

func (r *notificationRepository) FindByID(ctx context.Context, id int64) (*models.Notification, error) {
	var notification models.Notification
	if err := r.db.WithContext(ctx).Preload("Category").First(&notification, id).Error; err != nil {
		return nil, err
	}
	return &notification, nil
}

func (r *notificationRepository) CreateWithCategory(ctx context.Context, notification *models.Notification, categoryName string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var category models.Category
		err := tx.Where("name = ?", categoryName).First(&category).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			category = models.Category{Name: categoryName}
			if err := tx.Create(&category).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		notification.CategoryID = category.ID
		return tx.Create(notification).Error
	})
	if err != nil {
		return fmt.Errorf("create notification: %w", err)
	}
	return nil
}

func (r *notificationRepository) Save(ctx context.Context, notification *models.Notification) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(notification).Error; err != nil {
		return fmt.Errorf("update notification: %w", err)
	}
	return nil
}

func (r *notificationRepository) Delete(ctx context.Context, notification *models.Notification) error {
	if err := r.db.WithContext(ctx).Delete(notification).Error; err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}
	return nil
}

func (r *notificationRepository) IsMessageUnique(ctx context.Context, message string, excludeID *int64) (bool, error) {
	var existing models.Notification
	err := r.db.WithContext(ctx).Where("message = ?", message).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	if excludeID != nil && existing.ID == *excludeID {
		return true, nil
	}
	return false, nil
}
