package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"notifyhub/internal/http-api/models"
)

type UserRepository interface {
	List(ctx context.Context, page, pageSize int) ([]models.User, int64, error)
	FindByID(ctx context.Context, id int64) (*models.User, error)
	FindByName(ctx context.Context, name string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	IsNameUnique(ctx context.Context, name string, excludeID *int64) (bool, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) List(ctx context.Context, page, pageSize int) ([]models.User, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize

	var users []models.User
	if err := r.db.WithContext(ctx).
		Order("id").
		Limit(pageSize).
		Offset(offset).
		Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByName(ctx context.Context, name string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *userRepository) IsNameUnique(ctx context.Context, name string, excludeID *int64) (bool, error) {
	var existing models.User
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&existing).Error
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
