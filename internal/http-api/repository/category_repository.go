package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"notifyhub/internal/http-api/models"
)

type CategoryRepository interface {
	List(ctx context.Context) ([]models.Category, error)
	FindByID(ctx context.Context, id int64) (*models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	Save(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, category *models.Category) error
	// IsNameUnique reports whether no other category carries the candidate
	// name. excludeID, when non-nil, allows the row being updated to keep
	// its own name.
	IsNameUnique(ctx context.Context, name string, excludeID *int64) (bool, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) List(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.WithContext(ctx).Order("name").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) FindByID(ctx context.Context, id int64) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).
		Preload("Notifications", func(db *gorm.DB) *gorm.DB {
			return db.Order("message")
		}).
		First(&category, id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return fmt.Errorf("create category: %w", err)
	}
	return nil
}

func (r *categoryRepository) Save(ctx context.Context, category *models.Category) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(category).Error; err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

func (r *categoryRepository) Delete(ctx context.Context, category *models.Category) error {
	// the FK constraint cascades the delete to the category's notifications
	if err := r.db.WithContext(ctx).Delete(category).Error; err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

func (r *categoryRepository) IsNameUnique(ctx context.Context, name string, excludeID *int64) (bool, error) {
	var existing models.Category
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
