package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"notifyhub/internal/http-api/models"
	"notifyhub/internal/http-api/repository"
)

var (
	ErrCategoryNotFound  = errors.New("notification category not found")
	ErrCategoryNameInUse = errors.New("category name already in use")
)

type CategoryService interface {
	List(ctx context.Context) ([]models.Category, error)
	Get(ctx context.Context, id int64) (*models.Category, error)
	Create(ctx context.Context, name string) (*models.Category, error)
	// Update applies a partial update: a nil name leaves the category
	// untouched and returns its current state.
	Update(ctx context.Context, id int64, name *string) (*models.Category, error)
	Delete(ctx context.Context, id int64) error
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.categoryRepo.List(ctx)
}

func (s *categoryService) Get(ctx context.Context, id int64) (*models.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) Create(ctx context.Context, name string) (*models.Category, error) {
	unique, err := s.categoryRepo.IsNameUnique(ctx, name, nil)
	if err != nil {
		return nil, err
	}
	if !unique {
		return nil, ErrCategoryNameInUse
	}

	category := &models.Category{Name: name}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	// re-fetch so the response carries store-assigned state
	return s.Get(ctx, category.ID)
}

func (s *categoryService) Update(ctx context.Context, id int64, name *string) (*models.Category, error) {
	category, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if name == nil {
		return category, nil
	}

	unique, err := s.categoryRepo.IsNameUnique(ctx, *name, &category.ID)
	if err != nil {
		return nil, err
	}
	if !unique {
		return nil, ErrCategoryNameInUse
	}

	category.Name = *name
	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}

	return s.Get(ctx, id)
}

func (s *categoryService) Delete(ctx context.Context, id int64) error {
	category, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	return s.categoryRepo.Delete(ctx, category)
}
