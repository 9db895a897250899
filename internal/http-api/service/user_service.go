package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"notifyhub/internal/http-api/models"
	"notifyhub/internal/http-api/repository"
	"notifyhub/internal/middleware/auth"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserNameInUse      = errors.New("user name already in use")
	ErrWeakPassword       = errors.New("password does not meet the policy")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// dummy bcrypt hash compared against when the user does not exist, so a
// failed lookup takes as long as a failed password check
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type UserService interface {
	Register(ctx context.Context, name, password string) (*models.User, error)
	Get(ctx context.Context, id int64) (*models.User, error)
	List(ctx context.Context, page, pageSize int) ([]models.User, int64, error)
	// Authenticate resolves basic-auth credentials to a user record.
	Authenticate(ctx context.Context, name, password string) (*models.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Register(ctx context.Context, name, password string) (*models.User, error) {
	if err := auth.CheckPasswordStrength(password); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWeakPassword, err)
	}

	unique, err := s.userRepo.IsNameUnique(ctx, name, nil)
	if err != nil {
		return nil, err
	}
	if !unique {
		return nil, ErrUserNameInUse
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{Name: name, PasswordHash: hash}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.Get(ctx, user.ID)
}

func (s *userService) Get(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) List(ctx context.Context, page, pageSize int) ([]models.User, int64, error) {
	return s.userRepo.List(ctx, page, pageSize)
}

func (s *userService) Authenticate(ctx context.Context, name, password string) (*models.User, error) {
	user, err := s.userRepo.FindByName(ctx, name)
	if err != nil {
		auth.VerifyPassword(dummyHash, password)
		return nil, ErrInvalidCredentials
	}

	if err := auth.VerifyPassword(user.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
