package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"crms/internal/auth"
	"crms/internal/cache"
	apperrors "crms/internal/errors"
	"crms/internal/model"
	"crms/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// UpdateUserInput carries the fields an admin may change on a user. The
// password hash is deliberately not among them.
type UpdateUserInput struct {
	Name       string
	Email      string
	Mobile     string
	Role       model.Role
	Department string
}

// AddUserInput carries the fields for admin-side user creation.
type AddUserInput struct {
	Name       string
	Email      string
	Mobile     string
	Password   string
	Role       model.Role
	Department string
	Status     model.Status
}

// UserService exposes the admin-side user management operations.
type UserService interface {
	List(ctx context.Context) ([]model.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*model.User, error)
	Add(ctx context.Context, input AddUserInput) (*model.User, error)
}

type userService struct {
	users repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(users repository.UserRepository, cache *cache.Client) UserService {
	return &userService{users: users, cache: cache}
}

func (s *userService) cacheKey(id uuid.UUID) string {
	return "user:" + id.String()
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w: %v", apperrors.ErrStoreUnavailable, err)
	}
	return users, nil
}

// GetByID returns a single user. Admin accounts are never readable through
// this path, even by a valid admin caller.
func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w: %v", apperrors.ErrStoreUnavailable, err)
	}
	if user.Role == model.RoleAdmin {
		return nil, apperrors.ErrProtectedUser
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, userCacheTTL)
	}
	return user, nil
}

// Update changes exactly name, email, mobile, role and department. Admin
// targets are rejected, and a user can never be promoted to admin here.
func (s *userService) Update(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w: %v", apperrors.ErrStoreUnavailable, err)
	}
	if user.Role == model.RoleAdmin {
		return nil, apperrors.ErrProtectedUser
	}
	if !input.Role.SelfAssignable() {
		return nil, apperrors.ErrInvalidRole
	}

	user.Name = input.Name
	user.Email = input.Email
	user.Mobile = input.Mobile
	user.Role = input.Role
	if input.Department != "" {
		user.Department = input.Department
	}

	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("update user: %w: %v", apperrors.ErrStoreUnavailable, err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return user, nil
}

// Add creates a user on behalf of an admin. The role guard is the same as for
// signup: the admin identity lives in configuration, never in the store.
func (s *userService) Add(ctx context.Context, input AddUserInput) (*model.User, error) {
	if !input.Role.SelfAssignable() {
		return nil, apperrors.ErrInvalidRole
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:         input.Name,
		Email:        input.Email,
		Mobile:       input.Mobile,
		PasswordHash: hash,
		Role:         input.Role,
		Department:   input.Department,
		Status:       input.Status,
	}
	applyDefaults(user)

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create user: %w: %v", apperrors.ErrStoreUnavailable, err)
	}
	return user, nil
}
