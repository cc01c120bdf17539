package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"crms/internal/auth"
	"crms/internal/config"
	apperrors "crms/internal/errors"
	"crms/internal/model"
	"crms/internal/repository"
)

const defaultDepartment = "General"

// SignupInput carries the fields accepted from the public signup endpoint.
type SignupInput struct {
	Name       string
	Email      string
	Mobile     string
	Password   string
	Role       model.Role
	Department string
}

// AuthService handles authentication operations.
type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (token string, role model.Role, err error)
	Login(ctx context.Context, email, password string) (token string, role model.Role, err error)
	AdminLogin(ctx context.Context, email, password string) (token string, err error)
	Logout(ctx context.Context, tokenString string) error
}

type authService struct {
	users      repository.UserRepository
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
	adminEmail string
	adminHash  string
}

// NewAuthService creates a new authentication service. Admin credentials come
// from configuration, not from the credential store.
func NewAuthService(users repository.UserRepository, jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface, cfg *config.Config) AuthService {
	return &authService{
		users:      users,
		jwtService: jwtService,
		tokenStore: tokenStore,
		adminEmail: cfg.AdminEmail,
		adminHash:  cfg.AdminPasswordHash,
	}
}

// Signup registers a new officer or investigator and returns a 30-day token.
// The admin role can never be taken through this path.
func (s *authService) Signup(ctx context.Context, input SignupInput) (string, model.Role, error) {
	if !input.Role.SelfAssignable() {
		return "", "", apperrors.ErrInvalidRole
	}

	existing, err := s.users.FindByEmail(ctx, input.Email)
	if err == nil && existing != nil {
		return "", "", apperrors.ErrDuplicateEmail
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", "", fmt.Errorf("check user existence: %w: %v", apperrors.ErrStoreUnavailable, err)
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return "", "", fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:         input.Name,
		Email:        input.Email,
		Mobile:       input.Mobile,
		PasswordHash: hash,
		Role:         input.Role,
		Department:   input.Department,
		Status:       model.StatusActive,
	}
	applyDefaults(user)

	if err := s.users.Create(ctx, user); err != nil {
		// Racing signups on the same email are settled by the unique index.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", "", apperrors.ErrDuplicateEmail
		}
		return "", "", fmt.Errorf("create user: %w: %v", apperrors.ErrStoreUnavailable, err)
	}

	token, err := s.jwtService.Generate(user.ID.String(), user.Email, user.Role, auth.UserTokenExpiry)
	if err != nil {
		return "", "", fmt.Errorf("generate token: %w", err)
	}
	return token, user.Role, nil
}

// Login authenticates a stored user and returns a 30-day token. Unknown email
// and wrong password both read as invalid credentials so the endpoint cannot
// be used to enumerate accounts.
func (s *authService) Login(ctx context.Context, email, password string) (string, model.Role, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", apperrors.ErrInvalidCredentials
		}
		return "", "", fmt.Errorf("find user: %w: %v", apperrors.ErrStoreUnavailable, err)
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", "", apperrors.ErrInvalidCredentials
	}

	now := time.Now().UTC().Format(time.RFC3339)
	user.LastLogin = &now
	if err := s.users.Update(ctx, user); err != nil {
		return "", "", fmt.Errorf("update last login: %w: %v", apperrors.ErrStoreUnavailable, err)
	}

	token, err := s.jwtService.Generate(user.ID.String(), user.Email, user.Role, auth.UserTokenExpiry)
	if err != nil {
		return "", "", fmt.Errorf("generate token: %w", err)
	}
	return token, user.Role, nil
}

// AdminLogin authenticates against the statically configured admin
// credentials. No store lookup happens on this path, so a rejection reveals
// nothing about which emails exist.
func (s *authService) AdminLogin(ctx context.Context, email, password string) (string, error) {
	if s.adminEmail == "" || email != s.adminEmail {
		return "", apperrors.ErrInvalidCredentials
	}
	if !auth.CheckPassword(password, s.adminHash) {
		return "", apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.Generate("", email, model.RoleAdmin, auth.AdminTokenExpiry)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return token, nil
}

// Logout denylists the presented token for the remainder of its lifetime.
func (s *authService) Logout(ctx context.Context, tokenString string) error {
	claims, err := s.jwtService.Validate(tokenString)
	if err != nil {
		return err
	}
	if claims.ExpiresAt == nil {
		return nil
	}
	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining <= 0 {
		return nil
	}
	return s.tokenStore.Revoke(ctx, claims.ID, remaining)
}

// applyDefaults fills optional fields at construction time so the defaults
// live in one place instead of per call site.
func applyDefaults(u *model.User) {
	if u.Department == "" {
		u.Department = defaultDepartment
	}
	if u.Status == "" {
		u.Status = model.StatusActive
	}
}
