package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"crms/internal/model"
)

const testAdminEmail = "admin@example.com"

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

// MockTokenStore is a mock implementation of TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

func newTestServer(jwtService *JWTService, tokenStore TokenStoreInterface, users *MockUserRepository) *echo.Echo {
	mw := NewMiddleware(jwtService, tokenStore, users, testAdminEmail)

	e := echo.New()
	secured := e.Group("", echojwt.WithConfig(mw.JWTConfig()))
	secured.GET("/admin/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, "pong")
	}, mw.RequireAdmin)
	secured.GET("/me", func(c echo.Context) error {
		user := IdentityFrom(c)
		if user == nil {
			return c.String(http.StatusInternalServerError, "no identity")
		}
		return c.String(http.StatusOK, user.Email)
	}, mw.RequireUser)
	return e
}

func doRequest(e *echo.Echo, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestMiddleware_MissingToken(t *testing.T) {
	jwtService := NewJWTService("test-secret")
	e := newTestServer(jwtService, new(MockTokenStore), new(MockUserRepository))

	rec := doRequest(e, "/admin/ping", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddleware_MalformedToken(t *testing.T) {
	jwtService := NewJWTService("test-secret")
	e := newTestServer(jwtService, new(MockTokenStore), new(MockUserRepository))

	rec := doRequest(e, "/admin/ping", "garbage")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddleware_ExpiredToken(t *testing.T) {
	jwtService := NewJWTService("test-secret")
	e := newTestServer(jwtService, new(MockTokenStore), new(MockUserRepository))

	token, err := jwtService.Generate("", testAdminEmail, model.RoleAdmin, -time.Minute)
	assert.NoError(t, err)

	rec := doRequest(e, "/admin/ping", token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddleware_RevokedToken(t *testing.T) {
	jwtService := NewJWTService("test-secret")
	tokenStore := new(MockTokenStore)
	tokenStore.On("IsRevoked", mock.Anything, mock.AnythingOfType("string")).Return(true, nil)
	e := newTestServer(jwtService, tokenStore, new(MockUserRepository))

	token, err := jwtService.Generate("", testAdminEmail, model.RoleAdmin, AdminTokenExpiry)
	assert.NoError(t, err)

	rec := doRequest(e, "/admin/ping", token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	tokenStore.AssertExpectations(t)
}

func TestMiddleware_RequireAdmin(t *testing.T) {
	jwtService := NewJWTService("test-secret")
	tokenStore := new(MockTokenStore)
	tokenStore.On("IsRevoked", mock.Anything, mock.AnythingOfType("string")).Return(false, nil)
	e := newTestServer(jwtService, tokenStore, new(MockUserRepository))

	tests := []struct {
		name         string
		userID       string
		email        string
		role         model.Role
		expectedCode int
	}{
		{
			name:         "admin token admitted",
			email:        testAdminEmail,
			role:         model.RoleAdmin,
			expectedCode: http.StatusOK,
		},
		{
			name:         "officer token forbidden",
			userID:       uuid.New().String(),
			email:        "officer@example.com",
			role:         model.RoleOfficer,
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "admin role with foreign email forbidden",
			email:        "other@example.com",
			role:         model.RoleAdmin,
			expectedCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwtService.Generate(tt.userID, tt.email, tt.role, AdminTokenExpiry)
			assert.NoError(t, err)

			rec := doRequest(e, "/admin/ping", token)
			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestMiddleware_RequireUser(t *testing.T) {
	activeID := uuid.New()
	inactiveID := uuid.New()
	missingID := uuid.New()

	tests := []struct {
		name         string
		userID       string
		setupMock    func(*MockUserRepository)
		expectedCode int
	}{
		{
			name:   "active user resolved and attached",
			userID: activeID.String(),
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, activeID).Return(&model.User{
					ID:     activeID,
					Email:  "officer@example.com",
					Role:   model.RoleOfficer,
					Status: model.StatusActive,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "inactive user rejected",
			userID: inactiveID.String(),
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, inactiveID).Return(&model.User{
					ID:     inactiveID,
					Email:  "inactive@example.com",
					Role:   model.RoleOfficer,
					Status: model.StatusInactive,
				}, nil)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:   "deleted user rejected",
			userID: missingID.String(),
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, missingID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jwtService := NewJWTService("test-secret")
			tokenStore := new(MockTokenStore)
			tokenStore.On("IsRevoked", mock.Anything, mock.AnythingOfType("string")).Return(false, nil)
			users := new(MockUserRepository)
			tt.setupMock(users)
			e := newTestServer(jwtService, tokenStore, users)

			token, err := jwtService.Generate(tt.userID, "officer@example.com", model.RoleOfficer, UserTokenExpiry)
			assert.NoError(t, err)

			rec := doRequest(e, "/me", token)
			assert.Equal(t, tt.expectedCode, rec.Code)
			users.AssertExpectations(t)
		})
	}
}
