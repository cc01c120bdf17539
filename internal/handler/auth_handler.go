package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"crms/internal/auth"
	"crms/internal/errors"
	"crms/internal/model"
	"crms/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SignupRequest represents an officer/investigator signup request.
type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Mobile   string `json:"mobile" validate:"required,inmobile"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse represents a successful authentication response.
type TokenResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Token   string `json:"token"`
	Role    string `json:"role"`
}

// Signup godoc
// @Summary Register a new officer or investigator
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Signup data"
// @Success 201 {object} TokenResponse
// @Failure 400 {object} errors.Response
// @Failure 500 {object} errors.Response
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(err.Error())
	}

	token, role, err := h.authService.Signup(c.Request().Context(), service.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Mobile:   req.Mobile,
		Password: req.Password,
		Role:     model.Role(req.Role),
	})
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, TokenResponse{
		Success: true,
		Message: "Signup Successful",
		Token:   token,
		Role:    string(role),
	})
}

// Login godoc
// @Summary Login an officer or investigator
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} errors.Response
// @Failure 401 {object} errors.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(err.Error())
	}

	token, role, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, TokenResponse{
		Success: true,
		Message: "Login successful",
		Token:   token,
		Role:    string(role),
	})
}

// AdminLogin godoc
// @Summary Login with the configured admin credentials
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Admin credentials"
// @Success 200 {object} TokenResponse
// @Failure 401 {object} errors.Response
// @Router /admin/login [post]
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(err.Error())
	}

	token, err := h.authService.AdminLogin(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, TokenResponse{
		Success: true,
		Token:   token,
		Role:    string(model.RoleAdmin),
	})
}

// Logout godoc
// @Summary Revoke the presented token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} errors.Response
// @Failure 401 {object} errors.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	token := bearerToken(c)
	if token == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, errors.Response{Success: false, Message: "Not Authorized, Login Again"})
	}

	if err := h.authService.Logout(c.Request().Context(), token); err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, errors.Response{Success: false, Message: "Invalid Token or Not Authorized"})
	}

	return c.JSON(http.StatusOK, errors.Response{Success: true, Message: "Logged out successfully"})
}

// Me godoc
// @Summary Return the acting identity
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.Response
// @Router /users/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	user := auth.IdentityFrom(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, errors.Response{Success: false, Message: "Not Authorized, Login Again"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "user": user})
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

func badRequest(msg string) error {
	return echo.NewHTTPError(http.StatusBadRequest, errors.Response{Success: false, Message: msg})
}

func httpError(err error) error {
	he := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(he.StatusCode, he.ToResponse())
}
