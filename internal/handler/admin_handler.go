package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"crms/internal/errors"
	"crms/internal/model"
	"crms/internal/service"
)

// AdminHandler handles the admin-only user management endpoints.
type AdminHandler struct {
	userService service.UserService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(userService service.UserService) *AdminHandler {
	return &AdminHandler{userService: userService}
}

// UpdateUserRequest represents an admin-side user update.
type UpdateUserRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Mobile     string `json:"mobile" validate:"required,inmobile"`
	Role       string `json:"role" validate:"required"`
	Department string `json:"department"`
}

// AddUserRequest represents admin-side user creation.
type AddUserRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Mobile     string `json:"mobile" validate:"required,inmobile"`
	Password   string `json:"password" validate:"required,min=6"`
	Role       string `json:"role" validate:"required"`
	Department string `json:"department"`
	Status     string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// UsersResponse wraps a user listing.
type UsersResponse struct {
	Success bool         `json:"success"`
	Users   []model.User `json:"users"`
}

// UserResponse wraps a single user.
type UserResponse struct {
	Success bool        `json:"success"`
	User    *model.User `json:"user"`
}

// ListUsers godoc
// @Summary List all users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UsersResponse
// @Failure 401 {object} errors.Response
// @Failure 403 {object} errors.Response
// @Router /admin/users/all [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, UsersResponse{Success: true, Users: users})
}

// GetUser godoc
// @Summary Get a user by id
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} UserResponse
// @Failure 403 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Router /admin/users/{id} [get]
func (h *AdminHandler) GetUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest("invalid user id")
	}

	user, err := h.userService.GetByID(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, UserResponse{Success: true, User: user})
}

// UpdateUser godoc
// @Summary Update a user by id
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body UpdateUserRequest true "Fields to update"
// @Success 200 {object} errors.Response
// @Failure 400 {object} errors.Response
// @Failure 403 {object} errors.Response
// @Failure 404 {object} errors.Response
// @Router /admin/users/{id} [put]
func (h *AdminHandler) UpdateUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest("invalid user id")
	}

	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(err.Error())
	}

	if _, err := h.userService.Update(c.Request().Context(), id, service.UpdateUserInput{
		Name:       req.Name,
		Email:      req.Email,
		Mobile:     req.Mobile,
		Role:       model.Role(req.Role),
		Department: req.Department,
	}); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, errors.Response{Success: true, Message: "User updated successfully"})
}

// AddUser godoc
// @Summary Create a user
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AddUserRequest true "User data"
// @Success 201 {object} UserResponse
// @Failure 400 {object} errors.Response
// @Failure 403 {object} errors.Response
// @Router /admin/users/add [post]
func (h *AdminHandler) AddUser(c echo.Context) error {
	var req AddUserRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(err.Error())
	}

	user, err := h.userService.Add(c.Request().Context(), service.AddUserInput{
		Name:       req.Name,
		Email:      req.Email,
		Mobile:     req.Mobile,
		Password:   req.Password,
		Role:       model.Role(req.Role),
		Department: req.Department,
		Status:     model.Status(req.Status),
	})
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, UserResponse{Success: true, User: user})
}
