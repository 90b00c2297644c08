package handlers

import (
	stderrors "errors"
	"net/http"

	"spendtrack/internal/dto"
	"spendtrack/internal/errors"
	"spendtrack/internal/models"
	"spendtrack/internal/repositories"
	"spendtrack/internal/services"

	"github.com/labstack/echo/v4"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userService services.UserServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService services.UserServiceInterface) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateUser registers a new user
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req dto.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	user, err := h.userService.Create(req.Username, req.Email, req.Password, req.AboutMe)
	if err != nil {
		return h.mapUserError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewUserResponse(user))
}

// GetUser retrieves a user by id
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.UserInvalidID)
	}

	user, err := h.userService.Get(id)
	if err != nil {
		return h.mapUserError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// ListUsers retrieves all users
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userService.List()
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewUserListResponse(users))
}

// UpdateUser applies a partial update to a user
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.UserInvalidID)
	}

	var req dto.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	user, err := h.userService.Update(id, req.ToPatch())
	if err != nil {
		return h.mapUserError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// DeleteUser removes a user and its transaction associations
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.UserInvalidID)
	}

	if err := h.userService.Delete(id); err != nil {
		return h.mapUserError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *UserHandler) mapUserError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, repositories.ErrUserNotFound):
		return SendError(c, errors.UserNotFound)
	case stderrors.Is(err, services.ErrEmailTaken):
		return SendError(c, errors.UserEmailTaken)
	case stderrors.Is(err, services.ErrUsernameTaken):
		return SendError(c, errors.UserUsernameTaken)
	case stderrors.Is(err, models.ErrUsernameRequired),
		stderrors.Is(err, models.ErrEmailRequired),
		stderrors.Is(err, models.ErrInvalidEmail):
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	case stderrors.Is(err, services.ErrPasswordEmpty),
		stderrors.Is(err, services.ErrPasswordTooShort),
		stderrors.Is(err, services.ErrPasswordTooLong):
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	default:
		return SendSystemError(c, err)
	}
}
