package handlers

import (
	stderrors "errors"
	"net/http"
	"time"

	"spendtrack/internal/dto"
	"spendtrack/internal/errors"
	"spendtrack/internal/services"

	"github.com/labstack/echo/v4"
)

// AuthHandler handles credential exchange for access tokens
type AuthHandler struct {
	userService   services.UserServiceInterface
	tokenService  services.TokenServiceInterface
	tokenDuration time.Duration
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(
	userService services.UserServiceInterface,
	tokenService services.TokenServiceInterface,
	tokenDuration time.Duration,
) *AuthHandler {
	return &AuthHandler{
		userService:   userService,
		tokenService:  tokenService,
		tokenDuration: tokenDuration,
	}
}

// Login verifies a credential pair and issues an access token
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	user, err := h.userService.Authenticate(req.Email, req.Password)
	if err != nil {
		if stderrors.Is(err, services.ErrInvalidCredentials) {
			return SendError(c, errors.AuthInvalidCredentials)
		}
		return SendSystemError(c, err)
	}

	token, err := h.tokenService.GenerateToken(user.ID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(h.tokenDuration.Seconds()),
		User:        dto.NewUserResponse(user),
	})
}
