package middleware

import (
	stderrors "errors"
	"strings"

	"spendtrack/internal/errors"
	"spendtrack/internal/handlers"
	"spendtrack/internal/services"

	"github.com/labstack/echo/v4"
)

// RequireAuth creates a middleware that requires a valid Bearer access token
// and puts the authenticated user id on the request context
func RequireAuth(tokenService services.TokenServiceInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			userID, err := tokenService.ValidateToken(parts[1])
			if err != nil {
				if stderrors.Is(err, services.ErrExpiredToken) {
					return handlers.SendError(c, errors.AuthExpiredToken)
				}
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			c.Set("user_id", userID)
			return next(c)
		}
	}
}
