package middleware

import (
	"poisar-hisap/internal/errors"
	"poisar-hisap/internal/handlers"
	"poisar-hisap/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequireAuth creates a middleware that requires a valid access token minted
// by the external auth collaborator. Every expense route is owner scoped, so
// the verified user ID is the only identity the handlers ever see.
func RequireAuth(tokenService services.TokenServiceInterface, metrics services.MetricsRecorderInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.IncrementCounter("auth.failure", map[string]string{"reason": "missing_token"})
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			token, err := tokenService.ExtractTokenFromHeader(authHeader)
			if err != nil {
				metrics.IncrementCounter("auth.failure", map[string]string{"reason": "malformed_header"})
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			claims, err := tokenService.ValidateAccessToken(token)
			if err != nil {
				if err == services.ErrExpiredToken {
					metrics.IncrementCounter("auth.failure", map[string]string{"reason": "expired"})
					return handlers.SendError(c, errors.AuthExpiredToken)
				}
				metrics.IncrementCounter("auth.failure", map[string]string{"reason": "invalid"})
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			userID, err := uuid.Parse(claims.UserID)
			if err != nil {
				metrics.IncrementCounter("auth.failure", map[string]string{"reason": "invalid"})
				return handlers.SendError(c, errors.AuthInvalidTokenFormat, errors.WithDetails("Invalid user ID in token"))
			}

			c.Set("user_id", userID)
			c.Set("user_email", claims.Email)
			c.Set("token_jti", claims.ID)

			return next(c)
		}
	}
}
