package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"scheduler-callback-api/core/errors"
	"scheduler-callback-api/core/logger"
	"scheduler-callback-api/core/utils"
)

type Middleware struct{}

func NewMiddleware() *Middleware {
	return &Middleware{}
}

// AuthMiddleware validates the Bearer token and stores the caller identity
// in the request context under "user_id".
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, map[string]string{
					"code":    string(errors.ErrMissingAuthorizationHeader),
					"message": "missing authorization header",
				})
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, map[string]string{
					"code":    string(errors.ErrInvalidTokenFormat),
					"message": "invalid authorization header format",
				})
			}

			data, err := utils.ValidateAndParseToken(parts[1])
			if err != nil {
				logger.Warn("Middleware:AuthMiddleware:InvalidToken:", err)
				code := errors.ErrUnauthorized
				if ae, ok := err.(*errors.AppError); ok {
					code = ae.Code
				}
				return echo.NewHTTPError(http.StatusUnauthorized, map[string]string{
					"code":    string(code),
					"message": "invalid or expired token",
				})
			}

			c.Set("user_id", data.UserID)
			c.Set("token_scope", data.Scope)
			return next(c)
		}
	}
}
