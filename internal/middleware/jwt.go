// Package middleware contains reusable HTTP middleware.
package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/arsalanh/quicknotes/internal/utils"
)

// UserIDKey is the echo context key under which the authenticated user's id
// is stored. The context value is the only channel by which handlers learn
// who is calling.
const UserIDKey = "user_id"

// JWTAuth validates a Bearer access token and injects the subject user id
// into the request context. A missing credential and a failed verification
// are both 401 but carry different messages; neither reaches the handler.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Authorization token is required"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			userID, err := utils.ParseAccessToken(secret, raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid or expired token"})
			}

			c.Set(UserIDKey, userID)
			return next(c)
		}
	}
}
