// Package handler implements the HTTP endpoints.
package handler

import (
	"context"
	"errors"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/arsalanh/quicknotes/internal/middleware"
)

// dbTimeout bounds every repository call; requests carry no other timeout
// contract beyond what the transport enforces.
const dbTimeout = 5 * time.Second

// getUserID extracts the authenticated user's id placed in the context by
// the JWT middleware.
func getUserID(c echo.Context) (int64, error) {
	if id, ok := c.Get(middleware.UserIDKey).(int64); ok && id != 0 {
		return id, nil
	}
	return 0, errors.New("no authenticated user in context")
}

func reqContext(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), dbTimeout)
}
