// Package router wires HTTP routes to their handlers.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/arsalanh/quicknotes/internal/config"
	"github.com/arsalanh/quicknotes/internal/handler"
	"github.com/arsalanh/quicknotes/internal/middleware"
)

// Register attaches all routes. Signup and login sit behind the rate
// limiter only; everything else under /api requires a valid bearer token.
func Register(e *echo.Echo, cfg config.Config, a *handler.AuthHandler, n *handler.NoteHandler, limiter echo.MiddlewareFunc) {
	e.GET("/healthz", handler.Health)

	auth := e.Group("/api/auth")
	if limiter != nil {
		auth.Use(limiter)
	}
	auth.POST("/signup", a.Signup)
	auth.POST("/login", a.Login)

	api := e.Group("/api", middleware.JWTAuth(cfg.JWTSecret))
	api.GET("/notes", n.List)
	api.POST("/notes", n.Create)
	api.GET("/notes/:id", n.Get)
	api.PUT("/notes/:id", n.Update)
	api.DELETE("/notes/:id", n.Delete)
	api.POST("/notes/:id/share", n.Share)
	api.GET("/search", n.Search)
}
