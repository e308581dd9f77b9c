package main

import (
	"log"

	"github.com/labstack/echo/v4"

	"github.com/arsalanh/quicknotes/internal/config"
	"github.com/arsalanh/quicknotes/internal/database"
	"github.com/arsalanh/quicknotes/internal/handler"
	"github.com/arsalanh/quicknotes/internal/middleware"
	"github.com/arsalanh/quicknotes/internal/repository"
	"github.com/arsalanh/quicknotes/internal/router"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPass, cfg.DBName)
	if err != nil {
		log.Fatalf("database connect: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("migrations: %v", err)
	}

	// Optional: a nil client simply disables the auth rate limiter.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable, rate limiting disabled")
	}

	users := repository.NewUserRepo(db)
	notes := repository.NewNoteRepo(db)
	shares := repository.NewShareRepo(db)

	authHandler := handler.NewAuthHandler(cfg, users)
	noteHandler := handler.NewNoteHandler(notes, shares)

	e := echo.New()
	e.HideBanner = true
	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	router.Register(e, cfg, authHandler, noteHandler, limiter)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
