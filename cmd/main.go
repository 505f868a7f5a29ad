package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/lumenchat/auth-service/config"
	"github.com/lumenchat/auth-service/db"
	"github.com/lumenchat/auth-service/internal/auth/handler"
	"github.com/lumenchat/auth-service/internal/auth/hashing"
	repo "github.com/lumenchat/auth-service/internal/auth/repository/postgres"
	"github.com/lumenchat/auth-service/internal/auth/service"
	"github.com/lumenchat/auth-service/internal/mailer"
)

func main() {
	cfg := config.Load()

	if err := db.Migrate(cfg.DBURL); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	pool, err := db.NewPostgresPool(context.Background(), cfg.DBURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	store := repo.NewPostgresRepository(pool)
	hasher := hashing.NewBcryptHasher(cfg.BcryptCost)
	tokenService := service.NewTokenService(store, store, cfg)
	policy := service.NewPasswordPolicy(store, hasher, cfg)
	lockout := service.NewLockoutTracker(store, cfg)
	userService := service.NewUserService(store, tokenService, hasher, policy, lockout, mailer.LogMailer{})
	authHandler := handler.NewAuthHandler(userService, tokenService)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler)

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
