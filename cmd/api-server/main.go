package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"notifyhub/database"
	"notifyhub/internal/config"
	"notifyhub/internal/http-api/handler"
	"notifyhub/internal/http-api/middleware"
	"notifyhub/internal/http-api/repository"
	"notifyhub/internal/http-api/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	logger := newLogger(cfg)

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}

	categoryRepo := repository.NewCategoryRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	userRepo := repository.NewUserRepository(db)

	categoryService := service.NewCategoryService(categoryRepo)
	notificationService := service.NewNotificationService(notificationRepo)
	userService := service.NewUserService(userRepo)

	categoryHandler := handler.NewCategoryHandler(categoryService)
	notificationHandler := handler.NewNotificationHandler(notificationService, cfg)
	userHandler := handler.NewUserHandler(userService, cfg)

	r := gin.Default()
	r.Use(middleware.RequestID())

	r.GET("/health", handler.Health)

	api := r.Group("/")
	categoryHandler.RegisterRoutes(api)
	notificationHandler.RegisterRoutes(api)
	userHandler.RegisterRoutes(api, middleware.BasicAuth(userService))

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("starting api server", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
