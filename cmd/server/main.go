package main

import (
	"context"
	"log"
	"net/http"
	"time"

	_ "crms/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"crms/internal/auth"
	"crms/internal/cache"
	"crms/internal/config"
	"crms/internal/db"
	"crms/internal/handler"
	"crms/internal/model"
	"crms/internal/repository"
	"crms/internal/router"
	"crms/internal/service"
)

// @title Case Record Management API
// @version 1.0
// @description Role-based case record management backend with JWT authentication.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.AdminEmail == "" || cfg.AdminPasswordHash == "" {
		log.Println("Warning: ADMIN_EMAIL/ADMIN_PASSWORD_HASH not set, admin login is disabled")
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	if err := cacheClient.Ping(pingCtx); err != nil {
		log.Printf("Warning: redis unreachable, token revocation and caching degraded: %v", err)
	}
	cancel()

	userRepo := repository.NewUserRepository(gormDB)

	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)
	authMW := auth.NewMiddleware(jwtService, tokenStore, userRepo, cfg.AdminEmail)

	authService := service.NewAuthService(userRepo, jwtService, tokenStore, cfg)
	userService := service.NewUserService(userRepo, cacheClient)

	authHandler := handler.NewAuthHandler(authService)
	adminHandler := handler.NewAdminHandler(userService)

	router.Register(e, cfg, authMW, authHandler, adminHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
