package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/MounTainVSCO/oceans-api/internal/application/services"
	"github.com/MounTainVSCO/oceans-api/internal/config"
	"github.com/MounTainVSCO/oceans-api/internal/delivery/handler"
	"github.com/MounTainVSCO/oceans-api/internal/infrastructure"
	"github.com/MounTainVSCO/oceans-api/internal/infrastructure/db/postgres"
	"github.com/MounTainVSCO/oceans-api/internal/messaging"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	cfg := config.Load()

	db, err := postgres.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to connect database:", err)
	}
	if err := postgres.Migrate(db); err != nil {
		log.Fatal("failed to migrate:", err)
	}

	var tokenStore infrastructure.TokenStore = infrastructure.NewMemoryTokenStore()
	if redisStore := infrastructure.NewRedisTokenStore(cfg.RedisURL); redisStore != nil {
		tokenStore = redisStore
		defer redisStore.Close()
	}

	events := messaging.Connect(cfg.NatsURL)
	defer events.Close()

	jwtService := infrastructure.NewJWTService(cfg.JWTSecret, cfg.AccessTTL, cfg.RefreshTTL, tokenStore)
	mailService := infrastructure.NewMailService(cfg.SendgridAPIKey, cfg.EmailSender)
	rateLimiter := infrastructure.NewRateLimiter(cfg.RateLimitWindow, cfg.RateLimitMaxRequests)

	userRepo := postgres.NewUserRepository(db)
	siteRepo := postgres.NewSiteRepository(db)

	authService := services.NewAuthService(userRepo, jwtService, mailService, rateLimiter, events)
	siteService := services.NewSiteService(siteRepo, userRepo, events)

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	handler.RegisterRoutes(e, handler.NewAuthHandler(authService), handler.NewSiteHandler(siteService), jwtService)

	log.Fatal(e.Start(":" + cfg.Port))
}
