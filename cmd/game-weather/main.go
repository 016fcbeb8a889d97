package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "game-weather/internal/api/http"
	"game-weather/internal/config"
	"game-weather/internal/football"
	"game-weather/internal/geo"
	"game-weather/internal/logging"
	"game-weather/internal/pipeline"
	"game-weather/internal/weather"
)

func main() {
	// Load configuration (reads .env when present).
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	slogger := logging.New()

	// Shared HTTP client for outbound upstream calls. The per-request
	// timeout is the implementation-defined safety margin; the upstream
	// contracts specify none.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	footballClient := football.NewClient(football.Config{
		APIKey:     cfg.FootballAPIKey,
		APIHost:    cfg.FootballAPIHost,
		HTTPClient: httpClient,
		Logger:     slogger,
	})

	var geocoder geo.Geocoder
	switch cfg.GeocoderProvider {
	case config.GeocoderGoogle:
		geocoder = geo.NewGoogleGeocoder(cfg.GoogleGeocoderKey, slogger)
	default:
		geocoder = geo.NewOpenWeatherGeocoder(geo.Config{
			APIKey:     cfg.OpenWeatherAPIKey,
			HTTPClient: httpClient,
			Logger:     slogger,
		})
	}

	weatherClient := weather.NewClient(weather.Config{
		APIKey:     cfg.OpenWeatherAPIKey,
		HTTPClient: httpClient,
		Logger:     slogger,
	})

	// Core pipeline orchestrating the dependent lookups.
	svc := pipeline.NewService(footballClient, footballClient, geocoder, weatherClient, cfg.FixturesNext, slogger)

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "game-weather",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler:          httpapi.ErrorHandler,
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "game-weather",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, svc)

	// Start server with graceful shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
