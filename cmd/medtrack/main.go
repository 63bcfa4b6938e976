package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/medtrack-app/medtrack/internal/api"
	"github.com/medtrack-app/medtrack/internal/config"
	"github.com/medtrack-app/medtrack/internal/db"
)

func main() {
	cfg := config.Load()
	time.Local = cfg.Location

	database, err := db.Open(cfg.DatabaseURL, cfg.DBPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	handler := api.NewHandler(database, cfg)

	app := fiber.New(fiber.Config{
		AppName:               "Medtrack",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(cors.New())

	api.RegisterRoutes(app, handler)
	app.Static("/", cfg.StaticDir)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Medtrack listening on http://0.0.0.0:%s (db: %s, tz: %s)", cfg.Port, describeStore(cfg), cfg.Location.String())
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func describeStore(cfg *config.Config) string {
	if cfg.DatabaseURL != "" {
		return "postgres"
	}
	return cfg.DBPath
}
