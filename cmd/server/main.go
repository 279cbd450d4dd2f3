package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/storage/redis/v3"

	"stocktrace/internal/config"
	"stocktrace/internal/db"
	"stocktrace/internal/jobs"
	"stocktrace/internal/locate"
	"stocktrace/internal/metrics"
	"stocktrace/internal/server"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	// Optional YAML weight overrides on top of env-configured params
	weights, err := config.LoadWeights(cfg.WeightsFile)
	if err != nil {
		log.Fatalf("Failed to load weights file: %v", err)
	}
	if err := weights.Apply(&cfg.Engine); err != nil {
		log.Fatalf("Failed to apply weights file: %v", err)
	}

	// Initialize database
	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	if cfg.IsDev() {
		if err := database.SeedDevData(ctx); err != nil {
			log.Printf("Warning: failed to seed dev data: %v", err)
		}
	}

	metrics.Init()

	// Optional lookup-response cache
	var cache fiber.Storage
	if cfg.RedisURL != "" {
		cache = redis.New(redis.Config{URL: cfg.RedisURL})
		log.Println("Lookup response cache enabled")
	}

	engine := locate.New(locate.Sources{
		Assets:        database,
		Pallets:       database,
		Scans:         database,
		Audits:        database,
		Confirmations: database,
		Neighbors:     database,
	}, cfg.Engine)

	srv := server.New(cfg)
	srv.RegisterRoutes(database, engine, cache)

	jobCtx, cancelJobs := context.WithCancel(ctx)
	defer cancelJobs()
	monitor := jobs.NewStalenessMonitor(database, cfg.StalenessInterval, 7*24*time.Hour)
	go monitor.Start(jobCtx)

	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()
	log.Printf("Server started on %s", cfg.ServerAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	cancelJobs()
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
