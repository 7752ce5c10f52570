package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tacticlens/internal/config"
	"tacticlens/internal/datastore"
	"tacticlens/internal/dict"
	"tacticlens/internal/jobs"
	"tacticlens/internal/metrics"
	"tacticlens/internal/server"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()

	// Seed dictionaries: built-in defaults, overridable by tactics.yaml
	defaults := dict.DefaultTactics()
	presets, err := config.LoadPresets()
	if err != nil {
		log.Fatalf("Failed to load tactic presets: %v", err)
	}
	if presets != nil && len(presets.Tactics) > 0 {
		defaults, err = presets.SeedTactics()
		if err != nil {
			log.Fatalf("Invalid tactic presets: %v", err)
		}
		log.Printf("Loaded %d tactic presets from config", len(defaults))
	}

	// Dataset storage (Redis when configured, in-process otherwise)
	data := datastore.New(cfg.RedisURL, cfg.DatasetTTL)
	defer data.Close()
	if cfg.RedisURL != "" {
		log.Println("Using Redis dataset storage")
	} else {
		log.Println("Using in-process dataset storage")
	}

	metrics.Init()

	srv := server.New(cfg)
	if err := srv.RegisterRoutes(ctx, data, defaults); err != nil {
		log.Fatalf("Failed to register routes: %v", err)
	}

	// Background janitor for the in-process dataset store
	janitor := jobs.NewJanitor(data, 5*time.Minute)
	go janitor.Start(ctx)

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
	cancel()
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
