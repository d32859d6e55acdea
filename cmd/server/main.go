// Package main is the entry point for the subwayfood server.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/randytsao24/subwayfood/internal/api"
	"github.com/randytsao24/subwayfood/internal/commute"
	"github.com/randytsao24/subwayfood/internal/config"
	"github.com/randytsao24/subwayfood/internal/location"
)

func main() {
	cfg := config.Load()

	if err := cfg.Validate(); err != nil {
		log.Fatal("Configuration error: ", err)
	}

	slog.SetDefault(newLogger(cfg))

	ds, err := location.LoadDataset(cfg.DataDir)
	if err != nil {
		log.Fatal("Failed to load dataset: ", err)
	}
	slog.Info("dataset loaded",
		"stations", ds.Stations.Count(),
		"restaurants", ds.Restaurants.Count(),
		"lines", ds.Lines.Count(),
	)

	recommender := commute.NewRecommender(ds.Stations.All(), ds.Restaurants.All())

	var webFS fs.FS
	if cfg.WebDir != "" {
		webFS = os.DirFS(cfg.WebDir)
	}

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      api.NewRouter(cfg, ds, recommender, webFS),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	fmt.Printf("🚇 subwayfood server starting on port %s\n", cfg.Port)
	fmt.Printf("📍 Environment: %s\n", cfg.Env)
	fmt.Printf("🍜 %d stations, %d restaurants\n", ds.Stations.Count(), ds.Restaurants.Count())
	fmt.Printf("🔗 http://localhost:%s\n", cfg.Port)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start: ", err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	if cfg.IsDevelopment() {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, nil))
}
