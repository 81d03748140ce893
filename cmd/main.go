/*
Package main is the entry point for the UKO Radar server.

It is responsible for loading configuration, initializing the global logging system,
connecting to PostgreSQL, wiring the session registry and its collaborators,
setting up the HTTP server, and gracefully handling operating system interrupt
signals (SIGINT, SIGTERM) to ensure a smooth server shutdown.
*/
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ukoradar/internal/app/db"
	"ukoradar/internal/app/feed"
	"ukoradar/internal/app/hype"
	"ukoradar/internal/app/party"
	"ukoradar/internal/app/payment"
	"ukoradar/internal/app/profile"
	"ukoradar/internal/app/session"
	"ukoradar/internal/app/storage"
	"ukoradar/internal/configs"
	"ukoradar/internal/handler"
	"ukoradar/internal/pkg/logx"
)

func main() {
	// Load configuration from environment variables
	cfg, err := configs.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	logx.InitGlobalLogger(cfg.Environment == "development")
	logx.Logger().Info().
		Str("environment", cfg.Environment).
		Int("port", cfg.Port).
		Strs("allowed_origins", cfg.AllowedOrigins).
		Msg("Configuration loaded successfully")

	// Create a context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to PostgreSQL and run migrations
	pool, err := db.NewPool(cfg.DatabaseDSN)
	if err != nil {
		logx.Fatal(err, "Failed to initialize database")
	}
	defer pool.Close()

	// Avatar object storage is optional; without it preset avatars still work.
	var avatars storage.AvatarStore
	if cfg.S3BucketName != "" {
		avatars, err = storage.NewAvatarStore(storage.ServiceConfig{
			S3BucketName:      cfg.S3BucketName,
			S3Endpoint:        cfg.S3Endpoint,
			S3AccessKeyID:     cfg.S3AccessKeyID,
			S3SecretAccessKey: cfg.S3SecretAccessKey,
		})
		if err != nil {
			logx.Fatal(err, "Failed to initialize avatar storage")
		}
	} else {
		logx.Warn("Avatar storage not configured; custom avatar uploads disabled.")
	}

	// Initialize the session registry and its collaborators
	sessions := session.NewRegistry(
		feed.NewSimulated(),
		party.NewSimulatedSharer(),
		cfg.InviteBaseURL,
		func() payment.Processor { return payment.NewSimulated() },
	)

	deps := &handler.AppDeps{
		Sessions:  sessions,
		Config:    cfg,
		Profiles:  profile.NewStore(pool),
		Avatars:   avatars,
		Describer: hype.NewGemini(cfg.GeminiAPIKey, cfg.GeminiModel),
	}

	// Setup HTTP server and routes
	router := handler.Router(deps)

	serverAddr := fmt.Sprintf(":%d", cfg.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logx.Info(fmt.Sprintf("UKO Radar Server starting on http://localhost%s", serverAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logx.Fatal(err, "Server failed to start")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 5 seconds.
	<-ctx.Done()
	logx.Info("Received shutdown signal. Starting graceful shutdown...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logx.Fatal(err, "Server forced to shutdown")
	}

	sessions.Shutdown()

	logx.Info("Server gracefully stopped.")
}
