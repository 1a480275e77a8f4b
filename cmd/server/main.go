package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	httpapi "toolrental-pos/internal/api/http"
	"toolrental-pos/internal/config"
	"toolrental-pos/internal/jobs"
	"toolrental-pos/internal/logger"
	"toolrental-pos/internal/repository/postgres"
	"toolrental-pos/internal/scheduler"
	"toolrental-pos/internal/security"
	"toolrental-pos/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Tool Rental POS...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenExpiry := time.Duration(cfg.Auth.TokenExpiryMinutes) * time.Minute
	tokenManager := security.NewTokenManager(cfg.Auth.JWTSecret, tokenExpiry)

	// Initialize Services
	agreementSvc := service.NewAgreementService(nil)
	checkoutSvc := service.NewCheckoutService(agreementSvc, store)

	// Initialize HTTP router
	router := httpapi.NewRouter(checkoutSvc, store, tokenManager, cfg.Auth.APIKeys)

	// Initialize Scheduler for retention jobs
	jobRunner := jobs.NewJobRunner(store, cfg)
	cronScheduler := scheduler.NewScheduler(jobRunner)
	cronScheduler.Start()

	// Start HTTP server in a goroutine
	server := &http.Server{
		Addr:    cfg.GetServerAddress(),
		Handler: router,
	}
	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down...")
	cronScheduler.Stop()
	if err := server.Close(); err != nil {
		logger.Error("Failed to close HTTP server", "error", err)
	}
	logger.Info("Server stopped. Goodbye!")
}
