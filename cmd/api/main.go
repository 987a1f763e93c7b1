package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-studio-backend/config"
	_ "go-studio-backend/docs" // Important for Swagger
	v1 "go-studio-backend/internal/delivery/http/v1"
	"go-studio-backend/internal/domain"
	"go-studio-backend/internal/repository/postgres"
	"go-studio-backend/internal/usecase"
	"go-studio-backend/pkg/database"
	"go-studio-backend/pkg/email"
	"go-studio-backend/pkg/logger"
	"go-studio-backend/pkg/redis"
)

// @title           ProstoLab Studio API
// @version         1.0
// @description     Backend for the ProstoLab marketing site: contact intake, landing content, legal documents.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting studio backend", "port", cfg.Port)

	// 3. Setup Mailer
	mailer := email.NewSMTPMailer(cfg)
	if !mailer.IsConfigured() {
		logger.Log.Warn("Mailer not fully configured - contact form will be unavailable")
	}

	// 4. Setup optional inquiry archive
	var archive domain.InquiryRepository
	if cfg.DBUrl != "" {
		dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
		if err != nil {
			logger.Log.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer dbPool.Close()
		archive = postgres.NewInquiryRepository(dbPool)
	} else {
		logger.Log.Warn("DATABASE_URL not set - inquiries will not be archived")
	}

	// 5. Setup Redis (rate limiter backend, optional)
	if err := redis.Initialize(redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
	}
	defer redis.Close()

	// 6. Setup UseCases
	inquiryUC := usecase.NewInquiryUsecase(mailer, archive, cfg.MailFrom, cfg.InquiryEmailTo)
	contentUC := usecase.NewContentUsecase()

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		InquiryUC: inquiryUC,
		ContentUC: contentUC,
		Config:    cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
