package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/superengulfing/site-backend/internal/config"
	"github.com/superengulfing/site-backend/internal/database"
	"github.com/superengulfing/site-backend/internal/handler"
	"github.com/superengulfing/site-backend/internal/logger"
	"github.com/superengulfing/site-backend/internal/mailer"
	"github.com/superengulfing/site-backend/internal/repository"
	"github.com/superengulfing/site-backend/internal/router"
	"github.com/superengulfing/site-backend/internal/service"
	"github.com/superengulfing/site-backend/internal/validator"
	"github.com/superengulfing/site-backend/internal/worker"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("site_url", cfg.SiteURL).
		Msg("Starting SuperEngulfing Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Repositories ───────────────────────────────────────
	userRepo := repository.NewUserRepository(pool)
	subscriberRepo := repository.NewSubscriberRepository(pool)
	accessRepo := repository.NewAccessRequestRepository(pool)
	courseRepo := repository.NewCourseRepository(pool)
	settingRepo := repository.NewSettingRepository(pool)
	adminRepo := repository.NewAdminRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(cfg, rdb)
	userService := service.NewUserService(userRepo)
	subscriptionService := service.NewSubscriptionService(cfg, rdb, subscriberRepo, authService, log)
	accessService := service.NewAccessService(cfg, rdb, accessRepo, userRepo, authService, log)
	courseService := service.NewCourseService(courseRepo, log)
	settingService := service.NewSettingService(settingRepo, log)
	adminAuthService := service.NewAdminAuthService(cfg, rdb, adminRepo, authService, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Site:         handler.NewSiteHandler(cfg, authService, userService, subscriptionService, log),
		Auth:         handler.NewAuthHandler(authService, userService),
		Subscription: handler.NewSubscriptionHandler(subscriptionService),
		Access:       handler.NewAccessHandler(accessService),
		Course:       handler.NewCourseHandler(courseService, userService),
		Setting:      handler.NewSettingHandler(settingService),
		AdminAuth:    handler.NewAdminAuthHandler(adminAuthService),
		Events:       handler.NewEventsHandler(rdb, log, cfg.AllowedOrigins),
	}

	// ─── Start Background Workers ─────────────────────────────────────
	workerCtx, workerCancel := context.WithCancel(context.Background())

	sender := mailer.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunSender)
	emailWorker := worker.NewEmailWorker(rdb, sender, log)
	go emailWorker.Start(workerCtx)

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	// 1. Stop accepting new HTTP requests (5s timeout).
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	// 2. Stop the email worker and let in-flight sends finish.
	workerCancel()
	time.Sleep(2 * time.Second)

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
