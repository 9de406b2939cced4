package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"fitimprove/config"
	_ "fitimprove/docs"
	"fitimprove/internal/adapters/auth"
	"fitimprove/internal/adapters/email"
	"fitimprove/internal/adapters/notify"
	httpdelivery "fitimprove/internal/delivery/http"
	"fitimprove/internal/delivery/http/controllers"
	"fitimprove/internal/delivery/http/middleware"
	"fitimprove/internal/domain"
	"fitimprove/internal/metrics"
	"fitimprove/internal/repository/postgres"
	"fitimprove/internal/services"
)

const shutdownTimeout = 15 * time.Second

// @title FitImprove API
// @version 1.0
// @description Training enrollment backend: coaches publish capacity-limited trainings, users enroll, accept or deny invitations, and cancel participation.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "err", err)
		os.Exit(1)
	}

	metrics.Register()

	// Repositories
	trainingRepo := postgres.NewTrainingRepository(db)
	participationRepo := postgres.NewParticipationRepository(db)
	userRepo := postgres.NewUserRepository(db)
	txManager := postgres.NewTxManager(db)

	// Adapters
	hasher := auth.NewBcryptHasher(cfg.BcryptCost)
	issuer := auth.NewJWTIssuer(cfg.JWTSecret)
	verifier := auth.NewJWTVerifier(cfg.JWTSecret)
	mailer, err := email.NewMailer(logger, email.MailerConfig{
		Provider:    cfg.Mailer.Provider,
		FromAddress: cfg.Mailer.FromAddress,
		FromName:    cfg.Mailer.FromName,
		SES: email.SESConfig{
			Region:             cfg.Mailer.SESRegion,
			AccessKeyID:        cfg.Mailer.SESAccessKeyID,
			SecretAccessKey:    cfg.Mailer.SESSecretAccessKey,
			InsecureSkipVerify: cfg.Mailer.InsecureSkipVerify,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}
	dispatcher := notify.NewDispatcher(logger, mailer, email.NewTemplateRenderer(), cfg.Notifier.QueueSize, cfg.Notifier.Workers)
	clock := domain.NewSystemClock()

	// Services
	enrollmentService := services.NewEnrollmentService(trainingRepo, participationRepo, userRepo, txManager, dispatcher, clock, logger)
	trainingService := services.NewTrainingService(trainingRepo, participationRepo, userRepo, txManager, dispatcher, clock, logger)
	userService := services.NewUserService(userRepo, hasher, issuer, cfg.JWTExpiry, clock)

	// Controllers
	authController := controllers.NewAuthController(logger, userService)
	userController := controllers.NewUserController(logger, userService)
	trainingController := controllers.NewTrainingController(logger, trainingService)
	enrollmentController := controllers.NewEnrollmentController(logger, enrollmentService)

	mux := httpdelivery.NewRouter(logger, verifier, authController, userController, trainingController, enrollmentController)
	handler := middleware.LoggingMiddleware(logger, mux)
	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		handler = middleware.CORS(strings.Split(origins, ","), handler)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	go func() {
		logger.Info("server starting", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", "err", err)
	}
	dispatcher.Shutdown()
	logger.Info("shutdown complete")
}
