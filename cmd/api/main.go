package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"seminarmanager/config"
	_ "seminarmanager/docs"
	"seminarmanager/internal/adapters/auth"
	"seminarmanager/internal/adapters/email"
	"seminarmanager/internal/adapters/pdf"
	deliveryhttp "seminarmanager/internal/delivery/http"
	"seminarmanager/internal/delivery/http/controllers"
	h "seminarmanager/internal/delivery/http/helpers"
	"seminarmanager/internal/delivery/http/middleware"
	"seminarmanager/internal/domain"
	"seminarmanager/internal/metrics"
	"seminarmanager/internal/repository/postgres"
	"seminarmanager/internal/services"
)

const shutdownTimeout = 15 * time.Second

// @title Seminar Manager API
// @version 1.0
// @description Seminar listings, locations, participant registrations and the admin session.
// @BasePath /
// @securityDefinitions.apikey CookieAuth
// @in header
// @name Cookie
// @description Session cookie access_token set by POST /admin/token
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	logger := config.NewLogger(cfg.Environment, cfg.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	metrics.Init()

	db, err := postgres.Open(ctx, cfg.DBDriver, cfg.DBUrl)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := postgres.EnsureSchema(ctx, db, cfg.DBDriver); err != nil {
		return err
	}

	clock := domain.SystemClock()
	hasher := auth.NewBcryptHasher(auth.AdminBcryptCost)
	codec, err := auth.NewJWTCodec(cfg.JWTSecret, cfg.JWTAlgorithm, cfg.AdminUsername, clock)
	if err != nil {
		return fmt.Errorf("token codec: %w", err)
	}
	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:          cfg.Email.AWSRegion,
			AccessKeyID:     cfg.Email.AWSAccessKeyID,
			SecretAccessKey: cfg.Email.AWSSecretAccessKey,
		},
		Resend: email.ResendConfig{APIKey: cfg.Email.ResendAPIKey},
		SMTP: email.SMTPConfig{
			Host:     cfg.Email.SMTPHost,
			Port:     cfg.Email.SMTPPort,
			Username: cfg.Email.SMTPUsername,
			Password: cfg.Email.SMTPPassword,
			Timeout:  cfg.RequestTimeout,
		},
	}, logger)
	if err != nil {
		return fmt.Errorf("mailer: %w", err)
	}
	renderer, err := email.NewTemplateRenderer()
	if err != nil {
		return fmt.Errorf("email templates: %w", err)
	}

	seminarRepo := postgres.NewSeminarRepository(db)
	locationRepo := postgres.NewLocationRepository(db)
	participantRepo := postgres.NewParticipantRepository(db)

	seminarLocation := cfg.SeminarLocation()
	authService := services.NewAuthService(
		services.NewAdminAuthenticator(cfg.AdminUsername, cfg.AdminPasswordHash, hasher),
		codec, cfg.SessionTTL, clock, logger,
	)
	emailService := services.NewEmailService(mailer, renderer, cfg.AdminEmail, logger)
	seminarService := services.NewSeminarService(seminarRepo, locationRepo, clock, cfg.RequestTimeout)
	locationService := services.NewLocationService(locationRepo, clock, cfg.RequestTimeout)
	registrationService := services.NewRegistrationService(
		seminarRepo, participantRepo, emailService,
		pdf.NewParticipantSheetRenderer(seminarLocation), clock,
		services.RegistrationSettings{
			PublicBaseURL: cfg.PublicBaseURL,
			Location:      seminarLocation,
			Timeout:       cfg.RequestTimeout,
		},
		logger,
	)
	contactService := services.NewContactService(emailService, clock, seminarLocation, logger)

	cookie := h.SessionCookie{
		Name:     h.SessionCookieName,
		MaxAge:   cfg.SessionCookieMaxAge,
		Secure:   cfg.SessionCookieSecure,
		SameSite: h.ParseSameSite(cfg.SessionCookieSite),
	}
	router := deliveryhttp.NewRouter(deliveryhttp.Controllers{
		Auth:         controllers.NewAuthController(logger, authService, cookie, clock),
		Seminar:      controllers.NewSeminarController(logger, seminarService, seminarLocation),
		Location:     controllers.NewLocationController(logger, locationService),
		Registration: controllers.NewRegistrationController(logger, registrationService),
		Contact:      controllers.NewContactController(logger, contactService),
		Health:       controllers.NewHealthController(logger, db),
	}, deliveryhttp.RouterConfig{
		Logger:       logger,
		AuthService:  authService,
		Cookie:       cookie,
		LoginLimiter: middleware.NewLoginRateLimiter(cfg.LoginAttemptsPerHour),
		CORSOrigins:  cfg.CORSAllowedOrigins,
	})

	server := &http.Server{
		Addr:              net.JoinHostPort("", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      2 * cfg.RequestTimeout,
		IdleTimeout:       60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", server.Addr, "env", cfg.Environment, "db_driver", cfg.DBDriver)
		serveErr <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
