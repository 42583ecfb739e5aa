package main

import (
	"context"
	"crypto/tls"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/bodyinsight/booking-platform/internal/api/router"
	"github.com/bodyinsight/booking-platform/internal/auth"
	"github.com/bodyinsight/booking-platform/internal/booking"
	appconfig "github.com/bodyinsight/booking-platform/internal/config"
	"github.com/bodyinsight/booking-platform/internal/contact"
	"github.com/bodyinsight/booking-platform/internal/notify"
	"github.com/bodyinsight/booking-platform/internal/observability/metrics"
	"github.com/bodyinsight/booking-platform/internal/report"
	"github.com/bodyinsight/booking-platform/internal/schedule"
	"github.com/bodyinsight/booking-platform/internal/slots"
	"github.com/bodyinsight/booking-platform/pkg/logging"
)

func main() {
	// Optional .env for local development.
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting bodyinsight booking API",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	if cfg.DatabaseURL == "" {
		logger.Error("DATABASE_URL is required")
		os.Exit(1)
	}
	if cfg.SessionJWTSecret == "" {
		logger.Error("SESSION_JWT_SECRET is required")
		os.Exit(1)
	}

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to create pgx pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	redisOpts := &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}
	if cfg.RedisTLS {
		redisOpts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	redisClient := redis.NewClient(redisOpts)
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Error("failed to ping redis", "error", err)
		os.Exit(1)
	}

	mailer := buildMailer(ctx, cfg, logger)
	notifier := notify.NewService(mailer, cfg.SupportEmail, logger)

	authMetrics := metrics.NewAuthMetrics(prometheus.DefaultRegisterer)
	bookingMetrics := metrics.NewBookingMetrics(prometheus.DefaultRegisterer)
	reportMetrics := metrics.NewReportMetrics(prometheus.DefaultRegisterer)

	authService := auth.NewService(auth.ServiceConfig{
		OTPs:      auth.NewRedisOTPStore(redisClient, cfg.OTPMaxAttempts),
		Sessions:  auth.NewSessionIssuer(cfg.SessionJWTSecret, cfg.SessionTTL),
		Profiles:  auth.NewPostgresProfileRepository(pool),
		Mailer:    mailer,
		Metrics:   authMetrics,
		Logger:    logger,
		OTPLength: cfg.OTPLength,
		OTPTTL:    cfg.OTPTTL,
	})

	scheduleService := schedule.NewService(
		schedule.NewPostgresRepository(pool),
		slots.NewGenerator(nil),
		bookingMetrics,
		logger,
	)

	bookingService := booking.NewService(booking.ServiceConfig{
		Repo:      booking.NewPostgresRepository(pool),
		Schedule:  scheduleService,
		Tokens:    authService,
		Profiles:  auth.NewPostgresProfileRepository(pool),
		Notifier:  notifier,
		Metrics:   bookingMetrics,
		Logger:    logger,
		RefPrefix: cfg.BookingRefPrefix,
	})

	reportStore := report.NewStore(cfg.ReportsDir, logger)

	handler := router.New(&router.Config{
		Logger:             logger,
		AuthHandler:        auth.NewHandler(authService, logger),
		ScheduleHandler:    schedule.NewHandler(scheduleService, logger),
		BookingHandler:     booking.NewHandler(bookingService, logger),
		ContactHandler:     contact.NewHandler(contact.NewPostgresRepository(pool), notifier, logger),
		ReportHandler:      report.NewHandler(reportStore, reportMetrics, logger),
		MetricsHandler:     promhttp.Handler(),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		OTPRate:            cfg.OTPRateLimit,
		OTPBurst:           cfg.OTPRateBurst,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

// buildMailer picks the email transport from configuration. The log sender
// keeps local development working without provider credentials.
func buildMailer(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) notify.EmailSender {
	switch cfg.EmailProvider {
	case "sendgrid":
		sender := notify.NewSendGridSender(notify.SendGridConfig{
			APIKey:    cfg.SendGridAPIKey,
			FromEmail: cfg.SendGridFromEmail,
			FromName:  cfg.SendGridFromName,
		}, logger)
		if sender != nil {
			return sender
		}
		logger.Warn("sendgrid selected but not configured, falling back to log sender")
	case "ses":
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
		if err != nil {
			logger.Error("failed to load AWS config, falling back to log sender", "error", err)
			break
		}
		sender := notify.NewSESSender(sesv2.NewFromConfig(awsCfg), notify.SESConfig{
			FromEmail: cfg.SESFromEmail,
			FromName:  cfg.SESFromName,
		}, logger)
		if sender != nil {
			return sender
		}
	}
	return notify.NewLogSender(logger)
}
