package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/arturoeanton/realty-admin-backend/internal/adapter/partner"
	"github.com/arturoeanton/realty-admin-backend/internal/adapter/publisher"
	"github.com/arturoeanton/realty-admin-backend/internal/adapter/store"
	"github.com/arturoeanton/realty-admin-backend/internal/handler"
	"github.com/arturoeanton/realty-admin-backend/internal/listing"
	"github.com/arturoeanton/realty-admin-backend/internal/middleware"
	"github.com/arturoeanton/realty-admin-backend/internal/scheduler"
	"github.com/arturoeanton/realty-admin-backend/internal/service"
	"github.com/arturoeanton/realty-admin-backend/pkg/config"
)

func main() {
	// ── Load .env file ───────────────────────────────────────────────────
	_ = godotenv.Load() // silently ignore if .env doesn't exist

	// ── Configuration ────────────────────────────────────────────────────
	cfg := config.Load()
	logger := setupLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	logger.Info("starting realty admin backend",
		"port", cfg.Port,
		"partner", cfg.PartnerBaseURL,
		"region", cfg.PartnerRegion,
		"cache_ttl", cfg.ListingCacheTTL,
	)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// ── Database ─────────────────────────────────────────────────────────
	pgStore, err := store.NewPostgresStore(cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pgStore.Close()

	// ── Adapters ─────────────────────────────────────────────────────────
	partnerClient := partner.NewClient(partner.Config{
		BaseURL:    cfg.PartnerBaseURL,
		Credential: cfg.PartnerCredential,
		AuthScheme: cfg.PartnerAuthScheme,
		Region:     cfg.PartnerRegion,
		Timeout:    cfg.PartnerTimeout,
	})
	if cfg.PartnerCredential == "" {
		logger.Warn("PARTNER_CREDENTIAL is empty, partner calls will be unauthenticated")
	}

	// Lead events are optional.
	var leadPublisher service.LeadPublisher
	if cfg.RabbitMQURL != "" {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQURL,
			Exchange:   cfg.RabbitMQExchange,
			RoutingKey: cfg.RabbitMQRoutingKey,
			QueueName:  cfg.RabbitMQQueue,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to RabbitMQ", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		leadPublisher = rabbitMQ
	}

	// ── Services ─────────────────────────────────────────────────────────
	jwtCfg := middleware.JWTConfig{
		Secret:    cfg.JWTSecret,
		Issuer:    cfg.JWTIssuer,
		ExpiresIn: cfg.JWTTTL(),
	}

	listingService := service.NewListingService(
		partnerClient,
		listing.NewSnapshot(cfg.ListingCacheTTL),
		listing.FetchOptions{PageSize: cfg.ListingPageSize, MaxPages: cfg.ListingMaxPages},
		logger,
	)
	agentService := service.NewAgentService(partnerClient, pgStore, service.AgentConfig{
		OrgIDs:   cfg.PartnerOrgIDs,
		PageSize: cfg.PeoplePageSize,
	}, logger)
	leadService := service.NewLeadService(pgStore, pgStore, leadPublisher, logger)
	authService := service.NewAuthService(pgStore, jwtCfg)
	adminService := service.NewAdminService(pgStore)
	blogService := service.NewBlogService(pgStore)
	teamService := service.NewTeamService(pgStore)

	// ── Periodic agent sync ──────────────────────────────────────────────
	if cfg.AgentSyncInterval > 0 {
		sched := scheduler.NewScheduler(agentService, cfg.AgentSyncInterval, logger.With("component", "scheduler"))
		go func() {
			if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("scheduler error", "error", err)
			}
		}()
	}

	// ── Fiber App ────────────────────────────────────────────────────────
	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: scheduler.DefaultRunTimeout,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendURLs,
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowCredentials: true,
	}))

	api := app.Group("/api")

	// Audit middleware (logs all API requests)
	api.Use(middleware.AuditMiddleware(pgStore))

	auth := middleware.JWTMiddleware(jwtCfg, pgStore)
	jobTracker := handler.NewJobTracker()

	handler.NewHealthHandler(cfg.AppName, pgStore).Register(app, api)
	handler.NewListingHandler(listingService).Register(api)
	handler.NewAgentHandler(agentService, jobTracker, pgStore).Register(api, auth)
	handler.NewJobsHandler(jobTracker).Register(api, auth)
	handler.NewLeadHandler(leadService).Register(api, auth)
	handler.NewAuthHandler(authService, pgStore, cfg.CookieSecure).Register(api, auth)
	handler.NewAdminHandler(adminService, pgStore).Register(api, auth)
	handler.NewBlogHandler(blogService).Register(api, auth)
	handler.NewTeamHandler(teamService).Register(api, auth)
	handler.NewAuditHandler(pgStore).Register(api, auth)

	// ── Start ────────────────────────────────────────────────────────────
	go func() {
		<-ctx.Done()
		logger.Info("received shutdown signal")
		shutdownCtx, done := context.WithTimeout(context.Background(), 10*time.Second)
		defer done()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			logger.Error("shutdown failed", "error", err)
		}
	}()

	logger.Info("fiber listening", "port", cfg.Port)
	if err := app.Listen(":"+cfg.Port, fiber.ListenConfig{DisableStartupMessage: true}); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
}
