package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/church-cms/internal/api/http"
	"github.com/spec-kit/church-cms/internal/api/http/handlers"
	"github.com/spec-kit/church-cms/internal/auth"
	"github.com/spec-kit/church-cms/internal/config"
	"github.com/spec-kit/church-cms/internal/mail"
	"github.com/spec-kit/church-cms/internal/observability"
	"github.com/spec-kit/church-cms/internal/persistence"
	"github.com/spec-kit/church-cms/internal/repository"
	"github.com/spec-kit/church-cms/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	adminRepo := repository.NewAdminRepository(pool)
	subscriberRepo := repository.NewSubscriberRepository(pool)
	newsletterRepo := repository.NewNewsletterRepository(pool)
	messageRepo := repository.NewMessageRepository(pool)
	ministryRequestRepo := repository.NewMinistryRequestRepository(pool)
	ministryMemberRepo := repository.NewMinistryMemberRepository(pool)
	sermonRepo := repository.NewSermonRepository(pool)
	eventRepo := repository.NewEventRepository(pool)
	statsRepo := repository.NewStatsRepository(pool)

	transport := mail.NewTransport(cfg.Mail, logger)

	authService := service.NewAuthService(cfg.Auth, adminRepo)
	subscriberService := service.NewSubscriberService(subscriberRepo, transport, logger, cfg.App, cfg.Mail)
	newsletterService := service.NewNewsletterService(newsletterRepo, subscriberRepo, transport, logger, cfg.App, cfg.Mail, cfg.Newsletter)
	messageService := service.NewMessageService(messageRepo, transport, logger, cfg.Mail)
	ministryService := service.NewMinistryService(ministryRequestRepo, ministryMemberRepo, transport, logger, cfg.Mail)
	sermonService := service.NewSermonService(sermonRepo)
	eventService := service.NewEventService(eventRepo)
	statsService := service.NewStatsService(statsRepo, sermonRepo, eventRepo)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), adminRepo)
	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout(), cfg.App.IsProduction())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Admin:          handlers.NewAdminHandler(statsService),
		Subscribers:    handlers.NewSubscribersHandler(subscriberService, newsletterService),
		Messages:       handlers.NewMessagesHandler(messageService),
		Ministry:       handlers.NewMinistryHandler(ministryService, statsService),
		Sermons:        handlers.NewSermonsHandler(sermonService),
		Events:         handlers.NewEventsHandler(eventService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
