package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	apihttp "github.com/spec-kit/support-bot/internal/api/http"
	"github.com/spec-kit/support-bot/internal/auth"
	"github.com/spec-kit/support-bot/internal/bot"
	"github.com/spec-kit/support-bot/internal/config"
	"github.com/spec-kit/support-bot/internal/events"
	"github.com/spec-kit/support-bot/internal/observability"
	"github.com/spec-kit/support-bot/internal/repository"
	"github.com/spec-kit/support-bot/internal/service"
	"github.com/spec-kit/support-bot/internal/worker"
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
	defer func() { _ = logger.Sync() }()

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()

	ticketStore := repository.NewTicketStore(cfg.Storage.DataDir)
	responseStore := repository.NewResponseStore(cfg.Storage.DataDir)
	statsStore := repository.NewStatsStore(cfg.Storage.DataDir)
	reviewStore := repository.NewReviewStore(cfg.Storage.DataDir)
	userDirectory := repository.NewUserDirectory(cfg.Storage.DataDir)

	support, err := service.NewSupportService(service.SupportDependencies{
		TicketStore:   ticketStore,
		ResponseStore: responseStore,
		StatsStore:    statsStore,
		Dispatcher:    dispatcher,
		Logger:        logger,
	})
	if err != nil {
		logger.Fatal("failed to init support service", zap.Error(err))
	}

	reviews, err := service.NewReviewService(reviewStore, dispatcher, logger)
	if err != nil {
		logger.Fatal("failed to init review service", zap.Error(err))
	}

	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		logger.Fatal("failed to connect to telegram", zap.Error(err))
	}
	messenger := bot.NewTelegramMessenger(api)

	notifications := service.NewNotificationService(dispatcher, messenger, cfg.Telegram.AdminUserIDs, metrics, logger)
	notifications.RegisterHandlers()

	classifier := service.NewClassifier(userDirectory, cfg.Support.DefaultLanguage)

	tg := bot.New(bot.Dependencies{
		API:         api,
		Messenger:   messenger,
		Support:     support,
		Reviews:     reviews,
		Classifier:  classifier,
		PollTimeout: cfg.Telegram.PollTimeout,
		Logger:      logger,
	})

	monitor := worker.NewEscalationMonitor(support, cfg.Escalation, logger)

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.AccessTokenTTLMinutes)*time.Minute)
	app := apihttp.NewApp(apihttp.RouterDependencies{
		Config:  cfg,
		Support: support,
		Reviews: reviews,
		Tokens:  tokens,
		Logger:  logger,
		Metrics: metrics,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := tg.Run(ctx); err != nil {
			logger.Error("telegram bot exited", zap.Error(err))
			cancel()
		}
	}()

	go func() {
		if err := monitor.Start(ctx); err != nil {
			logger.Error("escalation monitor exited", zap.Error(err))
		}
	}()

	go func() {
		logger.Info("admin api listening", zap.String("addr", cfg.App.Addr()))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Error("admin api exited", zap.Error(err))
			cancel()
		}
	}()

	waitForShutdown(ctx, logger)
	cancel()

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Error("admin api shutdown failed", zap.Error(err))
	}
	logger.Info("shutdown complete")
}

func waitForShutdown(ctx context.Context, logger *zap.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-quit:
		logger.Info("shutdown signal received", zap.String("signal", sig.String()))
	case <-ctx.Done():
	}
}
