package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"homework_status_bot/internal/app"
	"homework_status_bot/internal/domain/notification"
	"homework_status_bot/internal/infra/config"
	idb "homework_status_bot/internal/infra/database"
	"homework_status_bot/internal/infra/logger"
	"homework_status_bot/internal/infra/practicum"
	"homework_status_bot/internal/infra/scheduler"
	"homework_status_bot/internal/infra/telegram"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Could not load application configuration")
	}

	log := logger.New(cfg)
	mainLogger := log.WithField("component", "main")

	if err := cfg.Validate(); err != nil {
		var missing *config.MissingConfigError
		if errors.As(err, &missing) {
			mainLogger = mainLogger.WithField("missing", missing.Names)
		}
		mainLogger.WithError(err).Fatal("Required configuration is missing, bot will not start")
	}
	mainLogger.WithFields(logrus.Fields{
		"environment":   cfg.Environment,
		"endpoint":      cfg.Endpoint,
		"poll_interval": cfg.PollInterval.String(),
		"poll_cron":     cfg.PollCronSpec,
	}).Info("Configuration loaded.")

	// Optional delivery journal
	var deliveries notification.Repository
	if cfg.DatabaseURL != "" {
		db, err := idb.NewPostgresConnection(ctx, cfg.DatabaseURL)
		if err != nil {
			mainLogger.WithError(err).Fatal("Could not connect to database")
		}
		defer db.Close()
		repo := idb.NewPostgresDeliveryRepository(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			mainLogger.WithError(err).Fatal("Could not prepare delivery journal")
		}
		deliveries = repo
		mainLogger.Info("Delivery journal enabled.")
	}

	bot, err := telegram.NewBot(cfg.TelegramToken, "", log.WithField("component", "telebot"))
	if err != nil {
		mainLogger.WithError(err).Fatal("Could not create Telegram bot")
	}
	notifier := app.NewChatNotifier(
		telegram.NewTelebotAdapter(bot),
		cfg.TelegramChatID,
		deliveries,
		log.WithField("component", "notifier"),
	)

	statusClient := practicum.NewClient(cfg.Endpoint, cfg.PracticumToken, cfg.RequestTimeout)
	pollService := app.NewPollService(statusClient, notifier, log.WithField("component", "poller"), cfg.InitialFromDate)

	pollScheduler, err := scheduler.NewPollScheduler(cfg.PollInterval, cfg.PollCronSpec, log.WithField("component", "scheduler"))
	if err != nil {
		mainLogger.WithError(err).Fatal("Could not create poll scheduler")
	}

	mainLogger.Info("Application setup complete. Polling homework statuses...")
	pollScheduler.Run(ctx, pollService.RunCycle)

	mainLogger.Info("Application shut down gracefully.")
}
