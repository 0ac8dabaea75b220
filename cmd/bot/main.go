package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"timesheet-bot/internal/app"
	"timesheet-bot/internal/config"
	"timesheet-bot/internal/handler"
	"timesheet-bot/internal/logging"
	"timesheet-bot/pkg/telegram"
)

func main() {
	logrus.Info("Initializing config...")
	cfg := config.GetBotConfig()
	logger := logging.New(cfg.Log)
	logger.Info("Config initialized...")

	a, err := app.Open(cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to open database")
	}

	client, err := telegram.NewClient(cfg.TelegramToken, cfg.BotDebug)
	if err != nil {
		logger.WithError(err).Fatal("Failed to create Telegram client")
	}

	logger.Infof("Authorized on account %s", client.Bot.Self.UserName)

	botHandler := handler.NewHandler(client, handler.Services{
		Employees: a.Employees,
		Company:   a.Company,
		Timesheet: a.Timesheet,
		Leaves:    a.Leaves,
		Closures:  a.Closures,
		Reports:   a.Reports,
	}, cfg, logger)

	updates := client.Updates()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go botHandler.HandleUpdates(updates)

	logger.Info("Bot started. Press Ctrl+C to stop.")
	<-stop

	client.Stop()
	if err := a.Close(); err != nil {
		logger.Infof("Error closing database: %v", err)
	}

	logger.Info("Bot stopped gracefully")
}
