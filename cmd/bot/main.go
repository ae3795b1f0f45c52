package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/neet-quiz-bot/internal/app"
	"github.com/aliskhannn/neet-quiz-bot/internal/config"
	"github.com/aliskhannn/neet-quiz-bot/internal/delivery/telegram"
	"github.com/aliskhannn/neet-quiz-bot/internal/logger"
	"github.com/aliskhannn/neet-quiz-bot/internal/service"
	"github.com/aliskhannn/neet-quiz-bot/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	token, err := cfg.BotToken()
	if err != nil {
		lg.Fatal("telegram token", zap.Error(err))
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		lg.Fatal("failed to create bot", zap.Error(err))
	}
	bot.Debug = cfg.Env != "production"
	lg.Info("authorized", zap.String("account", bot.Self.UserName))

	if _, err := bot.Request(tgbotapi.NewSetMyCommands(telegram.Commands...)); err != nil {
		lg.Warn("failed to set bot commands", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize the question bank and services.
	bank, cleanup, err := app.OpenQuestionBank(ctx, cfg, lg)
	if err != nil {
		lg.Fatal("failed to open question source", zap.Error(err))
	}
	defer cleanup()

	quizService := service.NewQuizService(bank, storage.NewSessionStorage(), lg)

	if cfg.Questions.ReloadSchedule != "" {
		reloadService, err := service.NewReloadService(quizService, cfg.Questions.ReloadSchedule, lg)
		if err != nil {
			lg.Fatal("invalid reload schedule", zap.Error(err))
		}
		go reloadService.Start(ctx)
	}

	handler := telegram.NewHandler(bot, lg, quizService, cfg.IsAdmin)
	if err := handler.Run(ctx); err != nil && ctx.Err() == nil {
		lg.Error("handler stopped", zap.Error(err))
	}

	lg.Info("shutdown signal received")
}
