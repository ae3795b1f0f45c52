package main

import (
	"context"
	"flag"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/aliskhannn/neet-quiz-bot/internal/app"
	"github.com/aliskhannn/neet-quiz-bot/internal/config"
	"github.com/aliskhannn/neet-quiz-bot/internal/delivery/tui"
	"github.com/aliskhannn/neet-quiz-bot/internal/logger"
	"github.com/aliskhannn/neet-quiz-bot/internal/service"
	"github.com/aliskhannn/neet-quiz-bot/internal/storage"
)

func main() {
	questions := flag.String("questions", "", "questions file, overrides questions.path")
	noColor := flag.Bool("no-color", false, "disable colors")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if *questions != "" {
		cfg.Questions.Source = config.SourceFile
		cfg.Questions.Path = *questions
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	// Keep debug output from drawing over the UI.
	lg = lg.WithOptions(zap.IncreaseLevel(zapcore.WarnLevel))
	defer func() { _ = lg.Sync() }()

	ctx := context.Background()
	bank, cleanup, err := app.OpenQuestionBank(ctx, cfg, lg)
	if err != nil {
		lg.Fatal("failed to open question source", zap.Error(err))
	}
	defer cleanup()

	quizService := service.NewQuizService(bank, storage.NewSessionStorage(), lg)
	model := tui.NewModel(quizService, tui.Options{NoColor: *noColor})

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		lg.Error("quiz ui stopped", zap.Error(err))
	}
}
