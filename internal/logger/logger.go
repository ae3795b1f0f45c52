package logger

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/neet-quiz-bot/internal/config"
)

// New builds a production logger for env=production and a development logger otherwise.
// cfg.LogLevel overrides the default level of either.
func New(cfg *config.Config) (*zap.Logger, error) {
	zc := zap.NewDevelopmentConfig()
	if cfg.Env == "production" {
		zc = zap.NewProductionConfig()
	}

	if cfg.LogLevel != "" {
		level, err := zap.ParseAtomicLevel(cfg.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		zc.Level = level
	}

	return zc.Build(zap.Fields(zap.String("env", cfg.Env)))
}
