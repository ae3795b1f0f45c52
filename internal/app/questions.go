package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/neet-quiz-bot/internal/config"
	"github.com/aliskhannn/neet-quiz-bot/internal/infra/postgres"
	pgrepo "github.com/aliskhannn/neet-quiz-bot/internal/infra/postgres/repository"
	"github.com/aliskhannn/neet-quiz-bot/internal/repository"
)

// OpenQuestionBank builds the configured question source and loads the bank.
// A bank that fails to load is returned empty and logs the failure itself;
// only source construction errors are fatal.
// The returned cleanup releases the source's resources.
func OpenQuestionBank(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*repository.QuestionBank, func(), error) {
	source, cleanup, err := newQuestionSource(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	bank := repository.NewQuestionBank(source, logger.With(zap.String("source", cfg.Questions.Source)))
	_ = bank.Load(ctx)

	return bank, cleanup, nil
}

func newQuestionSource(ctx context.Context, cfg *config.Config) (repository.QuestionSource, func(), error) {
	switch cfg.Questions.Source {
	case config.SourcePostgres:
		dsn, err := cfg.DB.DSN()
		if err != nil {
			return nil, nil, fmt.Errorf("postgres source: %w", err)
		}

		pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
			MaxConns:        int32(cfg.DB.MaxConnections),
			MaxConnLifetime: cfg.DB.MaxConnLifetime,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("postgres source: %w", err)
		}

		return pgrepo.NewQuestionRepository(pool, cfg.Questions.Table), pool.Close, nil
	default:
		return repository.NewFileSource(cfg.Questions.Path), func() {}, nil
	}
}
