package service

import (
	"context"

	"github.com/aliskhannn/neet-quiz-bot/internal/domain/entities"
)

// QuestionBank is the read side of repository.QuestionBank.
type QuestionBank interface {
	Empty() bool
	All() []entities.QuestionRecord
	DistinctTopics() []string
	FilterByTopics(selected []string) []entities.QuestionRecord
	Reload(ctx context.Context) error
}

// SessionStorage keeps per-session quiz state.
type SessionStorage interface {
	Get(sessionID int64) entities.QuizState
	Update(sessionID int64, fn func(entities.QuizState) entities.QuizState) entities.QuizState
	Delete(sessionID int64)
	Clear()
}

// Reloader refreshes the question bank.
type Reloader interface {
	Reload(ctx context.Context) error
}
