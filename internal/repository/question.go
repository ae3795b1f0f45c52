package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/aliskhannn/neet-quiz-bot/internal/domain/entities"
)

// ErrDataSourceMissing is returned when the question source is absent or unreadable.
// The bank stays usable and holds no records.
var ErrDataSourceMissing = errors.New("question data source missing")

// QuestionSource reads question rows in source order.
type QuestionSource interface {
	Load(ctx context.Context) ([]entities.QuestionRecord, error)
}

// QuestionBank owns the read-only set of question records.
// A reload swaps the whole set; records themselves are never mutated.
type QuestionBank struct {
	mu      sync.RWMutex
	source  QuestionSource
	logger  *zap.Logger
	records []entities.QuestionRecord
}

// NewQuestionBank creates an empty bank backed by source. Call Load before use.
func NewQuestionBank(source QuestionSource, logger *zap.Logger) *QuestionBank {
	return &QuestionBank{
		source: source,
		logger: logger,
	}
}

// Load reads all records from the source.
// On failure the bank is left empty and the error wraps ErrDataSourceMissing.
func (b *QuestionBank) Load(ctx context.Context) error {
	records, err := b.source.Load(ctx)
	if err != nil {
		records = nil
		err = fmt.Errorf("%w: %w", ErrDataSourceMissing, err)
	}

	for i := range records {
		records[i].Index = i
	}

	b.mu.Lock()
	b.records = records
	b.mu.Unlock()

	if err != nil {
		b.logger.Warn("question bank is empty", zap.Error(err))
		return err
	}

	b.logger.Info("question bank loaded", zap.Int("questions", len(records)))
	return nil
}

// Reload re-reads the source, replacing the current set.
func (b *QuestionBank) Reload(ctx context.Context) error {
	return b.Load(ctx)
}

// All returns the records in source order.
func (b *QuestionBank) All() []entities.QuestionRecord {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Clone(b.records)
}

// Empty reports whether the bank holds no records.
func (b *QuestionBank) Empty() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.records) == 0
}

// DistinctTopics returns the distinct chapters in first-seen order.
func (b *QuestionBank) DistinctTopics() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	seen := make(map[string]struct{}, len(b.records))
	topics := make([]string, 0)
	for _, r := range b.records {
		if _, ok := seen[r.Chapter]; ok {
			continue
		}
		seen[r.Chapter] = struct{}{}
		topics = append(topics, r.Chapter)
	}

	return topics
}

// FilterByTopics returns the records whose chapter is in selected, preserving order.
// Unknown topics match nothing; an empty selection yields an empty result.
func (b *QuestionBank) FilterByTopics(selected []string) []entities.QuestionRecord {
	if len(selected) == 0 {
		return []entities.QuestionRecord{}
	}

	wanted := make(map[string]struct{}, len(selected))
	for _, t := range selected {
		wanted[t] = struct{}{}
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	result := make([]entities.QuestionRecord, 0)
	for _, r := range b.records {
		if _, ok := wanted[r.Chapter]; ok {
			result = append(result, r)
		}
	}

	return result
}
