package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/neet-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/neet-quiz-bot/internal/infra/postgres"
)

// QuestionRepository reads the question bank from a PostgreSQL table.
type QuestionRepository struct {
	db    postgres.DBTX
	table string
}

// NewQuestionRepository creates a QuestionRepository over table.
func NewQuestionRepository(db postgres.DBTX, table string) *QuestionRepository {
	return &QuestionRepository{db: db, table: table}
}

// Load returns all questions ordered by id. NULL columns become empty strings.
func (r *QuestionRepository) Load(ctx context.Context) ([]entities.QuestionRecord, error) {
	query := fmt.Sprintf(`
		SELECT COALESCE(chapter, ''), COALESCE(question, ''),
		       COALESCE(option_a, ''), COALESCE(option_b, ''),
		       COALESCE(option_c, ''), COALESCE(option_d, ''),
		       COALESCE(correct_option, ''), COALESCE(explanation, '')
		FROM %s
		ORDER BY id
	`, pgx.Identifier(strings.Split(r.table, ".")).Sanitize())

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entities.QuestionRecord, error) {
		var q entities.QuestionRecord
		err := row.Scan(
			&q.Chapter,
			&q.Question,
			&q.OptionA,
			&q.OptionB,
			&q.OptionC,
			&q.OptionD,
			&q.CorrectOption,
			&q.Explanation,
		)
		return q, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan questions: %w", err)
	}

	return records, nil
}
