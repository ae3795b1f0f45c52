package service

import (
	"strings"

	"github.com/aliskhannn/neet-quiz-bot/internal/domain/entities"
)

// ResolveCorrectAnswerText turns a record's correct_option into the literal answer text.
// The cell may hold a column token (option_a..option_d, any case) or the answer itself.
func ResolveCorrectAnswerText(q entities.QuestionRecord) string {
	value := strings.TrimSpace(q.CorrectOption)
	if text, ok := q.OptionByColumn(value); ok {
		return text
	}
	return value
}

// CheckAnswer compares the user's choice with the resolved correct answer.
// Comparison is exact; an empty choice is never correct.
func CheckAnswer(q entities.QuestionRecord, choice entities.Choice) entities.CheckResult {
	correct := ResolveCorrectAnswerText(q)
	return entities.CheckResult{
		IsCorrect:     choice.Selected && choice.Text == correct,
		CorrectAnswer: correct,
		Explanation:   q.Explanation,
	}
}
