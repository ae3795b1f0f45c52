// Package entities contains domain entities used across the application.
package entities

import "strings"

// Column tokens a correct_option cell may reference instead of literal answer text.
const (
	ColumnOptionA = "option_a"
	ColumnOptionB = "option_b"
	ColumnOptionC = "option_c"
	ColumnOptionD = "option_d"
)

// OptionsPerQuestion is the number of choices every question offers.
const OptionsPerQuestion = 4

// QuestionRecord is one row of the question bank.
// Records are created at load time and never mutated afterwards.
type QuestionRecord struct {
	Index         int    `yaml:"-"`              // position in source order, stable per-question key
	Chapter       string `yaml:"chapter"`        // topic label, not unique
	Question      string `yaml:"question"`       // prompt text
	OptionA       string `yaml:"option_a"`       // first choice
	OptionB       string `yaml:"option_b"`       // second choice
	OptionC       string `yaml:"option_c"`       // third choice
	OptionD       string `yaml:"option_d"`       // fourth choice
	CorrectOption string `yaml:"correct_option"` // column token or literal answer text
	Explanation   string `yaml:"explanation"`    // shown regardless of outcome
}

// Options returns the four choices in A-D order.
func (q QuestionRecord) Options() []string {
	return []string{q.OptionA, q.OptionB, q.OptionC, q.OptionD}
}

// OptionByColumn returns the option stored under a column token such as "option_b".
// The token is matched case-insensitively.
func (q QuestionRecord) OptionByColumn(column string) (string, bool) {
	switch strings.ToLower(column) {
	case ColumnOptionA:
		return q.OptionA, true
	case ColumnOptionB:
		return q.OptionB, true
	case ColumnOptionC:
		return q.OptionC, true
	case ColumnOptionD:
		return q.OptionD, true
	default:
		return "", false
	}
}
