package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/aliskhannn/neet-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/neet-quiz-bot/internal/repository"
	"github.com/aliskhannn/neet-quiz-bot/internal/service"
	"github.com/aliskhannn/neet-quiz-bot/internal/storage"
)

type sliceSource struct {
	records []entities.QuestionRecord
	err     error
}

func (s *sliceSource) Load(_ context.Context) ([]entities.QuestionRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]entities.QuestionRecord, len(s.records))
	copy(out, s.records)
	return out, nil
}

func sampleRecords() []entities.QuestionRecord {
	return []entities.QuestionRecord{
		{
			Chapter:       "Cell Biology",
			Question:      "Powerhouse of the cell?",
			OptionA:       "Nucleus",
			OptionB:       "Mitochondria",
			OptionC:       "Ribosome",
			OptionD:       "Golgi",
			CorrectOption: "option_b",
			Explanation:   "Mitochondria produce ATP.",
		},
		{
			Chapter:       "Genetics",
			Question:      "Father of genetics?",
			OptionA:       "Darwin",
			OptionB:       "Mendel",
			OptionC:       "Morgan",
			OptionD:       "Watson",
			CorrectOption: "Mendel",
			Explanation:   "Pea plant experiments.",
		},
		{
			Chapter:       "Cell Biology",
			Question:      "Site of protein synthesis?",
			OptionA:       "Ribosome",
			OptionB:       "Lysosome",
			OptionC:       "Vacuole",
			OptionD:       "Centriole",
			CorrectOption: "option_a",
		},
	}
}

func newTestModel(t *testing.T, source *sliceSource) Model {
	t.Helper()
	bank := repository.NewQuestionBank(source, zap.NewNop())
	_ = bank.Load(context.Background())
	quiz := service.NewQuizService(bank, storage.NewSessionStorage(), zap.NewNop())
	return NewModel(quiz, Options{NoColor: true})
}

// press feeds key presses through Update.
func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		updated, ok := next.(Model)
		if !ok {
			t.Fatalf("expected Model, got %T", next)
		}
		m = updated
	}
	return m
}

// TestTopicsScreenShowsDefaultSelection verifies the first chapter starts selected.
func TestTopicsScreenShowsDefaultSelection(t *testing.T) {
	m := newTestModel(t, &sliceSource{records: sampleRecords()})
	view := m.View()
	if !strings.Contains(view, "> [x] Cell Biology") || !strings.Contains(view, "  [ ] Genetics") {
		t.Fatalf("unexpected topics screen:\n%s", view)
	}
}

// TestStartShowsFilteredQuestions verifies enter opens the first filtered question.
func TestStartShowsFilteredQuestions(t *testing.T) {
	m := press(t, newTestModel(t, &sliceSource{records: sampleRecords()}), "enter")
	if m.screen != screenQuestion {
		t.Fatalf("expected question screen")
	}
	view := m.View()
	if !strings.Contains(view, "Question 1/2 · Cell Biology") || !strings.Contains(view, "Powerhouse of the cell?") {
		t.Fatalf("unexpected question screen:\n%s", view)
	}

	m = press(t, m, "n", "n")
	if !strings.Contains(m.View(), "Question 2/2") || !strings.Contains(m.View(), "Site of protein synthesis?") {
		t.Fatalf("expected navigation to clamp at the last question:\n%s", m.View())
	}

	m = press(t, m, "p")
	if m.view.Position != 0 {
		t.Fatalf("expected position 0, got %d", m.view.Position)
	}
}

// TestCheckShowsFeedback verifies correct and incorrect feedback and the stale note.
func TestCheckShowsFeedback(t *testing.T) {
	m := press(t, newTestModel(t, &sliceSource{records: sampleRecords()}), "enter", "1", "c")
	view := m.View()
	if !strings.Contains(view, msgIncorrect+" Mitochondria") || !strings.Contains(view, "Mitochondria produce ATP.") {
		t.Fatalf("expected incorrect feedback:\n%s", view)
	}

	m = press(t, m, "down", "x")
	if !strings.Contains(m.View(), "(•) B. Mitochondria") || !strings.Contains(m.View(), msgStale) {
		t.Fatalf("expected changed selection with stale note:\n%s", m.View())
	}

	m = press(t, m, "enter")
	view = m.View()
	if !strings.Contains(view, msgCorrect+" Mitochondria produce ATP.") || strings.Contains(view, msgStale) {
		t.Fatalf("expected fresh correct feedback:\n%s", view)
	}
}

// TestAnswersSurviveNavigation verifies per-question state is kept while moving.
func TestAnswersSurviveNavigation(t *testing.T) {
	m := press(t, newTestModel(t, &sliceSource{records: sampleRecords()}), "enter", "2", "n", "p")
	if m.cursor != 1 {
		t.Fatalf("expected cursor on the selected option, got %d", m.cursor)
	}
	if !strings.Contains(m.View(), "> (•) B. Mitochondria") {
		t.Fatalf("expected selection to survive navigation:\n%s", m.View())
	}
}

// TestEmptySelectionShowsHint verifies starting without chapters stays on the topic screen.
func TestEmptySelectionShowsHint(t *testing.T) {
	m := press(t, newTestModel(t, &sliceSource{records: sampleRecords()}), "x", "enter")
	if m.screen != screenTopics {
		t.Fatalf("expected topics screen")
	}
	if !strings.Contains(m.View(), msgSelectTopic) {
		t.Fatalf("expected select-topic hint:\n%s", m.View())
	}
}

// TestResetClearsAnswers verifies reset returns to topics with no answers.
func TestResetClearsAnswers(t *testing.T) {
	m := press(t, newTestModel(t, &sliceSource{records: sampleRecords()}), "enter", "2", "c", "r")
	if m.screen != screenTopics || m.status != msgReset {
		t.Fatalf("expected reset to return to topics, got screen %d status %q", m.screen, m.status)
	}

	m = press(t, m, "enter")
	if strings.Contains(m.View(), "(•)") || strings.Contains(m.View(), msgCorrect) {
		t.Fatalf("expected a clean question after reset:\n%s", m.View())
	}
}

// TestEmptyBankOnlyQuits verifies the no-data screen.
func TestEmptyBankOnlyQuits(t *testing.T) {
	m := newTestModel(t, &sliceSource{err: errors.New("missing")})
	if !strings.Contains(m.View(), msgNoData) {
		t.Fatalf("expected no-data message:\n%s", m.View())
	}

	m = press(t, m, "enter")
	if m.screen != screenTopics {
		t.Fatalf("expected keys other than quit to be ignored")
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
}
