package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/aliskhannn/neet-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/neet-quiz-bot/internal/repository"
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

func newTestQuizService(t *testing.T, source *sliceSource) (*QuizService, *storage.SessionStorage) {
	t.Helper()
	bank := repository.NewQuestionBank(source, zap.NewNop())
	_ = bank.Load(context.Background())
	sessions := storage.NewSessionStorage()
	return NewQuizService(bank, sessions, zap.NewNop()), sessions
}

func sampleRecords() []entities.QuestionRecord {
	genetics := entities.QuestionRecord{
		Chapter:       "Genetics",
		Question:      "Father of genetics?",
		OptionA:       "Darwin",
		OptionB:       "Mendel",
		OptionC:       "Morgan",
		OptionD:       "Watson",
		CorrectOption: "Mendel",
		Explanation:   "Mendel's pea experiments.",
	}
	return []entities.QuestionRecord{powerhouse(), genetics, powerhouse()}
}

// TestQuizServiceDefaultTopic verifies the first topic is selected until the user chooses.
func TestQuizServiceDefaultTopic(t *testing.T) {
	svc, _ := newTestQuizService(t, &sliceSource{records: sampleRecords()})

	topics := svc.SelectedTopics(1)
	if len(topics) != 1 || topics[0] != "Cell Biology" {
		t.Fatalf("expected default [Cell Biology], got %v", topics)
	}
	if got := len(svc.Questions(1)); got != 2 {
		t.Fatalf("expected 2 questions, got %d", got)
	}

	state := svc.ToggleTopic(1, "Genetics")
	if !state.HasTopic("Cell Biology") || !state.HasTopic("Genetics") {
		t.Fatalf("expected toggle to extend the default selection, got %v", state.Topics)
	}

	svc.ToggleTopic(1, "Cell Biology")
	svc.ToggleTopic(1, "Genetics")
	if got := svc.Questions(1); len(got) != 0 {
		t.Fatalf("expected empty filter after clearing topics, got %d", len(got))
	}
	if _, err := svc.Current(1); !errors.Is(err, ErrNoQuestionsAvailable) {
		t.Fatalf("expected ErrNoQuestionsAvailable, got %v", err)
	}
}

// TestQuizServiceChooseAndCheck walks one question through selection and checking.
func TestQuizServiceChooseAndCheck(t *testing.T) {
	svc, _ := newTestQuizService(t, &sliceSource{records: sampleRecords()})
	svc.SelectTopics(5, []string{"Genetics"})

	view, err := svc.Choose(5, 0, 1)
	if err != nil {
		t.Fatalf("choose: %v", err)
	}
	if view.State.Selected.Text != "Mendel" || view.State.Checked {
		t.Fatalf("unexpected state after choose: %+v", view.State)
	}
	if view.Record.Index != 1 {
		t.Fatalf("expected record index 1, got %d", view.Record.Index)
	}

	view, err = svc.Check(5, 0)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !view.State.Checked || !view.State.Result.IsCorrect {
		t.Fatalf("expected correct result, got %+v", view.State)
	}

	if _, err := svc.Choose(5, 0, 4); !errors.Is(err, ErrInvalidOption) {
		t.Fatalf("expected ErrInvalidOption, got %v", err)
	}
	if _, err := svc.Check(5, 3); !errors.Is(err, ErrQuestionNotFound) {
		t.Fatalf("expected ErrQuestionNotFound, got %v", err)
	}
}

// TestQuizServiceSessionsIndependent verifies two sessions share the bank but not state.
func TestQuizServiceSessionsIndependent(t *testing.T) {
	svc, _ := newTestQuizService(t, &sliceSource{records: sampleRecords()})

	if _, err := svc.Choose(1, 0, 1); err != nil {
		t.Fatalf("choose: %v", err)
	}
	view, err := svc.Current(2)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if view.State.Selected.Selected {
		t.Fatalf("expected no selection in session 2, got %+v", view.State)
	}
}

// TestQuizServiceMoveClamps verifies navigation stays inside the filtered view.
func TestQuizServiceMoveClamps(t *testing.T) {
	svc, _ := newTestQuizService(t, &sliceSource{records: sampleRecords()})

	view, err := svc.Move(1, 10)
	if err != nil {
		t.Fatalf("move: %v", err)
	}
	if view.Position != 1 || view.Total != 2 {
		t.Fatalf("expected last position of 2, got %d/%d", view.Position, view.Total)
	}

	view, err = svc.Move(1, -3)
	if err != nil {
		t.Fatalf("move: %v", err)
	}
	if view.Position != 0 {
		t.Fatalf("expected position 0, got %d", view.Position)
	}
}

// TestQuizServiceReloadUnchangedKeepsSessions verifies a reload of identical data keeps answers.
func TestQuizServiceReloadUnchangedKeepsSessions(t *testing.T) {
	svc, sessions := newTestQuizService(t, &sliceSource{records: sampleRecords()})
	if _, err := svc.Choose(1, 0, 1); err != nil {
		t.Fatalf("choose: %v", err)
	}

	if err := svc.Reload(context.Background()); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if sessions.Len() != 1 {
		t.Fatalf("expected session kept, got %d sessions", sessions.Len())
	}
	view, err := svc.Current(1)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if view.State.Selected != entities.Chose("Mitochondria") {
		t.Fatalf("expected selection kept, got %+v", view.State.Selected)
	}
}

// TestQuizServiceReloadClearsSessions verifies reload drops stale per-question state.
func TestQuizServiceReloadClearsSessions(t *testing.T) {
	source := &sliceSource{records: sampleRecords()}
	svc, sessions := newTestQuizService(t, source)
	if _, err := svc.Choose(1, 0, 0); err != nil {
		t.Fatalf("choose: %v", err)
	}

	source.records = sampleRecords()[:2]
	if err := svc.Reload(context.Background()); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if sessions.Len() != 0 {
		t.Fatalf("expected sessions cleared, got %d", sessions.Len())
	}

	source.err = errors.New("gone")
	err := svc.Reload(context.Background())
	if !errors.Is(err, repository.ErrDataSourceMissing) {
		t.Fatalf("expected ErrDataSourceMissing, got %v", err)
	}
	if !svc.Empty() || len(svc.Topics()) != 0 {
		t.Fatalf("expected empty bank after failed reload")
	}
}

// TestQuizServiceLocate verifies record indexes resolve against the session's filtered view.
func TestQuizServiceLocate(t *testing.T) {
	svc, _ := newTestQuizService(t, &sliceSource{records: sampleRecords()})

	position, err := svc.Locate(1, 2)
	if err != nil {
		t.Fatalf("locate: %v", err)
	}
	if position != 1 {
		t.Fatalf("expected record 2 at position 1, got %d", position)
	}

	if _, err := svc.Locate(1, 1); !errors.Is(err, ErrQuestionNotFound) {
		t.Fatalf("expected ErrQuestionNotFound for a filtered-out record, got %v", err)
	}

	svc.SelectTopics(1, nil)
	if _, err := svc.Locate(1, 0); !errors.Is(err, ErrNoQuestionsAvailable) {
		t.Fatalf("expected ErrNoQuestionsAvailable, got %v", err)
	}
}

// TestQuizServiceEmptyBank verifies the empty-data state.
func TestQuizServiceEmptyBank(t *testing.T) {
	svc, _ := newTestQuizService(t, &sliceSource{err: errors.New("no file")})
	if !svc.Empty() {
		t.Fatalf("expected empty service")
	}
	if topics := svc.SelectedTopics(1); len(topics) != 0 {
		t.Fatalf("expected no default topic, got %v", topics)
	}
	if _, err := svc.Move(1, 0); !errors.Is(err, ErrNoQuestionsAvailable) {
		t.Fatalf("expected ErrNoQuestionsAvailable, got %v", err)
	}
}
