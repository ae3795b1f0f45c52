package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/aliskhannn/neet-quiz-bot/internal/domain/entities"
)

var (
	ErrNoQuestionsAvailable = errors.New("no questions available")
	ErrQuestionNotFound     = errors.New("question not found")
	ErrInvalidOption        = errors.New("invalid option")
)

// QuestionView is everything a front-end needs to draw one question.
type QuestionView struct {
	Record   entities.QuestionRecord
	State    entities.QuestionState
	Position int // zero-based position in the filtered view
	Total    int // size of the filtered view
}

// QuizService drives quiz sessions over a shared question bank.
// Session ids are opaque: Telegram uses the chat id, the TUI a constant.
type QuizService struct {
	bank     QuestionBank
	sessions SessionStorage
	logger   *zap.Logger
}

func NewQuizService(bank QuestionBank, sessions SessionStorage, logger *zap.Logger) *QuizService {
	return &QuizService{
		bank:     bank,
		sessions: sessions,
		logger:   logger,
	}
}

// Empty reports whether the question bank has no data at all.
func (s *QuizService) Empty() bool {
	return s.bank.Empty()
}

// Topics returns every topic in the bank.
func (s *QuizService) Topics() []string {
	return s.bank.DistinctTopics()
}

// State returns the raw session state.
func (s *QuizService) State(sessionID int64) entities.QuizState {
	return s.sessions.Get(sessionID)
}

// SelectedTopics returns the session's topics, defaulting to the first topic
// until the user changes the selection.
func (s *QuizService) SelectedTopics(sessionID int64) []string {
	return s.withDefaultTopics(s.sessions.Get(sessionID)).Topics
}

// ToggleTopic adds or removes one topic from the session's selection.
func (s *QuizService) ToggleTopic(sessionID int64, topic string) entities.QuizState {
	return s.sessions.Update(sessionID, func(state entities.QuizState) entities.QuizState {
		state = s.withDefaultTopics(state)
		return Reduce(state, QuizEvent{Type: EventToggleTopic, Topic: topic})
	})
}

// SelectTopics replaces the session's selection.
func (s *QuizService) SelectTopics(sessionID int64, topics []string) entities.QuizState {
	return s.sessions.Update(sessionID, func(state entities.QuizState) entities.QuizState {
		return Reduce(state, QuizEvent{Type: EventSelectTopics, Topics: topics})
	})
}

// Questions returns the filtered view for the session.
func (s *QuizService) Questions(sessionID int64) []entities.QuestionRecord {
	return s.bank.FilterByTopics(s.SelectedTopics(sessionID))
}

// Current returns the question at the session's position.
func (s *QuizService) Current(sessionID int64) (QuestionView, error) {
	state := s.sessions.Get(sessionID)
	return s.view(state, state.Position)
}

// Question returns the question at position in the filtered view.
func (s *QuizService) Question(sessionID int64, position int) (QuestionView, error) {
	return s.view(s.sessions.Get(sessionID), position)
}

// Locate returns the position of the record with recordIndex in the session's
// filtered view, or ErrQuestionNotFound when the view no longer contains it.
func (s *QuizService) Locate(sessionID int64, recordIndex int) (int, error) {
	questions := s.Questions(sessionID)
	if len(questions) == 0 {
		return 0, ErrNoQuestionsAvailable
	}
	for position, q := range questions {
		if q.Index == recordIndex {
			return position, nil
		}
	}
	return 0, fmt.Errorf("%w: record %d", ErrQuestionNotFound, recordIndex)
}

// Move sets the session's position, clamped to the filtered view.
func (s *QuizService) Move(sessionID int64, position int) (QuestionView, error) {
	questions := s.Questions(sessionID)
	if len(questions) == 0 {
		return QuestionView{}, ErrNoQuestionsAvailable
	}
	position = max(0, min(position, len(questions)-1))

	state := s.sessions.Update(sessionID, func(state entities.QuizState) entities.QuizState {
		return Reduce(s.withDefaultTopics(state), QuizEvent{Type: EventMove, Position: position})
	})

	return s.view(state, position)
}

// Choose records the option at optionIndex (0-3) for the question at position.
func (s *QuizService) Choose(sessionID int64, position, optionIndex int) (QuestionView, error) {
	view, err := s.Question(sessionID, position)
	if err != nil {
		return QuestionView{}, err
	}

	options := view.Record.Options()
	if optionIndex < 0 || optionIndex >= len(options) {
		return QuestionView{}, fmt.Errorf("%w: %d", ErrInvalidOption, optionIndex)
	}

	state := s.sessions.Update(sessionID, func(state entities.QuizState) entities.QuizState {
		state = s.withDefaultTopics(state)
		state = Reduce(state, QuizEvent{Type: EventMove, Position: position})
		return Reduce(state, QuizEvent{
			Type:   EventChoose,
			Index:  view.Record.Index,
			Choice: entities.Chose(options[optionIndex]),
		})
	})

	return s.view(state, position)
}

// Check evaluates the current selection of the question at position.
func (s *QuizService) Check(sessionID int64, position int) (QuestionView, error) {
	view, err := s.Question(sessionID, position)
	if err != nil {
		return QuestionView{}, err
	}

	record := view.Record
	state := s.sessions.Update(sessionID, func(state entities.QuizState) entities.QuizState {
		state = s.withDefaultTopics(state)
		state = Reduce(state, QuizEvent{Type: EventMove, Position: position})
		return Reduce(state, QuizEvent{Type: EventCheck, Record: &record})
	})

	view, err = s.view(state, position)
	if err != nil {
		return QuestionView{}, err
	}

	s.logger.Debug("answer checked",
		zap.Int64("session_id", sessionID),
		zap.Int("question_index", record.Index),
		zap.Bool("correct", view.State.Result.IsCorrect),
	)

	return view, nil
}

// Reset drops the session's state.
func (s *QuizService) Reset(sessionID int64) {
	s.sessions.Delete(sessionID)
}

// Reload re-reads the question bank. Sessions are cleared when the records
// changed because their per-question keys refer to the previous data.
func (s *QuizService) Reload(ctx context.Context) error {
	before := s.bank.All()
	err := s.bank.Reload(ctx)
	if err != nil || !slices.Equal(before, s.bank.All()) {
		s.sessions.Clear()
		s.logger.Info("quiz sessions cleared after reload")
	}
	if err != nil {
		return fmt.Errorf("reload questions: %w", err)
	}
	return nil
}

func (s *QuizService) withDefaultTopics(state entities.QuizState) entities.QuizState {
	if state.TopicsChosen {
		return state
	}
	topics := s.bank.DistinctTopics()
	if len(topics) == 0 {
		return state
	}
	state.Topics = topics[:1]
	state.TopicsChosen = true
	return state
}

func (s *QuizService) view(state entities.QuizState, position int) (QuestionView, error) {
	questions := s.bank.FilterByTopics(s.withDefaultTopics(state).Topics)
	if len(questions) == 0 {
		return QuestionView{}, ErrNoQuestionsAvailable
	}
	if position < 0 || position >= len(questions) {
		return QuestionView{}, fmt.Errorf("%w: position %d of %d", ErrQuestionNotFound, position, len(questions))
	}

	record := questions[position]
	return QuestionView{
		Record:   record,
		State:    state.Question(record.Index),
		Position: position,
		Total:    len(questions),
	}, nil
}
