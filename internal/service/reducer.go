package service

import (
	"maps"
	"slices"

	"github.com/aliskhannn/neet-quiz-bot/internal/domain/entities"
)

// QuizEventType names a user action on a quiz session.
type QuizEventType string

const (
	EventSelectTopics QuizEventType = "select_topics"
	EventToggleTopic  QuizEventType = "toggle_topic"
	EventChoose       QuizEventType = "choose"
	EventCheck        QuizEventType = "check"
	EventMove         QuizEventType = "move"
	EventReset        QuizEventType = "reset"
)

// QuizEvent is one action fed to Reduce. Only the fields relevant to Type are read.
type QuizEvent struct {
	Type     QuizEventType
	Topics   []string                 // EventSelectTopics
	Topic    string                   // EventToggleTopic
	Index    int                      // EventChoose: record index
	Choice   entities.Choice          // EventChoose
	Record   *entities.QuestionRecord // EventCheck
	Position int                      // EventMove
}

// Reduce applies event to state and returns the new state. The input is not modified.
//
// A check freezes the result. Choosing another option afterwards keeps the old
// result until the next check.
func Reduce(state entities.QuizState, event QuizEvent) entities.QuizState {
	switch event.Type {
	case EventSelectTopics:
		state.Topics = slices.Clone(event.Topics)
		if state.Topics == nil {
			state.Topics = []string{}
		}
		state.TopicsChosen = true
		state.Position = 0

	case EventToggleTopic:
		topics := slices.Clone(state.Topics)
		if i := slices.Index(topics, event.Topic); i >= 0 {
			topics = slices.Delete(topics, i, i+1)
		} else {
			topics = append(topics, event.Topic)
		}
		if topics == nil {
			topics = []string{}
		}
		state.Topics = topics
		state.TopicsChosen = true
		state.Position = 0

	case EventChoose:
		state.Questions = cloneQuestions(state.Questions)
		qs := state.Questions[event.Index]
		qs.Selected = event.Choice
		state.Questions[event.Index] = qs

	case EventCheck:
		if event.Record == nil {
			return state
		}
		state.Questions = cloneQuestions(state.Questions)
		qs := state.Questions[event.Record.Index]
		qs.Result = CheckAnswer(*event.Record, qs.Selected)
		qs.CheckedChoice = qs.Selected
		qs.Checked = true
		state.Questions[event.Record.Index] = qs

	case EventMove:
		if event.Position >= 0 {
			state.Position = event.Position
		}

	case EventReset:
		return entities.QuizState{}
	}

	return state
}

func cloneQuestions(in map[int]entities.QuestionState) map[int]entities.QuestionState {
	if in == nil {
		return make(map[int]entities.QuestionState)
	}
	return maps.Clone(in)
}
