package entities

// Choice is the text of the option a user picked.
// The zero value means nothing has been picked yet.
type Choice struct {
	Text     string
	Selected bool
}

// NoChoice is the "no selection" sentinel.
var NoChoice = Choice{}

// Chose returns a Choice for the given option text.
func Chose(text string) Choice {
	return Choice{Text: text, Selected: true}
}

// CheckResult is the feedback produced when a user checks an answer.
type CheckResult struct {
	IsCorrect     bool   // whether the selected option matches the correct answer
	CorrectAnswer string // resolved correct answer text
	Explanation   string // copied from the question record
}

// QuestionState tracks one question inside a quiz session.
type QuestionState struct {
	Selected      Choice      // current selection, may change after a check
	Checked       bool        // user has asked for feedback at least once
	Result        CheckResult // frozen at the last check
	CheckedChoice Choice      // selection the frozen result was computed for
}

// Stale reports whether the selection changed since the last check.
func (s QuestionState) Stale() bool {
	return s.Checked && s.Selected != s.CheckedChoice
}

// QuizState is the per-session view state: selected topics and per-question answers.
type QuizState struct {
	Topics       []string              // selected topics
	TopicsChosen bool                  // false until the user touches the topic selector
	Questions    map[int]QuestionState // keyed by QuestionRecord.Index
	Position     int                   // current question in the filtered view
}

// Question returns the state of the question with the given record index.
func (s QuizState) Question(index int) QuestionState {
	return s.Questions[index]
}

// HasTopic reports whether topic is in the selected set.
func (s QuizState) HasTopic(topic string) bool {
	for _, t := range s.Topics {
		if t == topic {
			return true
		}
	}
	return false
}
