package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aliskhannn/neet-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/neet-quiz-bot/internal/service"
)

// sessionID is the single local session the terminal UI drives.
const sessionID int64 = 1

type QuizService interface {
	Empty() bool
	Topics() []string
	SelectedTopics(sessionID int64) []string
	ToggleTopic(sessionID int64, topic string) entities.QuizState
	Move(sessionID int64, position int) (service.QuestionView, error)
	Choose(sessionID int64, position, optionIndex int) (service.QuestionView, error)
	Check(sessionID int64, position int) (service.QuestionView, error)
	Reset(sessionID int64)
}

type screen int

const (
	screenTopics screen = iota
	screenQuestion
)

// Options configures the quiz model.
type Options struct {
	NoColor bool
}

// Model is a Bubble Tea model for revising questions in the terminal.
type Model struct {
	quiz    QuizService
	keys    keyMap
	help    help.Model
	screen  screen
	cursor  int
	view    service.QuestionView
	status  string
	noColor bool
}

// NewModel constructs a quiz model over the given service.
func NewModel(quiz QuizService, opts Options) Model {
	return Model{
		quiz:    quiz,
		keys:    defaultKeyMap(),
		help:    help.New(),
		screen:  screenTopics,
		noColor: opts.NoColor,
	}
}

// Init has nothing to start; the model reacts to key presses only.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key presses and terminal resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = typed.Width
		return m, nil
	case tea.KeyMsg:
		if key.Matches(typed, m.keys.Quit) {
			return m, tea.Quit
		}
		if m.quiz.Empty() {
			return m, nil
		}
		m.status = ""
		if m.screen == screenQuestion {
			return m.updateQuestion(typed), nil
		}
		return m.updateTopics(typed), nil
	}
	return m, nil
}

// View renders the active screen.
func (m Model) View() string {
	var body string
	switch {
	case m.quiz.Empty():
		body = renderEmpty(m.noColor)
	case m.screen == screenQuestion:
		body = renderQuestion(m.view, m.cursor, m.noColor)
	default:
		body = renderTopics(m.quiz.Topics(), m.quiz.SelectedTopics(sessionID), m.cursor, m.noColor)
	}

	bindings := m.keys.topicsHelp()
	if m.screen == screenQuestion {
		bindings = m.keys.questionHelp()
	}
	if m.quiz.Empty() {
		bindings = []key.Binding{m.keys.Quit}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		body,
		renderStatus(m.status, m.noColor),
		m.help.ShortHelpView(bindings),
	)
}

func (m Model) updateTopics(msg tea.KeyMsg) Model {
	topics := m.quiz.Topics()

	switch {
	case key.Matches(msg, m.keys.Up):
		m.cursor = max(m.cursor-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.cursor = min(m.cursor+1, len(topics)-1)
	case key.Matches(msg, m.keys.Toggle):
		if m.cursor < len(topics) {
			m.quiz.ToggleTopic(sessionID, topics[m.cursor])
		}
	case key.Matches(msg, m.keys.Start):
		m = m.show(m.quiz.Move(sessionID, 0))
	}
	return m
}

func (m Model) updateQuestion(msg tea.KeyMsg) Model {
	position := m.view.Position

	switch {
	case key.Matches(msg, m.keys.Up):
		m.cursor = max(m.cursor-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.cursor = min(m.cursor+1, entities.OptionsPerQuestion-1)
	case key.Matches(msg, m.keys.Toggle):
		m = m.apply(m.quiz.Choose(sessionID, position, m.cursor))
	case key.Matches(msg, m.keys.Option):
		m.cursor = int(msg.Runes[0] - '1')
		m = m.apply(m.quiz.Choose(sessionID, position, m.cursor))
	case key.Matches(msg, m.keys.Check):
		m = m.apply(m.quiz.Check(sessionID, position))
	case key.Matches(msg, m.keys.Next):
		m = m.show(m.quiz.Move(sessionID, position+1))
	case key.Matches(msg, m.keys.Prev):
		m = m.show(m.quiz.Move(sessionID, position-1))
	case key.Matches(msg, m.keys.Topics):
		m.screen = screenTopics
		m.cursor = 0
	case key.Matches(msg, m.keys.Reset):
		m.quiz.Reset(sessionID)
		m.screen = screenTopics
		m.cursor = 0
		m.status = msgReset
	}
	return m
}

// show switches to a question and puts the cursor on its selected option.
func (m Model) show(view service.QuestionView, err error) Model {
	m = m.apply(view, err)
	if err == nil {
		m.cursor = selectedOption(view)
	}
	return m
}

func (m Model) apply(view service.QuestionView, err error) Model {
	switch {
	case errors.Is(err, service.ErrNoQuestionsAvailable):
		m.screen = screenTopics
		m.cursor = 0
		m.status = msgSelectTopic
	case err != nil:
		m.status = err.Error()
	default:
		m.screen = screenQuestion
		m.view = view
	}
	return m
}

func selectedOption(view service.QuestionView) int {
	if !view.State.Selected.Selected {
		return 0
	}
	for i, option := range view.Record.Options() {
		if option == view.State.Selected.Text {
			return i
		}
	}
	return 0
}
