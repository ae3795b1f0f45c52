package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aliskhannn/neet-quiz-bot/internal/service"
)

const (
	msgNoData      = "Could not find any questions. Check the questions source and try again."
	msgSelectTopic = "Select a chapter to start!"
	msgReset       = "Your answers were cleared."
	msgTitle       = "NEET Practice Quiz"
	msgTopics      = "Select chapters to revise:"
	msgCorrect     = "Correct!"
	msgIncorrect   = "Incorrect. The answer is:"
	msgStale       = "You changed your choice. Check again to re-evaluate."
)

var optionLabels = [...]string{"A", "B", "C", "D"}

var (
	colorTitle   = lipgloss.Color("33")
	colorMuted   = lipgloss.Color("242")
	colorCorrect = lipgloss.Color("42")
	colorWrong   = lipgloss.Color("196")
	colorWarn    = lipgloss.Color("214")
)

// renderEmpty renders the no-data screen.
func renderEmpty(noColor bool) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		bold(msgTitle, noColor, colorTitle),
		"",
		stylize(msgNoData, noColor, colorWrong),
	)
}

// renderTopics renders the chapter multi-select.
func renderTopics(topics, selected []string, cursor int, noColor bool) string {
	chosen := make(map[string]bool, len(selected))
	for _, t := range selected {
		chosen[t] = true
	}

	lines := []string{bold(msgTitle, noColor, colorTitle), "", msgTopics}
	for i, topic := range topics {
		mark := "[ ]"
		if chosen[topic] {
			mark = "[x]"
		}
		lines = append(lines, pointer(i == cursor)+mark+" "+topic)
	}
	return strings.Join(lines, "\n")
}

// renderQuestion renders one question, its choices and the frozen feedback.
func renderQuestion(view service.QuestionView, cursor int, noColor bool) string {
	header := fmt.Sprintf("Question %d/%d", view.Position+1, view.Total)
	if view.Record.Chapter != "" {
		header += " · " + view.Record.Chapter
	}

	lines := []string{
		stylize(header, noColor, colorMuted),
		"",
		bold(view.Record.Question, noColor, colorTitle),
		"",
	}

	for i, option := range view.Record.Options() {
		mark := "( )"
		if view.State.Selected.Selected && view.State.Selected.Text == option {
			mark = "(•)"
		}
		lines = append(lines, fmt.Sprintf("%s%s %s. %s", pointer(i == cursor), mark, optionLabels[i], option))
	}

	if view.State.Checked {
		lines = append(lines, "")
		result := view.State.Result
		if result.IsCorrect {
			lines = append(lines, stylize(msgCorrect, noColor, colorCorrect)+" "+result.Explanation)
		} else {
			lines = append(lines, stylize(msgIncorrect, noColor, colorWrong)+" "+bold(result.CorrectAnswer, noColor, colorWrong))
			if result.Explanation != "" {
				lines = append(lines, result.Explanation)
			}
		}
		if view.State.Stale() {
			lines = append(lines, stylize(msgStale, noColor, colorWarn))
		}
	}

	return strings.Join(lines, "\n")
}

func renderStatus(status string, noColor bool) string {
	if status == "" {
		return ""
	}
	return "\n" + stylize(status, noColor, colorWarn)
}

func pointer(active bool) string {
	if active {
		return "> "
	}
	return "  "
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}

func bold(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Bold(true).Foreground(color).Render(text)
}
