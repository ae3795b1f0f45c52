// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/neet-quiz-bot/internal/service"
)

const (
	msgNoData          = "Could not find any questions. Please check the questions file and try again later."
	msgSelectTopic     = "Select a chapter to start!"
	msgInternalError   = "Something went wrong. Please try again later."
	msgNotAllowed      = "This command is only available to administrators."
	msgReset           = "Your answers were cleared."
	msgReloadFailed    = "Reload failed: no questions could be loaded."
	msgUnknownCommand  = "Unknown command.\n\n" + msgCommandList
	msgCommandList     = "/topics - choose chapters to revise\n/quiz - continue the quiz\n/reset - clear your answers\n/help - show this help"
	msgWelcomeTitle    = "🧬 NEET Practice Quiz"
	msgTopicsTitle     = "⚙️ Quiz settings"
	msgTopicsPrompt    = "Select chapters to revise:"
	msgCorrect         = "✅ Correct!"
	msgIncorrect       = "❌ Incorrect. The answer is:"
	msgStaleResult     = "⚠️ You changed your choice. Press \"Check answer\" again to re-check."
	msgReloadSucceeded = "Questions reloaded: %d chapter(s) available."
)

var optionLabels = [...]string{"A", "B", "C", "D"}

// md escapes plain text for MarkdownV2.
func md(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdownV2, s)
}

func bold(s string) string {
	return "*" + md(s) + "*"
}

func italic(s string) string {
	return "_" + md(s) + "_"
}

// newMessage creates a message with MarkdownV2 parse mode.
func newMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	return msg
}

// newPlainMessage creates a plain message without MarkdownV2 parse mode.
func newPlainMessage(chatID int64, text string) tgbotapi.MessageConfig {
	return tgbotapi.NewMessage(chatID, text)
}

// newEdit creates an edit with MarkdownV2 parse mode.
func newEdit(chatID int64, msgID int, text string) tgbotapi.EditMessageTextConfig {
	edit := tgbotapi.NewEditMessageText(chatID, msgID, text)
	edit.ParseMode = tgbotapi.ModeMarkdownV2
	return edit
}

// welcomeText builds the /start and /help message.
func welcomeText() string {
	var sb strings.Builder
	sb.WriteString(bold(msgWelcomeTitle))
	sb.WriteString("\n\n")
	sb.WriteString(md("Pick the chapters you want to revise, then answer each question and press \"Check answer\" to see the explanation."))
	sb.WriteString("\n\n")
	sb.WriteString(md(msgCommandList))
	return sb.String()
}

// topicsText builds the topic selector message.
func topicsText(selected []string) string {
	var sb strings.Builder
	sb.WriteString(bold(msgTopicsTitle))
	sb.WriteString("\n\n")
	sb.WriteString(md(msgTopicsPrompt))
	if len(selected) == 0 {
		sb.WriteString("\n\n")
		sb.WriteString(md(msgSelectTopic))
	}
	return sb.String()
}

// questionText renders one question with its choices and, once checked, the feedback.
func questionText(view service.QuestionView) string {
	var sb strings.Builder

	sb.WriteString(bold(fmt.Sprintf("Question %d/%d", view.Position+1, view.Total)))
	if view.Record.Chapter != "" {
		sb.WriteString(md(" · "))
		sb.WriteString(italic(view.Record.Chapter))
	}
	sb.WriteString("\n\n")
	sb.WriteString(bold("Q: " + view.Record.Question))
	sb.WriteString("\n\n")

	for i, option := range view.Record.Options() {
		marker := "⚪"
		if view.State.Selected.Selected && view.State.Selected.Text == option {
			marker = "🔘"
		}
		sb.WriteString(md(fmt.Sprintf("%s %s. %s", marker, optionLabels[i], option)))
		sb.WriteString("\n")
	}

	if !view.State.Checked {
		return sb.String()
	}

	result := view.State.Result
	sb.WriteString("\n")
	if result.IsCorrect {
		sb.WriteString(md(msgCorrect + " " + result.Explanation))
	} else {
		sb.WriteString(md(msgIncorrect + " "))
		sb.WriteString(bold(result.CorrectAnswer))
		if result.Explanation != "" {
			sb.WriteString("\n")
			sb.WriteString(md("ℹ️ " + result.Explanation))
		}
	}

	if view.State.Stale() {
		sb.WriteString("\n\n")
		sb.WriteString(italic(msgStaleResult))
	}

	return sb.String()
}
