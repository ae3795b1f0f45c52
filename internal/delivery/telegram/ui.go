package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/neet-quiz-bot/internal/service"
)

// maxButtonText keeps option buttons readable; the full text is in the message body.
const maxButtonText = 48

// buildTopicsKeyboard builds the chapter multi-select keyboard.
func buildTopicsKeyboard(topics, selected []string) tgbotapi.InlineKeyboardMarkup {
	chosen := make(map[string]bool, len(selected))
	for _, t := range selected {
		chosen[t] = true
	}

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(topics)+1)
	for i, topic := range topics {
		label := "▫️ " + topic
		if chosen[topic] {
			label = "✅ " + topic
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(truncate(label), buildTopicToggleCallback(i, topic)),
		))
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("▶️ Start quiz", buildTopicStartCallback()),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildQuestionKeyboard builds the choices, check button and navigation for a question.
func buildQuestionKeyboard(view service.QuestionView) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	for i, option := range view.Record.Options() {
		marker := "⚪"
		if view.State.Selected.Selected && view.State.Selected.Text == option {
			marker = "🔘"
		}
		label := fmt.Sprintf("%s %s. %s", marker, optionLabels[i], option)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(truncate(label), buildQuizChooseCallback(view.Record.Index, i)),
		))
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("✔️ Check answer", buildQuizCheckCallback(view.Record.Index)),
	))

	var nav []tgbotapi.InlineKeyboardButton
	if view.Position > 0 {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("◀️ Previous", buildQuizPrevCallback(view.Record.Index)))
	}
	if view.Position < view.Total-1 {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("Next ▶️", buildQuizNextCallback(view.Record.Index)))
	}
	if len(nav) > 0 {
		rows = append(rows, nav)
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("📚 Chapters", buildTopicMenuCallback()),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func truncate(s string) string {
	r := []rune(s)
	if len(r) <= maxButtonText {
		return s
	}
	return string(r[:maxButtonText-1]) + "…"
}
