package telegram

import (
	"context"
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/neet-quiz-bot/internal/service"
)

func (h *Handler) handleCallback(_ context.Context, cb *tgbotapi.CallbackQuery) {
	// Remove the user's "clock".
	defer func() {
		if _, err := h.bot.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
			h.logger.Warn("callback answer error", zap.Error(err))
		}
	}()

	if cb.Message == nil {
		return
	}
	chatID := cb.Message.Chat.ID

	data := decodeCallback(cb.Data)

	var (
		text string
		kb   tgbotapi.InlineKeyboardMarkup
		err  error
	)

	switch data.Action {
	case actionTopic:
		text, kb, err = h.handleTopicCallback(chatID, data)
	case actionQuiz:
		text, kb, err = h.handleQuizCallback(chatID, data)
	default:
		err = ErrInvalidCallback
	}

	switch {
	case errors.Is(err, ErrInvalidCallback), errors.Is(err, service.ErrQuestionNotFound), errors.Is(err, service.ErrInvalidOption):
		h.logger.Warn("invalid callback", zap.String("data", cb.Data), zap.Error(err))
		return
	case errors.Is(err, service.ErrNoQuestionsAvailable):
		text = md(msgSelectTopic)
		kb = buildTopicsKeyboard(h.quiz.Topics(), h.quiz.SelectedTopics(chatID))
	case err != nil:
		h.logger.Error("callback failed", zap.String("data", cb.Data), zap.Error(err))
		return
	}

	edit := newEdit(chatID, cb.Message.MessageID, text)
	edit.ReplyMarkup = &kb
	_ = h.send(edit)
}

func (h *Handler) handleTopicCallback(chatID int64, data callbackData) (string, tgbotapi.InlineKeyboardMarkup, error) {
	switch data.sub() {
	case topicMenu:

	case topicToggle:
		i, err := data.intParam(0)
		if err != nil {
			return "", tgbotapi.InlineKeyboardMarkup{}, err
		}
		key, err := data.stringParam(1)
		if err != nil {
			return "", tgbotapi.InlineKeyboardMarkup{}, err
		}
		topics := h.quiz.Topics()
		if i >= len(topics) || topicKey(topics[i]) != key {
			return "", tgbotapi.InlineKeyboardMarkup{}, fmt.Errorf("%w: topic %d changed", ErrInvalidCallback, i)
		}
		h.quiz.ToggleTopic(chatID, topics[i])

	case topicStart:
		view, err := h.quiz.Move(chatID, 0)
		if err != nil {
			return "", tgbotapi.InlineKeyboardMarkup{}, err
		}
		return questionText(view), buildQuestionKeyboard(view), nil

	default:
		return "", tgbotapi.InlineKeyboardMarkup{}, ErrInvalidCallback
	}

	if h.quiz.Empty() {
		return md(msgNoData), tgbotapi.InlineKeyboardMarkup{InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{}}, nil
	}

	selected := h.quiz.SelectedTopics(chatID)
	return topicsText(selected), buildTopicsKeyboard(h.quiz.Topics(), selected), nil
}

func (h *Handler) handleQuizCallback(chatID int64, data callbackData) (string, tgbotapi.InlineKeyboardMarkup, error) {
	recordIndex, err := data.intParam(0)
	if err != nil {
		return "", tgbotapi.InlineKeyboardMarkup{}, err
	}

	// The message may predate a topic change or a reload; act only on the
	// question it shows.
	position, err := h.quiz.Locate(chatID, recordIndex)
	if err != nil {
		return "", tgbotapi.InlineKeyboardMarkup{}, err
	}

	var view service.QuestionView
	switch data.sub() {
	case quizNext:
		view, err = h.quiz.Move(chatID, position+1)
	case quizPrev:
		view, err = h.quiz.Move(chatID, position-1)
	case quizChoose:
		option, perr := data.intParam(1)
		if perr != nil {
			return "", tgbotapi.InlineKeyboardMarkup{}, perr
		}
		view, err = h.quiz.Choose(chatID, position, option)
	case quizCheck:
		view, err = h.quiz.Check(chatID, position)
	default:
		return "", tgbotapi.InlineKeyboardMarkup{}, ErrInvalidCallback
	}
	if err != nil {
		return "", tgbotapi.InlineKeyboardMarkup{}, err
	}

	return questionText(view), buildQuestionKeyboard(view), nil
}
