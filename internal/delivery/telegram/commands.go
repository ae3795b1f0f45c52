package telegram

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/neet-quiz-bot/internal/service"
)

// handleStart sends the welcome text followed by the topic selector.
func (h *Handler) handleStart() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if err := h.send(newMessage(chatID, welcomeText())); err != nil {
			return err
		}
		return h.handleTopics()(ctx, chatID)
	}
}

// handleTopics sends the chapter multi-select.
func (h *Handler) handleTopics() HandlerFunc {
	return func(_ context.Context, chatID int64) error {
		if h.quiz.Empty() {
			return h.send(newPlainMessage(chatID, msgNoData))
		}

		selected := h.quiz.SelectedTopics(chatID)
		msg := newMessage(chatID, topicsText(selected))
		msg.ReplyMarkup = buildTopicsKeyboard(h.quiz.Topics(), selected)
		return h.send(msg)
	}
}

// handleQuiz sends the session's current question.
func (h *Handler) handleQuiz() HandlerFunc {
	return func(_ context.Context, chatID int64) error {
		if h.quiz.Empty() {
			return h.send(newPlainMessage(chatID, msgNoData))
		}

		view, err := h.quiz.Current(chatID)
		if errors.Is(err, service.ErrQuestionNotFound) {
			view, err = h.quiz.Move(chatID, 0)
		}
		if errors.Is(err, service.ErrNoQuestionsAvailable) {
			return h.send(newPlainMessage(chatID, msgSelectTopic))
		}
		if err != nil {
			return err
		}

		msg := newMessage(chatID, questionText(view))
		msg.ReplyMarkup = buildQuestionKeyboard(view)
		return h.send(msg)
	}
}

// handleReset clears the chat's quiz state.
func (h *Handler) handleReset() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		h.quiz.Reset(chatID)
		if err := h.send(newPlainMessage(chatID, msgReset)); err != nil {
			return err
		}
		return h.handleTopics()(ctx, chatID)
	}
}

// handleReload re-reads the question bank. Only admins may do this.
func (h *Handler) handleReload(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if h.isAdmin == nil || !h.isAdmin(userID) {
			h.logger.Warn("reload denied", zap.Int64("user_id", userID))
			return h.send(newPlainMessage(chatID, msgNotAllowed))
		}

		if err := h.quiz.Reload(ctx); err != nil {
			h.logger.Error("reload failed", zap.Int64("user_id", userID), zap.Error(err))
			return h.send(newPlainMessage(chatID, msgReloadFailed))
		}

		h.logger.Info("questions reloaded", zap.Int64("user_id", userID))
		return h.send(newPlainMessage(chatID, fmt.Sprintf(msgReloadSucceeded, len(h.quiz.Topics()))))
	}
}

// handleText answers anything that is not a known command.
func (h *Handler) handleText() HandlerFunc {
	return func(_ context.Context, chatID int64) error {
		return h.send(newPlainMessage(chatID, msgUnknownCommand))
	}
}
