package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Commands lists the bot commands registered with Telegram.
var Commands = []tgbotapi.BotCommand{
	{Command: "start", Description: "Start the quiz"},
	{Command: "topics", Description: "Choose chapters to revise"},
	{Command: "quiz", Description: "Continue the quiz"},
	{Command: "reset", Description: "Clear your answers"},
	{Command: "help", Description: "Help"},
}

type Handler struct {
	bot     BotAPI
	logger  *zap.Logger
	quiz    QuizService
	isAdmin func(userID int64) bool
}

func NewHandler(
	bot BotAPI,
	logger *zap.Logger,
	quiz QuizService,
	isAdmin func(userID int64) bool,
) *Handler {
	return &Handler{
		bot:     bot,
		logger:  logger,
		quiz:    quiz,
		isAdmin: isAdmin,
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)
	defer h.bot.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	chatID := update.Message.Chat.ID

	if !update.Message.IsCommand() {
		_ = h.withErrorHandling(h.handleText())(ctx, chatID)
		return
	}

	var userID int64
	if update.Message.From != nil {
		userID = update.Message.From.ID
	}

	switch update.Message.Command() {
	case "start", "help":
		_ = h.withErrorHandling(h.handleStart())(ctx, chatID)
	case "topics":
		_ = h.withErrorHandling(h.handleTopics())(ctx, chatID)
	case "quiz":
		_ = h.withErrorHandling(h.handleQuiz())(ctx, chatID)
	case "reset":
		_ = h.withErrorHandling(h.handleReset())(ctx, chatID)
	case "reload":
		_ = h.withErrorHandling(h.handleReload(userID))(ctx, chatID)
	default:
		_ = h.withErrorHandling(h.handleText())(ctx, chatID)
	}
}

func (h *Handler) send(c tgbotapi.Chattable) error {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
		return err
	}
	return nil
}
