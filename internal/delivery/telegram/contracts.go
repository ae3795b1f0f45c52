package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/neet-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/neet-quiz-bot/internal/service"
)

// BotAPI is the part of *tgbotapi.BotAPI the handler uses.
type BotAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

type QuizService interface {
	Empty() bool
	Topics() []string
	SelectedTopics(sessionID int64) []string
	ToggleTopic(sessionID int64, topic string) entities.QuizState
	Current(sessionID int64) (service.QuestionView, error)
	Locate(sessionID int64, recordIndex int) (int, error)
	Move(sessionID int64, position int) (service.QuestionView, error)
	Choose(sessionID int64, position, optionIndex int) (service.QuestionView, error)
	Check(sessionID int64, position int) (service.QuestionView, error)
	Reset(sessionID int64)
	Reload(ctx context.Context) error
}
