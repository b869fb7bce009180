package mocks

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/mock"

	"github.com/motivation-quotes/telegram-bot/internal/bot/domain"
)

type TelegramClientAPI struct {
	mock.Mock
}

func (m *TelegramClientAPI) SendMessage(ctx context.Context, chatID int64, text string) error {
	args := m.Called(ctx, chatID, text)
	return args.Error(0)
}

func (m *TelegramClientAPI) SendQuoteMessage(ctx context.Context, chatID int64, text string, quoteID int) error {
	args := m.Called(ctx, chatID, text, quoteID)
	return args.Error(0)
}

func (m *TelegramClientAPI) EditQuoteMessage(ctx context.Context, chatID int64, messageID int, text string, quoteID int) error {
	args := m.Called(ctx, chatID, messageID, text, quoteID)
	return args.Error(0)
}

func (m *TelegramClientAPI) SendPhoto(ctx context.Context, chatID int64, photo []byte, caption string) error {
	args := m.Called(ctx, chatID, photo, caption)
	return args.Error(0)
}

func (m *TelegramClientAPI) AnswerCallback(ctx context.Context, callbackID, text string) error {
	args := m.Called(ctx, callbackID, text)
	return args.Error(0)
}

func (m *TelegramClientAPI) SetMyCommands(ctx context.Context, commands []domain.BotCommand) error {
	args := m.Called(ctx, commands)
	return args.Error(0)
}

func (m *TelegramClientAPI) GetBot() *tgbotapi.BotAPI {
	args := m.Called()

	if args.Get(0) == nil {
		return nil
	}

	return args.Get(0).(*tgbotapi.BotAPI)
}
