package domain

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type BotCommand struct {
	Command     string
	Description string
}

type TelegramClientAPI interface {
	SendMessage(ctx context.Context, chatID int64, text string) error

	// SendQuoteMessage отправляет текст цитаты с inline-кнопками 👍/👎.
	SendQuoteMessage(ctx context.Context, chatID int64, text string, quoteID int) error

	// EditQuoteMessage переписывает текст ранее отправленной цитаты, сохраняя
	// клавиатуру. Неизменившееся содержимое возвращается как
	// *errors.ErrMessageNotModified.
	EditQuoteMessage(ctx context.Context, chatID int64, messageID int, text string, quoteID int) error

	SendPhoto(ctx context.Context, chatID int64, photo []byte, caption string) error

	AnswerCallback(ctx context.Context, callbackID, text string) error

	SetMyCommands(ctx context.Context, commands []BotCommand) error

	GetBot() *tgbotapi.BotAPI
}
