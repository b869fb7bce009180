package clients

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"

	"github.com/motivation-quotes/telegram-bot/internal/bot/domain"
	"github.com/motivation-quotes/telegram-bot/internal/bot/format"
	domainerrors "github.com/motivation-quotes/telegram-bot/internal/domain/errors"
	"github.com/motivation-quotes/telegram-bot/internal/domain/models"
)

type TelegramClient struct {
	bot     *tgbotapi.BotAPI
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewTelegramClient создаёт клиент Telegram API. Исходящие отправки
// ограничены sendRate сообщений в секунду: /favorites отправляет по
// сообщению на каждую сохранённую цитату.
func NewTelegramClient(token string, sendRate float64, logger *slog.Logger) (domain.TelegramClientAPI, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("ошибка при создании Telegram клиента: %w", err)
	}

	return &TelegramClient{
		bot:     bot,
		limiter: rate.NewLimiter(rate.Limit(sendRate), 1),
		logger:  logger,
	}, nil
}

// SetBaseURL устанавливает базовый URL для API Telegram (используется в тестах).
func (c *TelegramClient) SetBaseURL(url string) {
	c.bot.SetAPIEndpoint(url)
}

func quoteKeyboard(quoteID int) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("👍", format.ReactionCallbackData(models.ReactionLike, quoteID)),
			tgbotapi.NewInlineKeyboardButtonData("👎", format.ReactionCallbackData(models.ReactionDislike, quoteID)),
		),
	)
}

func (c *TelegramClient) SendMessage(ctx context.Context, chatID int64, text string) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(chatID, text)

	if _, err := c.bot.Send(msg); err != nil {
		return fmt.Errorf("ошибка при отправке сообщения: %w", err)
	}

	return nil
}

func (c *TelegramClient) SendQuoteMessage(ctx context.Context, chatID int64, text string, quoteID int) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = quoteKeyboard(quoteID)

	if _, err := c.bot.Send(msg); err != nil {
		return fmt.Errorf("ошибка при отправке цитаты: %w", err)
	}

	return nil
}

func (c *TelegramClient) EditQuoteMessage(ctx context.Context, chatID int64, messageID int, text string, quoteID int) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, quoteKeyboard(quoteID))

	if _, err := c.bot.Send(edit); err != nil {
		if strings.Contains(err.Error(), "message is not modified") {
			return &domainerrors.ErrMessageNotModified{}
		}

		return fmt.Errorf("ошибка при редактировании сообщения: %w", err)
	}

	return nil
}

func (c *TelegramClient) SendPhoto(ctx context.Context, chatID int64, photo []byte, caption string) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	msg := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{
		Name:  "quote.jpg",
		Bytes: photo,
	})
	msg.Caption = caption

	if _, err := c.bot.Send(msg); err != nil {
		return fmt.Errorf("ошибка при отправке фото: %w", err)
	}

	return nil
}

func (c *TelegramClient) AnswerCallback(_ context.Context, callbackID, text string) error {
	callback := tgbotapi.NewCallback(callbackID, text)

	if _, err := c.bot.Request(callback); err != nil {
		return fmt.Errorf("ошибка при ответе на callback: %w", err)
	}

	return nil
}

func (c *TelegramClient) SetMyCommands(_ context.Context, commands []domain.BotCommand) error {
	botAPICommands := make([]tgbotapi.BotCommand, 0, len(commands))
	for _, cmd := range commands {
		botAPICommands = append(botAPICommands, tgbotapi.BotCommand{
			Command:     cmd.Command,
			Description: cmd.Description,
		})
	}

	setCommandsConfig := tgbotapi.NewSetMyCommands(botAPICommands...)

	if _, err := c.bot.Request(setCommandsConfig); err != nil {
		return fmt.Errorf("ошибка при установке команд бота: %w", err)
	}

	return nil
}

func (c *TelegramClient) GetBot() *tgbotapi.BotAPI {
	return c.bot
}
