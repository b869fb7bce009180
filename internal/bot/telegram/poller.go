package telegram

import (
	"context"
	"log/slog"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/motivation-quotes/telegram-bot/internal/bot/domain"
	"github.com/motivation-quotes/telegram-bot/internal/common/metrics"
	"github.com/motivation-quotes/telegram-bot/internal/domain/models"
)

type BotService interface {
	ProcessText(ctx context.Context, chatID, userID int64, text, username string) (string, error)

	ProcessCallback(ctx context.Context, callback *models.Callback) error
}

type Poller struct {
	telegramClient domain.TelegramClientAPI
	botService     BotService
	logger         *slog.Logger
	handleTimeout  time.Duration
	updatesChan    tgbotapi.UpdatesChannel
	stopChan       chan struct{}
}

func NewPoller(telegramClient domain.TelegramClientAPI, botService BotService, handleTimeout time.Duration, logger *slog.Logger) *Poller {
	return &Poller{
		telegramClient: telegramClient,
		botService:     botService,
		logger:         logger,
		handleTimeout:  handleTimeout,
		stopChan:       make(chan struct{}),
	}
}

func (p *Poller) Start() {
	p.logger.Info("Запуск Telegram поллера")

	bot := p.telegramClient.GetBot()
	if bot == nil {
		p.logger.Error("Не удалось получить доступ к API бота")
		return
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	u.AllowedUpdates = []string{"message", "callback_query"}

	p.updatesChan = bot.GetUpdatesChan(u)

	go func() {
		for {
			select {
			case <-p.stopChan:
				p.logger.Info("Получен сигнал остановки поллера")
				return
			case update := <-p.updatesChan:
				p.processUpdate(&update)
			}
		}
	}()
}

func (p *Poller) Stop() {
	p.logger.Info("Остановка Telegram поллера")
	close(p.stopChan)
}

func (p *Poller) processUpdate(update *tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("Паника при обработке обновления",
				"panic", r,
				"update_id", update.UpdateID,
			)
		}
	}()

	switch {
	case update.CallbackQuery != nil:
		p.processCallback(update.CallbackQuery)
	case update.Message != nil:
		p.processMessage(update.Message)
	}
}

func (p *Poller) processMessage(message *tgbotapi.Message) {
	if message.From == nil {
		return
	}

	chatID := message.Chat.ID
	userID := message.From.ID
	text := message.Text
	username := message.From.UserName

	p.logger.Info("Получено сообщение",
		"chat_id", chatID,
		"user_id", userID,
		"text", text,
		"username", username,
	)

	updateType := "message"
	if message.IsCommand() {
		updateType = "command"
	}

	metrics.RecordUserMessage(updateType)

	ctx, cancel := context.WithTimeout(context.Background(), p.handleTimeout)
	defer cancel()

	response, err := p.botService.ProcessText(ctx, chatID, userID, text, username)
	if err != nil {
		p.logger.Error("Ошибка при обработке сообщения",
			"error", err,
			"chat_id", chatID,
			"text", text,
		)

		response = "⚠️ Сталася помилка. Спробуй пізніше."
	}

	if response != "" {
		if err := p.telegramClient.SendMessage(ctx, chatID, response); err != nil {
			p.logger.Error("Ошибка при отправке ответа",
				"error", err,
				"chat_id", chatID,
				"text", response,
			)
		}
	}
}

func (p *Poller) processCallback(query *tgbotapi.CallbackQuery) {
	if query.From == nil || query.Message == nil {
		return
	}

	metrics.RecordUserMessage("callback")

	callback := &models.Callback{
		ID:          query.ID,
		ChatID:      query.Message.Chat.ID,
		UserID:      query.From.ID,
		MessageID:   query.Message.MessageID,
		MessageText: query.Message.Text,
		Data:        query.Data,
	}

	p.logger.Info("Получен callback",
		"chat_id", callback.ChatID,
		"user_id", callback.UserID,
		"data", callback.Data,
	)

	ctx, cancel := context.WithTimeout(context.Background(), p.handleTimeout)
	defer cancel()

	if err := p.botService.ProcessCallback(ctx, callback); err != nil {
		p.logger.Error("Ошибка при обработке callback",
			"error", err,
			"chat_id", callback.ChatID,
			"data", callback.Data,
		)
	}
}
