package service

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/motivation-quotes/telegram-bot/internal/bot/domain"
	"github.com/motivation-quotes/telegram-bot/internal/bot/format"
	"github.com/motivation-quotes/telegram-bot/internal/common/metrics"
	domainerrors "github.com/motivation-quotes/telegram-bot/internal/domain/errors"
	"github.com/motivation-quotes/telegram-bot/internal/domain/models"
)

const welcomeMessage = `Привіт! Я — твій особистий мотиватор у важкі моменти життя 💪✨
Я тут, щоб надихати тебе щодня, підтримувати, коли не вистачає сил, і дарувати слова, які змусять повірити в себе.

Ось що я вмію:
🔹 /random — надішлю тобі випадкову цитату.
🔹 /favorites — покажу всі твої збережені улюблені цитати.
🔹 /save — збережу останню надіслану цитату в улюблені.
🔹 /delete — видалю цитату з улюблених за її ID.
🔹 /history — покажу 5 останніх отриманих цитат.
🔹 /clear_history — повністю очищу історію переглядів.
🔹 /image — покажу картинку з цитатою.

🧠 Усе, що ти зберігаєш, не зникає — я пам'ятаю твої улюблені думки й навіть історію запитів.
Пиши мені, коли сумно, коли радісно або просто хочеш мудре слово 🌟`

type SessionRepository interface {
	GetState(ctx context.Context, chatID int64) (models.SessionState, error)

	SetState(ctx context.Context, chatID int64, state models.SessionState) error

	GetLastQuote(ctx context.Context, chatID int64) (*models.Quote, error)

	SetLastQuote(ctx context.Context, chatID int64, quote *models.Quote) error

	IsSeen(ctx context.Context, chatID int64, quoteID int) (bool, error)

	MarkSeen(ctx context.Context, chatID int64, quoteID int) error

	SeenCount(ctx context.Context, chatID int64) (int, error)

	ClearSeen(ctx context.Context, chatID int64) error
}

type QuotesClient interface {
	GetRandomQuote(ctx context.Context, chatID int64) (*models.Quote, error)

	SubmitReaction(ctx context.Context, reaction *models.Reaction) (*models.ReactionResult, error)

	AddFavorite(ctx context.Context, quote *models.Quote) error

	ListFavorites(ctx context.Context, chatID int64) ([]models.Quote, error)

	DeleteFavorite(ctx context.Context, quoteID int, chatID int64) error

	GetHistory(ctx context.Context, chatID int64) ([]models.SearchHistoryEntry, error)

	ClearHistory(ctx context.Context, chatID int64) error

	GetImage(ctx context.Context) ([]byte, error)
}

type RateLimiter interface {
	Allow(chatID int64) bool
}

type BotService struct {
	sessionRepo      SessionRepository
	quotesClient     QuotesClient
	telegramClient   domain.TelegramClientAPI
	quoteLimiter     RateLimiter
	imageLimiter     RateLimiter
	seenQuotesMax    int
	randomRetryLimit int
	logger           *slog.Logger
}

func NewBotService(
	sessionRepo SessionRepository,
	quotesClient QuotesClient,
	telegramClient domain.TelegramClientAPI,
	quoteLimiter RateLimiter,
	imageLimiter RateLimiter,
	seenQuotesMax int,
	randomRetryLimit int,
	logger *slog.Logger,
) *BotService {
	return &BotService{
		sessionRepo:      sessionRepo,
		quotesClient:     quotesClient,
		telegramClient:   telegramClient,
		quoteLimiter:     quoteLimiter,
		imageLimiter:     imageLimiter,
		seenQuotesMax:    seenQuotesMax,
		randomRetryLimit: randomRetryLimit,
		logger:           logger,
	}
}

// ProcessText — точка входа для текстовых сообщений. Сессия в состоянии
// ожидания ID перехватывает следующее сообщение до сопоставления команд.
func (s *BotService) ProcessText(ctx context.Context, chatID, userID int64, text, username string) (string, error) {
	text = strings.TrimSpace(text)

	state, err := s.sessionRepo.GetState(ctx, chatID)
	if err != nil {
		return "", err
	}

	if state == models.StateAwaitingDeleteID {
		return s.handleDeleteIDInput(ctx, chatID, text)
	}

	commandType := getCommandType(text)
	if commandType == models.CommandUnknown {
		// Произвольный текст вне диалога удаления игнорируется.
		return "", nil
	}

	return s.ProcessCommand(ctx, &models.Command{
		Type:     commandType,
		ChatID:   chatID,
		UserID:   userID,
		Text:     text,
		Username: username,
	})
}

func (s *BotService) ProcessCommand(ctx context.Context, command *models.Command) (string, error) {
	response, err := s.dispatchCommand(ctx, command)

	status := "ok"
	if err != nil {
		status = "error"
	}

	metrics.RecordCommand(string(command.Type), status)

	return response, err
}

//nolint:exhaustive // CommandUnknown обрабатывается в блоке default
func (s *BotService) dispatchCommand(ctx context.Context, command *models.Command) (string, error) {
	switch command.Type {
	case models.CommandStart:
		return welcomeMessage, nil
	case models.CommandRandom:
		return s.handleRandomCommand(ctx, command.ChatID)
	case models.CommandSave:
		return s.handleSaveCommand(ctx, command.ChatID)
	case models.CommandFavorites:
		return s.handleFavoritesCommand(ctx, command.ChatID)
	case models.CommandDelete:
		return s.handleDeleteCommand(ctx, command.ChatID)
	case models.CommandHistory:
		return s.handleHistoryCommand(ctx, command.ChatID)
	case models.CommandClearHistory:
		return s.handleClearHistoryCommand(ctx, command.ChatID)
	case models.CommandImage:
		return s.handleImageCommand(ctx, command.ChatID)
	default:
		return "", &domainerrors.ErrUnknownCommand{Command: string(command.Type)}
	}
}

func (s *BotService) handleRandomCommand(ctx context.Context, chatID int64) (string, error) {
	if !s.quoteLimiter.Allow(chatID) {
		metrics.RecordRateLimited("quote")
		return "⏳ Зачекай трохи перед наступною цитатою (макс 5 кожні 40 сек).", nil
	}

	seenCount, err := s.sessionRepo.SeenCount(ctx, chatID)
	if err != nil {
		return "", err
	}

	if seenCount >= s.seenQuotesMax {
		if err := s.sessionRepo.ClearSeen(ctx, chatID); err != nil {
			return "", err
		}

		if err := s.telegramClient.SendMessage(ctx, chatID, "✅ Ви переглянули всі 50 цитат. Починаємо знову!"); err != nil {
			return "", err
		}
	}

	quote, err := s.findFreshQuote(ctx, chatID)
	if err != nil {
		var noFresh *domainerrors.ErrNoFreshQuote
		if errors.As(err, &noFresh) {
			return "⚠️ Не вдалося знайти нову цитату.", nil
		}

		s.logger.Error("Ошибка при получении цитаты",
			"error", err,
			"chat_id", chatID,
		)

		return "❌ Не вдалося отримати цитату.", nil
	}

	if err := s.sessionRepo.MarkSeen(ctx, chatID, quote.ID); err != nil {
		return "", err
	}

	if err := s.sessionRepo.SetLastQuote(ctx, chatID, quote); err != nil {
		return "", err
	}

	if err := s.telegramClient.SendQuoteMessage(ctx, chatID, format.Quote(quote), quote.ID); err != nil {
		return "", err
	}

	return "", nil
}

// findFreshQuote перебирает случайные цитаты, пока не попадётся ещё не
// показанная этому чату. Цикл ограничен randomRetryLimit попытками.
func (s *BotService) findFreshQuote(ctx context.Context, chatID int64) (*models.Quote, error) {
	for attempt := 0; attempt < s.randomRetryLimit; attempt++ {
		quote, err := s.quotesClient.GetRandomQuote(ctx, chatID)
		if err != nil {
			return nil, err
		}

		seen, err := s.sessionRepo.IsSeen(ctx, chatID, quote.ID)
		if err != nil {
			return nil, err
		}

		if !seen {
			return quote, nil
		}
	}

	return nil, &domainerrors.ErrNoFreshQuote{Attempts: s.randomRetryLimit}
}

func (s *BotService) handleSaveCommand(ctx context.Context, chatID int64) (string, error) {
	lastQuote, err := s.sessionRepo.GetLastQuote(ctx, chatID)
	if err != nil {
		return "", err
	}

	if lastQuote == nil {
		return "❗ Спочатку отримай цитату через /random.", nil
	}

	quote := *lastQuote
	quote.UserID = chatID

	err = s.quotesClient.AddFavorite(ctx, &quote)

	switch {
	case err == nil:
		return "✅ Цитату збережено в улюблені.", nil
	case errors.Is(err, &domainerrors.ErrQuoteAlreadySaved{}):
		return "⚠️ Цитата вже є в улюблених.", nil
	case errors.Is(err, &domainerrors.ErrUpstreamStatus{}):
		return "❌ Не вдалося зберегти цитату.", nil
	default:
		return "⚠️ Помилка: " + err.Error(), nil
	}
}

func (s *BotService) handleFavoritesCommand(ctx context.Context, chatID int64) (string, error) {
	favorites, err := s.quotesClient.ListFavorites(ctx, chatID)
	if err != nil {
		if errors.Is(err, &domainerrors.ErrUpstreamStatus{}) {
			return "🤷 У тебе ще немає улюблених цитат.", nil
		}

		return "⚠️ Помилка: " + err.Error(), nil
	}

	if len(favorites) == 0 {
		return "🤷 У тебе ще немає улюблених цитат.", nil
	}

	for i := range favorites {
		if err := s.telegramClient.SendMessage(ctx, chatID, format.FavoriteLine(&favorites[i])); err != nil {
			return "", err
		}
	}

	return "", nil
}

func (s *BotService) handleDeleteCommand(ctx context.Context, chatID int64) (string, error) {
	if err := s.sessionRepo.SetState(ctx, chatID, models.StateAwaitingDeleteID); err != nil {
		return "", err
	}

	return "✏️ Введи ID цитати, яку хочеш видалити:", nil
}

// handleDeleteIDInput обрабатывает сообщение, пришедшее в состоянии ожидания
// ID. Нечисловой ввод молча игнорируется, состояние не сбрасывается.
func (s *BotService) handleDeleteIDInput(ctx context.Context, chatID int64, text string) (string, error) {
	quoteID, err := strconv.Atoi(text)
	if err != nil {
		return "", nil
	}

	if err := s.sessionRepo.SetState(ctx, chatID, models.StateIdle); err != nil {
		return "", err
	}

	err = s.quotesClient.DeleteFavorite(ctx, quoteID, chatID)

	switch {
	case err == nil:
		return "🗑️ Цитату видалено.", nil
	case errors.Is(err, &domainerrors.ErrUpstreamStatus{}):
		return "❌ Не вдалося видалити цитату.", nil
	default:
		return "⚠️ Помилка: " + err.Error(), nil
	}
}

func (s *BotService) handleHistoryCommand(ctx context.Context, chatID int64) (string, error) {
	history, err := s.quotesClient.GetHistory(ctx, chatID)

	switch {
	case err == nil:
	case errors.Is(err, &domainerrors.ErrHistoryNotFound{}):
		return "ℹ️ У вас поки немає збережених цитат в історії.", nil
	case errors.Is(err, &domainerrors.ErrUpstreamStatus{}):
		return "❌ Не вдалося отримати історію цитат.", nil
	default:
		return "⚠️ Помилка: " + err.Error(), nil
	}

	if len(history) == 0 {
		return "ℹ️ У вас поки немає збережених цитат в історії.", nil
	}

	return format.History(history), nil
}

func (s *BotService) handleClearHistoryCommand(ctx context.Context, chatID int64) (string, error) {
	err := s.quotesClient.ClearHistory(ctx, chatID)

	switch {
	case err == nil:
		return "🧹 Історію пошуку успішно очищено.", nil
	case errors.Is(err, &domainerrors.ErrHistoryNotFound{}):
		return "ℹ️ Історії пошуку цитат ще немає.", nil
	case errors.Is(err, &domainerrors.ErrUpstreamStatus{}):
		return "❌ Не вдалося очистити історію.", nil
	default:
		return "⚠️ Помилка: " + err.Error(), nil
	}
}

func (s *BotService) handleImageCommand(ctx context.Context, chatID int64) (string, error) {
	if !s.imageLimiter.Allow(chatID) {
		metrics.RecordRateLimited("image")
		return "📷 Зачекай трохи перед наступною картинкою (макс 5 кожні 40 сек).", nil
	}

	image, err := s.quotesClient.GetImage(ctx)
	if err != nil {
		return "", err
	}

	if err := s.telegramClient.SendPhoto(ctx, chatID, image, "🖼️ Ось надихаюча цитата у вигляді зображення:"); err != nil {
		return "", err
	}

	return "", nil
}

// ProcessCallback обрабатывает нажатие inline-кнопки 👍/👎 под цитатой.
func (s *BotService) ProcessCallback(ctx context.Context, callback *models.Callback) error {
	if !format.IsReactionCallback(callback.Data) {
		return nil
	}

	reactionType, quoteID, err := format.ParseReactionCallback(callback.Data)
	if err != nil {
		return s.telegramClient.AnswerCallback(ctx, callback.ID, "❌ Невірний формат даних.")
	}

	result, err := s.quotesClient.SubmitReaction(ctx, &models.Reaction{
		QuoteID:      quoteID,
		UserID:       callback.UserID,
		ReactionType: reactionType,
	})
	if err != nil {
		if errors.Is(err, &domainerrors.ErrUpstreamStatus{}) {
			return s.telegramClient.AnswerCallback(ctx, callback.ID, "⚠️ Помилка під час обробки реакції.")
		}

		s.logger.Error("Ошибка при отправке реакции",
			"error", err,
			"quote_id", quoteID,
		)

		return s.telegramClient.AnswerCallback(ctx, callback.ID, "❌ Сталася помилка.")
	}

	metrics.RecordReaction(string(reactionType))

	updatedText, ok := format.RewriteReactionCounts(callback.MessageText, result)
	if !ok {
		return s.telegramClient.AnswerCallback(ctx, callback.ID, "")
	}

	err = s.telegramClient.EditQuoteMessage(ctx, callback.ChatID, callback.MessageID, updatedText, quoteID)

	switch {
	case err == nil:
	case errors.Is(err, &domainerrors.ErrMessageNotModified{}):
		s.logger.Debug("Сообщение уже актуально, редактирование не требуется",
			"chat_id", callback.ChatID,
			"message_id", callback.MessageID,
		)
	default:
		if answerErr := s.telegramClient.AnswerCallback(ctx, callback.ID, "❌ Сталася помилка."); answerErr != nil {
			s.logger.Error("Ошибка при ответе на callback", "error", answerErr)
		}

		return err
	}

	return s.telegramClient.AnswerCallback(ctx, callback.ID, "")
}

func getCommandType(text string) models.CommandType {
	switch text {
	case "/start":
		return models.CommandStart
	case "/random":
		return models.CommandRandom
	case "/save":
		return models.CommandSave
	case "/favorites":
		return models.CommandFavorites
	case "/delete":
		return models.CommandDelete
	case "/history":
		return models.CommandHistory
	case "/clear_history":
		return models.CommandClearHistory
	case "/image":
		return models.CommandImage
	default:
		return models.CommandUnknown
	}
}
