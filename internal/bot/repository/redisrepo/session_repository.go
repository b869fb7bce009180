package redisrepo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/motivation-quotes/telegram-bot/internal/domain/models"
)

// SessionRepository хранит состояние диалогов в Redis. Используется, когда
// состояние должно переживать перезапуск процесса (SESSION_STORE=REDIS).
type SessionRepository struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewSessionRepository(redisURL, password string, db int, ttl time.Duration, logger *slog.Logger) (*SessionRepository, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     redisURL,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ошибка при подключении к Redis: %w", err)
	}

	logger.Info("Соединение с Redis успешно установлено")

	return &SessionRepository{
		client: client,
		ttl:    ttl,
		logger: logger,
	}, nil
}

func stateKey(chatID int64) string {
	return fmt.Sprintf("session:state:%d", chatID)
}

func lastQuoteKey(chatID int64) string {
	return fmt.Sprintf("session:last:%d", chatID)
}

func seenKey(chatID int64) string {
	return fmt.Sprintf("session:seen:%d", chatID)
}

func (r *SessionRepository) GetState(ctx context.Context, chatID int64) (models.SessionState, error) {
	value, err := r.client.Get(ctx, stateKey(chatID)).Result()
	if err != nil {
		if err == redis.Nil {
			return models.StateIdle, nil
		}

		return models.StateIdle, fmt.Errorf("ошибка при получении состояния из Redis: %w", err)
	}

	state, err := strconv.Atoi(value)
	if err != nil {
		return models.StateIdle, fmt.Errorf("некорректное значение состояния в Redis: %w", err)
	}

	return models.SessionState(state), nil
}

func (r *SessionRepository) SetState(ctx context.Context, chatID int64, state models.SessionState) error {
	if err := r.client.Set(ctx, stateKey(chatID), strconv.Itoa(int(state)), r.ttl).Err(); err != nil {
		return fmt.Errorf("ошибка при сохранении состояния в Redis: %w", err)
	}

	return nil
}

func (r *SessionRepository) GetLastQuote(ctx context.Context, chatID int64) (*models.Quote, error) {
	data, err := r.client.Get(ctx, lastQuoteKey(chatID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}

		return nil, fmt.Errorf("ошибка при получении цитаты из Redis: %w", err)
	}

	var quote models.Quote
	if err := json.Unmarshal(data, &quote); err != nil {
		return nil, fmt.Errorf("ошибка при десериализации цитаты из Redis: %w", err)
	}

	return &quote, nil
}

func (r *SessionRepository) SetLastQuote(ctx context.Context, chatID int64, quote *models.Quote) error {
	data, err := json.Marshal(quote)
	if err != nil {
		return fmt.Errorf("ошибка при сериализации цитаты для Redis: %w", err)
	}

	if err := r.client.Set(ctx, lastQuoteKey(chatID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("ошибка при сохранении цитаты в Redis: %w", err)
	}

	return nil
}

func (r *SessionRepository) IsSeen(ctx context.Context, chatID int64, quoteID int) (bool, error) {
	seen, err := r.client.SIsMember(ctx, seenKey(chatID), quoteID).Result()
	if err != nil {
		return false, fmt.Errorf("ошибка при проверке просмотренных цитат в Redis: %w", err)
	}

	return seen, nil
}

func (r *SessionRepository) MarkSeen(ctx context.Context, chatID int64, quoteID int) error {
	key := seenKey(chatID)

	if err := r.client.SAdd(ctx, key, quoteID).Err(); err != nil {
		return fmt.Errorf("ошибка при добавлении цитаты в просмотренные: %w", err)
	}

	if err := r.client.Expire(ctx, key, r.ttl).Err(); err != nil {
		return fmt.Errorf("ошибка при установке TTL для просмотренных цитат: %w", err)
	}

	return nil
}

func (r *SessionRepository) SeenCount(ctx context.Context, chatID int64) (int, error) {
	count, err := r.client.SCard(ctx, seenKey(chatID)).Result()
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчёте просмотренных цитат: %w", err)
	}

	return int(count), nil
}

func (r *SessionRepository) ClearSeen(ctx context.Context, chatID int64) error {
	if err := r.client.Del(ctx, seenKey(chatID)).Err(); err != nil {
		return fmt.Errorf("ошибка при очистке просмотренных цитат: %w", err)
	}

	return nil
}

// PruneIdle ничего не делает: простаивающие сессии в Redis истекают по TTL.
func (r *SessionRepository) PruneIdle(_ context.Context, _ time.Time) (int, error) {
	return 0, nil
}

func (r *SessionRepository) Close() error {
	return r.client.Close()
}
