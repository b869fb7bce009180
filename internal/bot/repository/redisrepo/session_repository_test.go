package redisrepo_test

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/redis"

	"github.com/motivation-quotes/telegram-bot/internal/bot/repository/redisrepo"
	"github.com/motivation-quotes/telegram-bot/internal/domain/models"
)

func TestSessionRepository_Redis(t *testing.T) {
	if testing.Short() {
		t.Skip("Пропускаем интеграционный тест в коротком режиме")
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	redisContainer, err := redis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err)

	defer func() {
		if err := redisContainer.Terminate(context.Background()); err != nil {
			t.Logf("Ошибка при остановке Redis контейнера: %v", err)
		}
	}()

	endpoint, err := redisContainer.Endpoint(ctx, "")
	require.NoError(t, err)

	repo, err := redisrepo.NewSessionRepository(endpoint, "", 0, time.Hour, logger)
	require.NoError(t, err)

	defer repo.Close()

	chatID := int64(123456789)

	state, err := repo.GetState(ctx, chatID)
	require.NoError(t, err)
	assert.Equal(t, models.StateIdle, state)

	require.NoError(t, repo.SetState(ctx, chatID, models.StateAwaitingDeleteID))

	state, err = repo.GetState(ctx, chatID)
	require.NoError(t, err)
	assert.Equal(t, models.StateAwaitingDeleteID, state)

	quote, err := repo.GetLastQuote(ctx, chatID)
	require.NoError(t, err)
	assert.Nil(t, quote)

	saved := &models.Quote{ID: 7, Text: "Keep going", Author: "Anon", UserID: chatID, Likes: 1}
	require.NoError(t, repo.SetLastQuote(ctx, chatID, saved))

	quote, err = repo.GetLastQuote(ctx, chatID)
	require.NoError(t, err)
	require.NotNil(t, quote)
	assert.Equal(t, saved, quote)

	seen, err := repo.IsSeen(ctx, chatID, 7)
	require.NoError(t, err)
	assert.False(t, seen)

	require.NoError(t, repo.MarkSeen(ctx, chatID, 7))
	require.NoError(t, repo.MarkSeen(ctx, chatID, 8))
	require.NoError(t, repo.MarkSeen(ctx, chatID, 7))

	seen, err = repo.IsSeen(ctx, chatID, 7)
	require.NoError(t, err)
	assert.True(t, seen)

	count, err := repo.SeenCount(ctx, chatID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.NoError(t, repo.ClearSeen(ctx, chatID))

	count, err = repo.SeenCount(ctx, chatID)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
