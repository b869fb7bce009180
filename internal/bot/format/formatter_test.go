package format_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motivation-quotes/telegram-bot/internal/bot/format"
	"github.com/motivation-quotes/telegram-bot/internal/domain/models"
)

func TestQuote(t *testing.T) {
	quote := &models.Quote{
		ID:       7,
		Text:     "Keep going",
		Author:   "Anon",
		Likes:    0,
		Dislikes: 0,
	}

	assert.Equal(t, "💬 \"Keep going\"\n— Anon\n\n👍 0   👎 0", format.Quote(quote))
}

func TestFavoriteLine(t *testing.T) {
	quote := &models.Quote{
		ID:     12,
		Text:   "Carpe diem",
		Author: "Horace",
	}

	assert.Equal(t, "💬 \"Carpe diem\"\n— Horace (ID: 12)", format.FavoriteLine(quote))
}

func TestHistory(t *testing.T) {
	date := time.Date(2024, 3, 7, 9, 5, 0, 0, time.UTC)

	entries := []models.SearchHistoryEntry{
		{ID: 1, Query: "успіх", SearchDate: date},
		{ID: 2, Query: "", SearchDate: date},
		{ID: 3, Query: "   ", SearchDate: date},
		{ID: 4, Query: "мотивація", SearchDate: date.Add(26 * time.Hour)},
	}

	rendered := format.History(entries)

	assert.Contains(t, rendered, "🕓 Останні отримані цитати:")
	assert.Contains(t, rendered, "• успіх (07.03.2024 09:05)")
	assert.Contains(t, rendered, "• мотивація (08.03.2024 11:05)")

	// Записи с пустым запросом пропускаются.
	assert.NotContains(t, rendered, "•  ")
	assert.NotContains(t, rendered, "• (")
}

func TestRewriteReactionCounts(t *testing.T) {
	original := "💬 \"Keep going\"\n— Anon\n\n👍 0   👎 0"

	updated, ok := format.RewriteReactionCounts(original, &models.ReactionResult{Likes: 1, Dislikes: 0})

	require.True(t, ok)
	assert.Equal(t, "💬 \"Keep going\"\n— Anon\n\n👍 1   👎 0", updated)
}

func TestRewriteReactionCounts_TooShortMessage(t *testing.T) {
	_, ok := format.RewriteReactionCounts("одна строка", &models.ReactionResult{Likes: 1})

	assert.False(t, ok)
}

func TestReactionCallbackData(t *testing.T) {
	assert.Equal(t, "like:7", format.ReactionCallbackData(models.ReactionLike, 7))
	assert.Equal(t, "dislike:7", format.ReactionCallbackData(models.ReactionDislike, 7))
}

func TestIsReactionCallback(t *testing.T) {
	assert.True(t, format.IsReactionCallback("like:7"))
	assert.True(t, format.IsReactionCallback("dislike:42"))
	assert.False(t, format.IsReactionCallback("settings:1"))
	assert.False(t, format.IsReactionCallback(""))
}

func TestParseReactionCallback(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		reaction models.ReactionType
		quoteID  int
		wantErr  bool
	}{
		{name: "лайк", data: "like:7", reaction: models.ReactionLike, quoteID: 7},
		{name: "дизлайк", data: "dislike:42", reaction: models.ReactionDislike, quoteID: 42},
		{name: "нечисловой id", data: "like:abc", wantErr: true},
		{name: "лишние сегменты", data: "like:7:8", wantErr: true},
		{name: "без id", data: "like", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reaction, quoteID, err := format.ParseReactionCallback(tt.data)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.reaction, reaction)
			assert.Equal(t, tt.quoteID, quoteID)
		})
	}
}
