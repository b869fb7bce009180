package clients_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motivation-quotes/telegram-bot/internal/bot/clients"
	"github.com/motivation-quotes/telegram-bot/internal/config"
	domainerrors "github.com/motivation-quotes/telegram-bot/internal/domain/errors"
	"github.com/motivation-quotes/telegram-bot/internal/domain/models"
)

func newTestClient(t *testing.T, handler http.Handler) *clients.QuotesClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		ExternalRequestTimeout:     5 * time.Second,
		CBSlidingWindowSize:        10,
		CBMinimumRequiredCalls:     100,
		CBFailureRateThreshold:     50,
		CBPermittedCallsInHalfOpen: 2,
		CBWaitDurationInOpenState:  10 * time.Second,
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return clients.NewQuotesClient(server.URL, cfg, logger)
}

func TestGetRandomQuote_DecodesResponse(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/quotes/random", r.URL.Path)
		assert.Equal(t, "123456", r.URL.Query().Get("userId"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"Id":       7,
			"Text":     "Keep going",
			"Author":   "Anon",
			"Likes":    3,
			"Dislikes": 1,
		})
	}))

	quote, err := client.GetRandomQuote(context.Background(), 123456)

	require.NoError(t, err)
	assert.Equal(t, 7, quote.ID)
	assert.Equal(t, "Keep going", quote.Text)
	assert.Equal(t, "Anon", quote.Author)
	assert.Equal(t, 3, quote.Likes)
	assert.Equal(t, 1, quote.Dislikes)
}

func TestGetRandomQuote_ServerError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	_, err := client.GetRandomQuote(context.Background(), 1)

	var upstreamErr *domainerrors.ErrUpstreamStatus
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, http.StatusBadGateway, upstreamErr.StatusCode)
	assert.Equal(t, "/quotes/random", upstreamErr.Endpoint)
}

func TestSubmitReaction_SendsPayload(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/quotes/react", r.URL.Path)

		var reaction models.Reaction
		require.NoError(t, json.NewDecoder(r.Body).Decode(&reaction))
		assert.Equal(t, 7, reaction.QuoteID)
		assert.Equal(t, models.ReactionLike, reaction.ReactionType)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.ReactionResult{Likes: 4, Dislikes: 1})
	}))

	result, err := client.SubmitReaction(context.Background(), &models.Reaction{
		QuoteID:      7,
		UserID:       123456,
		ReactionType: models.ReactionLike,
	})

	require.NoError(t, err)
	assert.Equal(t, 4, result.Likes)
	assert.Equal(t, 1, result.Dislikes)
}

func TestAddFavorite_ConflictMeansAlreadySaved(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))

	err := client.AddFavorite(context.Background(), &models.Quote{ID: 7, UserID: 123456})

	var alreadySaved *domainerrors.ErrQuoteAlreadySaved
	require.ErrorAs(t, err, &alreadySaved)
	assert.Equal(t, 7, alreadySaved.QuoteID)
}

func TestListFavorites_DecodesWrapper(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/quotes/favorites/list", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"Count": 2,
			"Quotes": []map[string]interface{}{
				{"Id": 1, "Text": "one", "Author": "A"},
				{"Id": 2, "Text": "two", "Author": "B"},
			},
		})
	}))

	favorites, err := client.ListFavorites(context.Background(), 123456)

	require.NoError(t, err)
	require.Len(t, favorites, 2)
	assert.Equal(t, "one", favorites[0].Text)
	assert.Equal(t, 2, favorites[1].ID)
}

func TestDeleteFavorite_BuildsPathWithID(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/quotes/favorites/delete/42", r.URL.Path)
		assert.Equal(t, "123456", r.URL.Query().Get("userId"))

		w.WriteHeader(http.StatusOK)
	}))

	err := client.DeleteFavorite(context.Background(), 42, 123456)

	require.NoError(t, err)
}

func TestGetHistory_NotFound(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := client.GetHistory(context.Background(), 123456)

	var notFound *domainerrors.ErrHistoryNotFound
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, int64(123456), notFound.ChatID)
}

func TestGetHistory_DecodesEntries(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]map[string]interface{}{
			{"Id": 1, "Query": "мотивація", "SearchDate": "2025-04-01T12:30:00Z"},
		})
	}))

	history, err := client.GetHistory(context.Background(), 123456)

	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "мотивація", history[0].Query)
}

func TestClearHistory_NotFound(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	err := client.ClearHistory(context.Background(), 123456)

	var notFound *domainerrors.ErrHistoryNotFound
	require.ErrorAs(t, err, &notFound)
}

func TestGetImage_ReturnsRawBytes(t *testing.T) {
	imageBytes := []byte{0xFF, 0xD8, 0xFF, 0xE0}

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/quotes/image", r.URL.Path)

		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write(imageBytes)
	}))

	body, err := client.GetImage(context.Background())

	require.NoError(t, err)
	assert.Equal(t, imageBytes, body)
}
