package clients

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/motivation-quotes/telegram-bot/internal/common/httputil"
	"github.com/motivation-quotes/telegram-bot/internal/config"
	domainerrors "github.com/motivation-quotes/telegram-bot/internal/domain/errors"
	"github.com/motivation-quotes/telegram-bot/internal/domain/models"
)

// QuotesClient — типизированный клиент удалённого сервиса цитат. Каждый
// метод — один HTTP запрос без повторов; единственный ретрай-цикл живёт в
// диспетчере и служит дедупликации цитат, а не надёжности сети.
type QuotesClient struct {
	client  *resty.Client
	baseURL string
	logger  *slog.Logger
}

func NewQuotesClient(baseURL string, cfg *config.Config, logger *slog.Logger) *QuotesClient {
	if baseURL == "" {
		baseURL = cfg.QuotesAPIBaseURL
	}

	return &QuotesClient{
		client:  httputil.NewClient(cfg, logger, "quotes"),
		baseURL: baseURL,
		logger:  logger,
	}
}

// normalizeError переводит 5xx, перехваченные транспортом, в статусную ошибку.
func normalizeError(err error, endpoint string) error {
	var httpErr *domainerrors.HTTPError
	if errors.As(err, &httpErr) {
		return &domainerrors.ErrUpstreamStatus{Endpoint: endpoint, StatusCode: httpErr.StatusCode}
	}

	return err
}

func (c *QuotesClient) GetRandomQuote(ctx context.Context, chatID int64) (*models.Quote, error) {
	url := c.baseURL + "/quotes/random"

	var quote models.Quote

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("userId", fmt.Sprintf("%d", chatID)).
		SetResult(&quote).
		Get(url)
	if err != nil {
		return nil, normalizeError(err, "/quotes/random")
	}

	if !resp.IsSuccess() {
		return nil, &domainerrors.ErrUpstreamStatus{Endpoint: "/quotes/random", StatusCode: resp.StatusCode()}
	}

	return &quote, nil
}

func (c *QuotesClient) SubmitReaction(ctx context.Context, reaction *models.Reaction) (*models.ReactionResult, error) {
	url := c.baseURL + "/quotes/react"

	var result models.ReactionResult

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(reaction).
		SetResult(&result).
		Post(url)
	if err != nil {
		return nil, normalizeError(err, "/quotes/react")
	}

	if !resp.IsSuccess() {
		return nil, &domainerrors.ErrUpstreamStatus{Endpoint: "/quotes/react", StatusCode: resp.StatusCode()}
	}

	return &result, nil
}

func (c *QuotesClient) AddFavorite(ctx context.Context, quote *models.Quote) error {
	url := c.baseURL + "/quotes/favorites/add"

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(quote).
		Post(url)
	if err != nil {
		return normalizeError(err, "/quotes/favorites/add")
	}

	if resp.StatusCode() == http.StatusConflict {
		return &domainerrors.ErrQuoteAlreadySaved{QuoteID: quote.ID}
	}

	if !resp.IsSuccess() {
		return &domainerrors.ErrUpstreamStatus{Endpoint: "/quotes/favorites/add", StatusCode: resp.StatusCode()}
	}

	return nil
}

func (c *QuotesClient) ListFavorites(ctx context.Context, chatID int64) ([]models.Quote, error) {
	url := c.baseURL + "/quotes/favorites/list"

	var favorites models.FavoritesList

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("userId", fmt.Sprintf("%d", chatID)).
		SetResult(&favorites).
		Get(url)
	if err != nil {
		return nil, normalizeError(err, "/quotes/favorites/list")
	}

	if !resp.IsSuccess() {
		return nil, &domainerrors.ErrUpstreamStatus{Endpoint: "/quotes/favorites/list", StatusCode: resp.StatusCode()}
	}

	return favorites.Quotes, nil
}

func (c *QuotesClient) DeleteFavorite(ctx context.Context, quoteID int, chatID int64) error {
	url := fmt.Sprintf("%s/quotes/favorites/delete/%d", c.baseURL, quoteID)

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("userId", fmt.Sprintf("%d", chatID)).
		Delete(url)
	if err != nil {
		return normalizeError(err, "/quotes/favorites/delete")
	}

	if !resp.IsSuccess() {
		return &domainerrors.ErrUpstreamStatus{Endpoint: "/quotes/favorites/delete", StatusCode: resp.StatusCode()}
	}

	return nil
}

func (c *QuotesClient) GetHistory(ctx context.Context, chatID int64) ([]models.SearchHistoryEntry, error) {
	url := c.baseURL + "/quotes/history"

	var history []models.SearchHistoryEntry

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("userId", fmt.Sprintf("%d", chatID)).
		SetResult(&history).
		Get(url)
	if err != nil {
		return nil, normalizeError(err, "/quotes/history")
	}

	if resp.StatusCode() == http.StatusNotFound {
		return nil, &domainerrors.ErrHistoryNotFound{ChatID: chatID}
	}

	if !resp.IsSuccess() {
		return nil, &domainerrors.ErrUpstreamStatus{Endpoint: "/quotes/history", StatusCode: resp.StatusCode()}
	}

	return history, nil
}

func (c *QuotesClient) ClearHistory(ctx context.Context, chatID int64) error {
	url := c.baseURL + "/quotes/history/clear"

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("userId", fmt.Sprintf("%d", chatID)).
		Delete(url)
	if err != nil {
		return normalizeError(err, "/quotes/history/clear")
	}

	if resp.StatusCode() == http.StatusNotFound {
		return &domainerrors.ErrHistoryNotFound{ChatID: chatID}
	}

	if !resp.IsSuccess() {
		return &domainerrors.ErrUpstreamStatus{Endpoint: "/quotes/history/clear", StatusCode: resp.StatusCode()}
	}

	return nil
}

func (c *QuotesClient) GetImage(ctx context.Context) ([]byte, error) {
	url := c.baseURL + "/quotes/image"

	resp, err := c.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, normalizeError(err, "/quotes/image")
	}

	if !resp.IsSuccess() {
		return nil, &domainerrors.ErrUpstreamStatus{Endpoint: "/quotes/image", StatusCode: resp.StatusCode()}
	}

	return resp.Body(), nil
}
