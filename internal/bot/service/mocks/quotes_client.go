package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/motivation-quotes/telegram-bot/internal/domain/models"
)

type QuotesClient struct {
	mock.Mock
}

func (m *QuotesClient) GetRandomQuote(ctx context.Context, chatID int64) (*models.Quote, error) {
	args := m.Called(ctx, chatID)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Quote), args.Error(1)
}

func (m *QuotesClient) SubmitReaction(ctx context.Context, reaction *models.Reaction) (*models.ReactionResult, error) {
	args := m.Called(ctx, reaction)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.ReactionResult), args.Error(1)
}

func (m *QuotesClient) AddFavorite(ctx context.Context, quote *models.Quote) error {
	args := m.Called(ctx, quote)
	return args.Error(0)
}

func (m *QuotesClient) ListFavorites(ctx context.Context, chatID int64) ([]models.Quote, error) {
	args := m.Called(ctx, chatID)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]models.Quote), args.Error(1)
}

func (m *QuotesClient) DeleteFavorite(ctx context.Context, quoteID int, chatID int64) error {
	args := m.Called(ctx, quoteID, chatID)
	return args.Error(0)
}

func (m *QuotesClient) GetHistory(ctx context.Context, chatID int64) ([]models.SearchHistoryEntry, error) {
	args := m.Called(ctx, chatID)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]models.SearchHistoryEntry), args.Error(1)
}

func (m *QuotesClient) ClearHistory(ctx context.Context, chatID int64) error {
	args := m.Called(ctx, chatID)
	return args.Error(0)
}

func (m *QuotesClient) GetImage(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]byte), args.Error(1)
}
