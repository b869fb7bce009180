package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/motivation-quotes/telegram-bot/internal/domain/models"
)

type SessionRepository struct {
	mock.Mock
}

func (m *SessionRepository) GetState(ctx context.Context, chatID int64) (models.SessionState, error) {
	args := m.Called(ctx, chatID)
	return args.Get(0).(models.SessionState), args.Error(1)
}

func (m *SessionRepository) SetState(ctx context.Context, chatID int64, state models.SessionState) error {
	args := m.Called(ctx, chatID, state)
	return args.Error(0)
}

func (m *SessionRepository) GetLastQuote(ctx context.Context, chatID int64) (*models.Quote, error) {
	args := m.Called(ctx, chatID)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Quote), args.Error(1)
}

func (m *SessionRepository) SetLastQuote(ctx context.Context, chatID int64, quote *models.Quote) error {
	args := m.Called(ctx, chatID, quote)
	return args.Error(0)
}

func (m *SessionRepository) IsSeen(ctx context.Context, chatID int64, quoteID int) (bool, error) {
	args := m.Called(ctx, chatID, quoteID)
	return args.Bool(0), args.Error(1)
}

func (m *SessionRepository) MarkSeen(ctx context.Context, chatID int64, quoteID int) error {
	args := m.Called(ctx, chatID, quoteID)
	return args.Error(0)
}

func (m *SessionRepository) SeenCount(ctx context.Context, chatID int64) (int, error) {
	args := m.Called(ctx, chatID)
	return args.Int(0), args.Error(1)
}

func (m *SessionRepository) ClearSeen(ctx context.Context, chatID int64) error {
	args := m.Called(ctx, chatID)
	return args.Error(0)
}
