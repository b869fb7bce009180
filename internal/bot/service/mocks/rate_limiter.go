package mocks

import (
	"github.com/stretchr/testify/mock"
)

type RateLimiter struct {
	mock.Mock
}

func (m *RateLimiter) Allow(chatID int64) bool {
	args := m.Called(chatID)
	return args.Bool(0)
}
