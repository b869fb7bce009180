package ratelimit_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/motivation-quotes/telegram-bot/internal/bot/ratelimit"
)

func TestSlidingWindowLimiter_AllowsUpToLimit(t *testing.T) {
	limiter := ratelimit.NewSlidingWindowLimiter(5, 40*time.Second)

	now := time.Now()
	chatID := int64(123456)

	for i := 0; i < 5; i++ {
		assert.True(t, limiter.AllowAt(chatID, now.Add(time.Duration(i)*time.Second)), "запрос %d должен быть разрешён", i+1)
	}

	assert.False(t, limiter.AllowAt(chatID, now.Add(6*time.Second)), "шестой запрос в окне должен быть отклонён")
}

func TestSlidingWindowLimiter_RejectionDoesNotRecord(t *testing.T) {
	limiter := ratelimit.NewSlidingWindowLimiter(2, 40*time.Second)

	now := time.Now()
	chatID := int64(1)

	assert.True(t, limiter.AllowAt(chatID, now))
	assert.True(t, limiter.AllowAt(chatID, now.Add(time.Second)))
	assert.False(t, limiter.AllowAt(chatID, now.Add(2*time.Second)))
	assert.False(t, limiter.AllowAt(chatID, now.Add(3*time.Second)))

	// Отклонённые запросы не записываются: после истечения первых двух
	// отметок окно снова свободно.
	assert.True(t, limiter.AllowAt(chatID, now.Add(42*time.Second)))
}

func TestSlidingWindowLimiter_AllowsAgainAfterWindow(t *testing.T) {
	limiter := ratelimit.NewSlidingWindowLimiter(5, 40*time.Second)

	now := time.Now()
	chatID := int64(42)

	for i := 0; i < 5; i++ {
		assert.True(t, limiter.AllowAt(chatID, now))
	}

	assert.False(t, limiter.AllowAt(chatID, now.Add(39*time.Second)))
	assert.True(t, limiter.AllowAt(chatID, now.Add(41*time.Second)))
}

func TestSlidingWindowLimiter_ChatsAreIndependent(t *testing.T) {
	limiter := ratelimit.NewSlidingWindowLimiter(1, 40*time.Second)

	now := time.Now()

	assert.True(t, limiter.AllowAt(1, now))
	assert.False(t, limiter.AllowAt(1, now))
	assert.True(t, limiter.AllowAt(2, now))
}

func TestSlidingWindowLimiter_PruneKeepsActiveWindows(t *testing.T) {
	limiter := ratelimit.NewSlidingWindowLimiter(2, 40*time.Second)

	now := time.Now()

	limiter.AllowAt(1, now.Add(-50*time.Second))
	limiter.AllowAt(2, now.Add(-10*time.Second))
	limiter.AllowAt(2, now.Add(-5*time.Second))

	assert.Equal(t, 1, limiter.Prune(now))

	// Недавние отметки чата 2 сохранены, лимит действует.
	assert.False(t, limiter.AllowAt(2, now))
}

func TestSlidingWindowLimiter_PruneBefore(t *testing.T) {
	limiter := ratelimit.NewSlidingWindowLimiter(5, 40*time.Second)

	now := time.Now()

	limiter.AllowAt(1, now.Add(-2*time.Hour))
	limiter.AllowAt(2, now)

	pruned := limiter.PruneBefore(now.Add(-time.Hour))

	assert.Equal(t, 1, pruned)

	// Окно активного чата не тронуто.
	for i := 0; i < 4; i++ {
		assert.True(t, limiter.AllowAt(2, now))
	}

	assert.False(t, limiter.AllowAt(2, now))
}
