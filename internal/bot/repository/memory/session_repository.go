package memory

import (
	"context"
	"sync"
	"time"

	"github.com/motivation-quotes/telegram-bot/internal/domain/models"
)

// SessionRepository хранит состояние диалогов в памяти процесса.
// Все данные теряются при перезапуске: долговременное хранение
// делегировано удалённому сервису цитат.
type SessionRepository struct {
	states       map[int64]models.SessionState
	lastQuotes   map[int64]*models.Quote
	seen         map[int64]map[int]struct{}
	lastActivity map[int64]time.Time
	mu           sync.RWMutex
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		states:       make(map[int64]models.SessionState),
		lastQuotes:   make(map[int64]*models.Quote),
		seen:         make(map[int64]map[int]struct{}),
		lastActivity: make(map[int64]time.Time),
	}
}

func (r *SessionRepository) GetState(_ context.Context, chatID int64) (models.SessionState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	state, exists := r.states[chatID]
	if !exists {
		return models.StateIdle, nil
	}

	return state, nil
}

func (r *SessionRepository) SetState(_ context.Context, chatID int64, state models.SessionState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.states[chatID] = state
	r.lastActivity[chatID] = time.Now()

	return nil
}

func (r *SessionRepository) GetLastQuote(_ context.Context, chatID int64) (*models.Quote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	quote, exists := r.lastQuotes[chatID]
	if !exists {
		return nil, nil
	}

	return quote, nil
}

func (r *SessionRepository) SetLastQuote(_ context.Context, chatID int64, quote *models.Quote) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastQuotes[chatID] = quote
	r.lastActivity[chatID] = time.Now()

	return nil
}

func (r *SessionRepository) IsSeen(_ context.Context, chatID int64, quoteID int) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen, exists := r.seen[chatID]
	if !exists {
		return false, nil
	}

	_, ok := seen[quoteID]

	return ok, nil
}

func (r *SessionRepository) MarkSeen(_ context.Context, chatID int64, quoteID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.seen[chatID]; !exists {
		r.seen[chatID] = make(map[int]struct{})
	}

	r.seen[chatID][quoteID] = struct{}{}
	r.lastActivity[chatID] = time.Now()

	return nil
}

func (r *SessionRepository) SeenCount(_ context.Context, chatID int64) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.seen[chatID]), nil
}

func (r *SessionRepository) ClearSeen(_ context.Context, chatID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.seen, chatID)
	r.lastActivity[chatID] = time.Now()

	return nil
}

// PruneIdle удаляет сессии, неактивные с момента before. Возвращает число
// удалённых сессий.
func (r *SessionRepository) PruneIdle(_ context.Context, before time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	pruned := 0

	for chatID, lastSeen := range r.lastActivity {
		if lastSeen.Before(before) {
			delete(r.states, chatID)
			delete(r.lastQuotes, chatID)
			delete(r.seen, chatID)
			delete(r.lastActivity, chatID)

			pruned++
		}
	}

	return pruned, nil
}
