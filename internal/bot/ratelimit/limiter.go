package ratelimit

import (
	"sync"
	"time"
)

// SlidingWindowLimiter ограничивает число запросов на чат: не более limit
// запросов за скользящее окно window. Отдельный экземпляр создаётся на
// каждую категорию операций (цитаты, картинки).
type SlidingWindowLimiter struct {
	windows map[int64][]time.Time
	mu      sync.Mutex
	limit   int
	window  time.Duration
}

func NewSlidingWindowLimiter(limit int, window time.Duration) *SlidingWindowLimiter {
	return &SlidingWindowLimiter{
		windows: make(map[int64][]time.Time),
		limit:   limit,
		window:  window,
	}
}

func (l *SlidingWindowLimiter) Allow(chatID int64) bool {
	return l.AllowAt(chatID, time.Now())
}

// AllowAt удаляет из окна чата отметки старше window относительно now,
// затем либо отклоняет запрос без записи, либо записывает now и разрешает.
func (l *SlidingWindowLimiter) AllowAt(chatID int64, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := now.Add(-l.window)

	stamps := l.windows[chatID]
	fresh := stamps[:0]

	for _, t := range stamps {
		if t.After(cutoff) {
			fresh = append(fresh, t)
		}
	}

	if len(fresh) >= l.limit {
		l.windows[chatID] = fresh
		return false
	}

	l.windows[chatID] = append(fresh, now)

	return true
}

// Prune удаляет окна, все отметки которых уже вышли за пределы окна
// относительно now. Такие окна больше не влияют на решения лимитера.
func (l *SlidingWindowLimiter) Prune(now time.Time) int {
	return l.PruneBefore(now.Add(-l.window))
}

// PruneBefore удаляет окна, в которых не осталось отметок новее before.
// Возвращает число удалённых окон.
func (l *SlidingWindowLimiter) PruneBefore(before time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	pruned := 0

	for chatID, stamps := range l.windows {
		stale := true

		for _, t := range stamps {
			if t.After(before) {
				stale = false
				break
			}
		}

		if stale {
			delete(l.windows, chatID)

			pruned++
		}
	}

	return pruned
}
