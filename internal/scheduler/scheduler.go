package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"
)

type SessionCleaner interface {
	PruneIdle(ctx context.Context, before time.Time) (int, error)
}

type WindowPruner interface {
	Prune(now time.Time) int
}

// Janitor периодически вычищает неактивные сессии и устаревшие
// записи окон лимитера, чтобы память не росла с числом чатов.
type Janitor struct {
	scheduler      *gocron.Scheduler
	sessionCleaner SessionCleaner
	windowPruners  []WindowPruner
	idleTTL        time.Duration
	interval       time.Duration
	logger         *slog.Logger
}

func NewJanitor(
	sessionCleaner SessionCleaner,
	windowPruners []WindowPruner,
	interval time.Duration,
	idleTTL time.Duration,
	logger *slog.Logger,
) *Janitor {
	scheduler := gocron.NewScheduler(time.UTC)

	return &Janitor{
		scheduler:      scheduler,
		sessionCleaner: sessionCleaner,
		windowPruners:  windowPruners,
		idleTTL:        idleTTL,
		interval:       interval,
		logger:         logger,
	}
}

func (j *Janitor) Start() {
	j.logger.Info("Запуск планировщика очистки",
		"interval", j.interval.String(),
		"idle_ttl", j.idleTTL.String(),
	)

	_, err := j.scheduler.Every(j.interval).Do(func() {
		j.runCleanup(context.Background())
	})
	if err != nil {
		j.logger.Error("Ошибка при настройке планировщика",
			"error", err,
		)

		return
	}

	j.scheduler.StartAsync()
}

func (j *Janitor) Stop() {
	j.logger.Info("Остановка планировщика очистки")
	j.scheduler.Stop()
}

func (j *Janitor) runCleanup(ctx context.Context) {
	now := time.Now()

	pruned, err := j.sessionCleaner.PruneIdle(ctx, now.Add(-j.idleTTL))
	if err != nil {
		j.logger.Error("Ошибка при очистке сессий",
			"error", err,
		)
	} else if pruned > 0 {
		j.logger.Info("Очищены неактивные сессии",
			"count", pruned,
		)
	}

	for _, pruner := range j.windowPruners {
		if removed := pruner.Prune(now); removed > 0 {
			j.logger.Info("Очищены устаревшие окна лимитера",
				"count", removed,
			)
		}
	}
}
