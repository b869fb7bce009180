package repository

import (
	"log/slog"

	"go.uber.org/multierr"

	"github.com/motivation-quotes/telegram-bot/internal/bot/repository/memory"
	"github.com/motivation-quotes/telegram-bot/internal/bot/repository/redisrepo"
	"github.com/motivation-quotes/telegram-bot/internal/bot/service"
	"github.com/motivation-quotes/telegram-bot/internal/config"
	"github.com/motivation-quotes/telegram-bot/internal/domain/errors"
)

type Factory struct {
	config  *config.Config
	logger  *slog.Logger
	closers []func() error
}

func NewFactory(config *config.Config, logger *slog.Logger) *Factory {
	return &Factory{
		config: config,
		logger: logger,
	}
}

func (f *Factory) CreateSessionRepository() (service.SessionRepository, error) {
	switch f.config.SessionStore {
	case config.RedisStore:
		f.logger.Info("Создание Redis хранилища сессий")

		repo, err := redisrepo.NewSessionRepository(
			f.config.RedisURL,
			f.config.RedisPassword,
			f.config.RedisDB,
			f.config.RedisSessionTTL,
			f.logger,
		)
		if err != nil {
			return nil, err
		}

		f.closers = append(f.closers, repo.Close)

		return repo, nil
	case config.MemoryStore:
		f.logger.Info("Создание in-memory хранилища сессий")
		return memory.NewSessionRepository(), nil
	default:
		return nil, &errors.ErrUnknownSessionStore{StoreType: string(f.config.SessionStore)}
	}
}

// Close закрывает все соединения, открытые фабрикой.
func (f *Factory) Close() error {
	var err error

	for _, closeFn := range f.closers {
		err = multierr.Append(err, closeFn())
	}

	return err
}
