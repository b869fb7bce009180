package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"log/slog"

	"github.com/motivation-quotes/telegram-bot/internal/bot/clients"
	"github.com/motivation-quotes/telegram-bot/internal/bot/domain"
	"github.com/motivation-quotes/telegram-bot/internal/bot/ratelimit"
	"github.com/motivation-quotes/telegram-bot/internal/bot/repository"
	botservice "github.com/motivation-quotes/telegram-bot/internal/bot/service"
	"github.com/motivation-quotes/telegram-bot/internal/bot/telegram"
	"github.com/motivation-quotes/telegram-bot/internal/common/metrics"
	"github.com/motivation-quotes/telegram-bot/internal/config"
	"github.com/motivation-quotes/telegram-bot/internal/scheduler"
	domainerrors "github.com/motivation-quotes/telegram-bot/internal/domain/errors"
	"github.com/motivation-quotes/telegram-bot/pkg"
)

func setupTelegramCommands(telegramClient domain.TelegramClientAPI, appLogger *slog.Logger) {
	botCommands := []domain.BotCommand{
		{Command: "start", Description: "Почати роботу з ботом"},
		{Command: "random", Description: "Випадкова цитата"},
		{Command: "save", Description: "Зберегти останню цитату в улюблені"},
		{Command: "favorites", Description: "Показати улюблені цитати"},
		{Command: "delete", Description: "Видалити цитату з улюблених за ID"},
		{Command: "history", Description: "Останні отримані цитати"},
		{Command: "clear_history", Description: "Очистити історію пошуку"},
		{Command: "image", Description: "Цитата у вигляді зображення"},
	}

	ctx := context.Background()
	if err := telegramClient.SetMyCommands(ctx, botCommands); err != nil {
		appLogger.Error("Ошибка при регистрации команд бота",
			"error", err,
		)
	} else {
		appLogger.Info("Команды бота успешно зарегистрированы")
	}
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка запуска сервиса: %v\n", err)
		os.Exit(1)
	}
}

//nolint:funlen // Длина функции обусловлена необходимостью последовательной инициализации всех компонентов.
func run() error {
	appLogger := pkg.NewLogger(os.Stdout)

	cfg := config.LoadConfig()

	if cfg.TelegramBotToken == "" {
		return &domainerrors.ErrMissingBotToken{}
	}

	repoFactory := repository.NewFactory(cfg, appLogger)

	sessionRepo, err := repoFactory.CreateSessionRepository()
	if err != nil {
		appLogger.Error("Ошибка при создании репозитория сессий",
			"error", err,
		)

		return fmt.Errorf("ошибка создания репозитория сессий: %w", err)
	}

	quotesClient := clients.NewQuotesClient(cfg.QuotesAPIBaseURL, cfg, appLogger)

	telegramClient, err := clients.NewTelegramClient(cfg.TelegramBotToken, cfg.TelegramSendRate, appLogger)
	if err != nil {
		appLogger.Error("Ошибка при создании Telegram клиента",
			"error", err,
		)

		return fmt.Errorf("ошибка создания Telegram клиента: %w", err)
	}

	setupTelegramCommands(telegramClient, appLogger)

	quoteLimiter := ratelimit.NewSlidingWindowLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)
	imageLimiter := ratelimit.NewSlidingWindowLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)

	botService := botservice.NewBotService(
		sessionRepo,
		quotesClient,
		telegramClient,
		quoteLimiter,
		imageLimiter,
		cfg.SeenQuotesMax,
		cfg.RandomRetryLimit,
		appLogger,
	)

	poller := telegram.NewPoller(telegramClient, botService, cfg.UpdateHandleTimeout, appLogger)
	poller.Start()

	var janitor *scheduler.Janitor

	if cleaner, ok := sessionRepo.(scheduler.SessionCleaner); ok {
		janitor = scheduler.NewJanitor(
			cleaner,
			[]scheduler.WindowPruner{quoteLimiter, imageLimiter},
			cfg.SessionCleanupInterval,
			cfg.SessionIdleTTL,
			appLogger,
		)
		janitor.Start()
	}

	metricsServer := metrics.NewMetricsServer(cfg.MetricsPort, appLogger)

	go func() {
		if err := metricsServer.Start(context.Background()); err != nil {
			appLogger.Error("Ошибка при запуске сервера метрик",
				"error", err,
			)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	appLogger.Info("Получен системный сигнал",
		"signal", sig.String(),
	)

	poller.Stop()

	if janitor != nil {
		janitor.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := metricsServer.Stop(ctx); err != nil {
		appLogger.Error("Ошибка при остановке сервера метрик",
			"error", err,
		)
	}

	if err := repoFactory.Close(); err != nil {
		appLogger.Error("Ошибка при закрытии хранилища сессий",
			"error", err,
		)
	}

	appLogger.Info("Бот успешно остановлен")

	return nil
}
