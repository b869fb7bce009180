package config

import (
	"time"

	"github.com/spf13/viper"
)

type SessionStoreType string

const (
	MemoryStore SessionStoreType = "MEMORY"
	RedisStore  SessionStoreType = "REDIS"
)

type Config struct {
	TelegramBotToken string `mapstructure:"TELEGRAM_BOT_TOKEN"`
	QuotesAPIBaseURL string `mapstructure:"QUOTES_API_BASE_URL"`
	MetricsPort      int    `mapstructure:"METRICS_PORT"`

	ExternalRequestTimeout time.Duration `mapstructure:"EXTERNAL_REQUEST_TIMEOUT"`
	UpdateHandleTimeout    time.Duration `mapstructure:"UPDATE_HANDLE_TIMEOUT"`

	RateLimitRequests int           `mapstructure:"RATE_LIMIT_REQUESTS"`
	RateLimitWindow   time.Duration `mapstructure:"RATE_LIMIT_WINDOW"`

	SeenQuotesMax    int `mapstructure:"SEEN_QUOTES_MAX"`
	RandomRetryLimit int `mapstructure:"RANDOM_RETRY_LIMIT"`

	SessionStore    SessionStoreType `mapstructure:"SESSION_STORE"`
	RedisURL        string           `mapstructure:"REDIS_URL"`
	RedisPassword   string           `mapstructure:"REDIS_PASSWORD"`
	RedisDB         int              `mapstructure:"REDIS_DB"`
	RedisSessionTTL time.Duration    `mapstructure:"REDIS_SESSION_TTL"`

	SessionCleanupInterval time.Duration `mapstructure:"SESSION_CLEANUP_INTERVAL"`
	SessionIdleTTL         time.Duration `mapstructure:"SESSION_IDLE_TTL"`

	TelegramSendRate float64 `mapstructure:"TELEGRAM_SEND_RATE"`

	CBSlidingWindowSize        int           `mapstructure:"CB_SLIDING_WINDOW_SIZE"`
	CBMinimumRequiredCalls     int           `mapstructure:"CB_MINIMUM_REQUIRED_CALLS"`
	CBFailureRateThreshold     int           `mapstructure:"CB_FAILURE_RATE_THRESHOLD"`
	CBPermittedCallsInHalfOpen int           `mapstructure:"CB_PERMITTED_CALLS_IN_HALF_OPEN"`
	CBWaitDurationInOpenState  time.Duration `mapstructure:"CB_WAIT_DURATION_IN_OPEN_STATE"`
}

func LoadConfig() *Config {
	setDefaults()

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	_ = viper.ReadInConfig()

	config := &Config{}

	if err := viper.Unmarshal(config); err != nil {
		return getDefaultConfig()
	}

	return config
}

func setDefaults() {
	viper.SetDefault("QUOTES_API_BASE_URL", "https://motivation-quotes-api-production.up.railway.app")
	viper.SetDefault("METRICS_PORT", 9094)

	viper.SetDefault("EXTERNAL_REQUEST_TIMEOUT", "10s")
	viper.SetDefault("UPDATE_HANDLE_TIMEOUT", "10s")

	viper.SetDefault("RATE_LIMIT_REQUESTS", 5)
	viper.SetDefault("RATE_LIMIT_WINDOW", "40s")

	viper.SetDefault("SEEN_QUOTES_MAX", 50)
	viper.SetDefault("RANDOM_RETRY_LIMIT", 20)

	viper.SetDefault("SESSION_STORE", string(MemoryStore))
	viper.SetDefault("REDIS_URL", "redis:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("REDIS_SESSION_TTL", "24h")

	viper.SetDefault("SESSION_CLEANUP_INTERVAL", "30m")
	viper.SetDefault("SESSION_IDLE_TTL", "24h")

	viper.SetDefault("TELEGRAM_SEND_RATE", 25.0)

	viper.SetDefault("CB_SLIDING_WINDOW_SIZE", 10)
	viper.SetDefault("CB_MINIMUM_REQUIRED_CALLS", 5)
	viper.SetDefault("CB_FAILURE_RATE_THRESHOLD", 50)
	viper.SetDefault("CB_PERMITTED_CALLS_IN_HALF_OPEN", 2)
	viper.SetDefault("CB_WAIT_DURATION_IN_OPEN_STATE", "10s")
}

func getDefaultConfig() *Config {
	return &Config{
		QuotesAPIBaseURL: "https://motivation-quotes-api-production.up.railway.app",
		MetricsPort:      9094,

		ExternalRequestTimeout: 10 * time.Second,
		UpdateHandleTimeout:    10 * time.Second,

		RateLimitRequests: 5,
		RateLimitWindow:   40 * time.Second,

		SeenQuotesMax:    50,
		RandomRetryLimit: 20,

		SessionStore:    MemoryStore,
		RedisURL:        "redis:6379",
		RedisPassword:   "",
		RedisDB:         0,
		RedisSessionTTL: 24 * time.Hour,

		SessionCleanupInterval: 30 * time.Minute,
		SessionIdleTTL:         24 * time.Hour,

		TelegramSendRate: 25.0,

		CBSlidingWindowSize:        10,
		CBMinimumRequiredCalls:     5,
		CBFailureRateThreshold:     50,
		CBPermittedCallsInHalfOpen: 2,
		CBWaitDurationInOpenState:  10 * time.Second,
	}
}
