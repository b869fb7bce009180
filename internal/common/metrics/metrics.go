package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	Namespace = "quotes_bot"

	BotSubsystem = "bot"
)

// Бот метрики.
var (
	UserMessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: BotSubsystem,
			Name:      "user_messages_total",
			Help:      "Total number of user updates processed",
		},
		[]string{"update_type"},
	)

	CommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: BotSubsystem,
			Name:      "commands_total",
			Help:      "Total number of bot commands processed",
		},
		[]string{"command", "status"},
	)

	RateLimitedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: BotSubsystem,
			Name:      "rate_limited_total",
			Help:      "Total number of requests rejected by the rate limiter",
		},
		[]string{"category"},
	)

	ReactionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: BotSubsystem,
			Name:      "reactions_total",
			Help:      "Total number of like/dislike reactions submitted",
		},
		[]string{"reaction"},
	)

	ExternalRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "external_requests_total",
			Help:      "Total number of requests to external services",
		},
		[]string{"service", "method", "status"},
	)
)

func RecordUserMessage(updateType string) {
	UserMessagesTotal.WithLabelValues(updateType).Inc()
}

func RecordCommand(command, status string) {
	CommandsTotal.WithLabelValues(command, status).Inc()
}

func RecordRateLimited(category string) {
	RateLimitedTotal.WithLabelValues(category).Inc()
}

func RecordReaction(reaction string) {
	ReactionsTotal.WithLabelValues(reaction).Inc()
}

func RecordExternalRequest(service, method string, statusCode int) {
	ExternalRequestsTotal.WithLabelValues(service, method, strconv.Itoa(statusCode)).Inc()
}
