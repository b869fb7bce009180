package httputil

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"

	"github.com/motivation-quotes/telegram-bot/internal/common/metrics"
	"github.com/motivation-quotes/telegram-bot/internal/config"
	"github.com/motivation-quotes/telegram-bot/internal/domain/errors"
)

// NewClient создаёт HTTP клиент для внешнего сервиса: таймаут из конфига и
// circuit breaker поверх транспорта. Автоматических повторов нет: неуспешный
// запрос сразу возвращается вызывающему.
func NewClient(cfg *config.Config, logger *slog.Logger, serviceName string) *resty.Client {
	client := resty.New()

	client.SetTimeout(cfg.ExternalRequestTimeout)

	circuitBreakerSettings := gobreaker.Settings{
		Name:        serviceName + "_circuit_breaker",
		MaxRequests: uint32(cfg.CBPermittedCallsInHalfOpen), //nolint:gosec // G115: Значение из конфига
		Interval:    time.Duration(cfg.CBSlidingWindowSize) * time.Second,
		Timeout:     cfg.CBWaitDurationInOpenState,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= uint32(cfg.CBMinimumRequiredCalls) && //nolint:gosec // G115: Значение из конфига
				failureRatio >= float64(cfg.CBFailureRateThreshold)/100.0
		},
	}

	client.SetTransport(&circuitBreakerTransport{
		circuitBreaker:    gobreaker.NewCircuitBreaker(circuitBreakerSettings),
		originalTransport: http.DefaultTransport,
		logger:            logger,
		serviceName:       serviceName,
	})

	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		metrics.RecordExternalRequest(serviceName, resp.Request.Method, resp.StatusCode())
		return nil
	})

	return client
}

type circuitBreakerTransport struct {
	circuitBreaker    *gobreaker.CircuitBreaker
	originalTransport http.RoundTripper
	logger            *slog.Logger
	serviceName       string
}

func (t *circuitBreakerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	result, err := t.circuitBreaker.Execute(func() (interface{}, error) {
		resp, err := t.originalTransport.RoundTrip(req)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode >= 500 {
			resp.Body.Close()
			return nil, &errors.HTTPError{StatusCode: resp.StatusCode}
		}

		return resp, nil
	})

	if err != nil {
		if err == gobreaker.ErrOpenState && t.logger != nil {
			t.logger.Warn("Circuit breaker is open",
				"service", t.serviceName,
				"url", req.URL.String(),
			)
		}

		return nil, err
	}

	resp, ok := result.(*http.Response)
	if !ok {
		return nil, &errors.ErrInternalServer{Message: "неожиданный тип ответа от транспорта"}
	}

	return resp, nil
}
