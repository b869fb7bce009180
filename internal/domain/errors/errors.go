package errors

import (
	"fmt"
)

type ErrQuoteAlreadySaved struct {
	QuoteID int
}

func (e *ErrQuoteAlreadySaved) Error() string {
	return fmt.Sprintf("цитата %d уже сохранена в избранном", e.QuoteID)
}

func (e *ErrQuoteAlreadySaved) Is(target error) bool {
	_, ok := target.(*ErrQuoteAlreadySaved)
	return ok
}

type ErrHistoryNotFound struct {
	ChatID int64
}

func (e *ErrHistoryNotFound) Error() string {
	return fmt.Sprintf("история запросов для чата %d не найдена", e.ChatID)
}

func (e *ErrHistoryNotFound) Is(target error) bool {
	_, ok := target.(*ErrHistoryNotFound)
	return ok
}

// ErrNoFreshQuote возникает, когда все попытки получить ещё не показанную
// цитату исчерпаны.
type ErrNoFreshQuote struct {
	Attempts int
}

func (e *ErrNoFreshQuote) Error() string {
	return fmt.Sprintf("не удалось найти новую цитату за %d попыток", e.Attempts)
}

func (e *ErrNoFreshQuote) Is(target error) bool {
	_, ok := target.(*ErrNoFreshQuote)
	return ok
}

// ErrMessageNotModified — ожидаемый результат редактирования сообщения,
// содержимое которого не изменилось. Не является ошибкой для пользователя.
type ErrMessageNotModified struct{}

func (e *ErrMessageNotModified) Error() string {
	return "сообщение уже актуально, редактирование не требуется"
}

func (e *ErrMessageNotModified) Is(target error) bool {
	_, ok := target.(*ErrMessageNotModified)
	return ok
}

type ErrUpstreamStatus struct {
	Endpoint   string
	StatusCode int
}

func (e *ErrUpstreamStatus) Error() string {
	return fmt.Sprintf("сервис цитат вернул статус %d для %s", e.StatusCode, e.Endpoint)
}

func (e *ErrUpstreamStatus) Is(target error) bool {
	_, ok := target.(*ErrUpstreamStatus)
	return ok
}

type ErrUnknownCommand struct {
	Command string
}

func (e *ErrUnknownCommand) Error() string {
	return "неизвестная команда: " + e.Command
}

type ErrInternalServer struct {
	Message string
}

func (e *ErrInternalServer) Error() string {
	return "внутренняя ошибка сервера: " + e.Message
}

type ErrMissingBotToken struct{}

func (e *ErrMissingBotToken) Error() string {
	return "не задан TELEGRAM_BOT_TOKEN"
}

type ErrUnknownSessionStore struct {
	StoreType string
}

func (e *ErrUnknownSessionStore) Error() string {
	return fmt.Sprintf("неизвестный тип хранилища сессий: %s", e.StoreType)
}

type HTTPError struct {
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP error: %d", e.StatusCode)
}

type ErrMalformedCallback struct {
	Data string
}

func (e *ErrMalformedCallback) Error() string {
	return "некорректные данные callback: " + e.Data
}

func (e *ErrMalformedCallback) Is(target error) bool {
	_, ok := target.(*ErrMalformedCallback)
	return ok
}
