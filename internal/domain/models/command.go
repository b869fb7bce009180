package models

type CommandType string

const (
	CommandStart        CommandType = "/start"
	CommandRandom       CommandType = "/random"
	CommandSave         CommandType = "/save"
	CommandFavorites    CommandType = "/favorites"
	CommandDelete       CommandType = "/delete"
	CommandHistory      CommandType = "/history"
	CommandClearHistory CommandType = "/clear_history"
	CommandImage        CommandType = "/image"
	CommandUnknown      CommandType = "unknown"
)

type Command struct {
	Type     CommandType
	ChatID   int64
	UserID   int64
	Text     string
	Username string
}

// Callback — нажатие inline-кнопки под сообщением с цитатой.
type Callback struct {
	ID          string
	ChatID      int64
	UserID      int64
	MessageID   int
	MessageText string
	Data        string
}
