package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/motivation-quotes/telegram-bot/internal/domain/errors"
	"github.com/motivation-quotes/telegram-bot/internal/domain/models"
)

const historyDateLayout = "02.01.2006 15:04"

// Quote отображает цитату: текст в кавычках, автор, пустая строка и
// счётчики реакций.
func Quote(quote *models.Quote) string {
	return fmt.Sprintf("💬 \"%s\"\n— %s\n\n👍 %d   👎 %d",
		quote.Text, quote.Author, quote.Likes, quote.Dislikes)
}

func FavoriteLine(quote *models.Quote) string {
	return fmt.Sprintf("💬 \"%s\"\n— %s (ID: %d)", quote.Text, quote.Author, quote.ID)
}

// History отображает историю запросов: заголовок и по строке на каждую
// запись с непустым текстом запроса.
func History(entries []models.SearchHistoryEntry) string {
	var sb strings.Builder

	sb.WriteString("🕓 Останні отримані цитати:\n\n")

	for _, entry := range entries {
		if strings.TrimSpace(entry.Query) == "" {
			continue
		}

		sb.WriteString(fmt.Sprintf("• %s (%s)\n", entry.Query, entry.SearchDate.Format(historyDateLayout)))
	}

	return sb.String()
}

// RewriteReactionCounts сохраняет первые две строки сообщения с цитатой и
// заменяет строку счётчиков обновлёнными значениями. Возвращает false, если
// сообщение не похоже на сообщение с цитатой.
func RewriteReactionCounts(messageText string, result *models.ReactionResult) (string, bool) {
	lines := strings.Split(messageText, "\n")
	if len(lines) < 2 {
		return "", false
	}

	return fmt.Sprintf("%s\n%s\n\n👍 %d   👎 %d",
		lines[0], lines[1], result.Likes, result.Dislikes), true
}

func ReactionCallbackData(reaction models.ReactionType, quoteID int) string {
	return fmt.Sprintf("%s:%d", reaction, quoteID)
}

// IsReactionCallback сообщает, относятся ли данные callback к реакциям.
// Посторонние payload игнорируются целиком.
func IsReactionCallback(data string) bool {
	return strings.HasPrefix(data, string(models.ReactionLike)+":") ||
		strings.HasPrefix(data, string(models.ReactionDislike)+":")
}

// ParseReactionCallback разбирает payload вида "like:<id>" / "dislike:<id>".
func ParseReactionCallback(data string) (models.ReactionType, int, error) {
	parts := strings.Split(data, ":")
	if len(parts) != 2 {
		return "", 0, &errors.ErrMalformedCallback{Data: data}
	}

	quoteID, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", 0, &errors.ErrMalformedCallback{Data: data}
	}

	return models.ReactionType(parts[0]), quoteID, nil
}
