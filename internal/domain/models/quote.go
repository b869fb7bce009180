package models

import (
	"time"
)

// Quote — цитата, полученная от сервиса цитат. Поля сериализуются
// в том же виде, в каком их отдаёт и принимает удалённый API.
type Quote struct {
	ID       int    `json:"Id"`
	Text     string `json:"Text"`
	Author   string `json:"Author"`
	UserID   int64  `json:"UserId"`
	Likes    int    `json:"Likes"`
	Dislikes int    `json:"Dislikes"`
}

type FavoritesList struct {
	Count  int     `json:"Count"`
	Quotes []Quote `json:"Quotes"`
}

type SearchHistoryEntry struct {
	ID         int       `json:"Id"`
	Query      string    `json:"Query"`
	SearchDate time.Time `json:"SearchDate"`
	UserID     int64     `json:"UserId"`
}

type ReactionType string

const (
	ReactionLike    ReactionType = "like"
	ReactionDislike ReactionType = "dislike"
)

type Reaction struct {
	QuoteID      int          `json:"QuoteId"`
	UserID       int64        `json:"UserId"`
	ReactionType ReactionType `json:"ReactionType"`
}

// ReactionResult — обновлённые счётчики после учёта реакции.
type ReactionResult struct {
	Likes    int `json:"Likes"`
	Dislikes int `json:"Dislikes"`
}
