package models

import "time"

// ChatMessage is one entry in a conversation log. Messages are append-only
// and never mutated after creation.
type ChatMessage struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	IsUser    bool      `json:"isUser"`
	Timestamp time.Time `json:"timestamp"`
}
