package services

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"erp_orders/internal/models"
)

const (
	greetingText     = "Hello! I'm here to help you with your ERP system. How can I assist you today?"
	clearedText      = "Conversation cleared. How can I help you?"
	DefaultSessionID = "default"
)

// ConversationLog keeps a per-session, append-only message transcript.
// A session starts with a greeting, grows only by appends, and is reset
// (greeting re-seeded) only by Clear.
type ConversationLog interface {
	Append(sessionID, text string, isUser bool) models.ChatMessage
	Messages(sessionID string) []models.ChatMessage
	Clear(sessionID string) []models.ChatMessage
}

type conversationLog struct {
	mu       sync.Mutex
	sessions map[string][]models.ChatMessage
	now      func() time.Time
}

func NewConversationLog() ConversationLog {
	return &conversationLog{sessions: make(map[string][]models.ChatMessage), now: time.Now}
}

// NewConversationLogWithClock is NewConversationLog with an injected clock.
func NewConversationLogWithClock(now func() time.Time) ConversationLog {
	return &conversationLog{sessions: make(map[string][]models.ChatMessage), now: now}
}

func (l *conversationLog) Append(sessionID, text string, isUser bool) models.ChatMessage {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.ensureSession(sessionID)
	msg := l.newMessage(text, isUser)
	l.sessions[sessionID] = append(l.sessions[sessionID], msg)
	return msg
}

func (l *conversationLog) Messages(sessionID string) []models.ChatMessage {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.ensureSession(sessionID)
	messages := make([]models.ChatMessage, len(l.sessions[sessionID]))
	copy(messages, l.sessions[sessionID])
	return messages
}

func (l *conversationLog) Clear(sessionID string) []models.ChatMessage {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.sessions[sessionID] = []models.ChatMessage{l.newMessage(clearedText, false)}
	messages := make([]models.ChatMessage, len(l.sessions[sessionID]))
	copy(messages, l.sessions[sessionID])
	return messages
}

// ensureSession seeds the greeting on first touch. Callers must hold the lock.
func (l *conversationLog) ensureSession(sessionID string) {
	if _, ok := l.sessions[sessionID]; !ok {
		l.sessions[sessionID] = []models.ChatMessage{l.newMessage(greetingText, false)}
	}
}

func (l *conversationLog) newMessage(text string, isUser bool) models.ChatMessage {
	return models.ChatMessage{
		ID:        uuid.NewString(),
		Text:      text,
		IsUser:    isUser,
		Timestamp: l.now(),
	}
}
