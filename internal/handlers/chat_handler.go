package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"erp_orders/internal/services"
)

type ChatHandler struct {
	chatService services.ChatService
	log         services.ConversationLog
}

func NewChatHandler(chatService services.ChatService, log services.ConversationLog) *ChatHandler {
	return &ChatHandler{chatService: chatService, log: log}
}

type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

func (h *ChatHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Message is required",
		})
		return
	}

	sessionID := sessionID(c)
	h.log.Append(sessionID, req.Message, true)

	response := h.chatService.Reply(req.Message)
	h.log.Append(sessionID, response, false)

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"response":  response,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *ChatHandler) ListMessages(c *gin.Context) {
	messages := h.log.Messages(sessionID(c))
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"count":    len(messages),
		"messages": messages,
	})
}

func (h *ChatHandler) ClearMessages(c *gin.Context) {
	messages := h.log.Clear(sessionID(c))
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"messages": messages,
	})
}

func sessionID(c *gin.Context) string {
	if id := c.GetHeader("X-Session-ID"); id != "" {
		return id
	}
	return services.DefaultSessionID
}
