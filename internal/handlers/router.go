package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// NewRouter wires the API routes and the uniform 404/500 envelopes.
func NewRouter(orderHandler *OrderHandler, chatHandler *ChatHandler) *gin.Engine {
	router := gin.New()
	router.Use(RequestLogger(), Recovery())

	api := router.Group("/api")
	{
		api.GET("/health", health)

		api.GET("/orders", orderHandler.ListOrders)
		api.GET("/orders/:id", orderHandler.GetOrder)

		api.POST("/chat", chatHandler.Chat)
		api.GET("/chat/messages", chatHandler.ListMessages)
		api.DELETE("/chat/messages", chatHandler.ClearMessages)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "Endpoint not found",
			"message": fmt.Sprintf("The endpoint %s %s does not exist", c.Request.Method, c.Request.URL.Path),
		})
	})

	return router
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "ERP Orders API",
	})
}
