package main

import (
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"erp_orders/internal/config"
	"erp_orders/internal/handlers"
	"erp_orders/internal/repository"
	"erp_orders/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// Initialize repositories
	orderRepo := repository.NewOrderRepository()

	// Initialize services
	orderService := services.NewOrderService(orderRepo)
	chatService := services.NewChatService(orderRepo, rand.New(rand.NewSource(time.Now().UnixNano())))
	conversationLog := services.NewConversationLog()

	// Initialize handlers
	orderHandler := handlers.NewOrderHandler(orderService)
	chatHandler := handlers.NewChatHandler(chatService, conversationLog)

	router := handlers.NewRouter(orderHandler, chatHandler)

	slog.Info("server starting", slog.String("port", cfg.ServerPort))
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		slog.Error("server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
