package handlers

import (
	"net/http"

	"physical-ai-chat-api/internal/services"

	"github.com/gin-gonic/gin"
)

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	ChatService services.ChatService
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, config *RouterConfig) {
	chatHandler := NewChatHandler(config.ChatService)

	api := router.Group("/api")
	{
		api.GET("/health", HealthCheck)
		api.POST("/chat", chatHandler.Chat)
	}
}

// HealthCheck handles GET /api/health with the same fixed payload the
// standalone health function returns.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Physical AI Chatbot Backend is active!",
		"version": "1.0",
	})
}
