package handlers

import (
	"net/http"

	"physical-ai-chat-api/internal/models"
	"physical-ai-chat-api/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ChatHandler handles chat-related HTTP requests
type ChatHandler struct {
	chatService services.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService services.ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

// Chat handles POST /api/chat
func (h *ChatHandler) Chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	resp, err := h.chatService.Chat(c.Request.Context(), &req)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"request_id": c.GetString("request_id"),
			"error":      err.Error(),
		}).Error("Chat request failed")
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "Upstream model request failed",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}
