package server

import (
	"fmt"

	"physical-ai-chat-api/internal/config"
	"physical-ai-chat-api/internal/handlers"
	"physical-ai-chat-api/internal/middleware"
	"physical-ai-chat-api/internal/services"

	"github.com/gin-gonic/gin"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	ChatService services.ChatService

	router *gin.Engine
}

// NewContainer creates a new dependency injection container and assembles
// the Gin application around it.
func NewContainer(cfg *config.Config) (*Container, error) {
	chatService, err := services.NewChatService(&cfg.Chat)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat service: %w", err)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogger())
	router.Use(middleware.CORS())

	handlers.SetupRoutes(router, &handlers.RouterConfig{
		ChatService: chatService,
	})

	return &Container{
		Config:      cfg,
		ChatService: chatService,
		router:      router,
	}, nil
}

// Router returns the assembled Gin engine.
func (c *Container) Router() *gin.Engine {
	return c.router
}
