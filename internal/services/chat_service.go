package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"physical-ai-chat-api/internal/config"
	"physical-ai-chat-api/internal/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ChatService generates a reply for one conversation turn.
type ChatService interface {
	Chat(ctx context.Context, req *models.ChatRequest) (*models.ChatResponse, error)
}

// upstreamRequest is the wire shape sent to the model endpoint.
type upstreamRequest struct {
	Model    string           `json:"model"`
	Messages []models.Message `json:"messages"`
}

// upstreamResponse is the wire shape returned by the model endpoint.
type upstreamResponse struct {
	Reply string `json:"reply"`
}

type upstreamChatService struct {
	client *http.Client
	url    string
	apiKey string
	model  string
}

// NewChatService creates a chat service backed by the configured upstream
// model endpoint. The upstream URL is required; its absence is a
// construction error, not a per-request one.
func NewChatService(cfg *config.ChatConfig) (ChatService, error) {
	if cfg.UpstreamURL == "" {
		return nil, fmt.Errorf("chat service: CHAT_UPSTREAM_URL is not configured")
	}

	return &upstreamChatService{
		client: &http.Client{Timeout: cfg.Timeout},
		url:    cfg.UpstreamURL,
		apiKey: cfg.APIKey,
		model:  cfg.Model,
	}, nil
}

func (s *upstreamChatService) Chat(ctx context.Context, req *models.ChatRequest) (*models.ChatResponse, error) {
	messages := make([]models.Message, 0, len(req.History)+1)
	messages = append(messages, req.History...)
	messages = append(messages, models.Message{Role: "user", Content: req.Message})

	payload, err := json.Marshal(upstreamRequest{Model: s.model, Messages: messages})
	if err != nil {
		return nil, fmt.Errorf("failed to encode upstream request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build upstream request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	httpResp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("upstream request failed: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(httpResp.Body, 4096))
		logrus.WithFields(logrus.Fields{
			"status": httpResp.StatusCode,
			"body":   string(body),
		}).Error("Upstream model returned an error")
		return nil, fmt.Errorf("upstream model returned status %d", httpResp.StatusCode)
	}

	var upstream upstreamResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&upstream); err != nil {
		return nil, fmt.Errorf("failed to decode upstream response: %w", err)
	}

	return &models.ChatResponse{
		ID:    uuid.New().String(),
		Reply: upstream.Reply,
		Model: s.model,
	}, nil
}
