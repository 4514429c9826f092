package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"physical-ai-chat-api/internal/middleware"
	"physical-ai-chat-api/internal/models"

	"github.com/gin-gonic/gin"
)

type stubChatService struct {
	resp *models.ChatResponse
	err  error
}

func (s *stubChatService) Chat(ctx context.Context, req *models.ChatRequest) (*models.ChatResponse, error) {
	return s.resp, s.err
}

func newTestRouter(svc *stubChatService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.CORS())
	SetupRoutes(router, &RouterConfig{ChatService: svc})
	return router
}

func TestChatSuccess(t *testing.T) {
	router := newTestRouter(&stubChatService{
		resp: &models.ChatResponse{ID: "abc", Reply: "Robots combine sensing and actuation.", Model: "physical-ai-tutor"},
	})

	req := httptest.NewRequest("POST", "/api/chat", strings.NewReader(`{"message":"What is a robot?"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d (body: %s)", w.Code, w.Body.String())
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("Expected CORS origin header on response")
	}

	var resp models.ChatResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Response is not valid JSON: %v", err)
	}
	if resp.Reply != "Robots combine sensing and actuation." {
		t.Errorf("Unexpected reply: %q", resp.Reply)
	}
}

func TestChatBindingErrors(t *testing.T) {
	router := newTestRouter(&stubChatService{})

	tests := []struct {
		name string
		body string
	}{
		{name: "empty body", body: ""},
		{name: "missing message", body: `{}`},
		{name: "bad history role", body: `{"message":"hi","history":[{"role":"robot","content":"x"}]}`},
		{name: "not json", body: `message=hi`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/chat", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("Expected status 400, got %d", w.Code)
			}

			var resp map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("Response is not valid JSON: %v", err)
			}
			if resp["error"] != "Invalid request format" {
				t.Errorf("Unexpected error message: %q", resp["error"])
			}
		})
	}
}

func TestChatUpstreamFailure(t *testing.T) {
	router := newTestRouter(&stubChatService{err: errors.New("upstream model returned status 503")})

	req := httptest.NewRequest("POST", "/api/chat", strings.NewReader(`{"message":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("Expected status 502, got %d", w.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Response is not valid JSON: %v", err)
	}
	if resp["error"] != "Upstream model request failed" {
		t.Errorf("Unexpected error message: %q", resp["error"])
	}
	if resp["details"] != "upstream model returned status 503" {
		t.Errorf("Unexpected details: %q", resp["details"])
	}
}

func TestHealthRoute(t *testing.T) {
	router := newTestRouter(&stubChatService{})

	req := httptest.NewRequest("GET", "/api/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Response is not valid JSON: %v", err)
	}
	if resp["status"] != "ok" || resp["message"] != "Physical AI Chatbot Backend is active!" || resp["version"] != "1.0" {
		t.Errorf("Unexpected health payload: %v", resp)
	}
}

func TestPreflight(t *testing.T) {
	router := newTestRouter(&stubChatService{})

	req := httptest.NewRequest("OPTIONS", "/api/chat", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("Expected status 204, got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("Expected CORS origin header on preflight response")
	}
}
