package models

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Message is one turn of a conversation.
type Message struct {
	Role    string `json:"role" binding:"required,oneof=user assistant system" validate:"required,oneof=user assistant system"`
	Content string `json:"content" binding:"required" validate:"required"`
}

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Message string    `json:"message" binding:"required,max=4000" validate:"required,max=4000"`
	History []Message `json:"history" binding:"omitempty,dive" validate:"omitempty,dive"`
}

// ChatResponse is returned to the client on a successful chat turn.
type ChatResponse struct {
	ID    string `json:"id"`
	Reply string `json:"reply"`
	Model string `json:"model"`
}

// Validate checks the request for callers that build it programmatically
// instead of going through gin binding.
func (r *ChatRequest) Validate() error {
	return validate.Struct(r)
}
