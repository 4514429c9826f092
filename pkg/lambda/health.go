package lambda

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
)

// HealthBody is the fixed payload returned by the health function.
type HealthBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Version string `json:"version"`
}

// HandleHealth answers every invocation with the fixed readiness payload.
// It has no dependencies and no failure modes.
func HandleHealth(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	body, _ := json.Marshal(HealthBody{
		Status:  "ok",
		Message: "Physical AI Chatbot Backend is active!",
		Version: "1.0",
	})
	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusOK,
		Headers: map[string]string{
			"Content-Type":                 "application/json",
			"Access-Control-Allow-Origin":  "*",
			"Access-Control-Allow-Methods": "GET, OPTIONS",
			"Access-Control-Allow-Headers": "Content-Type",
		},
		Body: string(body),
	}, nil
}
