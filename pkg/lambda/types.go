package lambda

import (
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"
)

// ErrorBody is the JSON envelope carried by every locally-built failure
// response from the function handlers.
type ErrorBody struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

// errorResponse builds a failure envelope. Every locally-built response
// carries the permissive CORS origin header so browser clients can read it.
func errorResponse(statusCode int, message, details string) events.APIGatewayProxyResponse {
	body, _ := json.Marshal(ErrorBody{Error: message, Details: details})
	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Headers: map[string]string{
			"Content-Type":                "application/json",
			"Access-Control-Allow-Origin": "*",
		},
		Body: string(body),
	}
}
