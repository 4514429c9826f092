package main

import (
	"context"

	"physical-ai-chat-api/internal/config"
	applambda "physical-ai-chat-api/pkg/lambda"
	"physical-ai-chat-api/pkg/server"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/ginadapter"
)

var gateway *applambda.Gateway

func init() {
	// The builder runs once per process instance. A failure here degrades
	// the gateway; it must not prevent the runtime from starting.
	gateway = applambda.NewGateway(func() (applambda.Proxy, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}

		container, err := server.NewContainer(cfg)
		if err != nil {
			return nil, err
		}

		// ginadapter does not manage the engine's lifecycle; the platform
		// owns process startup and shutdown.
		return ginadapter.New(container.Router()), nil
	})
}

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return gateway.Handle(ctx, event)
}

func main() {
	awslambda.Start(handler)
}
