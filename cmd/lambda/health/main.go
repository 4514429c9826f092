package main

import (
	applambda "physical-ai-chat-api/pkg/lambda"

	awslambda "github.com/aws/aws-lambda-go/lambda"
)

func main() {
	awslambda.Start(applambda.HandleHealth)
}
