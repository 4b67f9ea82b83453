package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"github.com/saulo-duarte/chronos-workspace/internal/auth"
	"github.com/saulo-duarte/chronos-workspace/internal/config"
	"github.com/saulo-duarte/chronos-workspace/internal/container"
)

var adapter *httpadapter.HandlerAdapter

// newAdapter builds the application and starts its housekeeping for the
// lifetime of ctx. Warm invocations reuse both.
func newAdapter(ctx context.Context, settings *config.Settings) (*httpadapter.HandlerAdapter, *container.Container, error) {
	c, err := container.New(settings)
	if err != nil {
		return nil, nil, err
	}
	c.StartBackground(ctx)
	return httpadapter.New(c.Handler()), c, nil
}

func handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return adapter.ProxyWithContext(ctx, req)
}

func main() {
	config.Init()
	auth.Init()

	settings, err := config.Load("")
	if err != nil {
		config.Logger.WithError(err).Fatal("Invalid settings")
	}
	adapter, _, err = newAdapter(context.Background(), settings)
	if err != nil {
		config.Logger.WithError(err).Fatal("Failed to build container")
	}
	lambda.Start(handler)
}
