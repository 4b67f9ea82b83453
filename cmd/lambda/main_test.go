package main

import (
	"context"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/chronos-workspace/internal/config"
	"github.com/saulo-duarte/chronos-workspace/internal/database"
)

func newTestAdapter(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("DATABASE_DSN", filepath.Join(t.TempDir(), "lambda.db"))
	t.Setenv("REDIS_ADDR", "")

	settings, err := config.Load("")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	a, c, err := newAdapter(ctx, settings)
	require.NoError(t, err)
	t.Cleanup(func() {
		cancel()
		c.Close()
	})
	require.NoError(t, database.AutoMigrate(c.DB))

	assert.True(t, c.RateLimiter.CleanupRunning(), "rate limiter cleanup should run on warm instances")
	adapter = a
}

func TestNewAdapter_StartsHousekeeping(t *testing.T) {
	newTestAdapter(t)
}

func TestHandler_ProxiesHealth(t *testing.T) {
	newTestAdapter(t)

	resp, err := handler(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodGet,
		Path:       "/health",
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, resp.Body)
}

func TestHandler_RejectsAnonymous(t *testing.T) {
	newTestAdapter(t)

	resp, err := handler(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodGet,
		Path:       "/tasks",
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, resp.Body, "Unauthorized")
}
