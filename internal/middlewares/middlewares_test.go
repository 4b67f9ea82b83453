package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/chronos-workspace/internal/testutil"
)

var ok = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestCORS(t *testing.T) {
	h := NewCORS([]string{"https://app.example.com"}).Handler(ok)

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	req.Header.Set("Origin", "https://app.example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/tasks", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/tasks", nil)
	req.Header.Set("Origin", "https://app.example.com")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCORS_Wildcard(t *testing.T) {
	h := NewCORS([]string{"*"}).Handler(ok)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORS_WildcardKeepsCredentialsForListedOrigins(t *testing.T) {
	h := NewCORS([]string{"https://app.example.com", "*"}).Handler(ok)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://app.example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example.net")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestRateLimiter_PerUser(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	h := rl.Handler(ok)

	serve := func(userID uuid.UUID) int {
		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
		req = req.WithContext(testutil.WithUser(req.Context(), userID))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	alice, bob := uuid.New(), uuid.New()
	assert.Equal(t, http.StatusOK, serve(alice))
	assert.Equal(t, http.StatusOK, serve(alice))
	assert.Equal(t, http.StatusTooManyRequests, serve(alice))
	assert.Equal(t, http.StatusOK, serve(bob))
}

func TestRateLimiter_Cleanup(t *testing.T) {
	rl := NewRateLimiter(10, 10)
	clock := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return clock }

	rl.limiter("a")
	clock = clock.Add(time.Hour)
	rl.limiter("b")
	require.Equal(t, 2, rl.size())

	rl.Cleanup(30 * time.Minute)
	assert.Equal(t, 1, rl.size())
}

func TestRateLimiter_StartCleanupOnce(t *testing.T) {
	rl := NewRateLimiter(10, 10)
	ctx, cancel := context.WithCancel(context.Background())

	assert.False(t, rl.CleanupRunning())
	rl.StartCleanup(ctx, time.Hour)
	rl.StartCleanup(ctx, time.Hour)
	assert.True(t, rl.CleanupRunning())

	cancel()
	assert.Eventually(t, func() bool { return !rl.CleanupRunning() }, time.Second, 10*time.Millisecond)
}
