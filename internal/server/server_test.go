package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/FACorreiaa/population-dashboard/internal/pkg/config"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		ServerPort: "0",
		API:        config.APIConfig{BaseURL: baseURL, Timeout: time.Second},
		Session: config.SessionConfig{
			Secret:     "0123456789abcdef0123456789abcdef",
			TTL:        time.Hour,
			CookieName: "dashboard_session",
		},
		Guard:     config.GuardConfig{PendingWait: 200 * time.Millisecond},
		Cache:     config.CacheConfig{HealthTTL: time.Second},
		RateLimit: config.RateLimitConfig{AuthAttempts: 5, AuthWindow: time.Minute},
		Observability: config.ObservabilityConfig{
			ServiceName: "population-dashboard-test",
		},
	}
}

func TestNewRejectsRelativeBaseURL(t *testing.T) {
	_, err := New(testConfig("/api"), zap.NewNop())
	require.Error(t, err)
}

func TestRouterServesHealthzAndLogin(t *testing.T) {
	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer remote.Close()

	s, err := New(testConfig(remote.URL+"/api"), zap.NewNop())
	require.NoError(t, err)
	defer s.Close()
	r := SetupRouter(s)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, s.Registry().Len())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/login", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, 1, s.Registry().Len())
}

func TestGracefulShutdownReleasesSessions(t *testing.T) {
	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer remote.Close()

	s, err := New(testConfig(remote.URL+"/api"), zap.NewNop())
	require.NoError(t, err)
	_, _, err = s.Registry().Acquire("a")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go GracefulShutdown(ctx, &http.Server{}, s, done)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("shutdown did not finish")
	}
	assert.Equal(t, 0, s.Registry().Len())
}
