package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/marketboost/core/internal/pkg/limiter"
	"go.uber.org/zap"
)

func newLimitedRouter(win *limiter.Window, max int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	api.Use(RateLimit(nil, win, max, time.Minute, zap.NewNop()))
	api.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"data": "pong"}) })
	return r
}

func get(r http.Handler, path, addr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = addr
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimitRejectsAboveThreshold(t *testing.T) {
	win := limiter.New(3, time.Minute)
	r := newLimitedRouter(win, 3)

	for i := 0; i < 3; i++ {
		if w := get(r, "/api/ping", "10.0.0.1:1000"); w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, w.Code)
		}
	}

	w := get(r, "/api/ping", "10.0.0.1:1000")
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Fatal("expected Retry-After header on rejection")
	}
}

func TestRateLimitRecoveryAfterWindow(t *testing.T) {
	now := time.Unix(0, 0)
	win := limiter.New(1, time.Minute, limiter.WithClock(func() time.Time { return now }))
	r := newLimitedRouter(win, 1)

	if w := get(r, "/api/ping", "10.0.0.2:1000"); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := get(r, "/api/ping", "10.0.0.2:1000"); w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}

	now = now.Add(2 * time.Minute)
	if w := get(r, "/api/ping", "10.0.0.2:1000"); w.Code != http.StatusOK {
		t.Fatalf("expected 200 after window elapsed, got %d", w.Code)
	}
}

func TestRateLimitTracksClientsSeparately(t *testing.T) {
	win := limiter.New(1, time.Minute)
	r := newLimitedRouter(win, 1)

	if w := get(r, "/api/ping", "10.0.0.3:1000"); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := get(r, "/api/ping", "10.0.0.3:1000"); w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 for exhausted client, got %d", w.Code)
	}
	if w := get(r, "/api/ping", "10.0.0.4:1000"); w.Code != http.StatusOK {
		t.Fatalf("expected 200 for different client, got %d", w.Code)
	}
}
