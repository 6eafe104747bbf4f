package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimiterThrottlesPerIP(t *testing.T) {
	rl := NewRateLimiter(1, 1)

	handler := rl.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, req)
	if first.Code != http.StatusOK {
		t.Fatalf("expected first request to pass, got %d", first.Code)
	}

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, req)
	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("expected second request throttled, got %d", second.Code)
	}

	// A different client gets its own bucket.
	other := httptest.NewRequest(http.MethodGet, "/", nil)
	other.RemoteAddr = "10.0.0.2:1234"

	third := httptest.NewRecorder()
	handler.ServeHTTP(third, other)
	if third.Code != http.StatusOK {
		t.Fatalf("expected separate bucket per IP, got %d", third.Code)
	}
}

func TestRateLimiterEvictsStaleEntries(t *testing.T) {
	rl := NewRateLimiter(1, 1)

	rl.getLimiter("10.0.0.1")
	rl.getLimiter("10.0.0.2")

	rl.mu.Lock()
	rl.limiters["10.0.0.1"].lastSeen = time.Now().Add(-2 * time.Hour)
	rl.mu.Unlock()

	if evicted := rl.evictStale(time.Hour); evicted != 1 {
		t.Fatalf("expected one stale limiter evicted, got %d", evicted)
	}

	rl.mu.RLock()
	_, staleKept := rl.limiters["10.0.0.1"]
	_, freshKept := rl.limiters["10.0.0.2"]
	rl.mu.RUnlock()

	if staleKept {
		t.Fatalf("expected stale limiter removed")
	}
	if !freshKept {
		t.Fatalf("expected fresh limiter kept")
	}
}

func TestRateLimiterKeepsActiveEntries(t *testing.T) {
	rl := NewRateLimiter(1, 1)

	rl.getLimiter("10.0.0.1")

	if evicted := rl.evictStale(time.Hour); evicted != 0 {
		t.Fatalf("expected no evictions for active limiter, got %d", evicted)
	}
}
