package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestLimit_PerIP(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	h := Limit(ctx, 0.001, 2, time.Minute, logger)(ok)

	do := func(addr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
		req.RemoteAddr = addr
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		return rr
	}

	for i := 0; i < 2; i++ {
		if rr := do("10.0.0.1:5000"); rr.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200 got %d", i, rr.Code)
		}
	}

	rr := do("10.0.0.1:5001")
	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 got %d", rr.Code)
	}
	if rr.Header().Get("Retry-After") == "" {
		t.Fatalf("expected Retry-After header")
	}

	if rr := do("10.0.0.2:5000"); rr.Code != http.StatusOK {
		t.Fatalf("other ip should not be limited, got %d", rr.Code)
	}

	if rr := do("unix-socket"); rr.Code != http.StatusOK {
		t.Fatalf("address without port should be accepted, got %d", rr.Code)
	}
}

func TestRateLimiter_Sweep(t *testing.T) {
	l := &rateLimiter{visitors: make(map[string]*visitor), limit: 1, burst: 1, ttl: time.Minute}

	l.getVisitor("10.0.0.1")
	l.getVisitor("10.0.0.2")
	l.visitors["10.0.0.1"].lastSeen = time.Now().Add(-2 * time.Minute)

	l.sweep(time.Now())

	if _, ok := l.visitors["10.0.0.1"]; ok {
		t.Fatalf("idle visitor should be dropped")
	}
	if _, ok := l.visitors["10.0.0.2"]; !ok {
		t.Fatalf("active visitor should be kept")
	}
}
