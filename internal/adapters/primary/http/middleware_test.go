package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRequestIDMiddleware(t *testing.T) {
	handler := requestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRequestIDMiddlewarePreservesExisting(t *testing.T) {
	handler := requestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "client-supplied")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "client-supplied", rec.Header().Get("X-Request-ID"))
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	handler := securityHeadersMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Contains(t, rec.Header().Get("Content-Security-Policy"), "default-src 'self'")
}

func TestRecoveryMiddleware(t *testing.T) {
	logger := NewHTTPLogger("test", false)
	handler := createRecoveryMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("handler exploded")
	}), logger)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	assert.NotPanics(t, func() {
		handler.ServeHTTP(rec, req)
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRateLimiterAllowsWithinLimit(t *testing.T) {
	rl := &rateLimiter{clients: make(map[string]*clientInfo), cleanup: 5 * time.Minute}

	for i := 0; i < 10; i++ {
		assert.True(t, rl.isAllowed("10.0.0.1", 10, time.Minute))
	}
	assert.False(t, rl.isAllowed("10.0.0.1", 10, time.Minute))
}

func TestRateLimiterIsolatesClients(t *testing.T) {
	rl := &rateLimiter{clients: make(map[string]*clientInfo), cleanup: 5 * time.Minute}

	for i := 0; i < 5; i++ {
		rl.isAllowed("10.0.0.1", 5, time.Minute)
	}
	assert.False(t, rl.isAllowed("10.0.0.1", 5, time.Minute))
	assert.True(t, rl.isAllowed("10.0.0.2", 5, time.Minute))
}

func TestRateLimiterExpiresOldRequests(t *testing.T) {
	rl := &rateLimiter{clients: make(map[string]*clientInfo), cleanup: 5 * time.Minute}

	old := time.Now().Add(-2 * time.Minute)
	rl.clients["10.0.0.1"] = &clientInfo{
		lastSeen: old,
		requests: []time.Time{old, old, old},
	}

	assert.True(t, rl.isAllowed("10.0.0.1", 3, time.Minute))
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name     string
		headers  map[string]string
		remote   string
		expected string
	}{
		{
			name:     "x-forwarded-for",
			headers:  map[string]string{"X-Forwarded-For": "203.0.113.7"},
			remote:   "10.0.0.1:1234",
			expected: "203.0.113.7",
		},
		{
			name:     "x-real-ip",
			headers:  map[string]string{"X-Real-IP": "203.0.113.8"},
			remote:   "10.0.0.1:1234",
			expected: "203.0.113.8",
		},
		{
			name:     "remote addr",
			remote:   "192.168.1.5:4321",
			expected: "192.168.1.5",
		},
		{
			name:     "invalid forwarded header falls through",
			headers:  map[string]string{"X-Forwarded-For": "not-an-ip"},
			remote:   "192.168.1.6:4321",
			expected: "192.168.1.6",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			assert.Equal(t, tt.expected, getClientIP(req))
		})
	}
}

func TestLoggingMiddlewareCapturesStatus(t *testing.T) {
	logger := NewHTTPLogger("test", false)
	handler := createLoggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}), logger)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "short and stout", rec.Body.String())
}
