package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// recordingLimiter запоминает ключи и отвечает по заданному плану
type recordingLimiter struct {
	allow bool
	keys  []string
}

func (l *recordingLimiter) Allow(key string) bool {
	l.keys = append(l.keys, key)
	return l.allow
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimit_Allowed(t *testing.T) {
	limiter := &recordingLimiter{allow: true}
	handler := RateLimit(limiter)(okHandler())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/entries", nil)
	req.RemoteAddr = "10.0.0.1:54321"
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, []string{"10.0.0.1"}, limiter.keys)
}

func TestRateLimit_Rejected(t *testing.T) {
	limiter := &recordingLimiter{allow: false}
	handler := RateLimit(limiter)(okHandler())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/entries", nil)
	req.RemoteAddr = "10.0.0.1:54321"
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusTooManyRequests, resp.Code)
	assert.Contains(t, resp.Header().Get("Content-Type"), "application/json")
}

func TestRateLimit_UsesForwardedFor(t *testing.T) {
	limiter := &recordingLimiter{allow: true}
	handler := RateLimit(limiter)(okHandler())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/entries", nil)
	req.RemoteAddr = "10.0.0.1:54321"
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	assert.Equal(t, []string{"203.0.113.7"}, limiter.keys)
}
