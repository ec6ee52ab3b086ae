package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/parkirc/parking-service/internal/api/handlers"
)

// KeyedLimiter интерфейс лимитера запросов
type KeyedLimiter interface {
	Allow(key string) bool
}

// RateLimit ограничивает частоту запросов по IP клиента.
// Лимитер передается снаружи, чтобы тесты могли подменить его
func RateLimit(limiter KeyedLimiter) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow(clientIP(r)) {
				handlers.RespondError(w, http.StatusTooManyRequests, "превышен лимит запросов, повторите позже")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP извлекает IP клиента: первый адрес из X-Forwarded-For,
// иначе RemoteAddr без порта
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
