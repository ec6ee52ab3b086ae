package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/parkirc/parking-service/internal/api/handlers"
)

type contextKey string

const operatorIDKey contextKey = "operatorID"

// Auth проверяет заголовок X-Operator-ID и кладет ID оператора в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("X-Operator-ID")
		if header == "" {
			handlers.RespondUnauthorized(w, "отсутствует заголовок X-Operator-ID")
			return
		}

		operatorID, err := strconv.ParseInt(header, 10, 64)
		if err != nil || operatorID <= 0 {
			handlers.RespondUnauthorized(w, "некорректный заголовок X-Operator-ID")
			return
		}

		ctx := context.WithValue(r.Context(), operatorIDKey, operatorID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetOperatorID извлекает ID оператора из контекста запроса
func GetOperatorID(ctx context.Context) (int64, bool) {
	operatorID, ok := ctx.Value(operatorIDKey).(int64)
	return operatorID, ok
}
