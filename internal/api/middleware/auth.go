package middleware

import (
	"context"
	"net/http"

	"github.com/avdema/TA-ReportingService/internal/api/handlers"
)

type ctxKey int

const userIDKey ctxKey = iota

// Auth проверяет наличие заголовка X-User-ID и кладет его значение
// в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get("X-User-ID")
		if userID == "" {
			handlers.RespondUnauthorized(w, "missing X-User-ID header")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает идентификатор пользователя из контекста
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}
