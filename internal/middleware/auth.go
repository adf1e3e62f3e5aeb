package middleware

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/mkrylova/task-tracker-api/internal/token"
	"github.com/mkrylova/task-tracker-api/pkg/respond"
)

// HeaderToken - заголовок, в котором клиент передает токен
const HeaderToken = "x-auth-token"

type contextKey string

const userIDKey contextKey = "user_id"

// WithUserID кладет id аутентифицированного пользователя в контекст
func WithUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromContext возвращает id из контекста, пустую строку если его нет
func UserIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}

// Auth закрывает маршрут токеном: без валидного токена дальше не пускаем
func Auth(tokens *token.Service, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Аудит срабатывает до проверки токена, в том числе на отказах
			logger.Info("authorization middleware triggered",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
			)

			tok := r.Header.Get(HeaderToken)
			if tok == "" {
				respond.Error(w, r, http.StatusUnauthorized, "No token, authorization denied")
				return
			}

			userID, err := tokens.Verify(tok)
			if err != nil {
				respond.Error(w, r, http.StatusUnauthorized, "Token is not valid")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}
