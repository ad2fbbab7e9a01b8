package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/eksamtint/Eksamtint/internal/api/handlers"
	"github.com/eksamtint/Eksamtint/internal/service/settings"
)

const adminTokenHeader = "X-Admin-Token"

// PasswordChecker проверяет админ-пароль из заголовка
type PasswordChecker interface {
	CheckPassword(ctx context.Context, password string) error
}

// AuthLogger интерфейс для логирования
type AuthLogger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth закрывает админские маршруты проверкой заголовка X-Admin-Token
func Auth(checker PasswordChecker, logger AuthLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(adminTokenHeader)
			if token == "" {
				logger.Warn("%s %s - Missing admin token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, "missing admin token")
				return
			}

			if err := checker.CheckPassword(r.Context(), token); err != nil {
				if errors.Is(err, settings.ErrWrongPassword) {
					logger.Warn("%s %s - Invalid admin token", r.Method, r.URL.Path)
					handlers.RespondUnauthorized(w, "invalid admin token")
					return
				}
				logger.Error("%s %s - Failed to check admin token: %v", r.Method, r.URL.Path, err)
				handlers.RespondInternalError(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
