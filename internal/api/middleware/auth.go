package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/klepi21/barberians/internal/api/handlers"
)

// AdminTokenHeader заголовок с админским токеном
const AdminTokenHeader = "X-Admin-Token"

const msgUnauthorized = "μη εξουσιοδοτημένη πρόσβαση"

// Logger интерфейс логирования для middleware
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// AdminAuth проверяет админский токен из заголовка.
// Сравнение токенов за постоянное время.
func AdminAuth(token string, log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(AdminTokenHeader)

			if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				log.Warn("AdminAuth: unauthorized request to %s %s from %s", r.Method, r.URL.Path, r.RemoteAddr)
				handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
