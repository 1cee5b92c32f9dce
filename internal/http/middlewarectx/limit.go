package middlewarectx

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"golang.org/x/time/rate"

	"github.com/magabrotheeeer/session-authority/internal/http/response"
)

// RateLimitMiddleware ограничивает частоту запросов к обработчику.
// Вешается на /login и /register: bcrypt намеренно медленный, и без
// ограничителя ими можно нагрузить CPU подбором паролей.
func RateLimitMiddleware(log *slog.Logger, rps rate.Limit, burst int) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(rps, burst)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				log.Error("too many requests")
				render.Status(r, http.StatusTooManyRequests)
				render.JSON(w, r, response.Error("too many requests"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
