package middlewarectx

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/session-authority/internal/http/response"
)

// RequireRole возвращает middleware, пропускающий запрос только при точном
// совпадении роли из контекста с требуемой. Иерархии ролей нет: admin
// не проходит проверку на user. Ставится после AuthMiddleware.
func RequireRole(requiredRole string, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.RequireRole"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			role, ok := r.Context().Value(Role).(string)
			if !ok || role != requiredRole {
				log.Error("insufficient role",
					slog.String("required", requiredRole),
					slog.Any("actual", r.Context().Value(Role)))
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("insufficient role"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
