// Package logout реализует HTTP-обработчик выхода из системы.
//
// Токен берется из контекста запроса, куда его кладет AuthMiddleware.
// Отзыв идемпотентен: повторный logout с тем же токеном отработает так же,
// хотя сам запрос уже не пройдет проверку middleware.
package logout

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/session-authority/internal/http/middlewarectx"
	"github.com/magabrotheeeer/session-authority/internal/http/response"
	"github.com/magabrotheeeer/session-authority/internal/lib/sl"
)

// Service описывает интерфейс бизнес-логики отзыва сессии.
type Service interface {
	Logout(ctx context.Context, token string) error
}

// Handler обрабатывает HTTP-запросы выхода.
type Handler struct {
	log         *slog.Logger
	authService Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, authService Service) *Handler {
	return &Handler{
		log:         log,
		authService: authService,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.logout"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	token, _ := r.Context().Value(middlewarectx.Token).(string)

	if err := h.authService.Logout(r.Context(), token); err != nil {
		log.Error("logout failed", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to logout"))
		return
	}

	log.Info("logout success")
	render.JSON(w, r, response.OKWithData(map[string]any{
		"message": "logged out",
	}))
}
