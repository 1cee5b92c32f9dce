// Package admin реализует защищённый HTTP-обработчик, доступный только роли admin.
// Проверку роли выполняет middleware RequireRole, обработчик лишь отвечает данными.
package admin

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/session-authority/internal/http/middlewarectx"
	"github.com/magabrotheeeer/session-authority/internal/http/response"
)

// Handler обрабатывает запросы административного раздела.
type Handler struct {
	log *slog.Logger
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger) *Handler {
	return &Handler{
		log: log,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	username, _ := r.Context().Value(middlewarectx.User).(string)

	log.Info("admin data requested", slog.String("username", username))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"username": username,
		"message":  "admin access granted",
	}))
}
