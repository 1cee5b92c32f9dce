// Package me реализует защищённый HTTP-обработчик, возвращающий идентичность
// владельца токена. Ставится за AuthMiddleware и читает username и роль из контекста.
package me

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/session-authority/internal/http/middlewarectx"
	"github.com/magabrotheeeer/session-authority/internal/http/response"
)

// Handler обрабатывает запросы идентичности текущего пользователя.
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
	const op = "handlers.me"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	username, _ := r.Context().Value(middlewarectx.User).(string)
	role, _ := r.Context().Value(middlewarectx.Role).(string)

	log.Info("identity requested", slog.String("username", username))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"username": username,
		"role":     role,
	}))
}
