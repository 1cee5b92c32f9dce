// Package app собирает сервис: хранилище, менеджер сессий, маршруты и HTTP-сервер.
package app

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/magabrotheeeer/session-authority/internal/http/handlers/admin"
	"github.com/magabrotheeeer/session-authority/internal/http/handlers/health"
	"github.com/magabrotheeeer/session-authority/internal/http/handlers/login"
	"github.com/magabrotheeeer/session-authority/internal/http/handlers/logout"
	"github.com/magabrotheeeer/session-authority/internal/http/handlers/me"
	"github.com/magabrotheeeer/session-authority/internal/http/handlers/register"
	"github.com/magabrotheeeer/session-authority/internal/http/middlewarectx"
	"github.com/magabrotheeeer/session-authority/internal/models"
	services "github.com/magabrotheeeer/session-authority/internal/services/auth"
)

// RegisterRoutes настраивает все маршруты сервиса.
//
// /register и /login прикрыты ограничителем частоты, защищённые маршруты
// идут через AuthMiddleware, а /api/admin дополнительно через RequireRole.
func RegisterRoutes(router chi.Router, log *slog.Logger, authService *services.AuthService) {
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)

	authLimiter := middlewarectx.RateLimitMiddleware(log, rate.Limit(5), 10)

	router.Get("/health", health.New(log).ServeHTTP)
	router.Handle("/metrics", promhttp.Handler())

	router.With(authLimiter).Post("/register", register.New(log, authService).ServeHTTP)
	router.With(authLimiter).Post("/login", login.New(log, authService).ServeHTTP)

	router.Group(func(r chi.Router) {
		r.Use(middlewarectx.AuthMiddleware(authService, log))

		r.Post("/logout", logout.New(log, authService).ServeHTTP)
		r.Get("/api/me", me.New(log).ServeHTTP)
		r.With(middlewarectx.RequireRole(models.RoleAdmin, log)).
			Get("/api/admin", admin.New(log).ServeHTTP)
	})
}
