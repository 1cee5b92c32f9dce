// Package middlewarectx содержит HTTP middleware для проверки сессионных токенов.
//
// AuthMiddleware проверяет наличие и валидность bearer-токена в заголовке
// Authorization и в случае успеха добавляет в контекст имя пользователя
// и роль для дальнейшего использования в обработчиках.
//
// В случае ошибки проверки возвращает HTTP 401 Unauthorized; RequireRole
// дополнительно возвращает 403 Forbidden при несовпадении роли.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/session-authority/internal/http/response"
	"github.com/magabrotheeeer/session-authority/internal/lib/sl"
	"github.com/magabrotheeeer/session-authority/internal/models"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

const (
	// User — ключ для имени пользователя в контексте
	User Key = "username"
	// Role — ключ для роли пользователя в контексте
	Role Key = "role"
	// Token — ключ для «сырого» токена в контексте, нужен logout-обработчику
	Token Key = "token"
)

// Service описывает интерфейс сервиса для валидации сессионного токена.
type Service interface {
	ValidateToken(ctx context.Context, token string) (*models.Identity, error)
}

// AuthMiddleware возвращает HTTP middleware, который проверяет bearer-токен
// в заголовке Authorization.
//
// Если токен валиден, добавляет имя пользователя, роль и сам токен в контекст
// запроса, иначе возвращает ошибку с HTTP статусом 401 Unauthorized.
func AuthMiddleware(authService Service, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.AuthMiddleware"
			authHeader := r.Header.Get("Authorization")

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			if !strings.HasPrefix(authHeader, "Bearer ") {
				log.Error("missing or invalid authorization header")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("missing or invalid authorization header"))
				return
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			identity, err := authService.ValidateToken(r.Context(), tokenStr)
			if err != nil {
				log.Error("invalid or expired token", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid or expired token"))
				return
			}
			ctx := context.WithValue(r.Context(), User, identity.Username)
			ctx = context.WithValue(ctx, Role, identity.Role)
			ctx = context.WithValue(ctx, Token, tokenStr)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
