// Package session реализует выдачу, проверку и отзыв сессионных токенов.
//
// Поддерживаются две стратегии:
//   - signed — самодостаточный подписанный JWT, серверного состояния нет;
//   - opaque — случайный непрозрачный токен, сопоставленный записи сессии
//     в токен-хранилище (Store).
//
// Обе стратегии реализуют общий интерфейс Manager. Вызывающая сторона не
// различает причины отказа: подделка, истечение и отзыв дают одну ошибку.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/magabrotheeeer/session-authority/internal/models"
)

// ErrTokenInvalid возвращается при любом отказе проверки токена:
// неизвестный, испорченный, истёкший или отозванный токен.
var ErrTokenInvalid = errors.New("invalid or expired token")

// ErrSessionNotFound возвращается хранилищем, если токен отсутствует.
var ErrSessionNotFound = errors.New("session not found")

// Manager описывает жизненный цикл сессионного токена.
type Manager interface {
	// Issue выдает новый токен для пользователя с указанной ролью.
	Issue(ctx context.Context, username, role string) (string, error)

	// Verify проверяет токен и возвращает идентичность владельца.
	// Любой невалидный токен дает ошибку, оборачивающую ErrTokenInvalid.
	Verify(ctx context.Context, token string) (*models.Identity, error)

	// Revoke отзывает токен. Отзыв неизвестного или уже отозванного
	// токена — no-op, не ошибка.
	Revoke(ctx context.Context, token string) error
}

// Store описывает контракт токен-хранилища для opaque-стратегии.
// Реализация обязана выдерживать конкурентные Save/Get/Delete.
type Store interface {
	// Save сохраняет запись сессии под ключом token со сроком жизни ttl.
	Save(ctx context.Context, token string, sess models.Session, ttl time.Duration) error

	// Get возвращает запись сессии или ErrSessionNotFound.
	Get(ctx context.Context, token string) (*models.Session, error)

	// Delete удаляет запись; отсутствие записи не является ошибкой.
	Delete(ctx context.Context, token string) error
}
