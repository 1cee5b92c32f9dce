package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/session-authority/internal/models"
)

// Opaque реализует Manager поверх токен-хранилища (stateful-стратегия).
// Токен — случайная uuid-строка, непригодная для подбора; запись сессии
// живет в Store и проверяется по сроку выдачи.
type Opaque struct {
	store Store
	ttl   time.Duration
	now   func() time.Time
}

// NewOpaque создает менеджер непрозрачных токенов поверх хранилища.
func NewOpaque(store Store, ttl time.Duration) *Opaque {
	return &Opaque{
		store: store,
		ttl:   ttl,
		now:   time.Now,
	}
}

// NewOpaqueWithClock создает Opaque с заданным источником времени.
// Используется в тестах для проверки истечения без реальных задержек.
func NewOpaqueWithClock(store Store, ttl time.Duration, now func() time.Time) *Opaque {
	return &Opaque{
		store: store,
		ttl:   ttl,
		now:   now,
	}
}

// Issue генерирует новый токен и сохраняет запись сессии в хранилище.
func (o *Opaque) Issue(ctx context.Context, username, role string) (string, error) {
	const op = "session.Opaque.Issue"
	token := uuid.NewString()
	sess := models.Session{
		Username: username,
		Role:     role,
		IssuedAt: o.now().UTC(),
	}
	if err := o.store.Save(ctx, token, sess, o.ttl); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return token, nil
}

// Verify ищет токен в хранилище и проверяет срок действия.
// Истёкшая запись удаляется непосредственно при проверке (ленивая
// эвакуация), после чего токен считается невалидным.
func (o *Opaque) Verify(ctx context.Context, token string) (*models.Identity, error) {
	const op = "session.Opaque.Verify"
	sess, err := o.store.Get(ctx, token)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrTokenInvalid)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if o.now().UTC().Sub(sess.IssuedAt) > o.ttl {
		_ = o.store.Delete(ctx, token)
		return nil, fmt.Errorf("%s: %w", op, ErrTokenInvalid)
	}
	return &models.Identity{
		Username: sess.Username,
		Role:     sess.Role,
	}, nil
}

// Revoke удаляет запись сессии. Повторный отзыв и отзыв неизвестного
// токена проходят без ошибки.
func (o *Opaque) Revoke(ctx context.Context, token string) error {
	const op = "session.Opaque.Revoke"
	if err := o.store.Delete(ctx, token); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
