package session

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/session-authority/internal/lib/jwt"
	"github.com/magabrotheeeer/session-authority/internal/models"
)

// Signed реализует Manager поверх подписанных JWT (stateless-стратегия).
// Валидность токена целиком выводится из подписи и встроенного срока
// действия, серверного состояния нет.
type Signed struct {
	maker jwt.Maker
}

// NewSigned создает менеджер подписанных токенов поверх jwt.Maker.
func NewSigned(maker jwt.Maker) *Signed {
	return &Signed{maker: maker}
}

// Issue выдает подписанный токен с username и role в claims.
func (s *Signed) Issue(_ context.Context, username, role string) (string, error) {
	const op = "session.Signed.Issue"
	token, err := s.maker.GenerateToken(username, role)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return token, nil
}

// Verify проверяет подпись и срок действия токена.
func (s *Signed) Verify(_ context.Context, token string) (*models.Identity, error) {
	const op = "session.Signed.Verify"
	claims, err := s.maker.ParseToken(token)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrTokenInvalid)
	}
	return &models.Identity{
		Username: claims.Username,
		Role:     claims.Role,
	}, nil
}

// Revoke у stateless-токенов является no-op: без дополнительного
// denylist отозвать подписанный токен до истечения срока нельзя.
// Это принятое ограничение стратегии.
func (s *Signed) Revoke(_ context.Context, _ string) error {
	return nil
}
