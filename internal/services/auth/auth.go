// Package services содержит логику бизнес-уровня для работы с пользователями и аутентификацией.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/session-authority/internal/lib/password"
	"github.com/magabrotheeeer/session-authority/internal/models"
	"github.com/magabrotheeeer/session-authority/internal/session"
	"github.com/magabrotheeeer/session-authority/internal/storage"
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// RegisterUser сохраняет нового пользователя и возвращает его UID.
	RegisterUser(ctx context.Context, user models.User) (string, error)

	// GetUserByUsername возвращает пользователя по имени или ошибку, если не найден.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// AuthService отвечает за регистрацию, вход, проверку и отзыв сессий,
// а также за проверку роли.
type AuthService struct {
	users      UserRepository
	sessions   session.Manager
	bcryptCost int
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, sessions session.Manager, bcryptCost int) *AuthService {
	return &AuthService{
		users:      users,
		sessions:   sessions,
		bcryptCost: bcryptCost,
	}
}

// Register создает нового пользователя с хэшированием пароля и дефолтной ролью "user".
// Конфликт имени отображается в ErrUserExists; уникальность имени
// обеспечивает хранилище, предварительной проверки нет.
func (s *AuthService) Register(ctx context.Context, username, rawPassword string) (string, error) {
	const op = "services.auth.Register"
	hashed, err := password.GetHash(rawPassword, s.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	user := models.User{
		Username:     username,
		PasswordHash: hashed,
		Role:         models.RoleUser, // дефолтная роль при регистрации
	}
	uid, err := s.users.RegisterUser(ctx, user)
	if err != nil {
		if errors.Is(err, storage.ErrUserExists) {
			return "", fmt.Errorf("%s: %w", op, ErrUserExists)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return uid, nil
}

// Login проверяет пароль пользователя и выдает сессионный токен.
// Несуществующее имя и неверный пароль дают одинаковую ошибку
// ErrInvalidCredentials, чтобы не раскрывать список пользователей.
func (s *AuthService) Login(ctx context.Context, username, rawPassword string) (token, role string, err error) {
	const op = "services.auth.Login"
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return "", "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}
		return "", "", fmt.Errorf("%s: %w", op, err)
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}
	token, err = s.sessions.Issue(ctx, user.Username, user.Role)
	if err != nil {
		return "", "", fmt.Errorf("%s: %w", op, err)
	}
	return token, user.Role, nil
}

// ValidateToken проверяет сессионный токен и возвращает идентичность владельца.
func (s *AuthService) ValidateToken(ctx context.Context, token string) (*models.Identity, error) {
	const op = "services.auth.ValidateToken"
	identity, err := s.sessions.Verify(ctx, token)
	if err != nil {
		if errors.Is(err, session.ErrTokenInvalid) {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return identity, nil
}

// Logout отзывает сессионный токен. Неизвестный токен — no-op.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	const op = "services.auth.Logout"
	if err := s.sessions.Revoke(ctx, token); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Authorize проверяет, что роль идентичности точно совпадает с требуемой.
// Иерархии ролей нет: admin не проходит проверку на user.
func (s *AuthService) Authorize(identity *models.Identity, requiredRole string) error {
	const op = "services.auth.Authorize"
	if identity == nil || identity.Role != requiredRole {
		return fmt.Errorf("%s: %w", op, ErrForbidden)
	}
	return nil
}
