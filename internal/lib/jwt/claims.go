// Package jwt реализует генерацию и парсинг JWT токенов с пользовательскими claim полями.
//
// Maker определяет интерфейс для создания и проверки JWT токенов с username и role.
// MakerImpl — конкретная реализация с использованием секретного ключа и срока жизни токена.
package jwt

import (
	"time"
)

// Maker описывает интерфейс для генерации и парсинга JWT токенов.
//
// Методы позволяют создавать токен с указанием username и роли,
// а также разбирать токен и извлекать из него кастомные данные.
type Maker interface {
	// GenerateToken создаёт подписанный токен с username и role
	GenerateToken(username, role string) (string, error)
	// ParseToken возвращает *CustomClaims с username и role
	ParseToken(tokenStr string) (*CustomClaims, error)
}

// MakerImpl реализует интерфейс Maker с использованием секретного ключа
// и времени жизни токена (TTL).
type MakerImpl struct {
	secretKey string           // Секретный ключ для подписи токенов.
	tokenTTL  time.Duration    // Время жизни токена.
	now       func() time.Time // Источник времени, подменяется в тестах.
}

// NewJWTMaker создаёт новый экземпляр MakerImpl на основе секретного ключа и TTL.
func NewJWTMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
		now:       time.Now,
	}
}

// NewJWTMakerWithClock создаёт MakerImpl с заданным источником времени.
// Используется в тестах для проверки истечения токена без реальных задержек.
func NewJWTMakerWithClock(secretKey string, ttl time.Duration, now func() time.Time) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
		now:       now,
	}
}
