// Package models содержит доменную модель пользователя и сессии:
// учётную запись с хэшем пароля и ролью, запись активной сессии
// и идентичность, возвращаемую после проверки токена.
// Структуры используются в бизнес‑логике и при работе с хранилищами.
package models

import "time"

// Роли пользователей. Проверка доступа выполняется строгим равенством,
// иерархии ролей нет: admin не проходит туда, где требуется user.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User представляет зарегистрированного пользователя системы.
type User struct {
	UID          string    // Уникальный идентификатор пользователя
	Username     string    // Имя пользователя (уникальное)
	PasswordHash string    // Хэш пароля пользователя
	Role         string    // Роль пользователя, admin или user
	CreatedAt    time.Time // Дата создания учётной записи
}

// Session представляет запись активной сессии в токен-хранилище
// (используется только opaque-стратегией).
type Session struct {
	Username string    `json:"username"`  // Владелец сессии
	Role     string    `json:"role"`      // Роль на момент выдачи токена
	IssuedAt time.Time `json:"issued_at"` // Время выдачи токена
}

// Identity — результат успешной проверки токена.
type Identity struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}
