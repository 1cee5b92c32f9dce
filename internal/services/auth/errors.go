package services

import "errors"

// Таксономия ошибок сервиса аутентификации. Все ошибки терминальны
// для запроса, автоматических повторов нет; HTTP-слой отображает их
// в 400/401/401/403 соответственно.
var (
	// ErrUserExists — конфликт регистрации: имя уже занято.
	ErrUserExists = errors.New("username already exists")

	// ErrInvalidCredentials — отказ входа. Не раскрывает, что именно
	// неверно: несуществующее имя и неверный пароль неразличимы.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken — отсутствующий, поддельный, истёкший или
	// отозванный токен; требуется повторная аутентификация.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrForbidden — аутентифицирован, но роль не подходит.
	ErrForbidden = errors.New("insufficient role")
)
