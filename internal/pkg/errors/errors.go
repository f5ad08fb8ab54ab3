package errors

import "errors"

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись или ресурс не найдены.
	ErrNotFound = errors.New("record not found")

	// ErrUnauthorized используется для ошибок аутентификации (нет учетных данных или они невалидны).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden используется, когда учетные данные валидны, но не дают доступа к ресурсу.
	ErrForbidden = errors.New("forbidden")

	// ErrValidation используется для ошибок валидации входных данных.
	ErrValidation = errors.New("validation failed")

	// ErrConflict используется при нарушении уникальности или конфликте состояния
	// (например, повторный деплой расписания на ту же игру).
	ErrConflict = errors.New("resource state conflict")

	// ErrRateLimited используется при превышении лимита запросов.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrUnavailable используется, когда хранилище недоступно или запрос превысил таймаут.
	// Вызывающая сторона может повторить запрос с backoff.
	ErrUnavailable = errors.New("dependency unavailable")
)
