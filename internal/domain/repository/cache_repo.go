package repository

import (
	"context"
	"time"
)

// CacheRepository определяет методы для работы с кешем.
// Все операции принимают контекст вызывающего: чтение кеша должно
// укладываться в таймаут запроса, а не зависать.
type CacheRepository interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
	SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	GetJSON(ctx context.Context, key string, dest interface{}) error
}
