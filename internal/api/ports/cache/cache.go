// Package cache определяет интерфейс кэша.
package cache

import (
	"context"
	"time"
)

// Cache определяет базовые операции кэширования.
type Cache interface {
	// Get возвращает значение по ключу; пустую строку, если ключа нет.
	Get(ctx context.Context, key string) (string, error)

	// Set устанавливает значение с временем жизни; нулевой ttl
	// заменяется значением по умолчанию.
	Set(ctx context.Context, key string, value string, ttl time.Duration) error

	Delete(ctx context.Context, key string) error

	Close() error
}
