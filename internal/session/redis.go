package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/magabrotheeeer/session-authority/internal/config"
	"github.com/magabrotheeeer/session-authority/internal/models"
)

// RedisStore — токен-хранилище поверх Redis. Срок жизни записи
// задается встроенным TTL ключа, поэтому истёкшие сессии Redis
// вычищает сам и отдельная уборка не требуется.
type RedisStore struct {
	Db *redis.Client
}

// NewRedisStore подключается к Redis и проверяет соединение.
func NewRedisStore(ctx context.Context, cfg config.RedisConnection) (*RedisStore, error) {
	const op = "session.NewRedisStore"
	db := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		Username:     cfg.User,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
	})

	if err := db.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &RedisStore{Db: db}, nil
}

const sessionKeyPrefix = "session:"

// Save сохраняет запись сессии с TTL ключа.
func (r *RedisStore) Save(ctx context.Context, token string, sess models.Session, ttl time.Duration) error {
	const op = "session.RedisStore.Save"
	jsonData, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := r.Db.Set(ctx, sessionKeyPrefix+token, jsonData, ttl).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Get возвращает запись сессии или ErrSessionNotFound,
// если ключ отсутствует или уже истёк.
func (r *RedisStore) Get(ctx context.Context, token string) (*models.Session, error) {
	const op = "session.RedisStore.Get"
	val, err := r.Db.Get(ctx, sessionKeyPrefix+token).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	var sess models.Session
	if err := json.Unmarshal([]byte(val), &sess); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &sess, nil
}

// Delete удаляет запись; удаление несуществующего ключа не ошибка.
func (r *RedisStore) Delete(ctx context.Context, token string) error {
	const op = "session.RedisStore.Delete"
	if err := r.Db.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
