// Package tokenstore implementa ports.TokenStore en Redis y en memoria.
package tokenstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/dulceria-lilis/internal/application/ports"
)

const keyPrefix = "lilis:pwreset:"

var _ ports.TokenStore = (*RedisStore)(nil)

// NewRedis crea el cliente y valida la conexión con PING.
func NewRedis(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis: parse URL: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis: ping: %w", err)
	}
	return rdb, nil
}

// RedisStore guarda cada token como clave con TTL.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore construye el store sobre un cliente ya conectado.
func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

// Save SET key userID EX ttl.
func (s *RedisStore) Save(ctx context.Context, token, userID string, ttl time.Duration) error {
	if err := s.rdb.Set(ctx, keyPrefix+token, userID, ttl).Err(); err != nil {
		return fmt.Errorf("redis: guardar token: %w", err)
	}
	return nil
}

// Consume GETDEL: lee y borra en una sola operación.
func (s *RedisStore) Consume(ctx context.Context, token string) (string, error) {
	userID, err := s.rdb.GetDel(ctx, keyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("redis: consumir token: %w", err)
	}
	return userID, nil
}
