package storage

import (
	"context"
	"errors"
	"fmt"
	"portfolio/internal/structures"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "portfolio:"

// RedisStore keeps each key as a plain redis string with no expiry.
type RedisStore struct {
	client  *redis.Client
	timeout time.Duration
}

func NewRedisStore(conf structures.RedisConfig) (*RedisStore, error) {
	timeout := conf.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	client := redis.NewClient(&redis.Options{
		Addr:     conf.Addr,
		Password: conf.Password,
		DB:       conf.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: redis ping %s: %v", ErrStoreUnavailable, conf.Addr, err)
	}

	return &RedisStore{client: client, timeout: timeout}, nil
}

func (r *RedisStore) Get(key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	b, err := r.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (r *RedisStore) Set(key string, value []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	return r.client.Set(ctx, redisKeyPrefix+key, value, 0).Err()
}

func (r *RedisStore) Delete(key string) error {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	return r.client.Del(ctx, redisKeyPrefix+key).Err()
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}
