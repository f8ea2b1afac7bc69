package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
)

// RedisKeyValue stores entries as plain Redis strings without expiration.
type RedisKeyValue struct {
	client *redis.Client
	prefix string
}

// NewRedisKeyValue creates a backend that namespaces its keys with prefix.
func NewRedisKeyValue(client *redis.Client, prefix string) *RedisKeyValue {
	return &RedisKeyValue{
		client: client,
		prefix: prefix,
	}
}

func (r *RedisKeyValue) key(k string) string {
	return fmt.Sprintf("%s:%s", r.prefix, k)
}

func (r *RedisKeyValue) Get(ctx context.Context, k string) ([]byte, error) {
	key := r.key(k)

	val, err := r.client.Get(ctx, key).Bytes()
	logger.Log.Debugw("redis get",
		"key", key,
		"size", len(val),
		"error", err,
	)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrKeyNotFound
		}
		return nil, err
	}
	return val, nil
}

// Put writes all entries in one MULTI/EXEC block.
func (r *RedisKeyValue) Put(ctx context.Context, entries map[string][]byte) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for k, v := range entries {
			pipe.Set(ctx, r.key(k), v, 0)
		}
		return nil
	})

	logger.Log.Debugw("redis put",
		"prefix", r.prefix,
		"keys", len(entries),
		"error", err,
	)
	return err
}
