package store

import (
	"context"
	"strings"

	"github.com/go-redis/redis/v8"
)

// RedisBackend stores collection blobs in redis for deployments that
// share one store between instances. The last-writer-wins caveat of
// the collection layer applies unchanged; redis adds no locking.
type RedisBackend struct {
	rdb *redis.Client
}

func NewRedisBackend(rdb *redis.Client) *RedisBackend {
	return &RedisBackend{rdb: rdb}
}

func (b *RedisBackend) Get(key string) ([]byte, error) {
	raw, err := b.rdb.Get(context.Background(), key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return raw, nil
}

func (b *RedisBackend) Set(key string, value []byte) error {
	err := b.rdb.Set(context.Background(), key, value, 0).Err()
	if err != nil && strings.Contains(err.Error(), "OOM") {
		return ErrQuotaExceeded
	}
	return err
}

func (b *RedisBackend) Delete(key string) error {
	return b.rdb.Del(context.Background(), key).Err()
}

func (b *RedisBackend) Close() error {
	return b.rdb.Close()
}
