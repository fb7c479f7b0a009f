package redisstore

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"marketplace-bff/internal/storage"

	"github.com/redis/go-redis/v9"
)

// KVRepo implements storage.KVStore on Redis strings.
type KVRepo struct {
	rdb    *redis.Client
	prefix string
}

// NewKVRepo creates a KVRepo. Every key is stored as prefix+key.
func NewKVRepo(rdb *redis.Client, prefix string) *KVRepo {
	return &KVRepo{rdb: rdb, prefix: prefix}
}

// Compile-time check to ensure KVRepo implements KVStore
var _ storage.KVStore = (*KVRepo)(nil)

func (r *KVRepo) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.rdb.Get(ctx, r.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error reading key %s from redis: %v\n", key, err)
		return nil, fmt.Errorf("failed to get key %s: %w", key, err)
	}
	return val, nil
}

func (r *KVRepo) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := r.rdb.Set(ctx, r.prefix+key, value, ttl).Err(); err != nil {
		log.Printf("Error writing key %s to redis: %v\n", key, err)
		return fmt.Errorf("failed to set key %s: %w", key, err)
	}
	return nil
}

func (r *KVRepo) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = r.prefix + k
	}
	if err := r.rdb.Del(ctx, full...).Err(); err != nil {
		log.Printf("Error deleting keys %v from redis: %v\n", keys, err)
		return fmt.Errorf("failed to delete keys: %w", err)
	}
	return nil
}
