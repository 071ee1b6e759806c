package store

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// Redis adapts a redis client to the Store interface.  Values are plain
// string blobs with no TTL; the collections live until an operator clears
// them.
type Redis struct {
	rdb *redis.Client
}

// NewRedis wraps the given client.  The client must be non-nil; callers
// that failed to connect should use Memory instead.
func NewRedis(rdb *redis.Client) *Redis {
	if rdb == nil {
		panic("nil redis client passed to store.NewRedis")
	}
	return &Redis{rdb: rdb}
}

func (r *Redis) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := r.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (r *Redis) Set(ctx context.Context, key, value string) error {
	return r.rdb.Set(ctx, key, value, 0).Err()
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	return r.rdb.Del(ctx, key).Err()
}
