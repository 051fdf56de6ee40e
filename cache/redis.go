package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// Redis backs the Store interface with a shared Redis instance so cache
// hits survive process restarts and are shared between replicas.
type Redis struct {
	client *redis.Client
}

// NewRedis connects to the given Redis URL (redis://...) and verifies the
// connection.
func NewRedis(ctx context.Context, url string) (*Redis, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &Redis{client: client}, nil
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

func (r *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

// Reset clears every cached entry. Used after bulk business-data changes;
// there is no targeted per-key invalidation.
func (r *Redis) Reset(ctx context.Context) error {
	return r.client.FlushDB(ctx).Err()
}

// Close releases the underlying connection pool.
func (r *Redis) Close() error {
	return r.client.Close()
}
