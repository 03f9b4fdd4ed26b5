package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// NewRedisClient connects to Redis using the configured address. Returns nil
// when the server is unreachable; callers run without caching in that case.
func NewRedisClient(addr, password string) *redis.Client {
	if addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil
	}

	return client
}
