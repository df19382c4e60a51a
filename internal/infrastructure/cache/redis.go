package cache

import (
	"context"
	"time"

	"finbook-backend/internal/config"

	"github.com/redis/go-redis/v9"
)

// OpenRedis connects the idempotency lock store and fails fast when it is
// unreachable; the API does not start without it.
func OpenRedis(cfg config.RedisConfig) (*redis.Client, error) {
	r := redis.NewClient(&redis.Options{Addr: cfg.Addr, DB: cfg.DB})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := r.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return r, nil
}
