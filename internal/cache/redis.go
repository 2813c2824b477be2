package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Redis is a MoveCache backed by a Redis instance. All errors degrade
// to cache misses.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis connects to addr and verifies the connection with a ping.
// An unreachable Redis is reported to the caller so it can fall back to
// the no-op cache instead of failing startup.
func NewRedis(addr, password string, ttl time.Duration) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	return &Redis{client: client, ttl: ttl}, nil
}

func (r *Redis) Get(ctx context.Context, key string) (int, bool) {
	column, err := r.client.Get(ctx, key).Int()
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Str("key", key).Msg("move cache read failed")
		}
		return 0, false
	}
	return column, true
}

func (r *Redis) Set(ctx context.Context, key string, column int) {
	if err := r.client.Set(ctx, key, column, r.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("move cache write failed")
	}
}

func (r *Redis) Close() error {
	return r.client.Close()
}
