package cache

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/DOUNIAre/AgriTECH-PROJECT-BACKEND/internal/config"
)

// Connect opens and verifies the Redis connection backing the dashboard
// cache. pingTimeout bounds the verification so a down Redis delays boot
// instead of hanging it.
func Connect(cfg config.RedisConfig, pingTimeout time.Duration) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return client, nil
}
