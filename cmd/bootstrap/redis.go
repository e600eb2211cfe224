package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/notfound999/reservations/internal/handler/middleware"
	"github.com/notfound999/reservations/internal/pkg/config"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
		NewBookingRateLimiter,
	),
)

// NewRedisClient returns nil when REDIS_ADDR is unset; redis-backed
// features are disabled in that case.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config) *redis.Client {
	if cfg.Redis.Addr == "" {
		slog.Info("redis disabled, no address configured")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client
}

func NewBookingRateLimiter(client *redis.Client, cfg config.Config) *middleware.RedisRateLimiter {
	if client == nil {
		return nil
	}
	return middleware.NewRedisRateLimiter(client, cfg.RateLimit.BookingPerMinute, time.Minute, "booking")
}
