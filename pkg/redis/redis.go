package redis

import (
	"context"

	"campus-rewards/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("redis",
	fx.Provide(New),
)

// New returns a connected client, or nil when redis is disabled. Consumers
// treat a nil client as "no cache" and fall back to direct reads.
func New(lc fx.Lifecycle, c *config.Config) *redis.Client {
	if !c.Redis.Enable {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:        c.Redis.Addr,
		Password:    c.Redis.Password,
		DB:          c.Redis.DB,
		PoolSize:    c.Redis.PoolSize,
		PoolTimeout: c.Redis.PoolTimeout,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		zap.L().Warn("[Redis] Redis not reachable, continuing without cache",
			zap.String("addr", c.Redis.Addr), zap.Error(err))
	} else {
		zap.L().Info("[Redis] Connected to Redis", zap.String("addr", c.Redis.Addr))
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return rdb.Close()
		},
	})

	return rdb
}
