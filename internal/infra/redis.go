package infra

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"talentflow/internal/config"
)

// InitRedis connects to Redis and verifies the connection with a PING.
func InitRedis(ctx context.Context, cfg config.RedisConfig, log *zap.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}
	log.Info("connected to redis", zap.String("addr", cfg.Addr))
	return client, nil
}

func CloseRedis(client *redis.Client, log *zap.Logger) {
	if err := client.Close(); err != nil {
		log.Error("error closing redis connection", zap.Error(err))
		return
	}
	log.Info("redis connection closed")
}
