// Package cache 键值缓存：生产环境使用 Redis，未配置 Redis 时使用进程内缓存
package cache

import (
	"context"
	"time"

	"club-content-api/config"
	"club-content-api/internal/global/logger"
	"club-content-api/internal/global/sentry/tracing"

	"github.com/redis/go-redis/v9"
)

// Store 键值缓存接口。ttl <= 0 表示不设置过期时间
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Put(ctx context.Context, key, value string, ttl time.Duration) error
}

var KV Store

func Init() {
	log := logger.New("Cache")
	cfg := config.Get().Redis
	if cfg.Host == "" {
		log.Warn("Redis 未配置，使用进程内缓存")
		m := NewMemory()
		go m.Start()
		KV = m
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Host + ":" + cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if tracing.IsEnabled() {
		client.AddHook(tracing.NewRedisSentryHook())
	}
	if err := client.Ping(context.Background()).Err(); err != nil {
		// 缓存不可用不影响启动，读写失败时按未命中处理
		log.Error("Redis 连接失败", "error", err, "addr", cfg.Host+":"+cfg.Port)
	}
	KV = NewRedis(client)
}
