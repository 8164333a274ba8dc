package tracing

import (
	"context"
	"net"
	"strings"
	"time"

	"club-content-api/config"

	"github.com/getsentry/sentry-go"
	"github.com/redis/go-redis/v9"
)

// RedisSentryHook 追踪缓存读写；未命中（redis.Nil）不算错误
type RedisSentryHook struct {
	slowThreshold time.Duration
}

func NewRedisSentryHook() *RedisSentryHook {
	ms := config.Get().Sentry.Tracing.RedisSlowThresholdMs
	return &RedisSentryHook{slowThreshold: time.Duration(ms) * time.Millisecond}
}

func (h *RedisSentryHook) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		return next(ctx, network, addr)
	}
}

func (h *RedisSentryHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		start := time.Now()
		span := startChild(ctx, "db.redis", strings.ToUpper(cmd.Name()))
		if span != nil {
			span.SetData("db.system", "redis")
			if key := commandKey(cmd); key != "" {
				span.SetData("cache.key", key)
			}
			ctx = span.Context()
		}

		err := next(ctx, cmd)
		h.finish(span, start, err)
		return err
	}
}

func (h *RedisSentryHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		start := time.Now()
		span := startChild(ctx, "db.redis.pipeline", "PIPELINE")
		if span != nil {
			span.SetData("db.system", "redis")
			span.SetData("redis.pipeline_length", len(cmds))
			ctx = span.Context()
		}

		err := next(ctx, cmds)
		h.finish(span, start, err)
		return err
	}
}

func (h *RedisSentryHook) finish(span *sentry.Span, start time.Time, err error) {
	if span == nil {
		return
	}
	if h.slowThreshold > 0 && time.Since(start) < h.slowThreshold {
		span.Sampled = sentry.SampledFalse
	}
	if err != nil && err != redis.Nil {
		span.Status = sentry.SpanStatusInternalError
		span.SetData("redis.error", err.Error())
	} else {
		span.Status = sentry.SpanStatusOK
	}
	span.Finish()
}

// commandKey 缓存键只有固定前缀，带参数的部分（如 slug）截掉
func commandKey(cmd redis.Cmder) string {
	args := cmd.Args()
	if len(args) < 2 {
		return ""
	}
	key, ok := args[1].(string)
	if !ok {
		return ""
	}
	if i := strings.IndexByte(key, ':'); i >= 0 {
		return key[:i+1] + "*"
	}
	return key
}
