package content

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"club-content-api/internal/global/cache"
	"club-content-api/internal/global/metrics"
)

const (
	KeyClubStats     = "club_stats"
	KeyFeaturedPosts = "featured_blog_posts"
	keyMarkdown      = "blog_markdown:"
)

// GetOrCompute 先读缓存，未命中时计算并尽力回写。
// 缓存读失败或内容无法解码都按未命中处理；回写失败只记日志，仍返回计算结果。
func GetOrCompute[T any](ctx context.Context, store cache.Store, log *slog.Logger, key string, ttl time.Duration, compute func(context.Context) (T, error)) (T, error) {
	label := metricLabel(key)

	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		log.Warn("读取缓存失败，按未命中处理", "key", key, "error", err)
	} else if ok {
		var v T
		if json.Unmarshal([]byte(raw), &v) == nil {
			metrics.CacheLookups.WithLabelValues(label, metrics.ResultHit).Inc()
			return v, nil
		}
	}
	metrics.CacheLookups.WithLabelValues(label, metrics.ResultMiss).Inc()

	v, err := compute(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	bestEffort(log, metrics.OpCachePut, func() error {
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		return store.Put(ctx, key, string(data), ttl)
	}, "key", key)
	return v, nil
}

// bestEffort 执行不影响主流程的副作用，失败只记录
func bestEffort(log *slog.Logger, op string, fn func() error, args ...any) {
	if err := fn(); err != nil {
		metrics.SideEffectFailures.WithLabelValues(op).Inc()
		log.Warn("副作用执行失败", append([]any{"op", op, "error", err}, args...)...)
	}
}

// metricLabel 按前缀聚合带参数的键，避免指标基数过高
func metricLabel(key string) string {
	if i := strings.IndexByte(key, ':'); i >= 0 {
		return key[:i]
	}
	return key
}
