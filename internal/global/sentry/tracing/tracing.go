// Package tracing 将 Sentry 性能追踪接入 GORM、Redis 与 Resty
package tracing

import (
	"context"

	"club-content-api/config"

	"github.com/getsentry/sentry-go"
)

func IsEnabled() bool {
	return config.Get().Sentry.Dsn != ""
}

// startChild 在 ctx 中已有 span 时创建子 span，否则返回 nil
func startChild(ctx context.Context, operation, description string) *sentry.Span {
	if ctx == nil {
		return nil
	}
	parent := sentry.SpanFromContext(ctx)
	if parent == nil {
		return nil
	}
	span := parent.StartChild(operation)
	span.Description = description
	return span
}
