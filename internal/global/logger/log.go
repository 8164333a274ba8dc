package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"sync"

	"club-content-api/config"

	sentryslog "github.com/getsentry/sentry-go/slog"
	slogmulti "github.com/samber/slog-multi"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	instance *slog.Logger
	once     sync.Once
)

// Get 获取全局 Logger 实例
func Get() *slog.Logger {
	once.Do(func() {
		instance = build(config.Get())
	})
	return instance
}

func build(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		AddSource: cfg.Mode == config.ModeRelease,
		Level:     getLogLevel(cfg.Log.Level),
	}

	var handler slog.Handler
	if cfg.Mode == config.ModeRelease && cfg.Log.FilePath != "" {
		// release 模式写文件并轮转
		handler = slog.NewJSONHandler(&lumberjack.Logger{
			Filename:   cfg.Log.FilePath,
			MaxSize:    cfg.Log.MaxSize,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAge:     cfg.Log.MaxAge,
			Compress:   cfg.Log.Compress,
		}, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	if cfg.Sentry.Dsn != "" {
		sentryHandler := sentryslog.Option{
			// Error 作为 Event 上报，Warn 及以上作为 Log 上报
			EventLevel: []slog.Level{slog.LevelError},
			LogLevel:   []slog.Level{slog.LevelWarn, slog.LevelError},
			AddSource:  cfg.Mode == config.ModeRelease,
		}.NewSentryHandler(context.Background())
		handler = slogmulti.Fanout(handler, sentryHandler)
	}

	return slog.New(handler).With(
		"app_name", "club-content-api",
		"env", string(cfg.Mode),
	)
}

// New 创建带模块字段的 Logger
func New(module string) *slog.Logger {
	return Get().With("module", module)
}

// WithContext 附带请求来源 IP，使其在 Sentry 日志中可见
func WithContext(base *slog.Logger, c interface {
	ClientIP() string
	GetHeader(string) string
}) *slog.Logger {
	l := base.With("client_ip", c.ClientIP())
	if forwardedFor := c.GetHeader("X-Forwarded-For"); forwardedFor != "" {
		l = l.With("x_forwarded_for", forwardedFor)
	}
	return l
}

func getLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
