package sentry

import (
	"fmt"
	"net/http"
	"time"

	"club-content-api/config"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
)

// StatusError 带 HTTP 状态码的错误，用于判断是否需要上报
type StatusError interface {
	error
	HTTPStatus() int
}

// Init 未配置 DSN 时跳过
func Init(release string) error {
	cfg := config.Get()
	if cfg.Sentry.Dsn == "" {
		return nil
	}

	tracesSampleRate := cfg.Sentry.SampleRate
	if tracesSampleRate <= 0 {
		tracesSampleRate = 1.0
	}
	environment := cfg.Sentry.Environment
	if environment == "" {
		environment = string(cfg.Mode)
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.Sentry.Dsn,
		Environment:      environment,
		Release:          "club-content-api@" + release,
		SampleRate:       1.0, // 错误事件不采样
		EnableTracing:    true,
		TracesSampleRate: tracesSampleRate,
		EnableLogs:       true,
	})
	if err != nil {
		return fmt.Errorf("sentry initialization failed: %w", err)
	}
	return nil
}

// Middleware 未配置 DSN 时返回空中间件
func Middleware() gin.HandlerFunc {
	if config.Get().Sentry.Dsn == "" {
		return func(c *gin.Context) {
			c.Next()
		}
	}
	return sentrygin.New(sentrygin.Options{
		Repanic:         true, // 交给后面的 Recovery 处理
		WaitForDelivery: false,
		Timeout:         2 * time.Second,
	})
}

// CaptureException 只上报服务器错误
func CaptureException(c *gin.Context, err error) {
	if config.Get().Sentry.Dsn == "" || !shouldReport(err) {
		return
	}
	if hub := sentrygin.GetHubFromContext(c); hub != nil {
		hub.WithScope(func(scope *sentry.Scope) {
			scope.SetRequest(c.Request)
			scope.SetTag("path", c.FullPath())
			scope.SetTag("method", c.Request.Method)
			hub.CaptureException(err)
		})
	}
}

func shouldReport(err error) bool {
	if e, ok := err.(StatusError); ok {
		return e.HTTPStatus() >= http.StatusInternalServerError
	}
	return true
}

func Flush(timeout time.Duration) {
	sentry.Flush(timeout)
}
