package middleware

import (
	"log/slog"
	"strconv"
	"time"

	"club-content-api/internal/global/metrics"
	"club-content-api/internal/global/response"

	sentrylib "github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
)

// Logger 记录请求日志并计数；路由未匹配时 route 记为 unmatched
func Logger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		metrics.HTTPRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()

		if log == nil {
			return
		}
		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"query", c.Request.URL.RawQuery,
			"status", status,
			"latency", time.Since(start).String(),
			"client_ip", c.ClientIP(),
		}
		if v, ok := c.Get(response.ErrorContextKey); ok {
			if err, ok := v.(error); ok {
				attrs = append(attrs, "error", err.Error())
			}
		}
		if status >= 500 {
			log.Error("HTTP Request", attrs...)
			return
		}
		log.Info("HTTP Request", attrs...)
	}
}

// SentryEnrichIP 放在 sentry 中间件之后，后续上报都带上客户端 IP
func SentryEnrichIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		if hub := sentrygin.GetHubFromContext(c); hub != nil {
			hub.ConfigureScope(func(scope *sentrylib.Scope) {
				clientIP := c.ClientIP()
				scope.SetUser(sentrylib.User{IPAddress: clientIP})
				scope.SetTag("client_ip", clientIP)
				if forwardedFor := c.GetHeader("X-Forwarded-For"); forwardedFor != "" {
					scope.SetTag("x_forwarded_for", forwardedFor)
				}
			})
		}
		c.Next()
	}
}
