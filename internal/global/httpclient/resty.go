package httpclient

import (
	"time"

	"club-content-api/config"
	"club-content-api/internal/global/sentry/tracing"

	"github.com/go-resty/resty/v2"
)

var Client *resty.Client

func Init() {
	Client = New(config.Get().Blog)
	if tracing.IsEnabled() {
		tracing.SetupRestyTracing(Client)
	}
}

// New 外部正文存储的客户端，超时未配置时为 10s，响应体超过上限时请求失败
func New(cfg config.Blog) *resty.Client {
	timeout := time.Duration(cfg.MarkdownTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	limit := cfg.MarkdownMaxBytes
	if limit <= 0 {
		limit = config.DefaultMarkdownMaxBytes
	}
	return resty.New().
		SetTimeout(timeout).
		SetResponseBodyLimit(limit).
		SetHeader("User-Agent", "club-content-api")
}
