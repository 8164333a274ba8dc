package tracing

import (
	"net/url"

	"club-content-api/config"

	"github.com/getsentry/sentry-go"
	"github.com/go-resty/resty/v2"
)

// SetupRestyTracing 为拉取 markdown 正文等外部请求创建 span，并透传 sentry-trace 头
func SetupRestyTracing(client *resty.Client) {
	if !config.Get().Sentry.Tracing.TraceHTTPCalls {
		return
	}

	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		span := startChild(req.Context(), "http.client", req.Method+" "+sanitizeURL(req.URL))
		if span == nil {
			return nil
		}
		span.SetData("http.request.method", req.Method)
		req.SetHeader("sentry-trace", span.ToSentryTrace())
		if baggage := span.ToBaggage(); baggage != "" {
			req.SetHeader("baggage", baggage)
		}
		req.SetContext(span.Context())
		return nil
	})

	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		span := sentry.SpanFromContext(resp.Request.Context())
		if span == nil {
			return nil
		}
		span.SetData("http.response.status_code", resp.StatusCode())
		if resp.StatusCode() >= 400 {
			span.Status = sentry.HTTPtoSpanStatus(resp.StatusCode())
		} else {
			span.Status = sentry.SpanStatusOK
		}
		span.Finish()
		return nil
	})

	client.OnError(func(req *resty.Request, err error) {
		if req == nil {
			return
		}
		span := sentry.SpanFromContext(req.Context())
		if span == nil {
			return
		}
		span.Status = sentry.SpanStatusInternalError
		span.SetData("http.error", err.Error())
		span.Finish()
	})
}

// sanitizeURL 去掉查询参数，预签名链接的签名不进入 span
func sanitizeURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "unknown"
	}
	return u.Scheme + "://" + u.Host + u.Path
}
