package content

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// ErrMarkdownUnavailable 正文无法从外部存储获取
var ErrMarkdownUnavailable = errors.New("markdown content unavailable")

type MarkdownSource interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// HTTPMarkdown 通过 HTTP 拉取托管在外部存储上的 markdown 正文
type HTTPMarkdown struct {
	client *resty.Client
}

func NewHTTPMarkdown(client *resty.Client) *HTTPMarkdown {
	return &HTTPMarkdown{client: client}
}

func (h *HTTPMarkdown) Fetch(ctx context.Context, url string) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/markdown, text/plain;q=0.9, */*;q=0.1").
		Get(url)
	if err != nil {
		return "", errors.Wrapf(ErrMarkdownUnavailable, "fetch %s: %v", url, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", errors.Wrapf(ErrMarkdownUnavailable, "fetch %s: status %d", url, resp.StatusCode())
	}
	return resp.String(), nil
}

var _ MarkdownSource = (*HTTPMarkdown)(nil)
