package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"club-content-api/config"
	"club-content-api/internal/content"

	"github.com/stretchr/testify/require"
)

func TestNewCapsMarkdownBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/huge.md":
			_, _ = w.Write([]byte(strings.Repeat("a", 4096)))
		default:
			_, _ = w.Write([]byte("# ok"))
		}
	}))
	defer srv.Close()

	md := content.NewHTTPMarkdown(New(config.Blog{MarkdownMaxBytes: 1024}))

	body, err := md.Fetch(context.Background(), srv.URL+"/small.md")
	require.NoError(t, err)
	require.Equal(t, "# ok", body)

	_, err = md.Fetch(context.Background(), srv.URL+"/huge.md")
	require.ErrorIs(t, err, content.ErrMarkdownUnavailable)
}

func TestNewDefaults(t *testing.T) {
	c := New(config.Blog{})
	require.Equal(t, 10*time.Second, c.GetClient().Timeout)
	require.Equal(t, config.DefaultMarkdownMaxBytes, c.ResponseBodyLimit)
}
