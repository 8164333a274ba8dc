package content

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"
)

func TestHTTPMarkdownFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/intro.md":
			w.Header().Set("Content-Type", "text/markdown")
			_, _ = w.Write([]byte("# Intro\n\nhello"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	md := NewHTTPMarkdown(resty.New())

	body, err := md.Fetch(context.Background(), srv.URL+"/intro.md")
	require.NoError(t, err)
	require.Equal(t, "# Intro\n\nhello", body)

	_, err = md.Fetch(context.Background(), srv.URL+"/missing.md")
	require.ErrorIs(t, err, ErrMarkdownUnavailable)
}

func TestHTTPMarkdownUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL + "/gone.md"
	srv.Close()

	_, err := NewHTTPMarkdown(resty.New()).Fetch(context.Background(), url)
	require.ErrorIs(t, err, ErrMarkdownUnavailable)
}
