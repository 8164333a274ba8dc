package blog

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"club-content-api/internal/content"
	"club-content-api/internal/global/response"
	"club-content-api/internal/model"
	"club-content-api/test"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	posts    []model.BlogPost
	featured []model.BlogPost
	markdown map[string]string
	err      error
	mdErr    error
	views    map[string]int
}

func (f *fakeSource) BlogPosts(context.Context) ([]model.BlogPost, error) {
	return f.posts, f.err
}

func (f *fakeSource) FeaturedBlogPosts(context.Context) ([]model.BlogPost, error) {
	return f.featured, f.err
}

func (f *fakeSource) BlogIndex(ctx context.Context) (content.BlogIndex, error) {
	return content.BlogIndex{Posts: f.posts, Featured: f.featured}, f.err
}

func (f *fakeSource) BlogPostBySlug(_ context.Context, slug string) (model.BlogPost, bool, error) {
	if f.err != nil {
		return model.BlogPost{}, false, f.err
	}
	for _, p := range f.posts {
		if p.Slug == slug {
			f.views[slug]++
			return p, true, nil
		}
	}
	return model.BlogPost{}, false, nil
}

func (f *fakeSource) BlogPostMarkdown(_ context.Context, slug string) (string, bool, error) {
	md, ok := f.markdown[slug]
	if !ok {
		return "", false, nil
	}
	return md, true, f.mdErr
}

func (f *fakeSource) BlogReport(context.Context) ([]byte, error) {
	return []byte("xlsx"), f.err
}

func setup(t *testing.T) *fakeSource {
	t.Helper()
	f := &fakeSource{
		posts: []model.BlogPost{
			{ID: "a", Slug: "alpha", Title: "Alpha", Tags: []string{}, ExternalLinks: []model.ExternalLink{}},
		},
		featured: []model.BlogPost{},
		markdown: map[string]string{"alpha": "# Alpha"},
		views:    map[string]int{},
	}
	log = slog.New(slog.NewTextHandler(io.Discard, nil))
	source = f
	return f
}

func slug(s string) gin.Param {
	return gin.Param{Key: "slug", Value: s}
}

func TestList(t *testing.T) {
	setup(t)
	_, resp := test.DoRequest(t, List)
	test.NoError(t, resp)

	posts := test.DecodeData[[]model.BlogPost](t, resp)
	require.Len(t, posts, 1)
	require.Equal(t, "alpha", posts[0].Slug)
}

func TestFeaturedEmptyIsList(t *testing.T) {
	setup(t)
	w, resp := test.DoRequest(t, Featured)
	test.NoError(t, resp)
	require.Contains(t, w.Body.String(), `"data":[]`)
}

func TestIndex(t *testing.T) {
	setup(t)
	_, resp := test.DoRequest(t, Index)
	test.NoError(t, resp)

	idx := test.DecodeData[content.BlogIndex](t, resp)
	require.Len(t, idx.Posts, 1)
	require.NotNil(t, idx.Featured)
}

func TestBySlug(t *testing.T) {
	f := setup(t)
	_, resp := test.DoRequest(t, BySlug, slug("alpha"))
	test.NoError(t, resp)
	require.Equal(t, "a", test.DecodeData[model.BlogPost](t, resp).ID)
	require.Equal(t, 1, f.views["alpha"])
}

func TestBySlugNotFound(t *testing.T) {
	f := setup(t)
	w, resp := test.DoRequest(t, BySlug, slug("nonexistent"))
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, response.ErrNotFound.Code, resp.Code)
	require.Empty(t, f.views)
}

func TestBySlugInvalid(t *testing.T) {
	setup(t)
	w, resp := test.DoRequest(t, BySlug, slug(strings.Repeat("x", maxSlugLength+1)))
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, response.ErrInvalidRequest.Code, resp.Code)
}

func TestStoreFailureIs500(t *testing.T) {
	f := setup(t)
	f.err = errors.New("connection refused")

	for _, h := range []gin.HandlerFunc{List, Featured, Index, Report} {
		w, resp := test.DoRequest(t, h)
		require.Equal(t, http.StatusInternalServerError, w.Code)
		test.ErrorEqual(t, response.ErrDatabase, resp)
	}
	w, _ := test.DoRequest(t, BySlug, slug("alpha"))
	require.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestContent(t *testing.T) {
	f := setup(t)
	w, _ := test.DoRequest(t, Content, slug("alpha"))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "# Alpha", w.Body.String())
	require.Equal(t, "text/markdown; charset=utf-8", w.Header().Get("Content-Type"))
	require.Empty(t, f.views)

	w, _ = test.DoRequest(t, Content, slug("missing"))
	require.Equal(t, http.StatusNotFound, w.Code)

	f.mdErr = errors.Wrap(content.ErrMarkdownUnavailable, "status 404")
	w, resp := test.DoRequest(t, Content, slug("alpha"))
	require.Equal(t, http.StatusBadGateway, w.Code)
	test.ErrorEqual(t, response.ErrUpstream, resp)
}

func TestReport(t *testing.T) {
	setup(t)
	w, _ := test.DoRequest(t, Report)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "xlsx", w.Body.String())
	require.Contains(t, w.Header().Get("Content-Disposition"), "blog-report-")
}

func TestRouterSlugNamespace(t *testing.T) {
	f := setup(t)
	f.posts = append(f.posts,
		model.BlogPost{ID: "i", Slug: "index", Tags: []string{}, ExternalLinks: []model.ExternalLink{}},
		model.BlogPost{ID: "r", Slug: "report.xlsx", Tags: []string{}, ExternalLinks: []model.ExternalLink{}},
	)
	gin.SetMode(gin.TestMode)
	r := gin.New()
	(&ModuleBlog{}).InitRouter(r.Group("/v1"))

	get := func(path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		return w
	}

	w := get("/v1/blog/index")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"id":"i"`)
	require.Equal(t, 1, f.views["index"])

	w = get("/v1/blog/report.xlsx")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"id":"r"`)

	w = get("/v1/blog-index")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"featured":[]`)

	w = get("/v1/reports/blog.xlsx")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "xlsx", w.Body.String())
}
