package blog

import (
	"context"
	"log/slog"

	"club-content-api/internal/content"
	"club-content-api/internal/global/logger"
	"club-content-api/internal/model"
)

// Source 博客路由依赖的内容接口，由 content.Resolver 实现
type Source interface {
	BlogPosts(ctx context.Context) ([]model.BlogPost, error)
	FeaturedBlogPosts(ctx context.Context) ([]model.BlogPost, error)
	BlogIndex(ctx context.Context) (content.BlogIndex, error)
	BlogPostBySlug(ctx context.Context, slug string) (model.BlogPost, bool, error)
	BlogPostMarkdown(ctx context.Context, slug string) (string, bool, error)
	BlogReport(ctx context.Context) ([]byte, error)
}

var (
	log    *slog.Logger
	source Source
)

type ModuleBlog struct{}

func (*ModuleBlog) GetName() string {
	return "Blog"
}

func (*ModuleBlog) Init(resolver *content.Resolver) {
	log = logger.New("Blog")
	source = resolver
}
