package content

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"club-content-api/internal/global/cache"
	"club-content-api/internal/global/metrics"
	"club-content-api/internal/model"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Counters 不来自数据库的统计项，由外部维护
type Counters struct {
	PRsMergedThisSemester uint32
	WorkshopsHeld         uint32
	ProjectsContributedTo uint32
}

type Options struct {
	Counters    Counters
	StatsTTL    time.Duration
	MarkdownTTL time.Duration
}

// Resolver 按资源类型组合 Gateway、缓存、解码与示例数据，是路由层唯一调用的入口
type Resolver struct {
	gateway  Gateway
	store    cache.Store
	markdown MarkdownSource
	log      *slog.Logger
	opts     Options
}

func NewResolver(gateway Gateway, store cache.Store, markdown MarkdownSource, log *slog.Logger, opts Options) *Resolver {
	if opts.StatsTTL <= 0 {
		opts.StatsTTL = time.Hour
	}
	return &Resolver{
		gateway:  gateway,
		store:    store,
		markdown: markdown,
		log:      log,
		opts:     opts,
	}
}

// resolveList 查询 -> 解码 -> 空结果时按 kind 的策略替换为示例数据。
// 查询失败直接返回错误，不降级到示例数据。
func resolveList[T any](ctx context.Context, kind Kind, list func(context.Context) ([]Row, error), decode func(Row) T, fallback func() []T) ([]T, error) {
	rows, err := list(ctx)
	if err != nil {
		return nil, err
	}
	items := MapRows(rows, decode)
	if len(items) == 0 && FallbackEnabled(kind) && fallback != nil {
		metrics.FallbackServed.WithLabelValues(string(kind)).Inc()
		return fallback(), nil
	}
	return items, nil
}

func (r *Resolver) Events(ctx context.Context) ([]model.Event, error) {
	return resolveList(ctx, KindEvents, r.gateway.ListEvents, MapEvent, FallbackEvents)
}

func (r *Resolver) Issues(ctx context.Context) ([]model.Issue, error) {
	return resolveList(ctx, KindIssues, r.gateway.ListIssues, MapIssue, FallbackIssues)
}

func (r *Resolver) Projects(ctx context.Context) ([]model.Project, error) {
	return resolveList(ctx, KindProjects, r.gateway.ListProjects, MapProject, FallbackProjects)
}

func (r *Resolver) BlogPosts(ctx context.Context) ([]model.BlogPost, error) {
	return resolveList(ctx, KindBlogPosts, r.gateway.ListBlogPosts, MapBlogPost, nil)
}

// FeaturedBlogPosts 精选文章 id 列表由外部写入缓存；缺失、读取失败或无法解码时返回空列表
func (r *Resolver) FeaturedBlogPosts(ctx context.Context) ([]model.BlogPost, error) {
	ids := r.featuredIDs(ctx)
	if len(ids) == 0 {
		return []model.BlogPost{}, nil
	}
	return resolveList(ctx, KindBlogPosts, func(ctx context.Context) ([]Row, error) {
		return r.gateway.ListBlogPostsByIDs(ctx, ids)
	}, MapBlogPost, nil)
}

func (r *Resolver) featuredIDs(ctx context.Context) []string {
	raw, ok, err := r.store.Get(ctx, KeyFeaturedPosts)
	if err != nil {
		r.log.Warn("读取精选文章列表失败", "error", err)
		return nil
	}
	if !ok {
		return nil
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil
	}
	return ids
}

type BlogIndex struct {
	Posts    []model.BlogPost `json:"posts"`
	Featured []model.BlogPost `json:"featured"`
}

// BlogIndex 并发获取全部文章与精选文章，任一失败则整体失败
func (r *Resolver) BlogIndex(ctx context.Context) (BlogIndex, error) {
	var idx BlogIndex
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		posts, err := r.BlogPosts(gctx)
		idx.Posts = posts
		return err
	})
	g.Go(func() error {
		featured, err := r.FeaturedBlogPosts(gctx)
		idx.Featured = featured
		return err
	})
	if err := g.Wait(); err != nil {
		return BlogIndex{}, err
	}
	return idx, nil
}

// BlogPostBySlug 找到文章时顺带累加浏览量，返回的是累加前的值。
// 累加失败不影响本次读取；未找到时不累加。
func (r *Resolver) BlogPostBySlug(ctx context.Context, slug string) (model.BlogPost, bool, error) {
	row, found, err := r.gateway.GetBlogPostBySlug(ctx, slug)
	if err != nil || !found {
		return model.BlogPost{}, false, err
	}
	post := MapBlogPost(row)
	bestEffort(r.log, metrics.OpViewIncrement, func() error {
		return r.gateway.IncrementBlogPostViews(ctx, post.ID)
	}, "post_id", post.ID)
	return post, true, nil
}

// BlogPostMarkdown 获取文章正文，按 slug 缓存；不计入浏览量
func (r *Resolver) BlogPostMarkdown(ctx context.Context, slug string) (string, bool, error) {
	row, found, err := r.gateway.GetBlogPostBySlug(ctx, slug)
	if err != nil || !found {
		return "", false, err
	}
	post := MapBlogPost(row)
	if post.MarkdownURL == "" {
		return "", true, errors.Wrapf(ErrMarkdownUnavailable, "post %s has no markdown_url", post.ID)
	}
	md, err := GetOrCompute(ctx, r.store, r.log, keyMarkdown+slug, r.opts.MarkdownTTL, func(ctx context.Context) (string, error) {
		return r.markdown.Fetch(ctx, post.MarkdownURL)
	})
	if err != nil {
		return "", true, err
	}
	return md, true, nil
}

// ClubStats 成员数来自数据库，其余计数来自配置；整体缓存 StatsTTL
func (r *Resolver) ClubStats(ctx context.Context) (model.Stats, error) {
	return GetOrCompute(ctx, r.store, r.log, KeyClubStats, r.opts.StatsTTL, func(ctx context.Context) (model.Stats, error) {
		count, err := r.gateway.CountMembers(ctx)
		if err != nil {
			return model.Stats{}, err
		}
		return model.Stats{
			ActiveMembers:         toUint32(count),
			PRsMergedThisSemester: r.opts.Counters.PRsMergedThisSemester,
			WorkshopsHeld:         r.opts.Counters.WorkshopsHeld,
			ProjectsContributedTo: r.opts.Counters.ProjectsContributedTo,
		}, nil
	})
}
