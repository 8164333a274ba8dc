package content

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Gateway 关系库读写入口，只返回原始行，解码交给 Map* 函数
type Gateway interface {
	ListEvents(ctx context.Context) ([]Row, error)
	ListIssues(ctx context.Context) ([]Row, error)
	ListProjects(ctx context.Context) ([]Row, error)
	ListBlogPosts(ctx context.Context) ([]Row, error)
	ListBlogPostsByIDs(ctx context.Context, ids []string) ([]Row, error)
	GetBlogPostBySlug(ctx context.Context, slug string) (Row, bool, error)
	CountMembers(ctx context.Context) (int64, error)
	IncrementBlogPostViews(ctx context.Context, postID string) error
}

// 所有列表按创建/发布时间倒序，调用方按收到的顺序渲染
const (
	queryEvents = `SELECT uuid, title, description, date, time, location, event_type, recurring, created_at
FROM events
ORDER BY created_at DESC`

	queryIssues = `SELECT uuid, title, description, repo, github_url, difficulty, tags, created_at
FROM issues
ORDER BY created_at DESC`

	// 找不到负责人的项目被 JOIN 过滤掉
	queryProjects = `SELECT p.uuid, p.name, p.description, p.github_url,
       m.name AS leader_name, m.github_username AS leader_github,
       p.status, p.tech_stack, p.contributors_needed, p.skills_needed, p.created_at
FROM projects p
JOIN members m ON p.leader_id = m.id
ORDER BY p.created_at DESC`

	blogPostColumns = `SELECT id, title, slug, excerpt, post_type, category, tags, author_name, author_github,
       difficulty_level, estimated_read_time, published_at, updated_at, views, likes,
       markdown_url, series_title, series_part, series_total_parts, external_links
FROM blog_posts`

	queryBlogPosts      = blogPostColumns + "\nORDER BY published_at DESC"
	queryBlogPostsByIDs = blogPostColumns + "\nWHERE id IN ?\nORDER BY published_at DESC"
	queryBlogPostBySlug = blogPostColumns + "\nWHERE slug = ?\nLIMIT 1"

	queryCountMembers  = "SELECT COUNT(*) FROM members"
	execIncrementViews = "UPDATE blog_posts SET views = views + 1 WHERE id = ?"
)

type SQLGateway struct {
	db *gorm.DB
}

func NewSQLGateway(db *gorm.DB) *SQLGateway {
	return &SQLGateway{db: db}
}

func (g *SQLGateway) query(ctx context.Context, name, sql string, args ...any) ([]Row, error) {
	var raw []map[string]any
	if err := g.db.WithContext(ctx).Raw(sql, args...).Scan(&raw).Error; err != nil {
		return nil, errors.Wrapf(err, "query %s", name)
	}
	rows := make([]Row, 0, len(raw))
	for _, m := range raw {
		rows = append(rows, Row(m))
	}
	return rows, nil
}

func (g *SQLGateway) ListEvents(ctx context.Context) ([]Row, error) {
	return g.query(ctx, "events", queryEvents)
}

func (g *SQLGateway) ListIssues(ctx context.Context) ([]Row, error) {
	return g.query(ctx, "issues", queryIssues)
}

func (g *SQLGateway) ListProjects(ctx context.Context) ([]Row, error) {
	return g.query(ctx, "projects", queryProjects)
}

func (g *SQLGateway) ListBlogPosts(ctx context.Context) ([]Row, error) {
	return g.query(ctx, "blog_posts", queryBlogPosts)
}

// ListBlogPostsByIDs ids 为空时直接返回，不发出查询
func (g *SQLGateway) ListBlogPostsByIDs(ctx context.Context, ids []string) ([]Row, error) {
	if len(ids) == 0 {
		return []Row{}, nil
	}
	return g.query(ctx, "blog_posts by ids", queryBlogPostsByIDs, ids)
}

func (g *SQLGateway) GetBlogPostBySlug(ctx context.Context, slug string) (Row, bool, error) {
	rows, err := g.query(ctx, "blog_posts by slug", queryBlogPostBySlug, slug)
	if err != nil {
		return nil, false, err
	}
	if len(rows) == 0 {
		return nil, false, nil
	}
	return rows[0], true, nil
}

func (g *SQLGateway) CountMembers(ctx context.Context) (int64, error) {
	var count int64
	if err := g.db.WithContext(ctx).Raw(queryCountMembers).Scan(&count).Error; err != nil {
		return 0, errors.Wrap(err, "count members")
	}
	return count, nil
}

func (g *SQLGateway) IncrementBlogPostViews(ctx context.Context, postID string) error {
	if err := g.db.WithContext(ctx).Exec(execIncrementViews, postID).Error; err != nil {
		return errors.Wrap(err, "increment blog post views")
	}
	return nil
}

var _ Gateway = (*SQLGateway)(nil)
