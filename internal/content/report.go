package content

import (
	"context"

	"club-content-api/internal/model"
	"club-content-api/tools"
)

const reportSheet = "Blog Posts"

type blogReportRow struct {
	Title       string `excel:"Title"`
	Slug        string `excel:"Slug"`
	Type        string `excel:"Type"`
	Category    string `excel:"Category"`
	Author      string `excel:"Author"`
	PublishedAt string `excel:"Published"`
	ReadTime    uint32 `excel:"Read Time (min)"`
	Views       uint32 `excel:"Views"`
	Likes       uint32 `excel:"Likes"`
}

// BlogReport 导出文章阅读数据，顺序与 BlogPosts 一致
func (r *Resolver) BlogReport(ctx context.Context) ([]byte, error) {
	posts, err := r.BlogPosts(ctx)
	if err != nil {
		return nil, err
	}
	return buildBlogReport(posts)
}

func buildBlogReport(posts []model.BlogPost) ([]byte, error) {
	rows := make([]blogReportRow, 0, len(posts))
	for _, p := range posts {
		rows = append(rows, blogReportRow{
			Title:       p.Title,
			Slug:        p.Slug,
			Type:        p.PostType.Label(),
			Category:    p.Category.Label(),
			Author:      p.AuthorName,
			PublishedAt: p.PublishedAt,
			ReadTime:    p.EstimatedReadTime,
			Views:       p.Views,
			Likes:       p.Likes,
		})
	}
	return tools.Workbook(reportSheet, rows)
}
