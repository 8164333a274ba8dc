package blog

import (
	"net/http"
	"time"

	"club-content-api/internal/content"
	"club-content-api/internal/global/logger"
	"club-content-api/internal/global/response"
	"club-content-api/tools"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

const maxSlugLength = 255

func List(c *gin.Context) {
	posts, err := source.BlogPosts(c.Request.Context())
	if err != nil {
		logger.WithContext(log, c).Error("查询文章失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, posts)
}

// Featured 精选列表未设置时返回空数组
func Featured(c *gin.Context) {
	posts, err := source.FeaturedBlogPosts(c.Request.Context())
	if err != nil {
		logger.WithContext(log, c).Error("查询精选文章失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, posts)
}

func Index(c *gin.Context) {
	idx, err := source.BlogIndex(c.Request.Context())
	if err != nil {
		logger.WithContext(log, c).Error("查询博客首页失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, idx)
}

func Report(c *gin.Context) {
	data, err := source.BlogReport(c.Request.Context())
	if err != nil {
		logger.WithContext(log, c).Error("导出文章报表失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	name := "blog-report-" + time.Now().UTC().Format("20060102") + ".xlsx"
	tools.SendAttachment(c, data, name, tools.ExcelContentType)
}

// BySlug 每次命中都会累加浏览量
func BySlug(c *gin.Context) {
	slug, ok := slugParam(c)
	if !ok {
		return
	}
	post, found, err := source.BlogPostBySlug(c.Request.Context(), slug)
	if err != nil {
		logger.WithContext(log, c).Error("查询文章失败", "error", err, "slug", slug)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if !found {
		response.Fail(c, response.ErrNotFound.WithTips("blog post not found"))
		return
	}
	response.Success(c, post)
}

// Content 返回 markdown 原文，不计入浏览量
func Content(c *gin.Context) {
	slug, ok := slugParam(c)
	if !ok {
		return
	}
	md, found, err := source.BlogPostMarkdown(c.Request.Context(), slug)
	switch {
	case errors.Is(err, content.ErrMarkdownUnavailable):
		logger.WithContext(log, c).Warn("获取文章正文失败", "error", err, "slug", slug)
		response.Fail(c, response.ErrUpstream.WithOrigin(err))
		return
	case err != nil:
		logger.WithContext(log, c).Error("查询文章失败", "error", err, "slug", slug)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	case !found:
		response.Fail(c, response.ErrNotFound.WithTips("blog post not found"))
		return
	}
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(md))
}

func slugParam(c *gin.Context) (string, bool) {
	slug := c.Param("slug")
	if slug == "" || len(slug) > maxSlugLength {
		response.Fail(c, response.ErrInvalidRequest.WithTips("invalid slug"))
		return "", false
	}
	return slug, true
}
