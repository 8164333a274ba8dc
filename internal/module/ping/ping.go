package ping

import (
	"time"

	"club-content-api/config"
	"club-content-api/internal/global/response"
	"club-content-api/internal/model"

	"github.com/gin-gonic/gin"
)

func Ping(c *gin.Context) {
	response.Success(c, map[string]any{
		"message": "pong",
		"version": Version,
	})
}

func Health(c *gin.Context) {
	response.Success(c, model.HealthCheck{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Version:   config.Get().Prefix,
	})
}

// Info 接口目录
func Info(c *gin.Context) {
	prefix := "/" + config.Get().Prefix
	response.Success(c, map[string]any{
		"name":    "club-content-api",
		"version": Version,
		"endpoints": map[string]string{
			"stats":         prefix + "/stats",
			"events":        prefix + "/events",
			"issues":        prefix + "/issues",
			"projects":      prefix + "/projects",
			"blog":          prefix + "/blog",
			"featured_blog": prefix + "/blog/featured",
			"blog_index":    prefix + "/blog-index",
			"blog_report":   prefix + "/reports/blog.xlsx",
			"openapi":       "/openapi.json",
		},
	})
}
