package blog

import "github.com/gin-gonic/gin"

func (*ModuleBlog) InitRouter(r *gin.RouterGroup) {
	blogGroup := r.Group("/blog")
	{
		blogGroup.GET("", List)
		blogGroup.GET("/featured", Featured)

		blogGroup.GET("/:slug", BySlug)
		blogGroup.GET("/:slug/content", Content)
	}

	// 聚合与导出放在 /blog 之外，不占用 slug 命名空间
	r.GET("/blog-index", Index)
	r.GET("/reports/blog.xlsx", Report)
}
