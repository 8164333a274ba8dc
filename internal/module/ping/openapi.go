package ping

import (
	"net/http"

	"club-content-api/config"
	"club-content-api/tools"

	"github.com/gin-gonic/gin"
)

type operation struct {
	summary string
	params  []string
	media   string
}

// OpenAPI 返回 OpenAPI 3 文档本体，不套统一响应
func OpenAPI(c *gin.Context) {
	prefix := "/" + config.Get().Prefix
	ops := map[string]operation{
		"/health":                       {summary: "Health check"},
		"/":                             {summary: "API info"},
		prefix + "/ping":                {summary: "Ping"},
		prefix + "/stats":               {summary: "Club stats"},
		prefix + "/events":              {summary: "List events"},
		prefix + "/issues":              {summary: "List issues"},
		prefix + "/projects":            {summary: "List projects"},
		prefix + "/blog":                {summary: "List blog posts"},
		prefix + "/blog/featured":       {summary: "List featured blog posts"},
		prefix + "/blog/{slug}":         {summary: "Get blog post by slug", params: []string{"slug"}},
		prefix + "/blog/{slug}/content": {summary: "Get blog post markdown", params: []string{"slug"}, media: "text/markdown"},
		prefix + "/blog-index":          {summary: "Blog posts and featured posts"},
		prefix + "/reports/blog.xlsx":   {summary: "Blog report spreadsheet", media: tools.ExcelContentType},
	}

	paths := make(map[string]any, len(ops))
	for path, op := range ops {
		media := op.media
		if media == "" {
			media = "application/json"
		}
		params := make([]map[string]any, 0, len(op.params))
		for _, p := range op.params {
			params = append(params, map[string]any{
				"name":     p,
				"in":       "path",
				"required": true,
				"schema":   map[string]any{"type": "string", "maxLength": 255},
			})
		}
		paths[path] = map[string]any{
			"get": map[string]any{
				"summary":    op.summary,
				"parameters": params,
				"responses": map[string]any{
					"200": map[string]any{
						"description": "OK",
						"content":     map[string]any{media: map[string]any{}},
					},
				},
			},
		}
	}

	c.JSON(http.StatusOK, map[string]any{
		"openapi": "3.0.3",
		"info": map[string]string{
			"title":   "club-content-api",
			"version": Version,
		},
		"paths": paths,
	})
}
