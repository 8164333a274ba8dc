package module

import (
	"club-content-api/internal/content"
	"club-content-api/internal/module/blog"
	"club-content-api/internal/module/event"
	"club-content-api/internal/module/issue"
	"club-content-api/internal/module/ping"
	"club-content-api/internal/module/project"
	"club-content-api/internal/module/stats"

	"github.com/gin-gonic/gin"
)

type Module interface {
	GetName() string
	Init(resolver *content.Resolver)
	InitRouter(r *gin.RouterGroup)
}

// RootModule 额外注册不带版本前缀的路由
type RootModule interface {
	InitRootRouter(r *gin.RouterGroup)
}

var Modules []Module

func registerModule(m []Module) {
	Modules = append(Modules, m...)
}

func init() {
	// Register your module here
	registerModule([]Module{
		&ping.ModulePing{},
		&stats.ModuleStats{},
		&event.ModuleEvent{},
		&issue.ModuleIssue{},
		&project.ModuleProject{},
		&blog.ModuleBlog{},
	})
}
