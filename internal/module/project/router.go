package project

import "github.com/gin-gonic/gin"

func (*ModuleProject) InitRouter(r *gin.RouterGroup) {
	r.GET("/projects", ListProjects)
}
