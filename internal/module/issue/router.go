package issue

import "github.com/gin-gonic/gin"

func (*ModuleIssue) InitRouter(r *gin.RouterGroup) {
	r.GET("/issues", ListIssues)
}
