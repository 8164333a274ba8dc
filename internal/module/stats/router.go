package stats

import "github.com/gin-gonic/gin"

func (*ModuleStats) InitRouter(r *gin.RouterGroup) {
	r.GET("/stats", Get)
}
