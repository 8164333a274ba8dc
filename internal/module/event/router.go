package event

import "github.com/gin-gonic/gin"

func (*ModuleEvent) InitRouter(r *gin.RouterGroup) {
	r.GET("/events", ListEvents)
}
