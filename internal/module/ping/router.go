package ping

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (p *ModulePing) InitRouter(r *gin.RouterGroup) {
	r.GET("/ping", Ping)
}

func (p *ModulePing) InitRootRouter(r *gin.RouterGroup) {
	r.GET("/", Info)
	r.GET("/health", Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/openapi.json", OpenAPI)
}
