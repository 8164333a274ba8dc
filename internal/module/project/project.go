package project

import (
	"club-content-api/internal/global/logger"
	"club-content-api/internal/global/response"

	"github.com/gin-gonic/gin"
)

// ListProjects contributors 暂无数据来源，始终为空数组
func ListProjects(c *gin.Context) {
	items, err := source.Projects(c.Request.Context())
	if err != nil {
		logger.WithContext(log, c).Error("查询项目失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, items)
}
