package issue

import (
	"club-content-api/internal/global/logger"
	"club-content-api/internal/global/response"

	"github.com/gin-gonic/gin"
)

// ListIssues 按创建时间倒序
func ListIssues(c *gin.Context) {
	items, err := source.Issues(c.Request.Context())
	if err != nil {
		logger.WithContext(log, c).Error("查询待认领任务失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, items)
}
