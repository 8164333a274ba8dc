package event

import (
	"club-content-api/internal/global/logger"
	"club-content-api/internal/global/response"

	"github.com/gin-gonic/gin"
)

func ListEvents(c *gin.Context) {
	items, err := source.Events(c.Request.Context())
	if err != nil {
		logger.WithContext(log, c).Error("查询活动失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, items)
}
