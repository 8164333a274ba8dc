package stats

import (
	"club-content-api/internal/global/logger"
	"club-content-api/internal/global/response"

	"github.com/gin-gonic/gin"
)

// Get 社团统计，结果缓存一小时
func Get(c *gin.Context) {
	s, err := source.ClubStats(c.Request.Context())
	if err != nil {
		logger.WithContext(log, c).Error("统计成员数失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, s)
}
