package response

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"club-content-api/config"
	"club-content-api/internal/global/logger"
	"club-content-api/internal/global/sentry"

	"github.com/gin-gonic/gin"
)

var (
	ErrInvalidRequest  = newError(40000, "请求参数错误")
	ErrNotFound        = newError(40400, "资源不存在")
	ErrTooManyRequests = newError(42900, "请求过于频繁")
	ErrServerInternal  = newError(50000, "服务器内部错误")
	ErrDatabase        = newError(50001, "数据库错误")
	ErrUpstream        = newError(50200, "上游服务不可用")
)

type ResponseBody struct {
	Code   int32  `json:"code"`
	Msg    string `json:"msg"`
	Origin string `json:"origin,omitempty"`
	Data   any    `json:"data"`
}

func Success(c *gin.Context, data ...any) {
	body := ResponseBody{Code: 200, Msg: "success"}
	if len(data) > 0 {
		body.Data = data[0]
	}
	c.JSON(http.StatusOK, body)
}

// Fail 写出错误响应；非 *Error 的错误按服务器内部错误处理，5xx 上报 Sentry
func Fail(c *gin.Context, err error) {
	var e *Error
	if !errors.As(err, &e) {
		e = ErrServerInternal.WithOrigin(err)
	}

	c.Set(ErrorContextKey, e)
	status := e.HTTPStatus()
	if status >= http.StatusInternalServerError {
		sentry.CaptureException(c, e)
	}

	body := ResponseBody{Code: e.Code, Msg: e.Message}
	if config.Get().Mode == config.ModeDebug {
		body.Origin = e.Origin
	}
	c.AbortWithStatusJSON(status, body)
}

// Recovery 将 panic 转为 ErrServerInternal，配合 defer 使用
func Recovery(c *gin.Context) {
	if r := recover(); r != nil {
		logger.WithContext(logger.New("Recovery"), c).Error("panic recovered",
			"panic", r,
			"path", c.Request.URL.Path,
			"stack", string(debug.Stack()),
		)
		Fail(c, ErrServerInternal.WithOrigin(fmt.Errorf("panic: %v", r)))
	}
}
