package tools

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

// SendAttachment 以附件形式返回内存中的文件
func SendAttachment(c *gin.Context, data []byte, displayName, contentType string) {
	escaped := url.QueryEscape(displayName)
	c.Header(
		"Content-Disposition",
		fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`, escaped, escaped),
	)
	c.Data(http.StatusOK, contentType, data)
}
