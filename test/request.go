package test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"club-content-api/internal/global/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// DoRequest 以 GET 调用单个 handler，params 作为路由参数
func DoRequest(t *testing.T, handlerFunc gin.HandlerFunc, params ...gin.Param) (*httptest.ResponseRecorder, response.ResponseBody) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
	c.Params = params
	handlerFunc(c)

	var resp response.ResponseBody
	if w.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

// DecodeData 将 ResponseBody.Data 重新解码为具体类型
func DecodeData[T any](t *testing.T, resp response.ResponseBody) T {
	t.Helper()
	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var v T
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}
