package response

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// ErrorContextKey gin.Context 中保存错误对象的键，供日志与 Sentry 使用
const ErrorContextKey = "error"

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// Error 业务错误：Code 为业务码，HTTP 状态码取 Code 的前三位
type Error struct {
	Code    int32  `json:"code"`
	Message string `json:"msg"`
	Origin  string `json:"origin,omitempty"`
	cause   error
	stack   pkgerrors.StackTrace
}

func newError(code int32, msg string) *Error {
	return &Error{Code: code, Message: msg}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("code:%d, msg:%s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("code:%d, msg:%s", e.Code, e.Message)
}

func (e *Error) GetCode() int32 {
	return e.Code
}

// HTTPStatus 40400 -> 404
func (e *Error) HTTPStatus() int {
	return int(e.Code / 100)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// StackTrace 供 Sentry 提取堆栈
func (e *Error) StackTrace() pkgerrors.StackTrace {
	if e.stack != nil {
		return e.stack
	}
	if st, ok := e.cause.(stackTracer); ok {
		return st.StackTrace()
	}
	return nil
}

func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// WithOrigin 附带原始错误；Origin 只在 debug 模式下返回给前端
func (e *Error) WithOrigin(err error) *Error {
	if err == nil {
		return e
	}
	if _, ok := err.(stackTracer); !ok {
		err = pkgerrors.WithStack(err)
	}
	out := &Error{
		Code:    e.Code,
		Message: e.Message,
		Origin:  fmt.Sprintf("%+v", err),
		cause:   err,
	}
	if st, ok := err.(stackTracer); ok {
		out.stack = st.StackTrace()
	}
	return out
}

// WithTips 追加提示信息，release 模式下同样可见
func (e *Error) WithTips(details ...string) *Error {
	return &Error{
		Code:    e.Code,
		Message: e.Message + " " + fmt.Sprintf("%v", details),
		Origin:  e.Origin,
		cause:   e.cause,
		stack:   e.stack,
	}
}
