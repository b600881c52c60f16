package utils

import (
	"net/http"

	"lab-cms/pkg/errors"

	"github.com/gin-gonic/gin"
)

// Response 统一响应结构
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Detail  string      `json:"detail,omitempty"` // 详细错误信息（可选）
	Data    interface{} `json:"data,omitempty"`
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    errors.CodeSuccess,
		Message: "success",
		Data:    data,
	})
}

// SuccessWithMessage 带消息的成功响应
func SuccessWithMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    errors.CodeSuccess,
		Message: message,
		Data:    data,
	})
}

// Error 错误响应，HTTP状态码由业务错误码决定
func Error(c *gin.Context, err error) {
	if appErr, ok := errors.As(err); ok {
		resp := Response{
			Code:    appErr.Code,
			Message: appErr.Message,
		}
		if appErr.Err != nil {
			resp.Detail = appErr.Err.Error()
		}
		_ = c.Error(err)
		c.JSON(appErr.HTTPStatus(), resp)
		return
	}

	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, Response{
		Code:    errors.CodeInternalError,
		Message: err.Error(),
	})
}

// ErrorWithDetail 带详细信息的错误响应
func ErrorWithDetail(c *gin.Context, code int, message, detail string) {
	c.JSON(errors.New(code, message).HTTPStatus(), Response{
		Code:    code,
		Message: message,
		Detail:  detail,
	})
}

// BadRequest 参数绑定失败响应
func BadRequest(c *gin.Context, err error) {
	ErrorWithDetail(c, errors.CodeBadRequest, "请求参数错误", FormatValidationError(err))
}
