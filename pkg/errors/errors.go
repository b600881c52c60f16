package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
)

// 错误码
const (
	CodeSuccess         = 200
	CodeBadRequest      = 400
	CodeForbidden       = 403
	CodeNotFound        = 404
	CodeConflict        = 409
	CodeInternalError   = 500
	CodeDatabaseError   = 501
	CodeValidationError = 503
)

// AppError 应用错误
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPStatus 业务错误码对应的HTTP状态码
func (e *AppError) HTTPStatus() int {
	switch e.Code {
	case CodeBadRequest, CodeValidationError:
		return http.StatusBadRequest
	case CodeForbidden:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// New 创建新错误
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装错误
func Wrap(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// WithDetail 复制预定义错误并附带详细信息，errors.Is 仍可匹配原错误
func (e *AppError) WithDetail(format string, args ...interface{}) *AppError {
	return &AppError{Code: e.Code, Message: e.Message, Err: fmt.Errorf(format, args...)}
}

// Is 错误码与消息相同即视为同一错误
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Code == e.Code && t.Message == e.Message
}

// As 取出错误链中的AppError
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if stdErrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsCode 判断错误链中是否包含指定错误码
func IsCode(err error, code int) bool {
	appErr, ok := As(err)
	return ok && appErr.Code == code
}

// 预定义业务错误
var (
	ErrUserNotFound     = New(CodeNotFound, "用户不存在")
	ErrPostNotFound     = New(CodeNotFound, "文章不存在")
	ErrPostNotPublished = New(CodeNotFound, "文章未发布")
	ErrPostNoPermission = New(CodeForbidden, "没有权限操作此文章")
	ErrMemberNotFound   = New(CodeNotFound, "成员不存在")
	ErrStudentIDExists  = New(CodeConflict, "学号已存在")
	ErrProjectNotFound  = New(CodeNotFound, "项目不存在")
	ErrMeetingNotFound  = New(CodeNotFound, "会议不存在")
	ErrInvalidSortField = New(CodeBadRequest, "不支持的排序字段")
)
