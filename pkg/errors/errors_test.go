package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	assert.Equal(t, "[404] 文章不存在", ErrPostNotFound.Error())

	wrapped := Wrap(CodeDatabaseError, "查询失败", fmt.Errorf("boom"))
	assert.Equal(t, "[501] 查询失败: boom", wrapped.Error())
}

func TestAppError_HTTPStatus(t *testing.T) {
	cases := map[int]int{
		CodeBadRequest:      http.StatusBadRequest,
		CodeValidationError: http.StatusBadRequest,
		CodeForbidden:       http.StatusForbidden,
		CodeNotFound:        http.StatusNotFound,
		CodeConflict:        http.StatusConflict,
		CodeDatabaseError:   http.StatusInternalServerError,
		CodeInternalError:   http.StatusInternalServerError,
	}
	for code, status := range cases {
		assert.Equal(t, status, New(code, "x").HTTPStatus(), "code %d", code)
	}
}

func TestAs(t *testing.T) {
	err := fmt.Errorf("outer: %w", ErrStudentIDExists)

	appErr, ok := As(err)
	assert.True(t, ok)
	assert.Equal(t, CodeConflict, appErr.Code)
	assert.True(t, IsCode(err, CodeConflict))
	assert.False(t, IsCode(fmt.Errorf("plain"), CodeConflict))
}

func TestWithDetail(t *testing.T) {
	err := ErrInvalidSortField.WithDetail("sortBy=%s", "password")

	assert.Equal(t, "[400] 不支持的排序字段: sortBy=password", err.Error())
	assert.ErrorIs(t, err, ErrInvalidSortField)
	assert.NotErrorIs(t, err, ErrPostNotFound)
	assert.Equal(t, "[400] 不支持的排序字段", ErrInvalidSortField.Error())
}
