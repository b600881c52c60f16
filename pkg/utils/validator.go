package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

// fieldMessages 各校验标签的提示，%[1]s 为字段名，%[2]s 为标签参数
var fieldMessages = map[string]string{
	"required":   "field '%[1]s' is required",
	"oneof":      "field '%[1]s' must be one of: %[2]s",
	"email":      "field '%[1]s' must be a valid email address",
	"url":        "field '%[1]s' must be a valid URL",
	"len":        "field '%[1]s' must be exactly %[2]s characters",
	"gt":         "field '%[1]s' must be greater than %[2]s",
	"gte":        "field '%[1]s' must be greater than or equal to %[2]s",
	"lt":         "field '%[1]s' must be less than %[2]s",
	"lte":        "field '%[1]s' must be less than or equal to %[2]s",
	"cnphone":    "field '%[1]s' must be a valid mobile phone number",
	"datestr":    "field '%[1]s' must be a date in YYYY-MM-DD format",
	"futuredate": "field '%[1]s' must be a future date in YYYY-MM-DD format",
	"notblank":   "field '%[1]s' must not be blank",
}

// FormatValidationError 将绑定错误转换为可读信息
func FormatValidationError(err error) string {
	if err == nil {
		return ""
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		return strings.Join(lo.Map(fieldErrs, func(e validator.FieldError, _ int) string {
			return formatFieldError(e)
		}), "; ")
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return fmt.Sprintf("field '%s' should be %s", typeErr.Field, typeErr.Type.String())
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return "invalid JSON format"
	}

	return err.Error()
}

func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "min", "max":
		bound := lo.Ternary(e.Tag() == "min", "at least", "at most")
		if isNumberKind(e.Kind()) {
			return fmt.Sprintf("field '%s' must be %s %s", e.Field(), bound, e.Param())
		}
		return fmt.Sprintf("field '%s' must be %s %s characters", e.Field(), bound, e.Param())
	}

	if tmpl, ok := fieldMessages[e.Tag()]; ok {
		return fmt.Sprintf(tmpl, e.Field(), e.Param())
	}
	return fmt.Sprintf("field '%s' validation failed on '%s' tag", e.Field(), e.Tag())
}

func isNumberKind(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Float64
}
