package validation

import (
	"reflect"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// DateLayout 日期格式
const DateLayout = "2006-01-02"

var phonePattern = regexp.MustCompile(`^1[3-9]\d{9}$`)

var once sync.Once

// Setup 在gin的校验引擎上注册自定义规则，可重复调用
func Setup() error {
	var err error
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		err = Register(v)
	})
	return err
}

// Register 注册自定义规则，错误信息中的字段名使用json标签
func Register(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	rules := map[string]validator.Func{
		"cnphone":    isPhone,
		"datestr":    isDate,
		"futuredate": isFutureDate,
		"notblank":   isNotBlank,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

func isPhone(fl validator.FieldLevel) bool {
	return phonePattern.MatchString(fl.Field().String())
}

func isDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(DateLayout, fl.Field().String())
	return err == nil
}

// isFutureDate 日期必须晚于今天
func isFutureDate(fl validator.FieldLevel) bool {
	d, err := time.ParseInLocation(DateLayout, fl.Field().String(), time.Local)
	if err != nil {
		return false
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	return d.After(today)
}

func isNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// ParseDate 解析 YYYY-MM-DD
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.Local)
}
