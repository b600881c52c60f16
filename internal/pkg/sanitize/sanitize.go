package sanitize

import "github.com/microcosm-cc/bluemonday"

var policy = bluemonday.UGCPolicy()

// HTML 清理富文本中的脚本等危险内容
func HTML(input string) string {
	return policy.Sanitize(input)
}

// HTMLPtr 同 HTML，nil 原样返回
func HTMLPtr(input *string) *string {
	if input == nil {
		return nil
	}
	cleaned := policy.Sanitize(*input)
	return &cleaned
}
