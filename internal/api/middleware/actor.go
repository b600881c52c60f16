package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"lab-cms/pkg/constants"
)

// Actor 从请求头读取操作人，缺省时使用默认操作人
func Actor(header, defaultActor string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := strings.TrimSpace(c.GetHeader(header))
		c.Set(constants.ContextKeyActorSet, actor != "")
		if actor == "" {
			actor = defaultActor
		}
		c.Set(constants.ContextKeyActor, actor)
		c.Next()
	}
}

// GetActor 当前操作人
func GetActor(c *gin.Context) string {
	return c.GetString(constants.ContextKeyActor)
}

// HasExplicitActor 请求是否显式指定了操作人
func HasExplicitActor(c *gin.Context) bool {
	return c.GetBool(constants.ContextKeyActorSet)
}

// ExplicitActor 请求头中指定的操作人，未指定时为空串，不回落到默认操作人
func ExplicitActor(c *gin.Context) string {
	if !HasExplicitActor(c) {
		return ""
	}
	return GetActor(c)
}
