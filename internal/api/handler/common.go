package handler

import (
	"github.com/gin-gonic/gin"

	"lab-cms/internal/dto"
	"lab-cms/internal/model"
	pkgErrors "lab-cms/pkg/errors"
	"lab-cms/pkg/utils"
)

// bindID 解析路径中的 id
func bindID(c *gin.Context) (int64, bool) {
	var param dto.IDParam
	if err := c.ShouldBindUri(&param); err != nil {
		utils.BadRequest(c, err)
		return 0, false
	}
	return param.ID, true
}

func bindQuery(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		utils.BadRequest(c, err)
		return false
	}
	return true
}

func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		utils.BadRequest(c, err)
		return false
	}
	return true
}

// parseEnum 解析枚举参数，忽略大小写
func parseEnum[T ~string](c *gin.Context, raw string, values []T, field string) (T, bool) {
	v, ok := model.ParseEnum(raw, values)
	if !ok {
		utils.Error(c, pkgErrors.New(pkgErrors.CodeBadRequest, "无效的"+field+": "+raw))
	}
	return v, ok
}

// bindDisplayOrder 解析 displayOrder 查询参数
func bindDisplayOrder(c *gin.Context) (int, bool) {
	var q dto.DisplayOrderQuery
	if !bindQuery(c, &q) {
		return 0, false
	}
	return *q.DisplayOrder, true
}

// respond 统一处理 service 返回
func respond(c *gin.Context, data interface{}, err error) {
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.Success(c, data)
}
