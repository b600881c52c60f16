package dto

// ValidateAdminRequest 管理员校验请求
type ValidateAdminRequest struct {
	Username string `json:"username" binding:"required"` // 用户名或邮箱
	Password string `json:"password" binding:"required"`
}

// ValidateAdminResponse 管理员校验结果
type ValidateAdminResponse struct {
	Valid bool `json:"valid"`
}

// UserExistsQuery 用户存在性查询
type UserExistsQuery struct {
	Username string `form:"username" binding:"required"`
}

// UserExistsResponse 用户存在性结果
type UserExistsResponse struct {
	Exists bool `json:"exists"`
}
