package handler

import (
	"github.com/gin-gonic/gin"

	"lab-cms/internal/dto"
	"lab-cms/internal/service"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// ValidateAdmin 校验管理员账号
// @Summary 校验管理员账号
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.ValidateAdminRequest true "账号密码"
// @Success 200 {object} utils.Response{data=dto.ValidateAdminResponse}
// @Router /api/auth/validate [post]
func (h *AuthHandler) ValidateAdmin(c *gin.Context) {
	var req dto.ValidateAdminRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.authService.ValidateAdmin(&req)
	respond(c, resp, err)
}

// Exists 用户是否存在
// @Summary 用户是否存在
// @Tags Auth
// @Produce json
// @Param username query string true "用户名"
// @Success 200 {object} utils.Response{data=dto.UserExistsResponse}
// @Router /api/auth/exists [get]
func (h *AuthHandler) Exists(c *gin.Context) {
	var q dto.UserExistsQuery
	if !bindQuery(c, &q) {
		return
	}
	resp, err := h.authService.CheckUserExists(q.Username)
	respond(c, resp, err)
}
