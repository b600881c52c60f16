package handler

import (
	"github.com/gin-gonic/gin"

	"lab-cms/internal/dto"
	"lab-cms/internal/model"
	"lab-cms/internal/service"
	"lab-cms/pkg/utils"
)

type MemberHandler struct {
	memberService service.MemberService
}

func NewMemberHandler(memberService service.MemberService) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
	}
}

// List 成员分页，category 对应成员角色
// @Summary 成员列表
// @Tags Member
// @Produce json
// @Param page query int false "页码，从0开始"
// @Param size query int false "每页数量"
// @Param sortBy query string false "排序字段" default(createdAt)
// @Param sortDirection query string false "排序方向 ASC/DESC" default(DESC)
// @Param keyword query string false "姓名关键字"
// @Param status query string false "ACTIVE/INACTIVE/GRADUATED"
// @Param category query string false "成员角色"
// @Success 200 {object} utils.Response{data=dto.Page[dto.MemberResponse]}
// @Router /api/members [get]
func (h *MemberHandler) List(c *gin.Context) {
	var q dto.FilterQuery
	if !bindQuery(c, &q) {
		return
	}
	page, err := h.memberService.List(&q)
	respond(c, page, err)
}

// Active 在读成员
// @Summary 在读成员
// @Tags Member
// @Produce json
// @Success 200 {object} utils.Response{data=[]dto.MemberResponse}
// @Router /api/members/active [get]
func (h *MemberHandler) Active(c *gin.Context) {
	members, err := h.memberService.ListActive()
	respond(c, members, err)
}

// Featured 推荐成员
// @Summary 推荐成员
// @Tags Member
// @Produce json
// @Success 200 {object} utils.Response{data=[]dto.MemberResponse}
// @Router /api/members/featured [get]
func (h *MemberHandler) Featured(c *gin.Context) {
	members, err := h.memberService.ListFeatured()
	respond(c, members, err)
}

// GetByID 成员详情
// @Summary 成员详情
// @Tags Member
// @Produce json
// @Param id path int true "成员ID"
// @Success 200 {object} utils.Response{data=dto.MemberResponse}
// @Router /api/members/{id} [get]
func (h *MemberHandler) GetByID(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	member, err := h.memberService.GetByID(id)
	respond(c, member, err)
}

// GetByStudentID 按学号查询
// @Summary 按学号查询成员
// @Tags Member
// @Produce json
// @Param studentId path string true "学号"
// @Success 200 {object} utils.Response{data=dto.MemberResponse}
// @Router /api/members/student/{studentId} [get]
func (h *MemberHandler) GetByStudentID(c *gin.Context) {
	member, err := h.memberService.GetByStudentID(c.Param("studentId"))
	respond(c, member, err)
}

// ByRole 按角色查询
// @Summary 按角色查询成员
// @Tags Member
// @Produce json
// @Param role path string true "TEACHER/PHD_STUDENT/MASTER_STUDENT/UNDERGRADUATE/ALUMNI"
// @Success 200 {object} utils.Response{data=[]dto.MemberResponse}
// @Router /api/members/role/{role} [get]
func (h *MemberHandler) ByRole(c *gin.Context) {
	role, ok := parseEnum(c, c.Param("role"), model.MemberRoles, "成员角色")
	if !ok {
		return
	}
	members, err := h.memberService.ListByRole(role)
	respond(c, members, err)
}

// ByGrade 按年级查询
// @Summary 按年级查询成员
// @Tags Member
// @Produce json
// @Param grade path string true "年级"
// @Success 200 {object} utils.Response{data=[]dto.MemberResponse}
// @Router /api/members/grade/{grade} [get]
func (h *MemberHandler) ByGrade(c *gin.Context) {
	members, err := h.memberService.ListByGrade(c.Param("grade"))
	respond(c, members, err)
}

// Search 搜索成员
// @Summary 搜索成员
// @Tags Member
// @Produce json
// @Param keyword query string true "关键字"
// @Success 200 {object} utils.Response{data=[]dto.MemberResponse}
// @Router /api/members/search [get]
func (h *MemberHandler) Search(c *gin.Context) {
	var q dto.KeywordQuery
	if !bindQuery(c, &q) {
		return
	}
	members, err := h.memberService.Search(q.Keyword)
	respond(c, members, err)
}

// Create 创建成员
// @Summary 创建成员
// @Tags Member
// @Accept json
// @Produce json
// @Param request body dto.MemberRequest true "成员"
// @Success 200 {object} utils.Response{data=dto.MemberResponse}
// @Router /api/members [post]
func (h *MemberHandler) Create(c *gin.Context) {
	var req dto.MemberRequest
	if !bindJSON(c, &req) {
		return
	}
	member, err := h.memberService.Create(&req)
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.SuccessWithMessage(c, "创建成功", member)
}

// Update 更新成员，仅更新非空字段
// @Summary 更新成员
// @Tags Member
// @Accept json
// @Produce json
// @Param id path int true "成员ID"
// @Param request body dto.MemberRequest true "成员"
// @Success 200 {object} utils.Response{data=dto.MemberResponse}
// @Router /api/members/{id} [put]
func (h *MemberHandler) Update(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	var req dto.MemberRequest
	if !bindJSON(c, &req) {
		return
	}
	member, err := h.memberService.Update(id, &req)
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.SuccessWithMessage(c, "更新成功", member)
}

// Delete 删除成员
// @Summary 删除成员
// @Tags Member
// @Produce json
// @Param id path int true "成员ID"
// @Success 200 {object} utils.Response
// @Router /api/members/{id} [delete]
func (h *MemberHandler) Delete(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	if err := h.memberService.Delete(id); err != nil {
		utils.Error(c, err)
		return
	}
	utils.SuccessWithMessage(c, "删除成功", nil)
}

// UpdateStatus 更新成员状态
// @Summary 更新成员状态
// @Tags Member
// @Produce json
// @Param id path int true "成员ID"
// @Param status query string true "ACTIVE/INACTIVE/GRADUATED"
// @Success 200 {object} utils.Response{data=dto.MemberResponse}
// @Router /api/members/{id}/status [patch]
func (h *MemberHandler) UpdateStatus(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	var q dto.StatusQuery
	if !bindQuery(c, &q) {
		return
	}
	status, ok := parseEnum(c, q.Status, model.MemberStatuses, "成员状态")
	if !ok {
		return
	}
	member, err := h.memberService.UpdateStatus(id, status)
	respond(c, member, err)
}

// UpdateDisplayOrder 更新显示顺序
// @Summary 更新成员显示顺序
// @Tags Member
// @Produce json
// @Param id path int true "成员ID"
// @Param displayOrder query int true "显示顺序"
// @Success 200 {object} utils.Response{data=dto.MemberResponse}
// @Router /api/members/{id}/display-order [patch]
func (h *MemberHandler) UpdateDisplayOrder(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	order, ok := bindDisplayOrder(c)
	if !ok {
		return
	}
	member, err := h.memberService.UpdateDisplayOrder(id, order)
	respond(c, member, err)
}

// Statistics 成员统计
// @Summary 成员统计
// @Tags Member
// @Produce json
// @Success 200 {object} utils.Response{data=dto.MemberStatistics}
// @Router /api/members/statistics [get]
func (h *MemberHandler) Statistics(c *gin.Context) {
	stats, err := h.memberService.Statistics()
	respond(c, stats, err)
}
