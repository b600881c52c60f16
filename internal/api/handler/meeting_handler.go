package handler

import (
	"github.com/gin-gonic/gin"

	"lab-cms/internal/dto"
	"lab-cms/internal/model"
	"lab-cms/internal/service"
	"lab-cms/pkg/utils"
)

type MeetingHandler struct {
	meetingService service.MeetingService
}

func NewMeetingHandler(meetingService service.MeetingService) *MeetingHandler {
	return &MeetingHandler{
		meetingService: meetingService,
	}
}

// List 会议分页，category 对应会议类型；查询失败时返回空页
// @Summary 会议列表
// @Tags Meeting
// @Produce json
// @Param page query int false "页码，从0开始"
// @Param size query int false "每页数量"
// @Param sortBy query string false "排序字段" default(createdAt)
// @Param sortDirection query string false "排序方向 ASC/DESC" default(DESC)
// @Param keyword query string false "标题关键字"
// @Param status query string false "SCHEDULED/IN_PROGRESS/COMPLETED/CANCELLED"
// @Param category query string false "会议类型"
// @Success 200 {object} utils.Response{data=dto.Page[dto.MeetingResponse]}
// @Router /api/meetings [get]
func (h *MeetingHandler) List(c *gin.Context) {
	var q dto.FilterQuery
	if !bindQuery(c, &q) {
		return
	}
	page, err := h.meetingService.List(&q)
	respond(c, page, err)
}

// Completed 已结束会议
// @Summary 已结束会议
// @Tags Meeting
// @Produce json
// @Success 200 {object} utils.Response{data=[]dto.MeetingResponse}
// @Router /api/meetings/completed [get]
func (h *MeetingHandler) Completed(c *gin.Context) {
	meetings, err := h.meetingService.ListCompleted()
	respond(c, meetings, err)
}

// Upcoming 未来七天的会议
// @Summary 近期会议
// @Tags Meeting
// @Produce json
// @Success 200 {object} utils.Response{data=[]dto.MeetingResponse}
// @Router /api/meetings/upcoming [get]
func (h *MeetingHandler) Upcoming(c *gin.Context) {
	meetings, err := h.meetingService.ListUpcoming()
	respond(c, meetings, err)
}

// GetByID 会议详情
// @Summary 会议详情
// @Tags Meeting
// @Produce json
// @Param id path int true "会议ID"
// @Success 200 {object} utils.Response{data=dto.MeetingResponse}
// @Router /api/meetings/{id} [get]
func (h *MeetingHandler) GetByID(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	meeting, err := h.meetingService.GetByID(id)
	respond(c, meeting, err)
}

// ByStatus 按状态分页
// @Summary 按状态查询会议
// @Tags Meeting
// @Produce json
// @Param status path string true "SCHEDULED/IN_PROGRESS/COMPLETED/CANCELLED"
// @Param page query int false "页码"
// @Param size query int false "每页数量"
// @Success 200 {object} utils.Response{data=dto.Page[dto.MeetingResponse]}
// @Router /api/meetings/status/{status} [get]
func (h *MeetingHandler) ByStatus(c *gin.Context) {
	status, ok := parseEnum(c, c.Param("status"), model.MeetingStatuses, "会议状态")
	if !ok {
		return
	}
	var q dto.PageQuery
	if !bindQuery(c, &q) {
		return
	}
	page, err := h.meetingService.ListByStatus(status, &q)
	respond(c, page, err)
}

// ByType 按类型查询
// @Summary 按类型查询会议
// @Tags Meeting
// @Produce json
// @Param type path string true "REGULAR/EMERGENCY/PLANNING/REVIEW/TRAINING"
// @Success 200 {object} utils.Response{data=[]dto.MeetingResponse}
// @Router /api/meetings/type/{type} [get]
func (h *MeetingHandler) ByType(c *gin.Context) {
	meetingType, ok := parseEnum(c, c.Param("type"), model.MeetingTypes, "会议类型")
	if !ok {
		return
	}
	meetings, err := h.meetingService.ListByType(meetingType)
	respond(c, meetings, err)
}

// Search 搜索会议
// @Summary 搜索会议
// @Tags Meeting
// @Produce json
// @Param keyword query string true "关键字"
// @Param page query int false "页码"
// @Param size query int false "每页数量"
// @Success 200 {object} utils.Response{data=dto.Page[dto.MeetingResponse]}
// @Router /api/meetings/search [get]
func (h *MeetingHandler) Search(c *gin.Context) {
	var kw dto.KeywordQuery
	var q dto.PageQuery
	if !bindQuery(c, &kw) || !bindQuery(c, &q) {
		return
	}
	page, err := h.meetingService.Search(kw.Keyword, &q)
	respond(c, page, err)
}

// Create 创建会议
// @Summary 创建会议
// @Tags Meeting
// @Accept json
// @Produce json
// @Param request body dto.MeetingRequest true "会议"
// @Success 200 {object} utils.Response{data=dto.MeetingResponse}
// @Router /api/meetings [post]
func (h *MeetingHandler) Create(c *gin.Context) {
	var req dto.MeetingRequest
	if !bindJSON(c, &req) {
		return
	}
	meeting, err := h.meetingService.Create(&req)
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.SuccessWithMessage(c, "创建成功", meeting)
}

// Update 更新会议
// @Summary 更新会议
// @Tags Meeting
// @Accept json
// @Produce json
// @Param id path int true "会议ID"
// @Param request body dto.MeetingRequest true "会议"
// @Success 200 {object} utils.Response{data=dto.MeetingResponse}
// @Router /api/meetings/{id} [put]
func (h *MeetingHandler) Update(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	var req dto.MeetingRequest
	if !bindJSON(c, &req) {
		return
	}
	meeting, err := h.meetingService.Update(id, &req)
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.SuccessWithMessage(c, "更新成功", meeting)
}

// Delete 删除会议
// @Summary 删除会议
// @Tags Meeting
// @Produce json
// @Param id path int true "会议ID"
// @Success 200 {object} utils.Response
// @Router /api/meetings/{id} [delete]
func (h *MeetingHandler) Delete(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	if err := h.meetingService.Delete(id); err != nil {
		utils.Error(c, err)
		return
	}
	utils.SuccessWithMessage(c, "删除成功", nil)
}

// UpdateStatus 更新会议状态
// @Summary 更新会议状态
// @Tags Meeting
// @Produce json
// @Param id path int true "会议ID"
// @Param status query string true "SCHEDULED/IN_PROGRESS/COMPLETED/CANCELLED"
// @Success 200 {object} utils.Response{data=dto.MeetingResponse}
// @Router /api/meetings/{id}/status [patch]
func (h *MeetingHandler) UpdateStatus(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	var q dto.StatusQuery
	if !bindQuery(c, &q) {
		return
	}
	status, ok := parseEnum(c, q.Status, model.MeetingStatuses, "会议状态")
	if !ok {
		return
	}
	meeting, err := h.meetingService.UpdateStatus(id, status)
	respond(c, meeting, err)
}

// UpdateDisplayOrder 更新显示顺序
// @Summary 更新会议显示顺序
// @Tags Meeting
// @Produce json
// @Param id path int true "会议ID"
// @Param displayOrder query int true "显示顺序"
// @Success 200 {object} utils.Response{data=dto.MeetingResponse}
// @Router /api/meetings/{id}/display-order [patch]
func (h *MeetingHandler) UpdateDisplayOrder(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	order, ok := bindDisplayOrder(c)
	if !ok {
		return
	}
	meeting, err := h.meetingService.UpdateDisplayOrder(id, order)
	respond(c, meeting, err)
}

// Statistics 会议统计
// @Summary 会议统计
// @Tags Meeting
// @Produce json
// @Success 200 {object} utils.Response{data=map[string]int64}
// @Router /api/meetings/statistics [get]
func (h *MeetingHandler) Statistics(c *gin.Context) {
	stats, err := h.meetingService.Statistics()
	respond(c, stats, err)
}
