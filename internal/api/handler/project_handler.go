package handler

import (
	"github.com/gin-gonic/gin"

	"lab-cms/internal/dto"
	"lab-cms/internal/model"
	"lab-cms/internal/service"
	"lab-cms/pkg/utils"
)

type ProjectHandler struct {
	projectService service.ProjectService
}

func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// List 项目分页，category 对应项目分类
// @Summary 项目列表
// @Tags Project
// @Produce json
// @Param page query int false "页码，从0开始"
// @Param size query int false "每页数量"
// @Param sortBy query string false "排序字段" default(createdAt)
// @Param sortDirection query string false "排序方向 ASC/DESC" default(DESC)
// @Param keyword query string false "名称关键字"
// @Param status query string false "PLANNING/ONGOING/COMPLETED/SUSPENDED"
// @Param category query string false "项目分类"
// @Success 200 {object} utils.Response{data=dto.Page[dto.ProjectResponse]}
// @Router /api/projects [get]
func (h *ProjectHandler) List(c *gin.Context) {
	var q dto.FilterQuery
	if !bindQuery(c, &q) {
		return
	}
	page, err := h.projectService.List(&q)
	respond(c, page, err)
}

// Public 公开项目
// @Summary 公开项目
// @Tags Project
// @Produce json
// @Success 200 {object} utils.Response{data=[]dto.ProjectResponse}
// @Router /api/projects/public [get]
func (h *ProjectHandler) Public(c *gin.Context) {
	projects, err := h.projectService.ListPublic()
	respond(c, projects, err)
}

// Featured 推荐项目
// @Summary 推荐项目
// @Tags Project
// @Produce json
// @Success 200 {object} utils.Response{data=[]dto.ProjectResponse}
// @Router /api/projects/featured [get]
func (h *ProjectHandler) Featured(c *gin.Context) {
	projects, err := h.projectService.ListFeatured()
	respond(c, projects, err)
}

// Ongoing 进行中的公开项目
// @Summary 进行中项目
// @Tags Project
// @Produce json
// @Success 200 {object} utils.Response{data=[]dto.ProjectResponse}
// @Router /api/projects/ongoing [get]
func (h *ProjectHandler) Ongoing(c *gin.Context) {
	projects, err := h.projectService.ListOngoing()
	respond(c, projects, err)
}

// Completed 已完成的公开项目
// @Summary 已完成项目
// @Tags Project
// @Produce json
// @Success 200 {object} utils.Response{data=[]dto.ProjectResponse}
// @Router /api/projects/completed [get]
func (h *ProjectHandler) Completed(c *gin.Context) {
	projects, err := h.projectService.ListCompleted()
	respond(c, projects, err)
}

// GetByID 项目详情
// @Summary 项目详情
// @Tags Project
// @Produce json
// @Param id path int true "项目ID"
// @Success 200 {object} utils.Response{data=dto.ProjectResponse}
// @Router /api/projects/{id} [get]
func (h *ProjectHandler) GetByID(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	project, err := h.projectService.GetByID(id)
	respond(c, project, err)
}

// ByStatus 按状态查询
// @Summary 按状态查询项目
// @Tags Project
// @Produce json
// @Param status path string true "PLANNING/ONGOING/COMPLETED/SUSPENDED"
// @Success 200 {object} utils.Response{data=[]dto.ProjectResponse}
// @Router /api/projects/status/{status} [get]
func (h *ProjectHandler) ByStatus(c *gin.Context) {
	status, ok := parseEnum(c, c.Param("status"), model.ProjectStatuses, "项目状态")
	if !ok {
		return
	}
	projects, err := h.projectService.ListByStatus(status)
	respond(c, projects, err)
}

// ByCategory 按分类查询公开项目
// @Summary 按分类查询项目
// @Tags Project
// @Produce json
// @Param category path string true "RESEARCH/DEVELOPMENT/COMPETITION/COOPERATION/OTHER"
// @Success 200 {object} utils.Response{data=[]dto.ProjectResponse}
// @Router /api/projects/category/{category} [get]
func (h *ProjectHandler) ByCategory(c *gin.Context) {
	category, ok := parseEnum(c, c.Param("category"), model.ProjectCategories, "项目分类")
	if !ok {
		return
	}
	projects, err := h.projectService.ListByCategory(category)
	respond(c, projects, err)
}

// Search 搜索项目
// @Summary 搜索项目
// @Tags Project
// @Produce json
// @Param keyword query string true "关键字"
// @Success 200 {object} utils.Response{data=[]dto.ProjectResponse}
// @Router /api/projects/search [get]
func (h *ProjectHandler) Search(c *gin.Context) {
	var q dto.KeywordQuery
	if !bindQuery(c, &q) {
		return
	}
	projects, err := h.projectService.Search(q.Keyword)
	respond(c, projects, err)
}

// DateRange 按开始日期区间查询
// @Summary 按开始日期查询项目
// @Tags Project
// @Produce json
// @Param startDate query string true "YYYY-MM-DD"
// @Param endDate query string true "YYYY-MM-DD"
// @Success 200 {object} utils.Response{data=[]dto.ProjectResponse}
// @Router /api/projects/date-range [get]
func (h *ProjectHandler) DateRange(c *gin.Context) {
	var q dto.DateRangeQuery
	if !bindQuery(c, &q) {
		return
	}
	projects, err := h.projectService.ListByDateRange(q.StartDate, q.EndDate)
	respond(c, projects, err)
}

// BudgetRange 按预算区间查询
// @Summary 按预算查询项目
// @Tags Project
// @Produce json
// @Param minBudget query int true "最小预算"
// @Param maxBudget query int true "最大预算"
// @Success 200 {object} utils.Response{data=[]dto.ProjectResponse}
// @Router /api/projects/budget-range [get]
func (h *ProjectHandler) BudgetRange(c *gin.Context) {
	var q dto.BudgetRangeQuery
	if !bindQuery(c, &q) {
		return
	}
	projects, err := h.projectService.ListByBudgetRange(*q.MinBudget, *q.MaxBudget)
	respond(c, projects, err)
}

// ProgressRange 按进度区间查询
// @Summary 按进度查询项目
// @Tags Project
// @Produce json
// @Param minProgress query int true "最小进度"
// @Param maxProgress query int true "最大进度"
// @Success 200 {object} utils.Response{data=[]dto.ProjectResponse}
// @Router /api/projects/progress-range [get]
func (h *ProjectHandler) ProgressRange(c *gin.Context) {
	var q dto.ProgressRangeQuery
	if !bindQuery(c, &q) {
		return
	}
	projects, err := h.projectService.ListByProgressRange(*q.MinProgress, *q.MaxProgress)
	respond(c, projects, err)
}

// Create 创建项目
// @Summary 创建项目
// @Tags Project
// @Accept json
// @Produce json
// @Param request body dto.ProjectRequest true "项目"
// @Success 200 {object} utils.Response{data=dto.ProjectResponse}
// @Router /api/projects [post]
func (h *ProjectHandler) Create(c *gin.Context) {
	var req dto.ProjectRequest
	if !bindJSON(c, &req) {
		return
	}
	project, err := h.projectService.Create(&req)
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.SuccessWithMessage(c, "创建成功", project)
}

// Update 更新项目，整体覆盖，预算必填
// @Summary 更新项目
// @Tags Project
// @Accept json
// @Produce json
// @Param id path int true "项目ID"
// @Param request body dto.ProjectRequest true "项目"
// @Success 200 {object} utils.Response{data=dto.ProjectResponse}
// @Router /api/projects/{id} [put]
func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	var req dto.ProjectRequest
	if !bindJSON(c, &req) {
		return
	}
	project, err := h.projectService.Update(id, &req)
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.SuccessWithMessage(c, "更新成功", project)
}

// Delete 删除项目
// @Summary 删除项目
// @Tags Project
// @Produce json
// @Param id path int true "项目ID"
// @Success 200 {object} utils.Response
// @Router /api/projects/{id} [delete]
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	if err := h.projectService.Delete(id); err != nil {
		utils.Error(c, err)
		return
	}
	utils.SuccessWithMessage(c, "删除成功", nil)
}

// UpdateStatus 更新项目状态
// @Summary 更新项目状态
// @Tags Project
// @Produce json
// @Param id path int true "项目ID"
// @Param status query string true "PLANNING/ONGOING/COMPLETED/SUSPENDED"
// @Success 200 {object} utils.Response{data=dto.ProjectResponse}
// @Router /api/projects/{id}/status [patch]
func (h *ProjectHandler) UpdateStatus(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	var q dto.StatusQuery
	if !bindQuery(c, &q) {
		return
	}
	status, ok := parseEnum(c, q.Status, model.ProjectStatuses, "项目状态")
	if !ok {
		return
	}
	project, err := h.projectService.UpdateStatus(id, status)
	respond(c, project, err)
}

// UpdateProgress 更新进度，达到100时自动完成
// @Summary 更新项目进度
// @Tags Project
// @Produce json
// @Param id path int true "项目ID"
// @Param progress query int true "进度 0-100"
// @Success 200 {object} utils.Response{data=dto.ProjectResponse}
// @Router /api/projects/{id}/progress [patch]
func (h *ProjectHandler) UpdateProgress(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	var q dto.ProgressQuery
	if !bindQuery(c, &q) {
		return
	}
	project, err := h.projectService.UpdateProgress(id, *q.Progress)
	respond(c, project, err)
}

// UpdateDisplayOrder 更新显示顺序
// @Summary 更新项目显示顺序
// @Tags Project
// @Produce json
// @Param id path int true "项目ID"
// @Param displayOrder query int true "显示顺序"
// @Success 200 {object} utils.Response{data=dto.ProjectResponse}
// @Router /api/projects/{id}/display-order [patch]
func (h *ProjectHandler) UpdateDisplayOrder(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	order, ok := bindDisplayOrder(c)
	if !ok {
		return
	}
	project, err := h.projectService.UpdateDisplayOrder(id, order)
	respond(c, project, err)
}

// Statistics 项目统计
// @Summary 项目统计
// @Tags Project
// @Produce json
// @Success 200 {object} utils.Response{data=dto.ProjectStatistics}
// @Router /api/projects/statistics [get]
func (h *ProjectHandler) Statistics(c *gin.Context) {
	stats, err := h.projectService.Statistics()
	respond(c, stats, err)
}
