package handler

import (
	"github.com/gin-gonic/gin"

	"lab-cms/internal/api/middleware"
	"lab-cms/internal/dto"
	"lab-cms/internal/model"
	"lab-cms/internal/service"
	"lab-cms/pkg/utils"
)

type PostHandler struct {
	postService service.PostService
}

func NewPostHandler(postService service.PostService) *PostHandler {
	return &PostHandler{
		postService: postService,
	}
}

// List 已发布文章分页
// @Summary 已发布文章列表
// @Tags Post
// @Produce json
// @Param page query int false "页码，从0开始"
// @Param size query int false "每页数量"
// @Param sortBy query string false "排序字段" default(createdAt)
// @Param sortDirection query string false "排序方向 ASC/DESC" default(DESC)
// @Success 200 {object} utils.Response{data=dto.Page[dto.PostResponse]}
// @Router /api/posts [get]
func (h *PostHandler) List(c *gin.Context) {
	var q dto.PageQuery
	if !bindQuery(c, &q) {
		return
	}
	page, err := h.postService.ListPublished(&q)
	respond(c, page, err)
}

// Featured 推荐文章
// @Summary 推荐文章
// @Tags Post
// @Produce json
// @Success 200 {object} utils.Response{data=[]dto.PostResponse}
// @Router /api/posts/featured [get]
func (h *PostHandler) Featured(c *gin.Context) {
	posts, err := h.postService.ListFeatured()
	respond(c, posts, err)
}

// Latest 最新文章
// @Summary 最新文章
// @Tags Post
// @Produce json
// @Param limit query int false "条数" default(5)
// @Success 200 {object} utils.Response{data=[]dto.PostResponse}
// @Router /api/posts/latest [get]
func (h *PostHandler) Latest(c *gin.Context) {
	var q dto.LatestQuery
	if !bindQuery(c, &q) {
		return
	}
	posts, err := h.postService.ListLatest(q.GetLimit())
	respond(c, posts, err)
}

// GetByID 文章详情，未携带操作人请求头时只返回已发布文章
// @Summary 文章详情
// @Tags Post
// @Produce json
// @Param id path int true "文章ID"
// @Param X-Admin-Username header string false "操作人，管理员可查看未发布文章"
// @Success 200 {object} utils.Response{data=dto.PostResponse}
// @Router /api/posts/{id} [get]
func (h *PostHandler) GetByID(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	post, err := h.postService.GetByID(id, middleware.ExplicitActor(c))
	respond(c, post, err)
}

// ByStatus 按状态分页
// @Summary 按状态查询文章
// @Tags Post
// @Produce json
// @Param status path string true "DRAFT/PUBLISHED/ARCHIVED"
// @Param page query int false "页码"
// @Param size query int false "每页数量"
// @Success 200 {object} utils.Response{data=dto.Page[dto.PostResponse]}
// @Router /api/posts/status/{status} [get]
func (h *PostHandler) ByStatus(c *gin.Context) {
	status, ok := parseEnum(c, c.Param("status"), model.PostStatuses, "文章状态")
	if !ok {
		return
	}
	var q dto.PageQuery
	if !bindQuery(c, &q) {
		return
	}
	page, err := h.postService.ListByStatus(status, &q)
	respond(c, page, err)
}

// Search 搜索已发布文章
// @Summary 搜索文章
// @Tags Post
// @Produce json
// @Param keyword query string true "关键字"
// @Param page query int false "页码"
// @Param size query int false "每页数量"
// @Success 200 {object} utils.Response{data=dto.Page[dto.PostResponse]}
// @Router /api/posts/search [get]
func (h *PostHandler) Search(c *gin.Context) {
	var kw dto.KeywordQuery
	var q dto.PageQuery
	if !bindQuery(c, &kw) || !bindQuery(c, &q) {
		return
	}
	page, err := h.postService.Search(kw.Keyword, &q)
	respond(c, page, err)
}

// ByTag 按标签查询
// @Summary 按标签查询文章
// @Tags Post
// @Produce json
// @Param tag path string true "标签"
// @Success 200 {object} utils.Response{data=[]dto.PostResponse}
// @Router /api/posts/tag/{tag} [get]
func (h *PostHandler) ByTag(c *gin.Context) {
	posts, err := h.postService.ListByTag(c.Param("tag"))
	respond(c, posts, err)
}

// Create 创建文章
// @Summary 创建文章
// @Tags Post
// @Accept json
// @Produce json
// @Param X-Admin-Username header string false "操作人"
// @Param request body dto.PostRequest true "文章"
// @Success 200 {object} utils.Response{data=dto.PostResponse}
// @Router /api/posts [post]
func (h *PostHandler) Create(c *gin.Context) {
	var req dto.PostRequest
	if !bindJSON(c, &req) {
		return
	}
	post, err := h.postService.Create(middleware.GetActor(c), &req)
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.SuccessWithMessage(c, "创建成功", post)
}

// Update 更新文章
// @Summary 更新文章
// @Tags Post
// @Accept json
// @Produce json
// @Param id path int true "文章ID"
// @Param X-Admin-Username header string false "操作人"
// @Param request body dto.PostRequest true "文章"
// @Success 200 {object} utils.Response{data=dto.PostResponse}
// @Router /api/posts/{id} [put]
func (h *PostHandler) Update(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	var req dto.PostRequest
	if !bindJSON(c, &req) {
		return
	}
	post, err := h.postService.Update(middleware.GetActor(c), id, &req)
	if err != nil {
		utils.Error(c, err)
		return
	}
	utils.SuccessWithMessage(c, "更新成功", post)
}

// Delete 删除文章
// @Summary 删除文章
// @Tags Post
// @Produce json
// @Param id path int true "文章ID"
// @Param X-Admin-Username header string false "操作人"
// @Success 200 {object} utils.Response
// @Router /api/posts/{id} [delete]
func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	if err := h.postService.Delete(middleware.GetActor(c), id); err != nil {
		utils.Error(c, err)
		return
	}
	utils.SuccessWithMessage(c, "删除成功", nil)
}

// UpdateStatus 更新状态
// @Summary 更新文章状态
// @Tags Post
// @Produce json
// @Param id path int true "文章ID"
// @Param status query string true "DRAFT/PUBLISHED/ARCHIVED"
// @Success 200 {object} utils.Response{data=dto.PostResponse}
// @Router /api/posts/{id}/status [patch]
func (h *PostHandler) UpdateStatus(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	var q dto.StatusQuery
	if !bindQuery(c, &q) {
		return
	}
	status, ok := parseEnum(c, q.Status, model.PostStatuses, "文章状态")
	if !ok {
		return
	}
	post, err := h.postService.UpdateStatus(id, status)
	respond(c, post, err)
}

// Like 点赞
// @Summary 点赞文章
// @Tags Post
// @Produce json
// @Param id path int true "文章ID"
// @Success 200 {object} utils.Response{data=dto.PostResponse}
// @Router /api/posts/{id}/like [post]
func (h *PostHandler) Like(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	post, err := h.postService.Like(id)
	respond(c, post, err)
}

// Unlike 取消点赞，计数不会小于0
// @Summary 取消点赞
// @Tags Post
// @Produce json
// @Param id path int true "文章ID"
// @Success 200 {object} utils.Response{data=dto.PostResponse}
// @Router /api/posts/{id}/like [delete]
func (h *PostHandler) Unlike(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	post, err := h.postService.Unlike(id)
	respond(c, post, err)
}

// UpdateDisplayOrder 更新显示顺序
// @Summary 更新文章显示顺序
// @Tags Post
// @Produce json
// @Param id path int true "文章ID"
// @Param displayOrder query int true "显示顺序"
// @Success 200 {object} utils.Response{data=dto.PostResponse}
// @Router /api/posts/{id}/display-order [patch]
func (h *PostHandler) UpdateDisplayOrder(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	order, ok := bindDisplayOrder(c)
	if !ok {
		return
	}
	post, err := h.postService.UpdateDisplayOrder(id, order)
	respond(c, post, err)
}

// View 浏览量+1
// @Summary 增加浏览量
// @Tags Post
// @Produce json
// @Param id path int true "文章ID"
// @Success 200 {object} utils.Response
// @Router /api/posts/{id}/view [post]
func (h *PostHandler) View(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	if err := h.postService.IncrementViewCount(id); err != nil {
		utils.Error(c, err)
		return
	}
	utils.Success(c, nil)
}

// Statistics 文章统计
// @Summary 文章统计
// @Tags Post
// @Produce json
// @Success 200 {object} utils.Response{data=dto.PostStatistics}
// @Router /api/posts/statistics [get]
func (h *PostHandler) Statistics(c *gin.Context) {
	stats, err := h.postService.Statistics()
	respond(c, stats, err)
}
