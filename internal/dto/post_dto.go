package dto

import (
	"time"

	"lab-cms/internal/model"
)

// PostRequest 创建/更新文章请求
type PostRequest struct {
	Title         string            `json:"title" binding:"required,notblank,max=200"`
	Content       string            `json:"content" binding:"required,notblank,max=50000"`
	Summary       *string           `json:"summary" binding:"omitempty,max=500"`
	CoverImage    *string           `json:"coverImage" binding:"omitempty,max=200"`
	Status        *model.PostStatus `json:"status" binding:"omitempty,oneof=DRAFT PUBLISHED ARCHIVED"`
	AllowComments *bool             `json:"allowComments"`
	Featured      *bool             `json:"featured"`
	Tags          *string           `json:"tags" binding:"omitempty,max=500"` // 逗号分隔
}

// PostResponse 文章响应
type PostResponse struct {
	ID            int64            `json:"id"`
	Title         string           `json:"title"`
	Content       string           `json:"content"`
	Summary       *string          `json:"summary"`
	CoverImage    *string          `json:"coverImage"`
	Status        model.PostStatus `json:"status"`
	AllowComments bool             `json:"allowComments"`
	Featured      bool             `json:"featured"`
	Tags          *string          `json:"tags"`
	AuthorName    string           `json:"authorName,omitempty"`
	AuthorAvatar  *string          `json:"authorAvatar,omitempty"`
	ViewCount     int64            `json:"viewCount"`
	LikeCount     int64            `json:"likeCount"`
	CommentCount  int64            `json:"commentCount"`
	DisplayOrder  int              `json:"displayOrder"`
	PublishedAt   *time.Time       `json:"publishedAt"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

// PostStatistics 文章统计
type PostStatistics struct {
	TotalPosts    int64            `json:"totalPosts"`
	StatusCounts  map[string]int64 `json:"statusCounts"`
	TotalViews    int64            `json:"totalViews"`
	TotalLikes    int64            `json:"totalLikes"`
	TotalComments int64            `json:"totalComments"`
}

// StatusQuery 状态变更参数
type StatusQuery struct {
	Status string `form:"status" binding:"required"`
}

// LatestQuery 最新文章参数
type LatestQuery struct {
	Limit *int `form:"limit" binding:"omitempty,min=1,max=100"`
}

// GetLimit 获取条数
func (q *LatestQuery) GetLimit() int {
	if q.Limit == nil {
		return DefaultLatestLimit
	}
	return *q.Limit
}
