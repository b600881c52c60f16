package dto

import (
	"strings"
)

const (
	DefaultPage          = 0
	DefaultSize          = 10
	MaxSize              = 100
	DefaultSortBy        = "createdAt"
	DefaultSortDirection = "DESC"
	DefaultLatestLimit   = 5
)

// PageQuery 分页查询参数，页码从0开始
type PageQuery struct {
	Page          *int   `form:"page" binding:"omitempty,min=0"`
	Size          *int   `form:"size" binding:"omitempty,min=1"`
	SortBy        string `form:"sortBy"`
	SortDirection string `form:"sortDirection"`
}

// GetPage 获取页码
func (p *PageQuery) GetPage() int {
	if p.Page == nil || *p.Page < 0 {
		return DefaultPage
	}
	return *p.Page
}

// GetSize 获取每页数量
func (p *PageQuery) GetSize() int {
	if p.Size == nil || *p.Size < 1 {
		return DefaultSize
	}
	if *p.Size > MaxSize {
		return MaxSize
	}
	return *p.Size
}

// GetSortBy 获取排序字段
func (p *PageQuery) GetSortBy() string {
	if strings.TrimSpace(p.SortBy) == "" {
		return DefaultSortBy
	}
	return strings.TrimSpace(p.SortBy)
}

// Ascending 仅 ASC（忽略大小写）为升序，其余一律降序
func (p *PageQuery) Ascending() bool {
	return IsAscending(p.SortDirection)
}

// IsAscending 解析排序方向
func IsAscending(direction string) bool {
	return strings.EqualFold(strings.TrimSpace(direction), "ASC")
}

// FilterQuery 列表过滤参数
type FilterQuery struct {
	PageQuery
	Keyword  string `form:"keyword"`
	Status   string `form:"status"`
	Category string `form:"category"`
}

// KeywordQuery 关键字搜索参数
type KeywordQuery struct {
	Keyword string `form:"keyword" binding:"required"`
}

// IDParam ID参数
type IDParam struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// DisplayOrderQuery 显示顺序参数
type DisplayOrderQuery struct {
	DisplayOrder *int `form:"displayOrder" binding:"required"`
}

// Page 分页响应
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Number        int   `json:"number"`
	Size          int   `json:"size"`
	First         bool  `json:"first"`
	Last          bool  `json:"last"`
	Empty         bool  `json:"empty"`
}

// NewPage 创建分页响应
func NewPage[T any](content []T, total int64, page, size int) *Page[T] {
	if content == nil {
		content = []T{}
	}
	totalPages := 0
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}
	return &Page[T]{
		Content:       content,
		TotalElements: total,
		TotalPages:    totalPages,
		Number:        page,
		Size:          size,
		First:         page == 0,
		Last:          page+1 >= totalPages,
		Empty:         len(content) == 0,
	}
}

// EmptyPage 空分页
func EmptyPage[T any](page, size int) *Page[T] {
	return NewPage[T](nil, 0, page, size)
}
