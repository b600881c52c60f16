package dto

import (
	"time"

	"lab-cms/internal/model"
)

// ProjectRequest 创建/更新项目请求，更新时整体覆盖
type ProjectRequest struct {
	Name             string                 `json:"name" binding:"required,max=200"`
	Description      *string                `json:"description" binding:"omitempty,max=2000"`
	Status           *model.ProjectStatus   `json:"status" binding:"omitempty,oneof=PLANNING ONGOING COMPLETED SUSPENDED"`
	Category         *model.ProjectCategory `json:"category" binding:"omitempty,oneof=RESEARCH DEVELOPMENT COMPETITION COOPERATION OTHER"`
	IsPublic         *bool                  `json:"isPublic"`
	Featured         *bool                  `json:"featured"`
	Goals            *string                `json:"goals" binding:"omitempty,max=500"`
	TechStack        *string                `json:"techStack" binding:"omitempty,max=1000"`
	Achievements     *string                `json:"achievements" binding:"omitempty,max=500"`
	Budget           *int64                 `json:"budget" binding:"omitempty,min=0"`
	Progress         *int                   `json:"progress" binding:"omitempty,min=0,max=100"`
	ImageURL         *string                `json:"imageUrl" binding:"omitempty,max=200"`
	RepositoryURL    *string                `json:"repositoryUrl" binding:"omitempty,max=200"`
	DemoURL          *string                `json:"demoUrl" binding:"omitempty,max=200"`
	DocumentationURL *string                `json:"documentationUrl" binding:"omitempty,max=200"`
	DisplayOrder     *int                   `json:"displayOrder"`
	StartDate        *string                `json:"startDate" binding:"omitempty,futuredate"` // YYYY-MM-DD
	EndDate          *string                `json:"endDate" binding:"omitempty,futuredate"`
}

// ProjectResponse 项目响应
type ProjectResponse struct {
	ID               int64                 `json:"id"`
	Name             string                `json:"name"`
	Description      *string               `json:"description"`
	Status           model.ProjectStatus   `json:"status"`
	Category         model.ProjectCategory `json:"category"`
	IsPublic         bool                  `json:"isPublic"`
	Featured         bool                  `json:"featured"`
	Goals            *string               `json:"goals"`
	TechStack        *string               `json:"techStack"`
	Achievements     *string               `json:"achievements"`
	Budget           int64                 `json:"budget"`
	Progress         int                   `json:"progress"`
	ImageURL         *string               `json:"imageUrl"`
	RepositoryURL    *string               `json:"repositoryUrl"`
	DemoURL          *string               `json:"demoUrl"`
	DocumentationURL *string               `json:"documentationUrl"`
	DisplayOrder     int                   `json:"displayOrder"`
	StartDate        *string               `json:"startDate"`
	EndDate          *string               `json:"endDate"`
	CreatedAt        time.Time             `json:"createdAt"`
	UpdatedAt        time.Time             `json:"updatedAt"`
}

// ProjectStatistics 项目统计
type ProjectStatistics struct {
	TotalProjects  int64            `json:"totalProjects"`
	StatusCounts   map[string]int64 `json:"statusCounts"`
	CategoryCounts map[string]int64 `json:"categoryCounts"`
}

// ProgressQuery 进度更新参数
type ProgressQuery struct {
	Progress *int `form:"progress" binding:"required,min=0,max=100"`
}

// DateRangeQuery 开始日期范围
type DateRangeQuery struct {
	StartDate string `form:"startDate" binding:"required,datestr"`
	EndDate   string `form:"endDate" binding:"required,datestr"`
}

// BudgetRangeQuery 预算范围
type BudgetRangeQuery struct {
	MinBudget *int64 `form:"minBudget" binding:"required,min=0"`
	MaxBudget *int64 `form:"maxBudget" binding:"required,min=0"`
}

// ProgressRangeQuery 进度范围
type ProgressRangeQuery struct {
	MinProgress *int `form:"minProgress" binding:"required,min=0,max=100"`
	MaxProgress *int `form:"maxProgress" binding:"required,min=0,max=100"`
}
