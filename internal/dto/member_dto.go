package dto

import (
	"time"

	"lab-cms/internal/model"
)

// MemberRequest 创建/更新成员请求，更新时仅覆盖非空字段
type MemberRequest struct {
	StudentID         *string             `json:"studentId" binding:"omitempty,min=8,max=20"`
	Name              *string             `json:"name" binding:"omitempty,max=50"`
	Gender            *model.MemberGender `json:"gender" binding:"omitempty,oneof=MALE FEMALE"`
	Grade             *string             `json:"grade" binding:"omitempty,max=20"`
	Major             *string             `json:"major" binding:"omitempty,max=100"`
	Role              *model.MemberRole   `json:"role" binding:"omitempty,oneof=TEACHER PHD_STUDENT MASTER_STUDENT UNDERGRADUATE ALUMNI"`
	Email             *string             `json:"email" binding:"omitempty,email,max=100"`
	Phone             *string             `json:"phone" binding:"omitempty,cnphone"`
	ResearchDirection *string             `json:"researchDirection" binding:"omitempty,max=200"`
	Bio               *string             `json:"bio" binding:"omitempty,max=500"`
	AvatarURL         *string             `json:"avatarUrl" binding:"omitempty,max=200"`
	Status            *model.MemberStatus `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE GRADUATED"`
	Featured          *bool               `json:"featured"`
	DisplayOrder      *int                `json:"displayOrder"`
	GithubURL         *string             `json:"githubUrl" binding:"omitempty,max=200"`
	LinkedinURL       *string             `json:"linkedinUrl" binding:"omitempty,max=200"`
	PersonalWebsite   *string             `json:"personalWebsite" binding:"omitempty,max=200"`
}

// MemberResponse 成员响应
type MemberResponse struct {
	ID                int64               `json:"id"`
	StudentID         string              `json:"studentId"`
	Name              string              `json:"name"`
	Gender            *model.MemberGender `json:"gender"`
	Grade             *string             `json:"grade"`
	Major             *string             `json:"major"`
	Role              model.MemberRole    `json:"role"`
	Email             *string             `json:"email"`
	Phone             *string             `json:"phone"`
	ResearchDirection *string             `json:"researchDirection"`
	Bio               *string             `json:"bio"`
	AvatarURL         *string             `json:"avatarUrl"`
	Status            model.MemberStatus  `json:"status"`
	Featured          bool                `json:"featured"`
	DisplayOrder      int                 `json:"displayOrder"`
	GithubURL         *string             `json:"githubUrl"`
	LinkedinURL       *string             `json:"linkedinUrl"`
	PersonalWebsite   *string             `json:"personalWebsite"`
	CreatedAt         time.Time           `json:"createdAt"`
	UpdatedAt         time.Time           `json:"updatedAt"`
}

// MemberStatistics 成员统计
type MemberStatistics struct {
	TotalMembers int64            `json:"totalMembers"`
	StatusCounts map[string]int64 `json:"statusCounts"`
	RoleCounts   map[string]int64 `json:"roleCounts"`
}
