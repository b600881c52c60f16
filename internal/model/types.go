package model

import (
	"strings"

	"github.com/samber/lo"
)

// PostStatus 文章状态
type PostStatus string

const (
	PostStatusDraft     PostStatus = "DRAFT"
	PostStatusPublished PostStatus = "PUBLISHED"
	PostStatusArchived  PostStatus = "ARCHIVED"
)

var PostStatuses = []PostStatus{PostStatusDraft, PostStatusPublished, PostStatusArchived}

// MemberGender 性别
type MemberGender string

const (
	GenderMale   MemberGender = "MALE"
	GenderFemale MemberGender = "FEMALE"
)

var MemberGenders = []MemberGender{GenderMale, GenderFemale}

// MemberRole 成员角色
type MemberRole string

const (
	MemberRoleTeacher       MemberRole = "TEACHER"
	MemberRolePhDStudent    MemberRole = "PHD_STUDENT"
	MemberRoleMasterStudent MemberRole = "MASTER_STUDENT"
	MemberRoleUndergraduate MemberRole = "UNDERGRADUATE"
	MemberRoleAlumni        MemberRole = "ALUMNI"
)

var MemberRoles = []MemberRole{
	MemberRoleTeacher, MemberRolePhDStudent, MemberRoleMasterStudent, MemberRoleUndergraduate, MemberRoleAlumni,
}

// MemberStatus 成员状态
type MemberStatus string

const (
	MemberStatusActive    MemberStatus = "ACTIVE"
	MemberStatusInactive  MemberStatus = "INACTIVE"
	MemberStatusGraduated MemberStatus = "GRADUATED"
)

var MemberStatuses = []MemberStatus{MemberStatusActive, MemberStatusInactive, MemberStatusGraduated}

// ProjectStatus 项目状态
type ProjectStatus string

const (
	ProjectStatusPlanning  ProjectStatus = "PLANNING"
	ProjectStatusOngoing   ProjectStatus = "ONGOING"
	ProjectStatusCompleted ProjectStatus = "COMPLETED"
	ProjectStatusSuspended ProjectStatus = "SUSPENDED"
)

var ProjectStatuses = []ProjectStatus{
	ProjectStatusPlanning, ProjectStatusOngoing, ProjectStatusCompleted, ProjectStatusSuspended,
}

// ProjectCategory 项目分类
type ProjectCategory string

const (
	ProjectCategoryResearch    ProjectCategory = "RESEARCH"
	ProjectCategoryDevelopment ProjectCategory = "DEVELOPMENT"
	ProjectCategoryCompetition ProjectCategory = "COMPETITION"
	ProjectCategoryCooperation ProjectCategory = "COOPERATION"
	ProjectCategoryOther       ProjectCategory = "OTHER"
)

var ProjectCategories = []ProjectCategory{
	ProjectCategoryResearch, ProjectCategoryDevelopment, ProjectCategoryCompetition,
	ProjectCategoryCooperation, ProjectCategoryOther,
}

// MeetingType 会议类型
type MeetingType string

const (
	MeetingTypeRegular   MeetingType = "REGULAR"
	MeetingTypeEmergency MeetingType = "EMERGENCY"
	MeetingTypePlanning  MeetingType = "PLANNING"
	MeetingTypeReview    MeetingType = "REVIEW"
	MeetingTypeTraining  MeetingType = "TRAINING"
)

var MeetingTypes = []MeetingType{
	MeetingTypeRegular, MeetingTypeEmergency, MeetingTypePlanning, MeetingTypeReview, MeetingTypeTraining,
}

// MeetingStatus 会议状态
type MeetingStatus string

const (
	MeetingStatusScheduled  MeetingStatus = "SCHEDULED"
	MeetingStatusInProgress MeetingStatus = "IN_PROGRESS"
	MeetingStatusCompleted  MeetingStatus = "COMPLETED"
	MeetingStatusCancelled  MeetingStatus = "CANCELLED"
)

var MeetingStatuses = []MeetingStatus{
	MeetingStatusScheduled, MeetingStatusInProgress, MeetingStatusCompleted, MeetingStatusCancelled,
}

// UserRole 用户角色
type UserRole string

const (
	UserRoleAdmin UserRole = "ADMIN"
	UserRoleUser  UserRole = "USER"
)

// UserStatus 用户状态
type UserStatus string

const (
	UserStatusActive   UserStatus = "ACTIVE"
	UserStatusInactive UserStatus = "INACTIVE"
	UserStatusLocked   UserStatus = "LOCKED"
)

// ParseEnum 按名称解析枚举值，忽略大小写和首尾空白
func ParseEnum[T ~string](raw string, values []T) (T, bool) {
	name := strings.ToUpper(strings.TrimSpace(raw))
	return lo.Find(values, func(v T) bool {
		return string(v) == name
	})
}

func (s PostStatus) IsValid() bool      { return lo.Contains(PostStatuses, s) }
func (g MemberGender) IsValid() bool    { return lo.Contains(MemberGenders, g) }
func (r MemberRole) IsValid() bool      { return lo.Contains(MemberRoles, r) }
func (s MemberStatus) IsValid() bool    { return lo.Contains(MemberStatuses, s) }
func (s ProjectStatus) IsValid() bool   { return lo.Contains(ProjectStatuses, s) }
func (c ProjectCategory) IsValid() bool { return lo.Contains(ProjectCategories, c) }
func (t MeetingType) IsValid() bool     { return lo.Contains(MeetingTypes, t) }
func (s MeetingStatus) IsValid() bool   { return lo.Contains(MeetingStatuses, s) }
