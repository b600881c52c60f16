package dto

import (
	"time"

	"lab-cms/internal/model"
)

// MeetingRequest 创建/更新会议请求
type MeetingRequest struct {
	Title        string               `json:"title" binding:"required,notblank,max=200"`
	Content      *string              `json:"content"`
	MeetingTime  time.Time            `json:"meetingTime" binding:"required"`
	Location     *string              `json:"location" binding:"omitempty,max=200"`
	MeetingType  *model.MeetingType   `json:"meetingType" binding:"omitempty,oneof=REGULAR EMERGENCY PLANNING REVIEW TRAINING"`
	Status       *model.MeetingStatus `json:"status" binding:"omitempty,oneof=SCHEDULED IN_PROGRESS COMPLETED CANCELLED"`
	Attendees    []string             `json:"attendees"`
	Absentees    []string             `json:"absentees"`
	MeetingNotes *string              `json:"meetingNotes"`
	Conclusion   *string              `json:"conclusion"`
	ActionItems  *string              `json:"actionItems"`
	Tags         *string              `json:"tags" binding:"omitempty,max=500"`
	DisplayOrder *int                 `json:"displayOrder"`
	CreatedBy    *string              `json:"createdBy"`
}

// MeetingResponse 会议响应
type MeetingResponse struct {
	ID           int64               `json:"id"`
	Title        string              `json:"title"`
	Content      *string             `json:"content"`
	MeetingTime  time.Time           `json:"meetingTime"`
	Location     *string             `json:"location"`
	MeetingType  model.MeetingType   `json:"meetingType"`
	Status       model.MeetingStatus `json:"status"`
	Attendees    []string            `json:"attendees"`
	Absentees    []string            `json:"absentees"`
	MeetingNotes *string             `json:"meetingNotes"`
	Conclusion   *string             `json:"conclusion"`
	ActionItems  *string             `json:"actionItems"`
	Tags         *string             `json:"tags"`
	DisplayOrder int                 `json:"displayOrder"`
	CreatedBy    string              `json:"createdBy"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`
}

// DashboardStatistics 全站统计概览
type DashboardStatistics struct {
	Posts    *PostStatistics    `json:"posts"`
	Members  *MemberStatistics  `json:"members"`
	Projects *ProjectStatistics `json:"projects"`
	Meetings map[string]int64   `json:"meetings"`
}
