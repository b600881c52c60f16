package service

import (
	"strconv"
	"strings"

	"lab-cms/internal/dto"
	"lab-cms/internal/model"
)

func toMeetingResponse(m *model.Meeting) *dto.MeetingResponse {
	return &dto.MeetingResponse{
		ID:           m.ID,
		Title:        m.Title,
		Content:      m.Description,
		MeetingTime:  m.MeetingDate,
		Location:     m.Location,
		MeetingType:  m.Type,
		Status:       m.Status,
		Attendees:    model.SplitNames(m.Attendees),
		Absentees:    model.SplitNames(m.Absentees),
		MeetingNotes: m.Minutes,
		Conclusion:   m.Conclusion,
		ActionItems:  m.ActionItems,
		Tags:         m.Tags,
		DisplayOrder: m.DisplayOrder,
		CreatedBy:    strconv.FormatInt(m.CreatedBy, 10),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toMeetingModel(req *dto.MeetingRequest) (*model.Meeting, error) {
	createdBy, err := parseCreatedBy(req.CreatedBy)
	if err != nil {
		return nil, err
	}

	m := &model.Meeting{
		Type:      model.MeetingTypeRegular,
		Status:    model.MeetingStatusScheduled,
		CreatedBy: createdBy,
	}
	if req.Status != nil {
		m.Status = *req.Status
	}
	applyMeetingUpdate(m, req)
	return m, nil
}

// applyMeetingUpdate 覆盖可编辑字段，状态不变；缺席名单仅在非空时替换
func applyMeetingUpdate(m *model.Meeting, req *dto.MeetingRequest) {
	m.Title = req.Title
	m.Description = req.Content
	m.MeetingDate = req.MeetingTime
	m.Location = req.Location
	if req.MeetingType != nil {
		m.Type = *req.MeetingType
	}
	m.Attendees = model.JoinNames(req.Attendees)
	if len(req.Absentees) > 0 {
		m.Absentees = model.JoinNames(req.Absentees)
	}
	m.Minutes = req.MeetingNotes
	m.Conclusion = req.Conclusion
	m.ActionItems = req.ActionItems
	m.Tags = req.Tags
	if req.DisplayOrder != nil {
		m.DisplayOrder = *req.DisplayOrder
	}
}

func parseCreatedBy(raw *string) (int64, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(strings.TrimSpace(*raw), 10, 64)
	if err != nil {
		return 0, validationError("创建人ID格式错误: " + *raw)
	}
	return id, nil
}
