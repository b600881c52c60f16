package service

import (
	"strconv"
	"strings"

	"lab-cms/internal/dto"
	"lab-cms/internal/model"
)

func toMemberResponse(m *model.Member) *dto.MemberResponse {
	return &dto.MemberResponse{
		ID:                m.ID,
		StudentID:         m.StudentID,
		Name:              m.Name,
		Gender:            m.Gender,
		Grade:             normalizeGrade(m.Grade),
		Major:             m.Major,
		Role:              m.Role,
		Email:             m.Email,
		Phone:             m.Phone,
		ResearchDirection: m.ResearchDirection,
		Bio:               m.Bio,
		AvatarURL:         m.AvatarURL,
		Status:            m.Status,
		Featured:          m.Featured,
		DisplayOrder:      m.DisplayOrder,
		GithubURL:         m.GithubURL,
		LinkedinURL:       m.LinkedinURL,
		PersonalWebsite:   m.PersonalWebsite,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// normalizeGrade 数字年级去掉前导零，如 "02" -> "2"
func normalizeGrade(grade *string) *string {
	if grade == nil {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(*grade))
	if err != nil {
		return grade
	}
	normalized := strconv.Itoa(n)
	return &normalized
}

func toMemberModel(req *dto.MemberRequest) *model.Member {
	m := &model.Member{
		Role:   model.MemberRoleUndergraduate,
		Status: model.MemberStatusActive,
	}
	applyMemberUpdate(m, req)
	return m
}

// applyMemberUpdate 只覆盖非空字段，年级为空白时保留原值
func applyMemberUpdate(m *model.Member, req *dto.MemberRequest) {
	if req.StudentID != nil {
		m.StudentID = *req.StudentID
	}
	if req.Name != nil {
		m.Name = *req.Name
	}
	if req.Gender != nil {
		m.Gender = req.Gender
	}
	if req.Grade != nil && strings.TrimSpace(*req.Grade) != "" {
		m.Grade = req.Grade
	}
	if req.Major != nil {
		m.Major = req.Major
	}
	if req.Role != nil {
		m.Role = *req.Role
	}
	if req.Email != nil {
		m.Email = req.Email
	}
	if req.Phone != nil {
		m.Phone = req.Phone
	}
	if req.ResearchDirection != nil {
		m.ResearchDirection = req.ResearchDirection
	}
	if req.Bio != nil {
		m.Bio = req.Bio
	}
	if req.AvatarURL != nil {
		m.AvatarURL = req.AvatarURL
	}
	if req.Status != nil {
		m.Status = *req.Status
	}
	if req.Featured != nil {
		m.Featured = *req.Featured
	}
	if req.DisplayOrder != nil {
		m.DisplayOrder = *req.DisplayOrder
	}
	if req.GithubURL != nil {
		m.GithubURL = req.GithubURL
	}
	if req.LinkedinURL != nil {
		m.LinkedinURL = req.LinkedinURL
	}
	if req.PersonalWebsite != nil {
		m.PersonalWebsite = req.PersonalWebsite
	}
}
