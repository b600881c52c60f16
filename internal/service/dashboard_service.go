package service

import (
	"lab-cms/internal/dto"
)

// DashboardService 汇总各模块统计
type DashboardService interface {
	Overview() (*dto.DashboardStatistics, error)
}

type dashboardService struct {
	posts    PostService
	members  MemberService
	projects ProjectService
	meetings MeetingService
}

func NewDashboardService(posts PostService, members MemberService, projects ProjectService, meetings MeetingService) DashboardService {
	return &dashboardService{posts: posts, members: members, projects: projects, meetings: meetings}
}

func (s *dashboardService) Overview() (*dto.DashboardStatistics, error) {
	posts, err := s.posts.Statistics()
	if err != nil {
		return nil, err
	}
	members, err := s.members.Statistics()
	if err != nil {
		return nil, err
	}
	projects, err := s.projects.Statistics()
	if err != nil {
		return nil, err
	}
	meetings, err := s.meetings.Statistics()
	if err != nil {
		return nil, err
	}

	return &dto.DashboardStatistics{
		Posts:    posts,
		Members:  members,
		Projects: projects,
		Meetings: meetings,
	}, nil
}
