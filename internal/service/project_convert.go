package service

import (
	"time"

	"github.com/samber/lo"
	"gorm.io/datatypes"

	"lab-cms/internal/dto"
	"lab-cms/internal/model"
	"lab-cms/internal/pkg/validation"
)

func toProjectResponse(p *model.Project) *dto.ProjectResponse {
	return &dto.ProjectResponse{
		ID:               p.ID,
		Name:             p.Name,
		Description:      p.Description,
		Status:           p.Status,
		Category:         p.Category,
		IsPublic:         p.IsPublic,
		Featured:         p.Featured,
		Goals:            p.Goals,
		TechStack:        p.TechStack,
		Achievements:     p.Achievements,
		Budget:           int64(p.Budget),
		Progress:         p.Progress,
		ImageURL:         p.ImageURL,
		RepositoryURL:    p.GithubURL,
		DemoURL:          p.ProjectURL,
		DocumentationURL: p.ProjectURL,
		DisplayOrder:     p.DisplayOrder,
		StartDate:        formatDate(p.StartDate),
		EndDate:          formatDate(p.EndDate),
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func toProjectModel(req *dto.ProjectRequest) (*model.Project, error) {
	p := &model.Project{}
	if err := applyProjectUpdate(p, req); err != nil {
		return nil, err
	}
	return p, nil
}

// applyProjectUpdate 整体覆盖所有字段，未传的状态/分类回到默认值
func applyProjectUpdate(p *model.Project, req *dto.ProjectRequest) error {
	startDate, err := parseDatePtr(req.StartDate)
	if err != nil {
		return err
	}
	endDate, err := parseDatePtr(req.EndDate)
	if err != nil {
		return err
	}

	p.Name = req.Name
	p.Description = req.Description
	p.Status = model.ProjectStatusPlanning
	if req.Status != nil {
		p.Status = *req.Status
	}
	p.Category = model.ProjectCategoryOther
	if req.Category != nil {
		p.Category = *req.Category
	}
	p.IsPublic = lo.FromPtr(req.IsPublic)
	p.Featured = lo.FromPtr(req.Featured)
	p.Goals = req.Goals
	p.TechStack = req.TechStack
	p.Achievements = req.Achievements
	p.Budget = 0
	if req.Budget != nil {
		p.Budget = float64(*req.Budget)
	}
	p.Progress = lo.FromPtr(req.Progress)
	p.ImageURL = req.ImageURL
	p.GithubURL = req.RepositoryURL
	p.ProjectURL = req.DemoURL
	p.DisplayOrder = lo.FromPtr(req.DisplayOrder)
	p.StartDate = startDate
	p.EndDate = endDate
	return nil
}

func parseDatePtr(s *string) (*datatypes.Date, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := validation.ParseDate(*s)
	if err != nil {
		return nil, validationError("日期格式错误，应为 YYYY-MM-DD: " + *s)
	}
	d := datatypes.Date(t)
	return &d, nil
}

func formatDate(d *datatypes.Date) *string {
	if d == nil {
		return nil
	}
	s := time.Time(*d).Format(validation.DateLayout)
	return &s
}
