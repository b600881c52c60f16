package service

import (
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"lab-cms/internal/dto"
	"lab-cms/internal/model"
	"lab-cms/internal/pkg/logger"
	"lab-cms/internal/pkg/validation"
	"lab-cms/internal/repository"
)

type ProjectService interface {
	List(q *dto.FilterQuery) (*dto.Page[*dto.ProjectResponse], error)
	ListPublic() ([]*dto.ProjectResponse, error)
	ListFeatured() ([]*dto.ProjectResponse, error)
	ListOngoing() ([]*dto.ProjectResponse, error)
	ListCompleted() ([]*dto.ProjectResponse, error)
	GetByID(id int64) (*dto.ProjectResponse, error)
	ListByStatus(status model.ProjectStatus) ([]*dto.ProjectResponse, error)
	ListByCategory(category model.ProjectCategory) ([]*dto.ProjectResponse, error)
	Search(keyword string) ([]*dto.ProjectResponse, error)
	ListByDateRange(startDate, endDate string) ([]*dto.ProjectResponse, error)
	ListByBudgetRange(minBudget, maxBudget int64) ([]*dto.ProjectResponse, error)
	ListByProgressRange(minProgress, maxProgress int) ([]*dto.ProjectResponse, error)

	Create(req *dto.ProjectRequest) (*dto.ProjectResponse, error)
	Update(id int64, req *dto.ProjectRequest) (*dto.ProjectResponse, error)
	Delete(id int64) error
	UpdateStatus(id int64, status model.ProjectStatus) (*dto.ProjectResponse, error)
	UpdateProgress(id int64, progress int) (*dto.ProjectResponse, error)
	UpdateDisplayOrder(id int64, displayOrder int) (*dto.ProjectResponse, error)

	Statistics() (*dto.ProjectStatistics, error)
}

type projectService struct {
	repo repository.ProjectRepository
}

func NewProjectService(repo repository.ProjectRepository) ProjectService {
	return &projectService{repo: repo}
}

// List 分类参数对应项目分类
func (s *projectService) List(q *dto.FilterQuery) (*dto.Page[*dto.ProjectResponse], error) {
	p, err := toPageable(&q.PageQuery, repository.ProjectSortColumns)
	if err != nil {
		return nil, err
	}
	status, err := parseFilterEnum(q.Status, model.ProjectStatuses, "项目状态")
	if err != nil {
		return nil, err
	}
	category, err := parseFilterEnum(q.Category, model.ProjectCategories, "项目分类")
	if err != nil {
		return nil, err
	}

	mode := ResolveFilter(q.Keyword, status, category)
	projects, total, err := s.repo.List(buildCriteria(mode, q.Keyword, status, category), p)
	if err != nil {
		return nil, err
	}
	return newPage(projects, total, p, toProjectResponse), nil
}

func (s *projectService) ListPublic() ([]*dto.ProjectResponse, error) {
	return s.list(s.repo.FindPublic())
}

func (s *projectService) ListFeatured() ([]*dto.ProjectResponse, error) {
	return s.list(s.repo.FindFeaturedPublic())
}

func (s *projectService) ListOngoing() ([]*dto.ProjectResponse, error) {
	return s.list(s.repo.FindPublicByStatus(model.ProjectStatusOngoing))
}

func (s *projectService) ListCompleted() ([]*dto.ProjectResponse, error) {
	return s.list(s.repo.FindPublicByStatus(model.ProjectStatusCompleted))
}

func (s *projectService) GetByID(id int64) (*dto.ProjectResponse, error) {
	project, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

func (s *projectService) ListByStatus(status model.ProjectStatus) ([]*dto.ProjectResponse, error) {
	return s.list(s.repo.FindByStatus(status))
}

func (s *projectService) ListByCategory(category model.ProjectCategory) ([]*dto.ProjectResponse, error) {
	return s.list(s.repo.FindPublicByCategory(category))
}

func (s *projectService) Search(keyword string) ([]*dto.ProjectResponse, error) {
	return s.list(s.repo.Search(keyword))
}

func (s *projectService) ListByDateRange(startDate, endDate string) ([]*dto.ProjectResponse, error) {
	start, err := validation.ParseDate(startDate)
	if err != nil {
		return nil, validationError("开始日期格式错误: " + startDate)
	}
	end, err := validation.ParseDate(endDate)
	if err != nil {
		return nil, validationError("结束日期格式错误: " + endDate)
	}
	return s.list(s.repo.FindByStartDateRange(datatypes.Date(start), datatypes.Date(end)))
}

func (s *projectService) ListByBudgetRange(minBudget, maxBudget int64) ([]*dto.ProjectResponse, error) {
	return s.list(s.repo.FindByBudgetRange(float64(minBudget), float64(maxBudget)))
}

func (s *projectService) ListByProgressRange(minProgress, maxProgress int) ([]*dto.ProjectResponse, error) {
	return s.list(s.repo.FindByProgressRange(minProgress, maxProgress))
}

func (s *projectService) Create(req *dto.ProjectRequest) (*dto.ProjectResponse, error) {
	project, err := toProjectModel(req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(project); err != nil {
		return nil, err
	}

	logger.Info("创建项目成功", zap.Int64("id", project.ID), zap.String("name", project.Name))
	return toProjectResponse(project), nil
}

// Update 整体覆盖，预算必填
func (s *projectService) Update(id int64, req *dto.ProjectRequest) (*dto.ProjectResponse, error) {
	if req.Budget == nil {
		return nil, validationError("项目预算不能为空")
	}

	project, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := applyProjectUpdate(project, req); err != nil {
		return nil, err
	}
	if err := s.repo.Update(project); err != nil {
		return nil, err
	}

	logger.Info("更新项目成功", zap.Int64("id", project.ID), zap.String("name", project.Name))
	return toProjectResponse(project), nil
}

func (s *projectService) Delete(id int64) error {
	project, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}

	logger.Info("删除项目成功", zap.Int64("id", project.ID), zap.String("name", project.Name))
	return nil
}

func (s *projectService) UpdateStatus(id int64, status model.ProjectStatus) (*dto.ProjectResponse, error) {
	return s.mutate(id, func(p *model.Project) {
		p.Status = status
	}, zap.String("status", string(status)))
}

// UpdateProgress 进度达到100时状态置为已完成
func (s *projectService) UpdateProgress(id int64, progress int) (*dto.ProjectResponse, error) {
	if progress < 0 || progress > 100 {
		return nil, validationError("项目进度必须在0到100之间")
	}
	return s.mutate(id, func(p *model.Project) {
		p.ApplyProgress(progress)
	}, zap.Int("progress", progress))
}

func (s *projectService) UpdateDisplayOrder(id int64, displayOrder int) (*dto.ProjectResponse, error) {
	return s.mutate(id, func(p *model.Project) {
		p.DisplayOrder = displayOrder
	}, zap.Int("display_order", displayOrder))
}

func (s *projectService) Statistics() (*dto.ProjectStatistics, error) {
	total, err := s.repo.Count()
	if err != nil {
		return nil, err
	}
	statuses, err := s.repo.CountByStatus()
	if err != nil {
		return nil, err
	}
	categories, err := s.repo.CountByCategory()
	if err != nil {
		return nil, err
	}

	return &dto.ProjectStatistics{
		TotalProjects:  total,
		StatusCounts:   foldCounts(statuses, model.ProjectStatuses, "project_status"),
		CategoryCounts: foldCounts(categories, model.ProjectCategories, "project_category"),
	}, nil
}

func (s *projectService) mutate(id int64, fn func(*model.Project), field zap.Field) (*dto.ProjectResponse, error) {
	project, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	fn(project)
	if err := s.repo.Update(project); err != nil {
		return nil, err
	}

	logger.Info("更新项目", zap.Int64("id", project.ID), field)
	return toProjectResponse(project), nil
}

func (s *projectService) list(projects []*model.Project, err error) ([]*dto.ProjectResponse, error) {
	if err != nil {
		return nil, err
	}
	return mapSlice(projects, toProjectResponse), nil
}
