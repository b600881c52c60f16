package service

import (
	"strings"

	"go.uber.org/zap"

	"lab-cms/internal/dto"
	"lab-cms/internal/model"
	"lab-cms/internal/pkg/logger"
	"lab-cms/internal/repository"
	pkgErrors "lab-cms/pkg/errors"
)

type MemberService interface {
	List(q *dto.FilterQuery) (*dto.Page[*dto.MemberResponse], error)
	ListActive() ([]*dto.MemberResponse, error)
	ListFeatured() ([]*dto.MemberResponse, error)
	GetByID(id int64) (*dto.MemberResponse, error)
	GetByStudentID(studentID string) (*dto.MemberResponse, error)
	ListByRole(role model.MemberRole) ([]*dto.MemberResponse, error)
	ListByGrade(grade string) ([]*dto.MemberResponse, error)
	Search(keyword string) ([]*dto.MemberResponse, error)

	Create(req *dto.MemberRequest) (*dto.MemberResponse, error)
	Update(id int64, req *dto.MemberRequest) (*dto.MemberResponse, error)
	Delete(id int64) error
	UpdateStatus(id int64, status model.MemberStatus) (*dto.MemberResponse, error)
	UpdateDisplayOrder(id int64, displayOrder int) (*dto.MemberResponse, error)

	Statistics() (*dto.MemberStatistics, error)
}

type memberService struct {
	repo repository.MemberRepository
}

func NewMemberService(repo repository.MemberRepository) MemberService {
	return &memberService{repo: repo}
}

// List 分类参数对应成员角色
func (s *memberService) List(q *dto.FilterQuery) (*dto.Page[*dto.MemberResponse], error) {
	p, err := toPageable(&q.PageQuery, repository.MemberSortColumns)
	if err != nil {
		return nil, err
	}
	status, err := parseFilterEnum(q.Status, model.MemberStatuses, "成员状态")
	if err != nil {
		return nil, err
	}
	role, err := parseFilterEnum(q.Category, model.MemberRoles, "成员角色")
	if err != nil {
		return nil, err
	}

	mode := ResolveFilter(q.Keyword, status, role)
	members, total, err := s.repo.List(buildCriteria(mode, q.Keyword, status, role), p)
	if err != nil {
		return nil, err
	}
	return newPage(members, total, p, toMemberResponse), nil
}

func (s *memberService) ListActive() ([]*dto.MemberResponse, error) {
	return s.list(s.repo.FindActive())
}

func (s *memberService) ListFeatured() ([]*dto.MemberResponse, error) {
	return s.list(s.repo.FindFeatured())
}

func (s *memberService) GetByID(id int64) (*dto.MemberResponse, error) {
	member, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return toMemberResponse(member), nil
}

func (s *memberService) GetByStudentID(studentID string) (*dto.MemberResponse, error) {
	member, err := s.repo.FindByStudentID(studentID)
	if err != nil {
		return nil, err
	}
	return toMemberResponse(member), nil
}

func (s *memberService) ListByRole(role model.MemberRole) ([]*dto.MemberResponse, error) {
	return s.list(s.repo.FindByRole(role))
}

func (s *memberService) ListByGrade(grade string) ([]*dto.MemberResponse, error) {
	return s.list(s.repo.FindByGrade(grade))
}

func (s *memberService) Search(keyword string) ([]*dto.MemberResponse, error) {
	return s.list(s.repo.Search(keyword))
}

func (s *memberService) Create(req *dto.MemberRequest) (*dto.MemberResponse, error) {
	if req.StudentID == nil || strings.TrimSpace(*req.StudentID) == "" {
		return nil, validationError("学号不能为空")
	}
	if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
		return nil, validationError("姓名不能为空")
	}

	exists, err := s.repo.ExistsByStudentID(*req.StudentID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, pkgErrors.ErrStudentIDExists
	}

	member := toMemberModel(req)
	if err := s.repo.Create(member); err != nil {
		return nil, err
	}

	logger.Info("创建成员成功", zap.Int64("id", member.ID), zap.String("student_id", member.StudentID))
	return toMemberResponse(member), nil
}

func (s *memberService) Update(id int64, req *dto.MemberRequest) (*dto.MemberResponse, error) {
	member, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	// 学号变更时校验唯一
	if req.StudentID != nil && *req.StudentID != member.StudentID {
		exists, err := s.repo.ExistsByStudentID(*req.StudentID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, pkgErrors.ErrStudentIDExists
		}
	}

	applyMemberUpdate(member, req)
	if err := s.repo.Update(member); err != nil {
		return nil, err
	}

	logger.Info("更新成员成功", zap.Int64("id", member.ID), zap.String("student_id", member.StudentID))
	return toMemberResponse(member), nil
}

func (s *memberService) Delete(id int64) error {
	member, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}

	logger.Info("删除成员成功", zap.Int64("id", member.ID), zap.String("name", member.Name))
	return nil
}

func (s *memberService) UpdateStatus(id int64, status model.MemberStatus) (*dto.MemberResponse, error) {
	member, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	member.Status = status
	if err := s.repo.Update(member); err != nil {
		return nil, err
	}

	logger.Info("更新成员状态", zap.Int64("id", member.ID), zap.String("status", string(status)))
	return toMemberResponse(member), nil
}

func (s *memberService) UpdateDisplayOrder(id int64, displayOrder int) (*dto.MemberResponse, error) {
	member, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	member.DisplayOrder = displayOrder
	if err := s.repo.Update(member); err != nil {
		return nil, err
	}

	logger.Info("更新成员显示顺序", zap.Int64("id", member.ID), zap.Int("display_order", displayOrder))
	return toMemberResponse(member), nil
}

func (s *memberService) Statistics() (*dto.MemberStatistics, error) {
	total, err := s.repo.Count()
	if err != nil {
		return nil, err
	}
	statuses, err := s.repo.CountByStatus()
	if err != nil {
		return nil, err
	}
	roles, err := s.repo.CountByRole()
	if err != nil {
		return nil, err
	}

	return &dto.MemberStatistics{
		TotalMembers: total,
		StatusCounts: foldCounts(statuses, model.MemberStatuses, "member_status"),
		RoleCounts:   foldCounts(roles, model.MemberRoles, "member_role"),
	}, nil
}

func (s *memberService) list(members []*model.Member, err error) ([]*dto.MemberResponse, error) {
	if err != nil {
		return nil, err
	}
	return mapSlice(members, toMemberResponse), nil
}
