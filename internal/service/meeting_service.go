package service

import (
	"time"

	"go.uber.org/zap"

	"lab-cms/internal/dto"
	"lab-cms/internal/model"
	"lab-cms/internal/pkg/logger"
	"lab-cms/internal/repository"
	pkgErrors "lab-cms/pkg/errors"
)

const upcomingWindow = 7 * 24 * time.Hour

// 会议统计的扁平键名
var (
	meetingStatusKeys = map[model.MeetingStatus]string{
		model.MeetingStatusScheduled:  "scheduledMeetings",
		model.MeetingStatusInProgress: "inProgressMeetings",
		model.MeetingStatusCompleted:  "completedMeetings",
		model.MeetingStatusCancelled:  "cancelledMeetings",
	}
	meetingTypeKeys = map[model.MeetingType]string{
		model.MeetingTypeRegular:   "typeRegular",
		model.MeetingTypeEmergency: "typeEmergency",
		model.MeetingTypePlanning:  "typePlanning",
		model.MeetingTypeReview:    "typeReview",
		model.MeetingTypeTraining:  "typeTraining",
	}
)

type MeetingService interface {
	List(q *dto.FilterQuery) (*dto.Page[*dto.MeetingResponse], error)
	ListCompleted() ([]*dto.MeetingResponse, error)
	ListUpcoming() ([]*dto.MeetingResponse, error)
	GetByID(id int64) (*dto.MeetingResponse, error)
	ListByStatus(status model.MeetingStatus, q *dto.PageQuery) (*dto.Page[*dto.MeetingResponse], error)
	ListByType(meetingType model.MeetingType) ([]*dto.MeetingResponse, error)
	Search(keyword string, q *dto.PageQuery) (*dto.Page[*dto.MeetingResponse], error)

	Create(req *dto.MeetingRequest) (*dto.MeetingResponse, error)
	Update(id int64, req *dto.MeetingRequest) (*dto.MeetingResponse, error)
	Delete(id int64) error
	UpdateStatus(id int64, status model.MeetingStatus) (*dto.MeetingResponse, error)
	UpdateDisplayOrder(id int64, displayOrder int) (*dto.MeetingResponse, error)

	Statistics() (map[string]int64, error)
}

type meetingService struct {
	repo repository.MeetingRepository
}

func NewMeetingService(repo repository.MeetingRepository) MeetingService {
	return &meetingService{repo: repo}
}

// List 无过滤条件时走降级分页，查询失败也只返回空页，不向上抛错
func (s *meetingService) List(q *dto.FilterQuery) (*dto.Page[*dto.MeetingResponse], error) {
	p, err := toPageable(&q.PageQuery, repository.MeetingSortColumns)
	if err != nil {
		return nil, err
	}
	status, err := parseFilterEnum(q.Status, model.MeetingStatuses, "会议状态")
	if err != nil {
		return nil, err
	}
	meetingType, err := parseFilterEnum(q.Category, model.MeetingTypes, "会议类型")
	if err != nil {
		return nil, err
	}

	mode := ResolveFilter(q.Keyword, status, meetingType)
	if mode == FilterNone {
		return s.pageWithFallback(p), nil
	}

	meetings, total, err := s.repo.List(buildCriteria(mode, q.Keyword, status, meetingType), p)
	if err != nil {
		logger.Error("过滤查询会议失败，返回空页", zap.Error(err))
		return dto.EmptyPage[*dto.MeetingResponse](p.Page, p.Size), nil
	}
	return newPage(meetings, total, p, toMeetingResponse), nil
}

// pageWithFallback 分页查询失败或返回空结果时，退化为全量查询后在内存中切片
func (s *meetingService) pageWithFallback(p repository.Pageable) *dto.Page[*dto.MeetingResponse] {
	total, err := s.repo.Count()
	if err == nil {
		var meetings []*model.Meeting
		meetings, err = s.repo.FindPage(p)
		if err == nil {
			if meetings != nil {
				return newPage(meetings, total, p, toMeetingResponse)
			}
			if total == 0 {
				return dto.EmptyPage[*dto.MeetingResponse](p.Page, p.Size)
			}
			logger.Warn("分页查询会议返回空结果，使用全量查询", zap.Int64("total", total))
		}
	}
	if err != nil {
		logger.Warn("分页查询会议失败，使用全量查询", zap.Error(err))
	}

	all, err := s.repo.FindAll(p)
	if err != nil {
		logger.Error("全量查询会议失败，返回空页", zap.Error(err))
		return dto.EmptyPage[*dto.MeetingResponse](p.Page, p.Size)
	}
	return newPage(sliceWindow(all, p.Offset(), p.Size), int64(len(all)), p, toMeetingResponse)
}

// sliceWindow 取 [offset, offset+size) 区间，越界时返回空列表
func sliceWindow[T any](items []T, offset, size int) []T {
	if offset >= len(items) || size <= 0 {
		return []T{}
	}
	return items[offset:min(offset+size, len(items))]
}

func (s *meetingService) ListCompleted() ([]*dto.MeetingResponse, error) {
	return s.list(s.repo.FindCompleted())
}

// ListUpcoming 未来七天内的会议
func (s *meetingService) ListUpcoming() ([]*dto.MeetingResponse, error) {
	now := nowFunc()
	return s.list(s.repo.FindBetween(now, now.Add(upcomingWindow)))
}

func (s *meetingService) GetByID(id int64) (*dto.MeetingResponse, error) {
	meeting, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return toMeetingResponse(meeting), nil
}

func (s *meetingService) ListByStatus(status model.MeetingStatus, q *dto.PageQuery) (*dto.Page[*dto.MeetingResponse], error) {
	p, err := toPageable(q, repository.MeetingSortColumns)
	if err != nil {
		return nil, err
	}
	meetings, total, err := s.repo.FindByStatus(status, p)
	if err != nil {
		return nil, err
	}
	return newPage(meetings, total, p, toMeetingResponse), nil
}

func (s *meetingService) ListByType(meetingType model.MeetingType) ([]*dto.MeetingResponse, error) {
	return s.list(s.repo.FindByType(meetingType))
}

func (s *meetingService) Search(keyword string, q *dto.PageQuery) (*dto.Page[*dto.MeetingResponse], error) {
	p, err := toPageable(q, repository.MeetingSortColumns)
	if err != nil {
		return nil, err
	}
	meetings, total, err := s.repo.Search(keyword, p)
	if err != nil {
		return nil, err
	}
	return newPage(meetings, total, p, toMeetingResponse), nil
}

func (s *meetingService) Create(req *dto.MeetingRequest) (*dto.MeetingResponse, error) {
	meeting, err := toMeetingModel(req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(meeting); err != nil {
		return nil, err
	}

	logger.Info("创建会议成功", zap.Int64("id", meeting.ID), zap.String("title", meeting.Title))
	return toMeetingResponse(meeting), nil
}

func (s *meetingService) Update(id int64, req *dto.MeetingRequest) (*dto.MeetingResponse, error) {
	meeting, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	applyMeetingUpdate(meeting, req)
	if err := s.repo.Update(meeting); err != nil {
		return nil, err
	}

	logger.Info("更新会议成功", zap.Int64("id", meeting.ID), zap.String("title", meeting.Title))
	return toMeetingResponse(meeting), nil
}

func (s *meetingService) Delete(id int64) error {
	exists, err := s.repo.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		return pkgErrors.ErrMeetingNotFound
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}

	logger.Info("删除会议成功", zap.Int64("id", id))
	return nil
}

func (s *meetingService) UpdateStatus(id int64, status model.MeetingStatus) (*dto.MeetingResponse, error) {
	meeting, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	meeting.Status = status
	if err := s.repo.Update(meeting); err != nil {
		return nil, err
	}

	logger.Info("更新会议状态", zap.Int64("id", meeting.ID), zap.String("status", string(status)))
	return toMeetingResponse(meeting), nil
}

func (s *meetingService) UpdateDisplayOrder(id int64, displayOrder int) (*dto.MeetingResponse, error) {
	meeting, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	meeting.DisplayOrder = displayOrder
	if err := s.repo.Update(meeting); err != nil {
		return nil, err
	}

	logger.Info("更新会议显示顺序", zap.Int64("id", meeting.ID), zap.Int("display_order", displayOrder))
	return toMeetingResponse(meeting), nil
}

// Statistics 总数加按状态、类型的扁平计数
func (s *meetingService) Statistics() (map[string]int64, error) {
	total, err := s.repo.Count()
	if err != nil {
		return nil, err
	}
	statuses, err := s.repo.CountByStatus()
	if err != nil {
		return nil, err
	}
	types, err := s.repo.CountByType()
	if err != nil {
		return nil, err
	}

	stats := map[string]int64{"totalMeetings": total}
	for status, count := range foldCounts(statuses, model.MeetingStatuses, "meeting_status") {
		stats[meetingStatusKeys[model.MeetingStatus(status)]] = count
	}
	for meetingType, count := range foldCounts(types, model.MeetingTypes, "meeting_type") {
		stats[meetingTypeKeys[model.MeetingType(meetingType)]] = count
	}
	return stats, nil
}

func (s *meetingService) list(meetings []*model.Meeting, err error) ([]*dto.MeetingResponse, error) {
	if err != nil {
		return nil, err
	}
	return mapSlice(meetings, toMeetingResponse), nil
}
