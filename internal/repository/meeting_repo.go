package repository

import (
	"time"

	"gorm.io/gorm"

	"lab-cms/internal/model"
	pkgErrors "lab-cms/pkg/errors"
)

// MeetingSortColumns 会议允许排序的列
var MeetingSortColumns = []string{
	"id", "title", "meeting_date", "type", "status", "display_order", "created_at", "updated_at",
}

type MeetingRepository interface {
	Create(meeting *model.Meeting) error
	FindByID(id int64) (*model.Meeting, error)
	ExistsByID(id int64) (bool, error)
	Update(meeting *model.Meeting) error
	Delete(id int64) error

	// FindPage 只查当前页，不统计总数
	FindPage(p Pageable) ([]*model.Meeting, error)
	// FindAll 全量查询，仅使用 p 的排序
	FindAll(p Pageable) ([]*model.Meeting, error)
	// List Category 对应会议类型
	List(c Criteria, p Pageable) ([]*model.Meeting, int64, error)
	FindByStatus(status model.MeetingStatus, p Pageable) ([]*model.Meeting, int64, error)
	Search(keyword string, p Pageable) ([]*model.Meeting, int64, error)
	FindCompleted() ([]*model.Meeting, error)
	FindBetween(from, to time.Time) ([]*model.Meeting, error)
	FindByType(meetingType model.MeetingType) ([]*model.Meeting, error)

	Count() (int64, error)
	CountByStatus() ([]GroupCount, error)
	CountByType() ([]GroupCount, error)
}

type meetingRepository struct {
	db *gorm.DB
}

func NewMeetingRepository(db *gorm.DB) MeetingRepository {
	return &meetingRepository{db: db}
}

func (r *meetingRepository) base() *gorm.DB {
	return r.db.Model(&model.Meeting{})
}

func (r *meetingRepository) Create(meeting *model.Meeting) error {
	if err := r.db.Create(meeting).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "创建会议失败", err)
	}
	return nil
}

func (r *meetingRepository) FindByID(id int64) (*model.Meeting, error) {
	return findOne[model.Meeting](r.db.Where("id = ?", id), pkgErrors.ErrMeetingNotFound, "查询会议失败")
}

func (r *meetingRepository) ExistsByID(id int64) (bool, error) {
	var count int64
	if err := r.base().Where("id = ?", id).Count(&count).Error; err != nil {
		return false, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询会议失败", err)
	}
	return count > 0, nil
}

func (r *meetingRepository) Update(meeting *model.Meeting) error {
	if err := r.db.Save(meeting).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "更新会议失败", err)
	}
	return nil
}

func (r *meetingRepository) Delete(id int64) error {
	if err := r.db.Delete(&model.Meeting{}, id).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "删除会议失败", err)
	}
	return nil
}

func (r *meetingRepository) FindPage(p Pageable) ([]*model.Meeting, error) {
	var meetings []*model.Meeting
	if err := r.base().Scopes(p.Scope).Find(&meetings).Error; err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "分页查询会议失败", err)
	}
	return meetings, nil
}

func (r *meetingRepository) FindAll(p Pageable) ([]*model.Meeting, error) {
	var meetings []*model.Meeting
	if err := r.base().Scopes(p.OrderScope).Find(&meetings).Error; err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询全部会议失败", err)
	}
	return meetings, nil
}

func (r *meetingRepository) List(c Criteria, p Pageable) ([]*model.Meeting, int64, error) {
	query := r.base()
	if c.Keyword != "" {
		query = query.Scopes(keywordScope(c.Keyword, "title"))
	}
	if c.Status != "" {
		query = query.Where("status = ?", c.Status)
	}
	if c.Category != "" {
		query = query.Where("type = ?", c.Category)
	}

	meetings, total, err := findPage[model.Meeting](query, p)
	if err != nil {
		return nil, 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询会议列表失败", err)
	}
	return meetings, total, nil
}

func (r *meetingRepository) FindByStatus(status model.MeetingStatus, p Pageable) ([]*model.Meeting, int64, error) {
	meetings, total, err := findPage[model.Meeting](r.base().Where("status = ?", status), p)
	if err != nil {
		return nil, 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "按状态查询会议失败", err)
	}
	return meetings, total, nil
}

func (r *meetingRepository) Search(keyword string, p Pageable) ([]*model.Meeting, int64, error) {
	query := r.base().Scopes(keywordScope(keyword, "title", "description", "location", "minutes"))
	meetings, total, err := findPage[model.Meeting](query, p)
	if err != nil {
		return nil, 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "搜索会议失败", err)
	}
	return meetings, total, nil
}

func (r *meetingRepository) FindCompleted() ([]*model.Meeting, error) {
	return r.find("查询已完成会议失败", func(db *gorm.DB) *gorm.DB {
		return db.Where("status = ?", model.MeetingStatusCompleted).Order("meeting_date DESC")
	})
}

func (r *meetingRepository) FindBetween(from, to time.Time) ([]*model.Meeting, error) {
	return r.find("查询近期会议失败", func(db *gorm.DB) *gorm.DB {
		return db.Where("meeting_date >= ? AND meeting_date <= ?", from, to).Order("meeting_date ASC")
	})
}

func (r *meetingRepository) FindByType(meetingType model.MeetingType) ([]*model.Meeting, error) {
	return r.find("按类型查询会议失败", func(db *gorm.DB) *gorm.DB {
		return db.Where("type = ?", meetingType).Order("meeting_date DESC")
	})
}

func (r *meetingRepository) find(message string, opts ...QueryOption) ([]*model.Meeting, error) {
	var meetings []*model.Meeting
	query := r.base()
	for _, opt := range opts {
		query = opt(query)
	}
	if err := query.Find(&meetings).Error; err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, message, err)
	}
	return meetings, nil
}

func (r *meetingRepository) Count() (int64, error) {
	var total int64
	if err := r.base().Count(&total).Error; err != nil {
		return 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "统计会议数量失败", err)
	}
	return total, nil
}

func (r *meetingRepository) CountByStatus() ([]GroupCount, error) {
	rows, err := countBy(r.base(), "status")
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "统计会议状态失败", err)
	}
	return rows, nil
}

func (r *meetingRepository) CountByType() ([]GroupCount, error) {
	rows, err := countBy(r.base(), "type")
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "统计会议类型失败", err)
	}
	return rows, nil
}
