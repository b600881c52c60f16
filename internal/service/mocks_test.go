package service

import (
	"time"

	"github.com/stretchr/testify/mock"
	"gorm.io/datatypes"

	"lab-cms/internal/model"
	"lab-cms/internal/repository"
)

func listResult[T any](args mock.Arguments) ([]*T, error) {
	items, _ := args.Get(0).([]*T)
	return items, args.Error(1)
}

func pageResult[T any](args mock.Arguments) ([]*T, int64, error) {
	items, _ := args.Get(0).([]*T)
	return items, args.Get(1).(int64), args.Error(2)
}

func oneResult[T any](args mock.Arguments) (*T, error) {
	item, _ := args.Get(0).(*T)
	return item, args.Error(1)
}

func groupResult(args mock.Arguments) ([]repository.GroupCount, error) {
	rows, _ := args.Get(0).([]repository.GroupCount)
	return rows, args.Error(1)
}

// MockUserRepository 用户仓储模拟
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *model.User) error {
	return m.Called(user).Error(0)
}

func (m *MockUserRepository) FindByID(id int64) (*model.User, error) {
	return oneResult[model.User](m.Called(id))
}

func (m *MockUserRepository) FindByIDs(ids []int64) ([]*model.User, error) {
	return listResult[model.User](m.Called(ids))
}

func (m *MockUserRepository) FindByUsername(username string) (*model.User, error) {
	return oneResult[model.User](m.Called(username))
}

func (m *MockUserRepository) FindByUsernameOrEmail(usernameOrEmail string) (*model.User, error) {
	return oneResult[model.User](m.Called(usernameOrEmail))
}

func (m *MockUserRepository) ExistsByUsernameOrEmail(usernameOrEmail string) (bool, error) {
	args := m.Called(usernameOrEmail)
	return args.Bool(0), args.Error(1)
}

// MockPostRepository 文章仓储模拟
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(post *model.Post) error {
	args := m.Called(post)
	if post.ID == 0 {
		post.ID = 1
	}
	return args.Error(0)
}

func (m *MockPostRepository) FindByID(id int64) (*model.Post, error) {
	return oneResult[model.Post](m.Called(id))
}

func (m *MockPostRepository) Update(post *model.Post) error {
	return m.Called(post).Error(0)
}

func (m *MockPostRepository) Delete(id int64) error {
	return m.Called(id).Error(0)
}

func (m *MockPostRepository) FindPublished(p repository.Pageable) ([]*model.Post, int64, error) {
	return pageResult[model.Post](m.Called(p))
}

func (m *MockPostRepository) FindByStatus(status model.PostStatus, p repository.Pageable) ([]*model.Post, int64, error) {
	return pageResult[model.Post](m.Called(status, p))
}

func (m *MockPostRepository) SearchPublished(keyword string, p repository.Pageable) ([]*model.Post, int64, error) {
	return pageResult[model.Post](m.Called(keyword, p))
}

func (m *MockPostRepository) FindFeatured() ([]*model.Post, error) {
	return listResult[model.Post](m.Called())
}

func (m *MockPostRepository) FindLatest(limit int) ([]*model.Post, error) {
	return listResult[model.Post](m.Called(limit))
}

func (m *MockPostRepository) FindPublishedByTag(tag string) ([]*model.Post, error) {
	return listResult[model.Post](m.Called(tag))
}

func (m *MockPostRepository) IncrementLikes(id int64) error {
	return m.Called(id).Error(0)
}

func (m *MockPostRepository) DecrementLikes(id int64) error {
	return m.Called(id).Error(0)
}

func (m *MockPostRepository) IncrementViews(id int64) error {
	return m.Called(id).Error(0)
}

func (m *MockPostRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostRepository) CountByStatus() ([]repository.GroupCount, error) {
	return groupResult(m.Called())
}

func (m *MockPostRepository) SumViews() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostRepository) SumLikes() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostRepository) SumComments() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// MockMemberRepository 成员仓储模拟
type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) Create(member *model.Member) error {
	args := m.Called(member)
	if member.ID == 0 {
		member.ID = 1
	}
	return args.Error(0)
}

func (m *MockMemberRepository) FindByID(id int64) (*model.Member, error) {
	return oneResult[model.Member](m.Called(id))
}

func (m *MockMemberRepository) FindByStudentID(studentID string) (*model.Member, error) {
	return oneResult[model.Member](m.Called(studentID))
}

func (m *MockMemberRepository) ExistsByStudentID(studentID string) (bool, error) {
	args := m.Called(studentID)
	return args.Bool(0), args.Error(1)
}

func (m *MockMemberRepository) Update(member *model.Member) error {
	return m.Called(member).Error(0)
}

func (m *MockMemberRepository) Delete(id int64) error {
	return m.Called(id).Error(0)
}

func (m *MockMemberRepository) List(c repository.Criteria, p repository.Pageable) ([]*model.Member, int64, error) {
	return pageResult[model.Member](m.Called(c, p))
}

func (m *MockMemberRepository) FindActive() ([]*model.Member, error) {
	return listResult[model.Member](m.Called())
}

func (m *MockMemberRepository) FindFeatured() ([]*model.Member, error) {
	return listResult[model.Member](m.Called())
}

func (m *MockMemberRepository) FindByRole(role model.MemberRole) ([]*model.Member, error) {
	return listResult[model.Member](m.Called(role))
}

func (m *MockMemberRepository) FindByGrade(grade string) ([]*model.Member, error) {
	return listResult[model.Member](m.Called(grade))
}

func (m *MockMemberRepository) Search(keyword string) ([]*model.Member, error) {
	return listResult[model.Member](m.Called(keyword))
}

func (m *MockMemberRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMemberRepository) CountByStatus() ([]repository.GroupCount, error) {
	return groupResult(m.Called())
}

func (m *MockMemberRepository) CountByRole() ([]repository.GroupCount, error) {
	return groupResult(m.Called())
}

// MockProjectRepository 项目仓储模拟
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) Create(project *model.Project) error {
	args := m.Called(project)
	if project.ID == 0 {
		project.ID = 1
	}
	return args.Error(0)
}

func (m *MockProjectRepository) FindByID(id int64) (*model.Project, error) {
	return oneResult[model.Project](m.Called(id))
}

func (m *MockProjectRepository) Update(project *model.Project) error {
	return m.Called(project).Error(0)
}

func (m *MockProjectRepository) Delete(id int64) error {
	return m.Called(id).Error(0)
}

func (m *MockProjectRepository) List(c repository.Criteria, p repository.Pageable) ([]*model.Project, int64, error) {
	return pageResult[model.Project](m.Called(c, p))
}

func (m *MockProjectRepository) FindPublic() ([]*model.Project, error) {
	return listResult[model.Project](m.Called())
}

func (m *MockProjectRepository) FindFeaturedPublic() ([]*model.Project, error) {
	return listResult[model.Project](m.Called())
}

func (m *MockProjectRepository) FindPublicByStatus(status model.ProjectStatus) ([]*model.Project, error) {
	return listResult[model.Project](m.Called(status))
}

func (m *MockProjectRepository) FindPublicByCategory(category model.ProjectCategory) ([]*model.Project, error) {
	return listResult[model.Project](m.Called(category))
}

func (m *MockProjectRepository) FindByStatus(status model.ProjectStatus) ([]*model.Project, error) {
	return listResult[model.Project](m.Called(status))
}

func (m *MockProjectRepository) Search(keyword string) ([]*model.Project, error) {
	return listResult[model.Project](m.Called(keyword))
}

func (m *MockProjectRepository) FindByStartDateRange(start, end datatypes.Date) ([]*model.Project, error) {
	return listResult[model.Project](m.Called(start, end))
}

func (m *MockProjectRepository) FindByBudgetRange(min, max float64) ([]*model.Project, error) {
	return listResult[model.Project](m.Called(min, max))
}

func (m *MockProjectRepository) FindByProgressRange(min, max int) ([]*model.Project, error) {
	return listResult[model.Project](m.Called(min, max))
}

func (m *MockProjectRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProjectRepository) CountByStatus() ([]repository.GroupCount, error) {
	return groupResult(m.Called())
}

func (m *MockProjectRepository) CountByCategory() ([]repository.GroupCount, error) {
	return groupResult(m.Called())
}

// MockMeetingRepository 会议仓储模拟
type MockMeetingRepository struct {
	mock.Mock
}

func (m *MockMeetingRepository) Create(meeting *model.Meeting) error {
	args := m.Called(meeting)
	if meeting.ID == 0 {
		meeting.ID = 1
	}
	return args.Error(0)
}

func (m *MockMeetingRepository) FindByID(id int64) (*model.Meeting, error) {
	return oneResult[model.Meeting](m.Called(id))
}

func (m *MockMeetingRepository) ExistsByID(id int64) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockMeetingRepository) Update(meeting *model.Meeting) error {
	return m.Called(meeting).Error(0)
}

func (m *MockMeetingRepository) Delete(id int64) error {
	return m.Called(id).Error(0)
}

func (m *MockMeetingRepository) FindPage(p repository.Pageable) ([]*model.Meeting, error) {
	return listResult[model.Meeting](m.Called(p))
}

func (m *MockMeetingRepository) FindAll(p repository.Pageable) ([]*model.Meeting, error) {
	return listResult[model.Meeting](m.Called(p))
}

func (m *MockMeetingRepository) List(c repository.Criteria, p repository.Pageable) ([]*model.Meeting, int64, error) {
	return pageResult[model.Meeting](m.Called(c, p))
}

func (m *MockMeetingRepository) FindByStatus(status model.MeetingStatus, p repository.Pageable) ([]*model.Meeting, int64, error) {
	return pageResult[model.Meeting](m.Called(status, p))
}

func (m *MockMeetingRepository) Search(keyword string, p repository.Pageable) ([]*model.Meeting, int64, error) {
	return pageResult[model.Meeting](m.Called(keyword, p))
}

func (m *MockMeetingRepository) FindCompleted() ([]*model.Meeting, error) {
	return listResult[model.Meeting](m.Called())
}

func (m *MockMeetingRepository) FindBetween(from, to time.Time) ([]*model.Meeting, error) {
	return listResult[model.Meeting](m.Called(from, to))
}

func (m *MockMeetingRepository) FindByType(meetingType model.MeetingType) ([]*model.Meeting, error) {
	return listResult[model.Meeting](m.Called(meetingType))
}

func (m *MockMeetingRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMeetingRepository) CountByStatus() ([]repository.GroupCount, error) {
	return groupResult(m.Called())
}

func (m *MockMeetingRepository) CountByType() ([]repository.GroupCount, error) {
	return groupResult(m.Called())
}
