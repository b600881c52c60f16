package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"lab-cms/internal/dto"
	"lab-cms/internal/model"
	"lab-cms/internal/repository"
	pkgErrors "lab-cms/pkg/errors"
)

func meetingFixtures(n int) []*model.Meeting {
	meetings := make([]*model.Meeting, n)
	for i := range meetings {
		meetings[i] = &model.Meeting{
			BaseModel: model.BaseModel{ID: int64(i + 1)},
			Title:     fmt.Sprintf("第%d次组会", i+1),
			Type:      model.MeetingTypeRegular,
			Status:    model.MeetingStatusCompleted,
		}
	}
	return meetings
}

func TestMeetingService_ListFallsBackOnError(t *testing.T) {
	repo := new(MockMeetingRepository)
	svc := NewMeetingService(repo)

	p := repository.Pageable{Page: 2, Size: 10, Sort: "created_at"}
	repo.On("Count").Return(int64(23), nil)
	repo.On("FindPage", p).Return(nil, errors.New("connection reset"))
	repo.On("FindAll", p).Return(meetingFixtures(23), nil)

	page, err := svc.List(&dto.FilterQuery{PageQuery: dto.PageQuery{Page: lo.ToPtr(2)}})
	require.NoError(t, err)
	require.Len(t, page.Content, 3)
	assert.Equal(t, int64(21), page.Content[0].ID)
	assert.Equal(t, int64(23), page.Content[2].ID)
	assert.Equal(t, int64(23), page.TotalElements)
	assert.Equal(t, 3, page.TotalPages)
	assert.True(t, page.Last)
}

func TestMeetingService_ListFallsBackOnNilResult(t *testing.T) {
	repo := new(MockMeetingRepository)
	svc := NewMeetingService(repo)

	repo.On("Count").Return(int64(5), nil)
	repo.On("FindPage", defaultPageable).Return(nil, nil)
	repo.On("FindAll", defaultPageable).Return(meetingFixtures(5), nil)

	page, err := svc.List(&dto.FilterQuery{})
	require.NoError(t, err)
	assert.Len(t, page.Content, 5)
}

func TestMeetingService_ListEmptyWhenNothingStored(t *testing.T) {
	repo := new(MockMeetingRepository)
	svc := NewMeetingService(repo)

	repo.On("Count").Return(int64(0), nil)
	repo.On("FindPage", defaultPageable).Return(nil, nil)

	page, err := svc.List(&dto.FilterQuery{})
	require.NoError(t, err)
	assert.True(t, page.Empty)
	repo.AssertNotCalled(t, "FindAll", mock.Anything)
}

func TestMeetingService_ListNeverErrors(t *testing.T) {
	repo := new(MockMeetingRepository)
	svc := NewMeetingService(repo)

	repo.On("Count").Return(int64(0), errors.New("db down"))
	repo.On("FindAll", defaultPageable).Return(nil, errors.New("db down"))

	page, err := svc.List(&dto.FilterQuery{})
	require.NoError(t, err)
	assert.NotNil(t, page.Content)
	assert.True(t, page.Empty)
	repo.AssertNotCalled(t, "FindPage", mock.Anything)
}

func TestMeetingService_ListOffsetBeyondSet(t *testing.T) {
	repo := new(MockMeetingRepository)
	svc := NewMeetingService(repo)

	p := repository.Pageable{Page: 5, Size: 10, Sort: "created_at"}
	repo.On("Count").Return(int64(23), nil)
	repo.On("FindPage", p).Return(nil, errors.New("timeout"))
	repo.On("FindAll", p).Return(meetingFixtures(23), nil)

	page, err := svc.List(&dto.FilterQuery{PageQuery: dto.PageQuery{Page: lo.ToPtr(5)}})
	require.NoError(t, err)
	assert.Empty(t, page.Content)
}

func TestMeetingService_ListFilteredByType(t *testing.T) {
	repo := new(MockMeetingRepository)
	svc := NewMeetingService(repo)
	repo.On("List", repository.Criteria{Category: "REVIEW"}, defaultPageable).Return(meetingFixtures(1), int64(1), nil)

	page, err := svc.List(&dto.FilterQuery{Category: "review"})
	require.NoError(t, err)
	assert.Len(t, page.Content, 1)
	repo.AssertNotCalled(t, "Count")
}

func TestMeetingService_CreateDefaults(t *testing.T) {
	repo := new(MockMeetingRepository)
	svc := NewMeetingService(repo)
	repo.On("Create", mock.AnythingOfType("*model.Meeting")).Return(nil)

	when := time.Date(2026, 11, 3, 14, 0, 0, 0, time.Local)
	resp, err := svc.Create(&dto.MeetingRequest{
		Title:       "周例会",
		MeetingTime: when,
		Attendees:   []string{"张三", "李四"},
		CreatedBy:   lo.ToPtr("12"),
	})
	require.NoError(t, err)

	assert.Equal(t, model.MeetingStatusScheduled, resp.Status)
	assert.Equal(t, model.MeetingTypeRegular, resp.MeetingType)
	assert.Equal(t, []string{"张三", "李四"}, resp.Attendees)
	assert.Equal(t, []string{}, resp.Absentees)
	assert.Equal(t, "12", resp.CreatedBy)

	stored := repo.Calls[0].Arguments.Get(0).(*model.Meeting)
	assert.Equal(t, "张三,李四", stored.Attendees)
	assert.Equal(t, int64(12), stored.CreatedBy)
}

func TestMeetingService_CreateInvalidCreator(t *testing.T) {
	repo := new(MockMeetingRepository)
	svc := NewMeetingService(repo)

	_, err := svc.Create(&dto.MeetingRequest{Title: "周例会", MeetingTime: time.Now(), CreatedBy: lo.ToPtr("admin")})
	assert.True(t, pkgErrors.IsCode(err, pkgErrors.CodeValidationError))
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestMeetingService_UpdateKeepsStatusAndAbsentees(t *testing.T) {
	repo := new(MockMeetingRepository)
	svc := NewMeetingService(repo)

	meeting := &model.Meeting{
		BaseModel: model.BaseModel{ID: 8},
		Title:     "旧标题",
		Status:    model.MeetingStatusCompleted,
		Type:      model.MeetingTypePlanning,
		Attendees: "张三",
		Absentees: "王五",
	}
	repo.On("FindByID", int64(8)).Return(meeting, nil)
	repo.On("Update", meeting).Return(nil)

	resp, err := svc.Update(8, &dto.MeetingRequest{
		Title:       "新标题",
		MeetingTime: time.Now(),
		Status:      lo.ToPtr(model.MeetingStatusCancelled),
		Attendees:   []string{"李四"},
	})
	require.NoError(t, err)

	assert.Equal(t, "新标题", resp.Title)
	assert.Equal(t, model.MeetingStatusCompleted, resp.Status)
	assert.Equal(t, model.MeetingTypePlanning, resp.MeetingType)
	assert.Equal(t, []string{"李四"}, resp.Attendees)
	assert.Equal(t, []string{"王五"}, resp.Absentees)
}

func TestMeetingService_DeleteMissing(t *testing.T) {
	repo := new(MockMeetingRepository)
	svc := NewMeetingService(repo)
	repo.On("ExistsByID", int64(4)).Return(false, nil)

	err := svc.Delete(4)
	assert.ErrorIs(t, err, pkgErrors.ErrMeetingNotFound)
	repo.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestMeetingService_ListUpcoming(t *testing.T) {
	now := time.Date(2026, 10, 16, 8, 0, 0, 0, time.Local)
	fixedNow(t, now)

	repo := new(MockMeetingRepository)
	svc := NewMeetingService(repo)
	repo.On("FindBetween", now, now.Add(7*24*time.Hour)).Return(meetingFixtures(2), nil)

	resp, err := svc.ListUpcoming()
	require.NoError(t, err)
	assert.Len(t, resp, 2)
}

func TestMeetingService_Statistics(t *testing.T) {
	repo := new(MockMeetingRepository)
	svc := NewMeetingService(repo)
	repo.On("Count").Return(int64(6), nil)
	repo.On("CountByStatus").Return([]repository.GroupCount{
		{Name: "COMPLETED", Count: 4}, {Name: "IN_PROGRESS", Count: 2},
	}, nil)
	repo.On("CountByType").Return([]repository.GroupCount{{Name: "REGULAR", Count: 6}}, nil)

	stats, err := svc.Statistics()
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{
		"totalMeetings":      6,
		"scheduledMeetings":  0,
		"inProgressMeetings": 2,
		"completedMeetings":  4,
		"cancelledMeetings":  0,
		"typeRegular":        6,
		"typeEmergency":      0,
		"typePlanning":       0,
		"typeReview":         0,
		"typeTraining":       0,
	}, stats)
}
