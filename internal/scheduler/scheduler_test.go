package scheduler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"lab-cms/internal/dto"
	"lab-cms/internal/pkg/config"
)

type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Overview() (*dto.DashboardStatistics, error) {
	args := m.Called()
	stats, _ := args.Get(0).(*dto.DashboardStatistics)
	return stats, args.Error(1)
}

func sampleStats() *dto.DashboardStatistics {
	return &dto.DashboardStatistics{
		Posts:    &dto.PostStatistics{TotalPosts: 3, TotalViews: 40},
		Members:  &dto.MemberStatistics{TotalMembers: 5},
		Projects: &dto.ProjectStatistics{TotalProjects: 2},
		Meetings: map[string]int64{"totalMeetings": 7},
	}
}

func TestScheduler_TriggerReport(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	dashboard := new(MockDashboardService)
	dashboard.On("Overview").Return(sampleStats(), nil)

	s := NewScheduler(dashboard, zap.New(core))
	require.NoError(t, s.TriggerReport())

	entries := logs.FilterMessage("统计报告").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, int64(3), fields["total_posts"])
	assert.Equal(t, int64(7), fields["total_meetings"])
}

func TestScheduler_TriggerReportError(t *testing.T) {
	dashboard := new(MockDashboardService)
	dashboard.On("Overview").Return(nil, errors.New("db down"))

	s := NewScheduler(dashboard, zap.NewNop())
	assert.Error(t, s.TriggerReport())
}

func TestScheduler_StartDisabled(t *testing.T) {
	s := NewScheduler(new(MockDashboardService), zap.NewNop())
	require.NoError(t, s.Start(&config.SchedulerConfig{Enabled: false}))
	assert.Empty(t, s.Entries())
}

func TestScheduler_StartRegistersJob(t *testing.T) {
	s := NewScheduler(new(MockDashboardService), zap.NewNop())
	require.NoError(t, s.Start(&config.SchedulerConfig{Enabled: true, ReportCron: "0 0 3 * * *"}))
	defer s.Stop()

	assert.Contains(t, s.Entries(), jobStatsReport)
}

func TestScheduler_StartInvalidCron(t *testing.T) {
	s := NewScheduler(new(MockDashboardService), zap.NewNop())
	assert.Error(t, s.Start(&config.SchedulerConfig{Enabled: true, ReportCron: "every day"}))
}
