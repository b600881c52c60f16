package scheduler

import (
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"lab-cms/internal/pkg/config"
	"lab-cms/internal/service"
)

const (
	defaultReportCron = "0 0 2 * * *" // 每天凌晨2点
	jobStatsReport    = "stats_report"
)

// Scheduler 调度器
type Scheduler struct {
	cron          *cron.Cron
	logger        *zap.Logger
	dashboard     service.DashboardService
	cronSchedules map[string]cron.EntryID // 存储任务ID，便于管理
}

// NewScheduler 创建调度器
func NewScheduler(dashboard service.DashboardService, logger *zap.Logger) *Scheduler {
	// 创建 cron 实例（带秒级支持）
	c := cron.New(cron.WithSeconds())

	return &Scheduler{
		cron:          c,
		logger:        logger,
		dashboard:     dashboard,
		cronSchedules: make(map[string]cron.EntryID),
	}
}

// Start 启动调度器
func (s *Scheduler) Start(cfg *config.SchedulerConfig) error {
	log := s.logger.Sugar()

	if !cfg.Enabled {
		log.Info("定时任务调度器未启用")
		return nil
	}

	log.Info("启动定时任务调度器...")

	// cron 表达式格式: 秒 分 时 日 月 周
	cronExpr := cfg.ReportCron
	if cronExpr == "" {
		cronExpr = defaultReportCron
		log.Warn("未配置scheduler.report_cron，使用默认值", zap.String("cron", cronExpr))
	}

	entryID, err := s.cron.AddFunc(cronExpr, func() {
		log.Info("执行定时任务: 统计报告")
		if err := s.TriggerReport(); err != nil {
			log.Errorf("统计报告任务执行失败: %v", err)
		}
	})
	if err != nil {
		log.Errorf("注册统计报告任务: %v 失败: %v", cronExpr, err)
		return err
	}

	s.cronSchedules[jobStatsReport] = entryID
	log.Infof("统计报告任务已注册: %s entry_id=%d", cronExpr, entryID)

	// 启动 cron
	s.cron.Start()
	log.Info("定时任务调度器启动成功")

	return nil
}

// Stop 停止调度器
func (s *Scheduler) Stop() {
	s.logger.Info("正在停止定时任务调度器...")

	// 停止 cron（等待正在执行的任务完成）
	ctx := s.cron.Stop()
	<-ctx.Done()

	s.logger.Info("定时任务调度器已停止")
}

// TriggerReport 生成一次统计快照并写入日志
func (s *Scheduler) TriggerReport() error {
	stats, err := s.dashboard.Overview()
	if err != nil {
		return err
	}

	s.logger.Info("统计报告",
		zap.Int64("total_posts", stats.Posts.TotalPosts),
		zap.Int64("total_views", stats.Posts.TotalViews),
		zap.Int64("total_likes", stats.Posts.TotalLikes),
		zap.Int64("total_members", stats.Members.TotalMembers),
		zap.Any("member_roles", stats.Members.RoleCounts),
		zap.Int64("total_projects", stats.Projects.TotalProjects),
		zap.Any("project_status", stats.Projects.StatusCounts),
		zap.Int64("total_meetings", stats.Meetings["totalMeetings"]),
	)
	return nil
}

// Entries 已注册的任务
func (s *Scheduler) Entries() map[string]cron.EntryID {
	return s.cronSchedules
}
