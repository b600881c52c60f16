package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"lab-cms/internal/api/handler"
	"lab-cms/internal/api/middleware"
	"lab-cms/internal/pkg/config"
	"lab-cms/internal/pkg/crypto"
	"lab-cms/internal/pkg/validation"
	"lab-cms/internal/repository"
	"lab-cms/internal/service"
)

// Services 各模块服务，路由和定时任务共用
type Services struct {
	Post      service.PostService
	Member    service.MemberService
	Project   service.ProjectService
	Meeting   service.MeetingService
	Auth      service.AuthService
	Dashboard service.DashboardService
}

// NewServices 初始化Repository与Service
func NewServices(cfg *config.Config, db *gorm.DB) (*Services, error) {
	encoder, err := crypto.NewPasswordEncoder(cfg.Auth.PasswordEncoder)
	if err != nil {
		return nil, err
	}

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	memberRepo := repository.NewMemberRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	meetingRepo := repository.NewMeetingRepository(db)

	s := &Services{
		Post:    service.NewPostService(postRepo, userRepo, cfg.Content.SanitizeHTML),
		Member:  service.NewMemberService(memberRepo),
		Project: service.NewProjectService(projectRepo),
		Meeting: service.NewMeetingService(meetingRepo),
		Auth:    service.NewAuthService(userRepo, encoder),
	}
	s.Dashboard = service.NewDashboardService(s.Post, s.Member, s.Project, s.Meeting)
	return s, nil
}

// Setup 设置路由
func Setup(cfg *config.Config, services *Services) (*gin.Engine, error) {
	// 注册自定义校验规则
	if err := validation.Setup(); err != nil {
		return nil, err
	}

	// 设置Gin模式
	switch cfg.Server.Mode {
	case gin.ReleaseMode, gin.TestMode:
		gin.SetMode(cfg.Server.Mode)
	}

	r := gin.New()

	// 全局中间件
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.CORSMiddleware(&cfg.CORS, cfg.Auth.ActorHeader))

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger API 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 初始化Handler
	postHandler := handler.NewPostHandler(services.Post)
	memberHandler := handler.NewMemberHandler(services.Member)
	projectHandler := handler.NewProjectHandler(services.Project)
	meetingHandler := handler.NewMeetingHandler(services.Meeting)
	authHandler := handler.NewAuthHandler(services.Auth)
	statisticsHandler := handler.NewStatisticsHandler(services.Dashboard)

	api := r.Group("/api")
	api.Use(middleware.Actor(cfg.Auth.ActorHeader, cfg.Auth.DefaultActor))
	{
		// 认证相关(仅校验，不签发token)
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/validate", authHandler.ValidateAdmin)
			authGroup.GET("/exists", authHandler.Exists)
		}

		api.GET("/statistics", statisticsHandler.Overview)

		// 文章
		posts := api.Group("/posts")
		{
			posts.GET("", postHandler.List)                                   // 已发布文章分页
			posts.GET("/featured", postHandler.Featured)                      // 推荐
			posts.GET("/latest", postHandler.Latest)                          // 最新
			posts.GET("/statistics", postHandler.Statistics)                  // 统计
			posts.GET("/search", postHandler.Search)                          // 搜索
			posts.GET("/status/:status", postHandler.ByStatus)                // 按状态
			posts.GET("/tag/:tag", postHandler.ByTag)                         // 按标签
			posts.GET("/:id", postHandler.GetByID)                            // 详情
			posts.POST("", postHandler.Create)                                // 创建
			posts.PUT("/:id", postHandler.Update)                             // 更新
			posts.DELETE("/:id", postHandler.Delete)                          // 删除
			posts.PATCH("/:id/status", postHandler.UpdateStatus)              // 状态
			posts.POST("/:id/like", postHandler.Like)                         // 点赞
			posts.DELETE("/:id/like", postHandler.Unlike)                     // 取消点赞
			posts.PATCH("/:id/display-order", postHandler.UpdateDisplayOrder) // 显示顺序
			posts.POST("/:id/view", postHandler.View)                         // 浏览量
		}

		// 成员
		members := api.Group("/members")
		{
			members.GET("", memberHandler.List)
			members.GET("/active", memberHandler.Active)
			members.GET("/featured", memberHandler.Featured)
			members.GET("/statistics", memberHandler.Statistics)
			members.GET("/search", memberHandler.Search)
			members.GET("/student/:studentId", memberHandler.GetByStudentID)
			members.GET("/role/:role", memberHandler.ByRole)
			members.GET("/grade/:grade", memberHandler.ByGrade)
			members.GET("/:id", memberHandler.GetByID)
			members.POST("", memberHandler.Create)
			members.PUT("/:id", memberHandler.Update)
			members.DELETE("/:id", memberHandler.Delete)
			members.PATCH("/:id/status", memberHandler.UpdateStatus)
			members.PATCH("/:id/display-order", memberHandler.UpdateDisplayOrder)
		}

		// 项目
		projects := api.Group("/projects")
		{
			projects.GET("", projectHandler.List)
			projects.GET("/public", projectHandler.Public)
			projects.GET("/featured", projectHandler.Featured)
			projects.GET("/ongoing", projectHandler.Ongoing)
			projects.GET("/completed", projectHandler.Completed)
			projects.GET("/statistics", projectHandler.Statistics)
			projects.GET("/search", projectHandler.Search)
			projects.GET("/date-range", projectHandler.DateRange)
			projects.GET("/budget-range", projectHandler.BudgetRange)
			projects.GET("/progress-range", projectHandler.ProgressRange)
			projects.GET("/status/:status", projectHandler.ByStatus)
			projects.GET("/category/:category", projectHandler.ByCategory)
			projects.GET("/:id", projectHandler.GetByID)
			projects.POST("", projectHandler.Create)
			projects.PUT("/:id", projectHandler.Update)
			projects.DELETE("/:id", projectHandler.Delete)
			projects.PATCH("/:id/status", projectHandler.UpdateStatus)
			projects.PATCH("/:id/progress", projectHandler.UpdateProgress)
			projects.PATCH("/:id/display-order", projectHandler.UpdateDisplayOrder)
		}

		// 组会
		meetings := api.Group("/meetings")
		{
			meetings.GET("", meetingHandler.List) // 查询失败时返回空页
			meetings.GET("/completed", meetingHandler.Completed)
			meetings.GET("/upcoming", meetingHandler.Upcoming)
			meetings.GET("/statistics", meetingHandler.Statistics)
			meetings.GET("/search", meetingHandler.Search)
			meetings.GET("/status/:status", meetingHandler.ByStatus)
			meetings.GET("/type/:type", meetingHandler.ByType)
			meetings.GET("/:id", meetingHandler.GetByID)
			meetings.POST("", meetingHandler.Create)
			meetings.PUT("/:id", meetingHandler.Update)
			meetings.DELETE("/:id", meetingHandler.Delete)
			meetings.PATCH("/:id/status", meetingHandler.UpdateStatus)
			meetings.PATCH("/:id/display-order", meetingHandler.UpdateDisplayOrder)
		}
	}

	return r, nil
}
