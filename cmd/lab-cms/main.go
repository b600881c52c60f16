package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"lab-cms/internal/api/router"
	"lab-cms/internal/pkg/config"
	"lab-cms/internal/pkg/database"
	"lab-cms/internal/pkg/logger"
	"lab-cms/internal/scheduler"

	_ "lab-cms/docs" // Swagger docs
)

// @title Lab CMS API
// @version 1.0
// @description 实验室内容管理系统 API 文档
// @description 提供文章、成员、项目、组会管理及统计功能

// @contact.name API Support
// @contact.email support@example.com

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /

const (
	appVersion        = "1.0.0"
	appName           = "lab-cms"
	defaultConfigPath = "configs/config.yaml"
	envConfigFile     = "CONFIG_FILE"
)

var (
	configFile = flag.String("config", "", "配置文件路径 (例如: -config=configs/config.yaml)")
	version    = flag.Bool("version", false, "显示版本信息")
)

func main() {
	flag.Parse()

	if *version {
		fmt.Printf("%s version %s\n", appName, appVersion)
		return
	}

	path, source := resolveConfigPath()
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败(%s): %v\n可通过 -config 参数或 %s 环境变量指定配置文件\n", path, err, envConfigFile)
		os.Exit(1)
	}

	if err := logger.Init(&cfg.Log); err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Close()
	}()
	logger.Info("加载配置文件", zap.String("path", path), zap.String("source", source))

	if err := run(cfg); err != nil {
		logger.Fatal("服务异常退出", zap.Error(err))
	}
}

func run(cfg *config.Config) error {
	logger.Info(fmt.Sprintf("服务 %s 启动中...", appName), zap.String("version", appVersion))

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("初始化数据库失败: %w", err)
	}
	defer func() {
		_ = database.Close()
	}()
	logger.Info("数据库连接成功",
		zap.String("host", cfg.Database.Host),
		zap.Int("port", cfg.Database.Port),
		zap.String("database", cfg.Database.Database),
	)

	services, err := router.NewServices(cfg, database.GetDB())
	if err != nil {
		return fmt.Errorf("初始化服务失败: %w", err)
	}

	// 统计报表任务失败不影响对外服务
	reporter := scheduler.NewScheduler(services.Dashboard, logger.Log)
	if err := reporter.Start(&cfg.Scheduler); err != nil {
		logger.Warn("定时任务调度器启动失败", zap.Error(err))
	}
	defer reporter.Stop()

	engine, err := router.Setup(cfg, services)
	if err != nil {
		return fmt.Errorf("初始化路由失败: %w", err)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info(fmt.Sprintf("%s 服务启动成功", cfg.Server.Name),
			zap.String("address", srv.Addr),
			zap.String("mode", cfg.Server.Mode),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serveErr:
		return fmt.Errorf("服务器启动失败: %w", err)
	case <-ctx.Done():
	}

	logger.Info("服务正在关闭...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("服务器关闭异常", zap.Error(err))
	}

	logger.Info("服务已关闭")
	return nil
}

// resolveConfigPath 命令行参数 > 环境变量 > 默认路径
func resolveConfigPath() (path, source string) {
	if *configFile != "" {
		return *configFile, "命令行参数"
	}
	if env := os.Getenv(envConfigFile); env != "" {
		return env, "环境变量"
	}
	return defaultConfigPath, "默认配置"
}
