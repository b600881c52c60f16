package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"lab-cms/pkg/constants"
)

var GlobalConfig *Config

// Config 全局配置
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Log       LogConfig       `mapstructure:"log"`
	CORS      CORSConfig      `mapstructure:"cors"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Content   ContentConfig   `mapstructure:"content"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
}

// ServerConfig 服务配置
type ServerConfig struct {
	Name            string `mapstructure:"name"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Mode            string `mapstructure:"mode"`             // debug, release, test
	ReadTimeout     int    `mapstructure:"read_timeout"`     // 秒
	WriteTimeout    int    `mapstructure:"write_timeout"`    // 秒
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"` // 秒
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Database        string `mapstructure:"database"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"` // 秒
	LogLevel        string `mapstructure:"log_level"`         // SQL日志级别: silent/error/warn/info
	AutoMigrate     bool   `mapstructure:"auto_migrate"`      // 启动时自动建表
}

// LogConfig 日志配置
type LogConfig struct {
	Level      string `mapstructure:"level"`  // debug, info, warn, error
	Format     string `mapstructure:"format"` // json, console
	Output     string `mapstructure:"output"` // stdout, file
	FilePath   string `mapstructure:"file_path"`
	MaxSize    int    `mapstructure:"max_size"` // MB
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"` // days
	Compress   bool   `mapstructure:"compress"`
}

// CORSConfig 跨域配置
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"` // 为空或包含 * 时允许任意来源
	MaxAge       int      `mapstructure:"max_age"`       // 秒
}

// AuthConfig 认证配置
type AuthConfig struct {
	PasswordEncoder string `mapstructure:"password_encoder"` // plain, bcrypt
	ActorHeader     string `mapstructure:"actor_header"`     // 携带当前操作人的请求头
	DefaultActor    string `mapstructure:"default_actor"`    // 请求头缺失时使用的操作人
}

// ContentConfig 内容配置
type ContentConfig struct {
	SanitizeHTML bool `mapstructure:"sanitize_html"`
}

// SchedulerConfig 定时任务配置
type SchedulerConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	ReportCron string `mapstructure:"report_cron"` // 秒 分 时 日 月 周
}

// Load 加载配置
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	// 设置配置文件路径
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	// 读取环境变量, 如 LAB_CMS_DATABASE_HOST
	v.SetEnvPrefix("LAB_CMS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 读取配置文件
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	// 解析配置
	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	// 设置全局配置
	GlobalConfig = config

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.name", "lab-cms")
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.read_timeout", 30)
	v.SetDefault("server.write_timeout", 30)
	v.SetDefault("server.shutdown_timeout", 5)

	v.SetDefault("database.driver", "mysql")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 100)
	v.SetDefault("database.conn_max_lifetime", 3600)
	v.SetDefault("database.log_level", "silent")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stdout")
	v.SetDefault("log.max_size", 100)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 7)

	v.SetDefault("cors.allow_origins", []string{"*"})
	v.SetDefault("cors.max_age", 43200)

	v.SetDefault("auth.password_encoder", "plain")
	v.SetDefault("auth.actor_header", constants.HeaderAdminUsername)
	v.SetDefault("auth.default_actor", "admin")

	v.SetDefault("content.sanitize_html", true)

	v.SetDefault("scheduler.report_cron", "0 0 2 * * *")
}

// GetDSN 获取数据库DSN
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.Username,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}

// AllowAllOrigins 是否允许任意来源
func (c *CORSConfig) AllowAllOrigins() bool {
	if len(c.AllowOrigins) == 0 {
		return true
	}
	for _, origin := range c.AllowOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}
