package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
server:
  name: lab-cms-test
  port: 9090
database:
  host: db.local
  port: 3307
  database: lab
  username: root
  password: secret
  auto_migrate: true
log:
  level: debug
  output: file
  file_path: /tmp/lab-cms.log
cors:
  allow_origins:
    - https://lab.example.com
auth:
  password_encoder: bcrypt
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "lab-cms-test", cfg.Server.Name)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, 100, cfg.Database.MaxOpenConns)
	assert.Equal(t, "bcrypt", cfg.Auth.PasswordEncoder)
	assert.Equal(t, "X-Admin-Username", cfg.Auth.ActorHeader)
	assert.Equal(t, "admin", cfg.Auth.DefaultActor)
	assert.True(t, cfg.Content.SanitizeHTML)
	assert.Equal(t, "0 0 2 * * *", cfg.Scheduler.ReportCron)
	assert.False(t, cfg.CORS.AllowAllOrigins())
	assert.Same(t, cfg, GlobalConfig)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("LAB_CMS_DATABASE_HOST", "override.local")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)
	assert.Equal(t, "override.local", cfg.Database.Host)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestDatabaseConfig_GetDSN(t *testing.T) {
	c := DatabaseConfig{Host: "127.0.0.1", Port: 3306, Database: "lab", Username: "u", Password: "p"}
	assert.Equal(t, "u:p@tcp(127.0.0.1:3306)/lab?charset=utf8mb4&parseTime=True&loc=Local", c.GetDSN())
}

func TestCORSConfig_AllowAllOrigins(t *testing.T) {
	assert.True(t, (&CORSConfig{}).AllowAllOrigins())
	assert.True(t, (&CORSConfig{AllowOrigins: []string{"https://a.com", "*"}}).AllowAllOrigins())
	assert.False(t, (&CORSConfig{AllowOrigins: []string{"https://a.com"}}).AllowAllOrigins())
}
