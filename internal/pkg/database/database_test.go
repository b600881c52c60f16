package database

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"lab-cms/internal/pkg/config"
)

func TestGetLogLevel(t *testing.T) {
	assert.Equal(t, logger.Info, getLogLevel("info"))
	assert.Equal(t, logger.Warn, getLogLevel("warn"))
	assert.Equal(t, logger.Error, getLogLevel("error"))
	assert.Equal(t, logger.Silent, getLogLevel("unknown"))
}

func TestOpenAndMigrate(t *testing.T) {
	db, err := Open(sqlite.Open("file::memory:"), "silent")
	require.NoError(t, err)

	require.NoError(t, Migrate(db))

	for _, table := range []string{"users", "posts", "members", "projects", "meetings"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}

func TestInit_UnsupportedDriver(t *testing.T) {
	err := Init(&config.DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
}
