package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// SQLWriter 将GORM日志转发到zap，统一输出格式与落盘位置
type SQLWriter struct {
	log *zap.Logger
}

func newSQLWriter(l *zap.Logger) *SQLWriter {
	return &SQLWriter{log: l.Named("gorm")}
}

// Printf 实现 gorm logger.Writer
func (w *SQLWriter) Printf(format string, args ...interface{}) {
	w.log.Info(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func GetWriter() *SQLWriter {
	return sqlWriter
}
