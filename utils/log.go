package utils

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/bagaking/goulp/wlog"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const DefaultLogDir = "./logs"

var (
	surfaceEntries   = make(map[string]*logrus.Entry)
	surfaceEntriesMu sync.Mutex
)

// MustInitLogger 日志同时输出到 stderr 和 logDir 下的滚动文件；
// 带 surface log key 的 ctx 会额外写入 toolscout_<surface>.log
func MustInitLogger(logDir string, level string) {
	if logDir == "" {
		logDir = DefaultLogDir
	}
	if err := os.MkdirAll(logDir, os.ModePerm); err != nil {
		fmt.Printf("Failed to create log directory: %v\n", err)
		return
	}

	lv, err := logrus.ParseLevel(level)
	if err != nil {
		lv = logrus.InfoLevel
	}

	stdLogger := configureLogger(logrus.StandardLogger(), logDir, "toolscout.log", lv)

	// 重新初始化后 surface 日志跟随新的目录和级别
	surfaceEntriesMu.Lock()
	surfaceEntries = make(map[string]*logrus.Entry)
	surfaceEntriesMu.Unlock()

	wlog.SetEntryGetter(
		func(ctx context.Context) *logrus.Entry {
			e := surfaceEntry(ctx, stdLogger, logDir, lv).WithContext(ctx)
			if id, ok := ExtractRequestID(ctx); ok {
				e = e.WithField("request_id", id)
			}
			return e
		},
	)
}

func surfaceEntry(ctx context.Context, std *logrus.Logger, logDir string, lv logrus.Level) *logrus.Entry {
	key, ok := ExtractSurfaceLogKey(ctx)
	if !ok {
		return logrus.NewEntry(std)
	}

	surfaceEntriesMu.Lock()
	defer surfaceEntriesMu.Unlock()
	entry, ok := surfaceEntries[key]
	if !ok || entry == nil {
		l := configureLogger(logrus.New(), logDir, fmt.Sprintf("toolscout_%s.log", key), lv)
		entry = l.WithField("surface", key)
		surfaceEntries[key] = entry
	}
	return entry
}

// 配置公共的日志设置
func configureLogger(logger *logrus.Logger, logDir, outFile string, lv logrus.Level) *logrus.Logger {
	logRoller := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, outFile),
		MaxSize:    10,
		MaxBackups: 31,
		MaxAge:     31,
	}
	var multiLogger io.Writer
	if logger == logrus.StandardLogger() {
		multiLogger = io.MultiWriter(os.Stderr, logRoller)
	} else {
		multiLogger = io.MultiWriter(logrus.StandardLogger().Out, logRoller)
	}
	logger.SetOutput(multiLogger)
	logger.SetLevel(lv)
	logger.SetFormatter(&logrus.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	return logger
}
