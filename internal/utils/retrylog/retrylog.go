// Package retrylog направляет логи go-retryablehttp в zap.
package retrylog

import (
	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
)

type leveledLogger struct {
	sugar *zap.SugaredLogger
}

// New создает адаптер zap для retryablehttp
func New(logger *zap.Logger) retryablehttp.LeveledLogger {
	return &leveledLogger{sugar: logger.Sugar()}
}

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.sugar.Errorw(msg, keysAndValues...)
}

func (l *leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.sugar.Infow(msg, keysAndValues...)
}

func (l *leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.sugar.Debugw(msg, keysAndValues...)
}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.sugar.Warnw(msg, keysAndValues...)
}
