package trap

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the runtime's logger instance.
// It uses a no-op logger by default; the fatal diagnostic still reaches
// stderr through Fail even when logging is off.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger installs a logger for runtime diagnostics.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	loggerOnce.Do(func() {})
	logger = l
}
