// Package notify carries discrete user-facing events from the core to
// whatever presenter is attached (a toast view, a log, a test recorder).
package notify

import "go.uber.org/zap"

// Level classifies a notification for display.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notifier receives user-facing events. No return value is consumed.
type Notifier interface {
	Notify(level Level, message string)
}

type logNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier returns a notifier that writes events to the log, used
// when no interactive presenter is attached.
func NewLogNotifier(logger *zap.Logger) *logNotifier {
	return &logNotifier{logger: logger}
}

func (n *logNotifier) Notify(level Level, message string) {
	switch level {
	case LevelError:
		n.logger.Error(message)
	case LevelWarning:
		n.logger.Warn(message)
	default:
		n.logger.Info(message, zap.String("level", string(level)))
	}
}
