package service

import "log/slog"

// Notifier receives user-facing outcome messages for mutations. The HTTP
// layer surfaces them in responses; the default sink logs them.
type Notifier interface {
	Success(message string)
	Error(message string)
}

type logNotifier struct {
	logger *slog.Logger
}

func (n logNotifier) Success(message string) {
	n.logger.Info("operation succeeded", slog.String("message", message))
}

func (n logNotifier) Error(message string) {
	n.logger.Warn("operation failed", slog.String("message", message))
}
