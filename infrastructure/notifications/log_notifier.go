// Package notifications holds the server-side Notifier. A server has no
// device to remind, so scheduling is logged and nothing is kept.
package notifications

import (
	"context"

	"github.com/Adams-404/Between/application/ports"

	"go.uber.org/zap"
)

// LogNotifier reports every request to the logger and never schedules.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a notifier writing to logger
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogNotifier{logger: logger}
}

// RequestPermissions always reports that permission was not granted
func (n *LogNotifier) RequestPermissions(ctx context.Context) (bool, error) {
	n.logger.Info("Notification permission requested; not available on this host")
	return false, nil
}

// ScheduleDaily logs the requested reminder time
func (n *LogNotifier) ScheduleDaily(ctx context.Context, hour, minute int) error {
	n.logger.Info("Daily reminder requested",
		zap.Int("hour", hour),
		zap.Int("minute", minute),
	)
	return nil
}

// CancelAll logs the cancellation
func (n *LogNotifier) CancelAll(ctx context.Context) error {
	n.logger.Debug("Reminders cancelled")
	return nil
}

// ScheduledCount is always zero
func (n *LogNotifier) ScheduledCount(ctx context.Context) (int, error) {
	return 0, nil
}

var _ ports.Notifier = (*LogNotifier)(nil)
