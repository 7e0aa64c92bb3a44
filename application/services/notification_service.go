package services

import (
	"context"
	"strconv"
	"strings"

	"github.com/Adams-404/Between/application/ports"
	"github.com/Adams-404/Between/domain/core/entities"

	"go.uber.org/zap"
)

// NotificationService keeps the daily reminder in line with the settings.
type NotificationService struct {
	notifier ports.Notifier
	logger   *zap.Logger
}

// NewNotificationService creates a new notification service
func NewNotificationService(notifier ports.Notifier, logger *zap.Logger) *NotificationService {
	return &NotificationService{notifier: notifier, logger: logger}
}

// Apply reschedules or cancels the reminder when the notification fields
// change between old and updated. Failures are logged; the settings write
// that triggered them stands.
func (n *NotificationService) Apply(ctx context.Context, old, updated entities.Settings) {
	if old.NotificationEnabled == updated.NotificationEnabled && old.NotificationTime == updated.NotificationTime {
		return
	}

	if !updated.NotificationEnabled {
		if err := n.notifier.CancelAll(ctx); err != nil {
			n.logger.Warn("Failed to cancel notifications", zap.Error(err))
		}
		return
	}

	granted, err := n.notifier.RequestPermissions(ctx)
	if err != nil {
		n.logger.Warn("Notification permission request failed", zap.Error(err))
		return
	}
	if !granted {
		n.logger.Info("Notification permission not granted, reminder not scheduled")
		return
	}

	hour, minute, ok := parseClock(updated.NotificationTime)
	if !ok {
		n.logger.Warn("Invalid notification time", zap.String("time", updated.NotificationTime))
		return
	}
	if err := n.notifier.CancelAll(ctx); err != nil {
		n.logger.Warn("Failed to cancel notifications", zap.Error(err))
	}
	if err := n.notifier.ScheduleDaily(ctx, hour, minute); err != nil {
		n.logger.Warn("Failed to schedule notification", zap.Error(err))
	}
}

// ScheduledCount reports how many reminders are pending.
func (n *NotificationService) ScheduledCount(ctx context.Context) (int, error) {
	return n.notifier.ScheduledCount(ctx)
}

// parseClock splits "HH:MM".
func parseClock(s string) (hour, minute int, ok bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, false
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, 0, false
	}
	return h, m, true
}
