package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Adams-404/Between/application/ports/mocks"
	"github.com/Adams-404/Between/domain/core/entities"
	appErrors "github.com/Adams-404/Between/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSettingsLoadDefaults(t *testing.T) {
	kv := mocks.NewMockKeyValueStore()
	svc := NewSettingsService(kv, nil, zap.NewNop())

	settings, err := svc.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entities.Settings{
		Theme:               entities.ThemeAuto,
		NotificationEnabled: false,
		NotificationTime:    "09:00",
		FontPreference:      entities.FontApple,
	}, settings)
	assert.Zero(t, kv.Calls("Set"), "defaults are not written on read")
}

func TestSettingsLoadStoredAndFillsMissingFields(t *testing.T) {
	kv := mocks.NewMockKeyValueStore()
	kv.Put(SettingsKey, `{"theme":"dark","notificationEnabled":true}`)
	svc := NewSettingsService(kv, nil, zap.NewNop())

	settings, err := svc.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entities.ThemeDark, settings.Theme)
	assert.True(t, settings.NotificationEnabled)
	assert.Equal(t, "09:00", settings.NotificationTime)
	assert.Equal(t, entities.FontApple, settings.FontPreference)
	assert.Equal(t, settings, svc.Current())
}

func TestSettingsLoadCorrupted(t *testing.T) {
	for name, raw := range map[string]string{
		"malformed": `{"theme":`,
		"bad enum":  `{"theme":"purple"}`,
		"bad time":  `{"notificationTime":"9am"}`,
	} {
		t.Run(name, func(t *testing.T) {
			kv := mocks.NewMockKeyValueStore()
			kv.Put(SettingsKey, raw)
			svc := NewSettingsService(kv, nil, zap.NewNop())

			_, err := svc.Load(context.Background())
			assert.True(t, appErrors.IsCorrupted(err))
			assert.Equal(t, entities.DefaultSettings(), svc.Current())
		})
	}
}

func TestSettingsUpdate(t *testing.T) {
	kv := mocks.NewMockKeyValueStore()
	svc := NewSettingsService(kv, nil, zap.NewNop())
	ctx := context.Background()

	updated := entities.DefaultSettings()
	updated.Theme = entities.ThemeLight
	updated.FontPreference = entities.FontSystem

	got, err := svc.Update(ctx, updated)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
	assert.Equal(t, updated, svc.Current())

	raw, ok := kv.Raw(SettingsKey)
	require.True(t, ok)
	assert.JSONEq(t, `{"theme":"light","notificationEnabled":false,"notificationTime":"09:00","fontPreference":"system"}`, raw)

	t.Run("invalid is rejected", func(t *testing.T) {
		bad := updated
		bad.NotificationTime = "25:00"
		_, err := svc.Update(ctx, bad)
		assert.True(t, appErrors.IsValidation(err))
		assert.Equal(t, updated, svc.Current())
	})

	t.Run("write failure keeps current", func(t *testing.T) {
		kv.SetError("Set", errors.New("disk full"))
		defer kv.ClearErrors()

		_, err := svc.SetTheme(ctx, entities.ThemeDark)
		assert.True(t, appErrors.IsPersistence(err))
		assert.Equal(t, entities.ThemeLight, svc.Current().Theme)
	})

	t.Run("set theme", func(t *testing.T) {
		got, err := svc.SetTheme(ctx, entities.ThemeAuto)
		require.NoError(t, err)
		assert.Equal(t, entities.ThemeAuto, got.Theme)
		assert.Equal(t, entities.FontSystem, got.FontPreference)
		assert.Equal(t, entities.ThemeDark, svc.ResolvedTheme(true))
		assert.Equal(t, entities.ThemeLight, svc.ResolvedTheme(false))
	})

	svc.Reset()
	assert.Equal(t, entities.DefaultSettings(), svc.Current())
}

func TestSettingsUpdateSchedulesReminder(t *testing.T) {
	ctx := context.Background()
	notifier := new(mocks.MockNotifier)
	notifier.On("RequestPermissions", ctx).Return(true, nil)
	notifier.On("CancelAll", ctx).Return(nil)
	notifier.On("ScheduleDaily", ctx, 7, 30).Return(nil)

	svc := NewSettingsService(mocks.NewMockKeyValueStore(), NewNotificationService(notifier, zap.NewNop()), zap.NewNop())

	enabled := entities.DefaultSettings()
	enabled.NotificationEnabled = true
	enabled.NotificationTime = "07:30"
	_, err := svc.Update(ctx, enabled)
	require.NoError(t, err)
	notifier.AssertCalled(t, "ScheduleDaily", ctx, 7, 30)

	// Unchanged notification fields do not touch the scheduler.
	enabled.Theme = entities.ThemeDark
	_, err = svc.Update(ctx, enabled)
	require.NoError(t, err)
	notifier.AssertNumberOfCalls(t, "ScheduleDaily", 1)

	enabled.NotificationEnabled = false
	_, err = svc.Update(ctx, enabled)
	require.NoError(t, err)
	notifier.AssertNumberOfCalls(t, "CancelAll", 2)
}

func TestReminderNotScheduledWithoutPermission(t *testing.T) {
	ctx := context.Background()
	notifier := new(mocks.MockNotifier)
	notifier.On("RequestPermissions", ctx).Return(false, nil)

	n := NewNotificationService(notifier, zap.NewNop())
	enabled := entities.DefaultSettings()
	enabled.NotificationEnabled = true
	n.Apply(ctx, entities.DefaultSettings(), enabled)

	notifier.AssertNotCalled(t, "ScheduleDaily", mock.Anything, mock.Anything, mock.Anything)
}
