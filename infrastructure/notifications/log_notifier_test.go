package notifications

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogNotifier(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	n := NewLogNotifier(zap.New(core))
	ctx := context.Background()

	granted, err := n.RequestPermissions(ctx)
	require.NoError(t, err)
	assert.False(t, granted)

	require.NoError(t, n.ScheduleDaily(ctx, 20, 30))
	require.NoError(t, n.CancelAll(ctx))

	count, err := n.ScheduledCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	scheduled := logs.FilterMessage("Daily reminder requested").All()
	require.Len(t, scheduled, 1)
	assert.Equal(t, int64(20), scheduled[0].ContextMap()["hour"])
}
