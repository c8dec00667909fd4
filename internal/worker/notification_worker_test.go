package worker

import (
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/schedule-service/internal/config"
	"github.com/spec-kit/schedule-service/internal/events"
	"github.com/spec-kit/schedule-service/internal/observability"
	"github.com/spec-kit/schedule-service/internal/service"
)

func TestNotificationWorkerCountsChanges(t *testing.T) {
	bus := events.NewInMemoryBus(nil)
	metrics := observability.NewMetrics()
	notifications := service.NewNotificationService(bus, zap.NewNop(), config.NotificationConfig{})

	stop := StartNotificationWorker(notifications, bus, metrics)
	require.NoError(t, bus.Emit(context.Background(), events.Change{Topic: events.TopicAssignmentChanged}))
	stop()
	require.NoError(t, bus.Emit(context.Background(), events.Change{Topic: events.TopicAssignmentChanged}))

	expected := `
# HELP schedule_change_notifications_total Total number of change notifications emitted by topic.
# TYPE schedule_change_notifications_total counter
schedule_change_notifications_total{topic="assignment-changed"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(metrics.Registry, strings.NewReader(expected), "schedule_change_notifications_total"))
}
